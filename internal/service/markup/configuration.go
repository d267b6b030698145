package markup

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/ougirez/tendermarkup/internal/domain"
	"github.com/ougirez/tendermarkup/internal/pkg/calc"
	"github.com/ougirez/tendermarkup/internal/pkg/constants"
	"github.com/ougirez/tendermarkup/internal/pkg/logger"
	"go.uber.org/zap"
)

// defaultConfigurationName is used when a tender gets the built-in parameter set.
const defaultConfigurationName = "По умолчанию"

type CreateConfigurationRequest struct {
	TenderID   uuid.UUID               `json:"tenderId" validate:"required"`
	Name       string                  `json:"name" validate:"required,max=255"`
	Parameters domain.MarkupParameters `json:"parameters"`
}

type CreateTemplateRequest struct {
	Name        string                  `json:"name" validate:"required,max=255"`
	Description string                  `json:"description"`
	IsDefault   bool                    `json:"isDefault"`
	Parameters  domain.MarkupParameters `json:"parameters"`
}

// CreateConfiguration сохраняет новую неактивную версию параметров тендера.
func (s *Service) CreateConfiguration(ctx context.Context, req CreateConfigurationRequest) (*domain.MarkupConfiguration, error) {
	ctx = logger.WithFields(ctx, zap.String("op", "CreateConfiguration"), zap.String("tender_id", req.TenderID.String()))

	if err := s.validate.StructCtx(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %s", constants.ErrInvalidParameters, err.Error())
	}

	created, err := s.store.CreateMarkupConfiguration(ctx, &domain.MarkupConfiguration{
		TenderID:         req.TenderID,
		Name:             req.Name,
		MarkupParameters: req.Parameters,
	})
	if err != nil {
		return nil, fmt.Errorf("store.CreateMarkupConfiguration: %w", err)
	}

	logger.Infof(ctx, "created markup configuration version %d", created.Version)
	return created, nil
}

func (s *Service) ActivateConfiguration(ctx context.Context, configID, tenderID uuid.UUID) error {
	ctx = logger.WithFields(ctx, zap.String("op", "ActivateConfiguration"), zap.String("tender_id", tenderID.String()))

	if err := s.store.ActivateMarkupConfiguration(ctx, configID, tenderID); err != nil {
		return fmt.Errorf("store.ActivateMarkupConfiguration, config-%s: %w", configID, err)
	}

	logger.Info(ctx, "markup configuration activated", zap.String("config_id", configID.String()))
	return nil
}

// ApplyTemplate копирует проценты шаблона в новую конфигурацию тендера и делает её
// активной. uuid.Nil означает шаблон по умолчанию; если его нет, берутся
// calc.PersistedDefaults.
func (s *Service) ApplyTemplate(ctx context.Context, templateID, tenderID uuid.UUID) (*domain.MarkupConfiguration, error) {
	ctx = logger.WithFields(ctx, zap.String("op", "ApplyTemplate"), zap.String("tender_id", tenderID.String()))

	name, params, err := s.templateParameters(ctx, templateID)
	if err != nil {
		return nil, err
	}

	created, err := s.store.CreateMarkupConfiguration(ctx, &domain.MarkupConfiguration{
		TenderID:         tenderID,
		Name:             name,
		MarkupParameters: params,
	})
	if err != nil {
		return nil, fmt.Errorf("store.CreateMarkupConfiguration: %w", err)
	}

	if err = s.store.ActivateMarkupConfiguration(ctx, created.ID, tenderID); err != nil {
		return nil, fmt.Errorf("store.ActivateMarkupConfiguration, config-%s: %w", created.ID, err)
	}
	created.IsActive = true

	logger.Infof(ctx, "applied template %q as version %d", name, created.Version)
	return created, nil
}

func (s *Service) templateParameters(ctx context.Context, templateID uuid.UUID) (string, domain.MarkupParameters, error) {
	if templateID != uuid.Nil {
		tpl, err := s.store.GetMarkupTemplate(ctx, templateID)
		if err != nil {
			return "", domain.MarkupParameters{}, fmt.Errorf("store.GetMarkupTemplate, template-%s: %w", templateID, err)
		}
		return tpl.Name, tpl.MarkupParameters, nil
	}

	tpl, err := s.store.GetDefaultMarkupTemplate(ctx)
	switch {
	case err == nil:
		return tpl.Name, tpl.MarkupParameters, nil
	case errors.Is(err, constants.ErrDBNotFound):
		logger.Warnf(ctx, "no default template, using built-in parameters")
		return defaultConfigurationName, calc.PersistedDefaults(), nil
	default:
		return "", domain.MarkupParameters{}, fmt.Errorf("store.GetDefaultMarkupTemplate: %w", err)
	}
}

func (s *Service) CreateTemplate(ctx context.Context, req CreateTemplateRequest) (*domain.MarkupTemplate, error) {
	ctx = logger.WithFields(ctx, zap.String("op", "CreateTemplate"))

	if err := s.validate.StructCtx(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %s", constants.ErrInvalidParameters, err.Error())
	}

	created, err := s.store.CreateMarkupTemplate(ctx, &domain.MarkupTemplate{
		Name:             req.Name,
		Description:      req.Description,
		IsDefault:        req.IsDefault,
		MarkupParameters: req.Parameters,
	})
	if err != nil {
		return nil, fmt.Errorf("store.CreateMarkupTemplate: %w", err)
	}

	return created, nil
}

// ActiveParameters returns the parameters of the tender's active configuration.
func (s *Service) ActiveParameters(ctx context.Context, tenderID uuid.UUID) (domain.MarkupParameters, error) {
	cfg, err := s.store.GetActiveMarkupConfiguration(ctx, tenderID)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return domain.MarkupParameters{}, constants.ErrNoActiveConfiguration
		}
		return domain.MarkupParameters{}, fmt.Errorf("store.GetActiveMarkupConfiguration: %w", err)
	}

	return cfg.MarkupParameters, nil
}

// calculationParameters is ActiveParameters that falls back to calculation defaults.
func (s *Service) calculationParameters(ctx context.Context, tenderID uuid.UUID) (domain.MarkupParameters, error) {
	params, err := s.ActiveParameters(ctx, tenderID)
	if errors.Is(err, constants.ErrNoActiveConfiguration) {
		logger.Warnf(ctx, "no active markup configuration, using defaults")
		return domain.MarkupParameters{}, nil
	}
	return params, err
}
