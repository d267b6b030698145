package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/ougirez/tendermarkup/internal/domain"
	"github.com/ougirez/tendermarkup/internal/pkg/constants"
	"github.com/ougirez/tendermarkup/internal/pkg/logger"
)

type MarkupConfigurationStore interface {
	CreateMarkupConfiguration(ctx context.Context, cfg *domain.MarkupConfiguration) (*domain.MarkupConfiguration, error)
	GetMarkupConfiguration(ctx context.Context, id uuid.UUID) (*domain.MarkupConfiguration, error)
	GetActiveMarkupConfiguration(ctx context.Context, tenderID uuid.UUID) (*domain.MarkupConfiguration, error)
	ListMarkupConfigurations(ctx context.Context, tenderID uuid.UUID) ([]*domain.MarkupConfiguration, error)
	ActivateMarkupConfiguration(ctx context.Context, configID, tenderID uuid.UUID) error
}

var markupConfigurationColumns = withColumns(
	[]string{"id", "tender_id", "name", "version", "is_active"},
	markupParameterColumns,
	[]string{"created_at"},
)

// CreateMarkupConfiguration сохраняет новую неактивную версию для тендера.
// Номер версии назначается базой: max(version) + 1 в рамках тендера.
func (s *store) CreateMarkupConfiguration(ctx context.Context, cfg *domain.MarkupConfiguration) (*domain.MarkupConfiguration, error) {
	var created domain.MarkupConfiguration
	if err := s.pool.Getx(ctx, &created, createMarkupConfigurationQuery(cfg)); err != nil {
		logger.Errorf(ctx, "createMarkupConfiguration: %s", err.Error())
		return nil, wrapErr(err)
	}

	return &created, nil
}

func createMarkupConfigurationQuery(cfg *domain.MarkupConfiguration) sq.InsertBuilder {
	id := cfg.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	values := append([]interface{}{
		id,
		cfg.TenderID,
		cfg.Name,
		sq.Expr("(select coalesce(max(version), 0) + 1 from "+tableMarkupConfigurations+" where tender_id = ?)", cfg.TenderID),
		false,
	}, parameterValues(cfg.MarkupParameters)...)

	return builder().Insert(tableMarkupConfigurations).
		Columns(withColumns([]string{"id", "tender_id", "name", "version", "is_active"}, markupParameterColumns)...).
		Values(values...).
		Suffix("returning " + joinColumns(markupConfigurationColumns))
}

func (s *store) GetMarkupConfiguration(ctx context.Context, id uuid.UUID) (*domain.MarkupConfiguration, error) {
	query := builder().Select(markupConfigurationColumns...).
		From(tableMarkupConfigurations).
		Where(sq.Eq{"id": id})

	var selected domain.MarkupConfiguration
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) GetActiveMarkupConfiguration(ctx context.Context, tenderID uuid.UUID) (*domain.MarkupConfiguration, error) {
	query := builder().Select(markupConfigurationColumns...).
		From(tableMarkupConfigurations).
		Where(sq.And{
			sq.Eq{"tender_id": tenderID},
			sq.Eq{"is_active": true},
		})

	var selected domain.MarkupConfiguration
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) ListMarkupConfigurations(ctx context.Context, tenderID uuid.UUID) ([]*domain.MarkupConfiguration, error) {
	query := builder().Select(markupConfigurationColumns...).
		From(tableMarkupConfigurations).
		Where(sq.Eq{"tender_id": tenderID}).
		OrderBy("version desc")

	var selected []*domain.MarkupConfiguration
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		logger.Error(ctx, err.Error())
		return nil, err
	}

	return selected, nil
}

// ActivateMarkupConfiguration в одной транзакции снимает флаг активности с прочих
// конфигураций тендера и ставит его целевой. Если конфигурация не принадлежит
// тендеру, транзакция откатывается с ErrDBNotFound.
func (s *store) ActivateMarkupConfiguration(ctx context.Context, configID, tenderID uuid.UUID) error {
	deactivate, activate := activateMarkupConfigurationQueries(configID, tenderID)

	return s.pool.InTx(ctx, func(tx *Pool) error {
		if _, err := tx.Execx(ctx, deactivate); err != nil {
			return fmt.Errorf("deactivate: %w", err)
		}

		tag, err := tx.Execx(ctx, activate)
		if err != nil {
			return fmt.Errorf("activate: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return constants.ErrDBNotFound
		}

		return nil
	})
}

func activateMarkupConfigurationQueries(configID, tenderID uuid.UUID) (sq.UpdateBuilder, sq.UpdateBuilder) {
	deactivate := builder().Update(tableMarkupConfigurations).
		Set("is_active", false).
		Where(sq.And{
			sq.Eq{"tender_id": tenderID},
			sq.NotEq{"id": configID},
			sq.Eq{"is_active": true},
		})

	activate := builder().Update(tableMarkupConfigurations).
		Set("is_active", true).
		Where(sq.And{
			sq.Eq{"id": configID},
			sq.Eq{"tender_id": tenderID},
		})

	return deactivate, activate
}

func parameterValues(p domain.MarkupParameters) []interface{} {
	return []interface{}{
		p.Works16Markup,
		p.MechanizationService,
		p.MbpGsm,
		p.WarrantyPeriod,
		p.WorksCostGrowth,
		p.MaterialsCostGrowth,
		p.SubcontractWorksCostGrowth,
		p.SubcontractMaterialsCostGrowth,
		p.ContingencyCosts,
		p.OverheadOwnForces,
		p.OverheadSubcontract,
		p.GeneralCostsWithoutSubcontract,
		p.ProfitOwnForces,
		p.ProfitSubcontract,
	}
}
