package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/ougirez/tendermarkup/internal/domain"
	"github.com/ougirez/tendermarkup/internal/pkg/logger"
)

type MarkupTemplateStore interface {
	CreateMarkupTemplate(ctx context.Context, tpl *domain.MarkupTemplate) (*domain.MarkupTemplate, error)
	GetMarkupTemplate(ctx context.Context, id uuid.UUID) (*domain.MarkupTemplate, error)
	GetDefaultMarkupTemplate(ctx context.Context) (*domain.MarkupTemplate, error)
	ListMarkupTemplates(ctx context.Context) ([]*domain.MarkupTemplate, error)
}

var markupTemplateColumns = withColumns(
	[]string{"id", "name", "description", "is_default"},
	markupParameterColumns,
	[]string{"created_at"},
)

// CreateMarkupTemplate сохраняет шаблон. Новый шаблон по умолчанию снимает
// флаг с предыдущего в той же транзакции.
func (s *store) CreateMarkupTemplate(ctx context.Context, tpl *domain.MarkupTemplate) (*domain.MarkupTemplate, error) {
	var created domain.MarkupTemplate

	err := s.pool.InTx(ctx, func(tx *Pool) error {
		if tpl.IsDefault {
			clearDefault := builder().Update(tableMarkupTemplates).
				Set("is_default", false).
				Where(sq.Eq{"is_default": true})
			if _, err := tx.Execx(ctx, clearDefault); err != nil {
				return fmt.Errorf("clear default: %w", err)
			}
		}

		return tx.Getx(ctx, &created, createMarkupTemplateQuery(tpl))
	})
	if err != nil {
		logger.Errorf(ctx, "createMarkupTemplate: %s", err.Error())
		return nil, wrapErr(err)
	}

	return &created, nil
}

func createMarkupTemplateQuery(tpl *domain.MarkupTemplate) sq.InsertBuilder {
	id := tpl.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	values := append([]interface{}{id, tpl.Name, tpl.Description, tpl.IsDefault}, parameterValues(tpl.MarkupParameters)...)

	return builder().Insert(tableMarkupTemplates).
		Columns(withColumns([]string{"id", "name", "description", "is_default"}, markupParameterColumns)...).
		Values(values...).
		Suffix("returning " + joinColumns(markupTemplateColumns))
}

func (s *store) GetMarkupTemplate(ctx context.Context, id uuid.UUID) (*domain.MarkupTemplate, error) {
	query := builder().Select(markupTemplateColumns...).
		From(tableMarkupTemplates).
		Where(sq.Eq{"id": id})

	var selected domain.MarkupTemplate
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) GetDefaultMarkupTemplate(ctx context.Context) (*domain.MarkupTemplate, error) {
	query := builder().Select(markupTemplateColumns...).
		From(tableMarkupTemplates).
		Where(sq.Eq{"is_default": true})

	var selected domain.MarkupTemplate
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) ListMarkupTemplates(ctx context.Context) ([]*domain.MarkupTemplate, error) {
	query := builder().Select(markupTemplateColumns...).
		From(tableMarkupTemplates).
		OrderBy("is_default desc", "name")

	var selected []*domain.MarkupTemplate
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		logger.Error(ctx, err.Error())
		return nil, err
	}

	return selected, nil
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
