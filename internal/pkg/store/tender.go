package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/ougirez/tendermarkup/internal/domain"
	"github.com/ougirez/tendermarkup/internal/pkg/constants"
)

type TenderStore interface {
	GetTender(ctx context.Context, id uuid.UUID) (*domain.Tender, error)
	UpdateTenderCommercialTotal(ctx context.Context, id uuid.UUID, total float64, at time.Time) error
}

var tenderColumns = []string{"id", "title", "commercial_total", "commercial_total_updated_at", "created_at", "updated_at"}

func (s *store) GetTender(ctx context.Context, id uuid.UUID) (*domain.Tender, error) {
	query := builder().Select(tenderColumns...).
		From(tableTenders).
		Where(sq.Eq{"id": id})

	var selected domain.Tender
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) UpdateTenderCommercialTotal(ctx context.Context, id uuid.UUID, total float64, at time.Time) error {
	tag, err := s.pool.Execx(ctx, updateTenderCommercialTotalQuery(id, total, at))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrDBNotFound
	}

	return nil
}

func updateTenderCommercialTotalQuery(id uuid.UUID, total float64, at time.Time) sq.UpdateBuilder {
	return builder().Update(tableTenders).
		Set("commercial_total", total).
		Set("commercial_total_updated_at", at).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
}
