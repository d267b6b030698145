package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/ougirez/tendermarkup/internal/domain"
	"github.com/ougirez/tendermarkup/internal/pkg/constants"
	"github.com/ougirez/tendermarkup/internal/pkg/logger"
)

type BOQStore interface {
	ListBOQItems(ctx context.Context, tenderID uuid.UUID) ([]*domain.BOQItem, error)
	UpdateBOQItemCommercialCost(ctx context.Context, id uuid.UUID, cost, coefficient float64) error
}

var boqItemColumns = []string{
	"id", "tender_id", "position_id", "item_type", "is_auxiliary",
	"base_cost", "commercial_cost", "commercial_coefficient", "updated_at",
}

func (s *store) ListBOQItems(ctx context.Context, tenderID uuid.UUID) ([]*domain.BOQItem, error) {
	var selected []*domain.BOQItem
	if err := s.pool.Selectx(ctx, &selected, listBOQItemsQuery(tenderID)); err != nil {
		logger.Error(ctx, err.Error())
		return nil, err
	}

	return selected, nil
}

func listBOQItemsQuery(tenderID uuid.UUID) sq.SelectBuilder {
	return builder().Select(boqItemColumns...).
		From(tableBOQItems).
		Where(sq.Eq{"tender_id": tenderID}).
		OrderBy("position_id", "id")
}

func (s *store) UpdateBOQItemCommercialCost(ctx context.Context, id uuid.UUID, cost, coefficient float64) error {
	query := builder().Update(tableBOQItems).
		Set("commercial_cost", cost).
		Set("commercial_coefficient", coefficient).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrDBNotFound
	}

	return nil
}
