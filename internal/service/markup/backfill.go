package markup

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/ougirez/tendermarkup/internal/domain"
	"github.com/ougirez/tendermarkup/internal/domain/dto"
	"github.com/ougirez/tendermarkup/internal/pkg/calc"
	"github.com/ougirez/tendermarkup/internal/pkg/constants"
	"github.com/ougirez/tendermarkup/internal/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// coefficientEpsilon is how close a stored value must be to count as current.
const coefficientEpsilon = 1e-9

type BackfillReport struct {
	Updated   int                 `json:"updated"`
	Skipped   int                 `json:"skipped"`
	Positions dto.PositionBuckets `json:"positions"`
}

// BackfillCoefficients пересчитывает коммерческую стоимость и коэффициент каждой
// строки BOQ по активной конфигурации. Строки с актуальными значениями не пишутся.
func (s *Service) BackfillCoefficients(ctx context.Context, tenderID uuid.UUID) (*BackfillReport, error) {
	ctx = logger.WithFields(ctx, zap.String("op", "BackfillCoefficients"), zap.String("tender_id", tenderID.String()))

	params, err := s.calculationParameters(ctx, tenderID)
	if err != nil {
		return nil, err
	}

	items, err := s.store.ListBOQItems(ctx, tenderID)
	if err != nil {
		return nil, fmt.Errorf("store.ListBOQItems: %w", err)
	}

	var updated, skipped atomic.Int64
	totals := dto.NewPositionTotals()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.opts.Concurrency)
	for _, item := range items {
		item := item
		eg.Go(func() error {
			// после первой ошибки оставшиеся строки не трогаем
			if err := egCtx.Err(); err != nil {
				return err
			}

			cost := calc.ComputeLineItemCommercialCost(item.BaseCost, item.Role(), params)
			totals.Put(item.PositionID, cost.Buckets)

			if isCurrent(item, cost) {
				skipped.Add(1)
				return nil
			}

			if err := s.updateItemWithRetry(egCtx, item.ID, cost); err != nil {
				return fmt.Errorf("store.UpdateBOQItemCommercialCost, item-%s: %w", item.ID, err)
			}
			updated.Add(1)
			return nil
		})
	}

	if err = eg.Wait(); err != nil {
		logger.Error(ctx, "backfill failed", zap.Error(err), zap.Int64("updated", updated.Load()))
		return nil, err
	}

	report := &BackfillReport{
		Updated:   int(updated.Load()),
		Skipped:   int(skipped.Load()),
		Positions: totals.Snapshot(),
	}
	logger.Infof(ctx, "backfilled %d items, %d already current", report.Updated, report.Skipped)

	return report, nil
}

func (s *Service) updateItemWithRetry(ctx context.Context, itemID uuid.UUID, cost calc.LineItemCost) error {
	return backoff.Retry(
		func() error {
			err := s.store.UpdateBOQItemCommercialCost(ctx, itemID, cost.FullCommercialCost, cost.Coefficient)
			if errors.Is(err, constants.ErrDBNotFound) {
				return backoff.Permanent(err)
			}
			if err != nil {
				logger.Warnf(ctx, "retrying item %s: %s", itemID, err.Error())
			}
			return err
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(s.opts.RetryInterval), s.opts.MaxRetries),
			ctx,
		),
	)
}

func isCurrent(item *domain.BOQItem, cost calc.LineItemCost) bool {
	if item.CommercialCost == nil || item.CommercialCoefficient == nil {
		return false
	}
	return math.Abs(*item.CommercialCost-cost.FullCommercialCost) <= coefficientEpsilon &&
		math.Abs(*item.CommercialCoefficient-cost.Coefficient) <= coefficientEpsilon
}
