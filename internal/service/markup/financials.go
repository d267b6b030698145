package markup

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ougirez/tendermarkup/internal/domain"
	"github.com/ougirez/tendermarkup/internal/domain/dto"
	"github.com/ougirez/tendermarkup/internal/pkg/calc"
	"github.com/ougirez/tendermarkup/internal/pkg/constants"
	"github.com/ougirez/tendermarkup/internal/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TenderSummary: итог расчёта тендера, который показывает финансовый экран.
type TenderSummary struct {
	TenderID        uuid.UUID               `json:"tenderId"`
	Title           string                  `json:"title"`
	Breakdown       calc.FinancialBreakdown `json:"breakdown"`
	CommercialTotal float64                 `json:"commercialTotal"`
	CalculatedAt    time.Time               `json:"calculatedAt"`
}

// TenderFinancials суммирует ПЗ по BOQ, прогоняет каскад по всему тендеру и
// сохраняет округлённый коммерческий итог в тендере.
func (s *Service) TenderFinancials(ctx context.Context, tenderID uuid.UUID) (*TenderSummary, error) {
	ctx = logger.WithFields(ctx, zap.String("op", "TenderFinancials"), zap.String("tender_id", tenderID.String()))

	tender, err := s.store.GetTender(ctx, tenderID)
	if err != nil {
		return nil, fmt.Errorf("store.GetTender: %w", err)
	}

	params, err := s.calculationParameters(ctx, tenderID)
	if err != nil {
		return nil, err
	}

	items, err := s.store.ListBOQItems(ctx, tenderID)
	if err != nil {
		return nil, fmt.Errorf("store.ListBOQItems: %w", err)
	}

	breakdown := calc.ComputeTenderFinancials(SumBaseCosts(items), params)
	total, _ := decimal.NewFromFloat(breakdown.TotalCostWithProfit).Round(constants.MoneyPrecision).Float64()
	calculatedAt := s.now()

	if err = s.store.UpdateTenderCommercialTotal(ctx, tenderID, total, calculatedAt); err != nil {
		return nil, fmt.Errorf("store.UpdateTenderCommercialTotal: %w", err)
	}

	logger.Debugf(ctx, "tender commercial total %.2f over %d items", total, len(items))
	return &TenderSummary{
		TenderID:        tenderID,
		Title:           tender.Title,
		Breakdown:       breakdown,
		CommercialTotal: total,
		CalculatedAt:    calculatedAt,
	}, nil
}

// SumBaseCosts складывает ПЗ строк BOQ в четыре колонки. Сумма ведётся в decimal,
// чтобы порядок строк не влиял на итог.
func SumBaseCosts(items []*domain.BOQItem) domain.BaseCosts {
	var materials, works, subMaterials, subWorks decimal.Decimal
	for _, item := range items {
		val := decimal.NewFromFloat(item.BaseCost)
		switch item.ItemType {
		case domain.ItemTypeMaterial:
			materials = materials.Add(val)
		case domain.ItemTypeSubMaterial:
			subMaterials = subMaterials.Add(val)
		case domain.ItemTypeSubWork:
			subWorks = subWorks.Add(val)
		default:
			works = works.Add(val)
		}
	}

	return domain.BaseCosts{
		Materials:    materials.InexactFloat64(),
		Works:        works.InexactFloat64(),
		SubMaterials: subMaterials.InexactFloat64(),
		SubWorks:     subWorks.InexactFloat64(),
	}
}

// PositionTotals returns each position's redistributed material/work totals.
func (s *Service) PositionTotals(ctx context.Context, tenderID uuid.UUID) (dto.PositionBuckets, error) {
	ctx = logger.WithFields(ctx, zap.String("op", "PositionTotals"), zap.String("tender_id", tenderID.String()))

	params, err := s.calculationParameters(ctx, tenderID)
	if err != nil {
		return nil, err
	}

	items, err := s.store.ListBOQItems(ctx, tenderID)
	if err != nil {
		return nil, fmt.Errorf("store.ListBOQItems: %w", err)
	}

	totals := dto.NewPositionTotals()
	for _, item := range items {
		cost := calc.ComputeLineItemCommercialCost(item.BaseCost, item.Role(), params)
		totals.Put(item.PositionID, cost.Buckets)
	}

	return totals.Snapshot(), nil
}
