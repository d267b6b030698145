package domain

import (
	"time"

	"github.com/google/uuid"
)

type Tender struct {
	ID                       uuid.UUID  `db:"id"`
	Title                    string     `db:"title"`
	CommercialTotal          *float64   `db:"commercial_total"`
	CommercialTotalUpdatedAt *time.Time `db:"commercial_total_updated_at"`
	CreatedAt                time.Time  `db:"created_at"`
	UpdatedAt                time.Time  `db:"updated_at"`
}

// BOQItem: строка ведомости объёмов работ (работа или материал).
type BOQItem struct {
	ID                    uuid.UUID `db:"id"`
	TenderID              uuid.UUID `db:"tender_id"`
	PositionID            uuid.UUID `db:"position_id"`
	ItemType              ItemType  `db:"item_type"`
	IsAuxiliary           bool      `db:"is_auxiliary"`
	BaseCost              float64   `db:"base_cost"`
	CommercialCost        *float64  `db:"commercial_cost"`
	CommercialCoefficient *float64  `db:"commercial_coefficient"`
	UpdatedAt             time.Time `db:"updated_at"`
}

func (i *BOQItem) Role() LineItemRole {
	return LineItemRole{ItemType: i.ItemType, IsAuxiliary: i.IsAuxiliary}
}
