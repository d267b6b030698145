package domain

import (
	"time"

	"github.com/google/uuid"
)

// MarkupConfiguration: версия набора процентов для тендера. Активна не более одной
// на тендер, остальные хранятся как история.
type MarkupConfiguration struct {
	ID       uuid.UUID `db:"id" json:"id"`
	TenderID uuid.UUID `db:"tender_id" json:"tenderId"`
	Name     string    `db:"name" json:"name" validate:"required,max=255"`
	Version  int       `db:"version" json:"version"`
	IsActive bool      `db:"is_active" json:"isActive"`
	MarkupParameters
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// MarkupTemplate: именованный переиспользуемый набор процентов.
type MarkupTemplate struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name" validate:"required,max=255"`
	Description string    `db:"description" json:"description"`
	IsDefault   bool      `db:"is_default" json:"isDefault"`
	MarkupParameters
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
