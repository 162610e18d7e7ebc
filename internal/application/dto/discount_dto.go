package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDiscountRequest input to create a master discount rule. Value is
// a percentage and must fall strictly between 0 and 100.
type CreateDiscountRequest struct {
	Name      string          `json:"name" validate:"required,min=1,max=100"`
	Value     decimal.Decimal `json:"value" validate:"required"`
	StartDate *time.Time      `json:"start_date"`
	EndDate   *time.Time      `json:"end_date"`
	IsActive  *bool           `json:"is_active"`
}

// UpdateDiscountRequest partial update of a rule. Editing a rule never
// rewrites snapshots already applied to products.
type UpdateDiscountRequest struct {
	Name      *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Value     *decimal.Decimal `json:"value"`
	StartDate *time.Time       `json:"start_date"`
	EndDate   *time.Time       `json:"end_date"`
	IsActive  *bool            `json:"is_active"`
}

// DiscountResponse master rule output.
type DiscountResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Value     decimal.Decimal `json:"value"`
	StartDate *time.Time      `json:"start_date,omitempty"`
	EndDate   *time.Time      `json:"end_date,omitempty"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
