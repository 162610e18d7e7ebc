package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountRule is a named percentage markdown managed by operators.
// StartDate/EndDate are optional bounds; a nil bound is unbounded.
type DiscountRule struct {
	ID        string
	Name      string
	Value     decimal.Decimal // percent, validated to (0, 100)
	StartDate *time.Time
	EndDate   *time.Time
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ActiveOn reports whether the rule may be assigned on the given day:
// the rule is enabled and the day falls inside its optional date window.
func (r DiscountRule) ActiveOn(day time.Time) bool {
	if !r.IsActive {
		return false
	}
	if r.StartDate != nil && day.Before(*r.StartDate) {
		return false
	}
	if r.EndDate != nil && day.After(*r.EndDate) {
		return false
	}
	return true
}

// DiscountSnapshot is the immutable copy of a rule's terms captured onto
// a product at assignment time. Later edits or deletion of the master
// rule never change an already-stored snapshot.
type DiscountSnapshot struct {
	RuleID string          `json:"rule_id"`
	Name   string          `json:"name"`
	Value  decimal.Decimal `json:"value"`
}
