package repository

import "github.com/edievo/edsis-api/internal/domain/entity"

// DiscountRepository is the persistence port for master discount rules.
// Snapshots applied to products live on the product record, not here.
type DiscountRepository interface {
	Create(rule *entity.DiscountRule) error
	GetByID(id string) (*entity.DiscountRule, error)
	GetByName(name string) (*entity.DiscountRule, error)
	List() ([]*entity.DiscountRule, error)
	Update(rule *entity.DiscountRule) error
	Delete(id string) error
}
