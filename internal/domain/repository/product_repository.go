package repository

import "github.com/edievo/edsis-api/internal/domain/entity"

// ProductRepository is the persistence port for catalog products.
// Implementations are usable with a pool or a transaction.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	ListCodes() (map[string]struct{}, error)
	Update(product *entity.Product) error
	UpdateDiscounts(id string, discounts []entity.DiscountSnapshot) error
	UpdateStockCounters(id string, total, booked, sold int) error
	UpdateLastSequence(id string, lastSequence int) error
	Delete(id string) error
}
