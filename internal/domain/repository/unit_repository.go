package repository

import "github.com/edievo/edsis-api/internal/domain/entity"

// UnitRepository is the persistence port for inventory units.
//
// UpdateStatus is the conditional-update primitive the booking state
// machine relies on: the write must only apply while the stored status
// still equals expected (single UPDATE guarded by current status), and
// must return domain.ErrConflict when the guard misses. This is what
// makes two concurrent book() calls mutually exclusive.
type UnitRepository interface {
	Create(unit *entity.InventoryUnit) error
	GetByID(id string) (*entity.InventoryUnit, error)
	ListByProduct(productID string) ([]*entity.InventoryUnit, error)
	ListByStatus(status entity.UnitStatus) ([]*entity.InventoryUnit, error)
	Update(unit *entity.InventoryUnit) error
	UpdateStatus(id string, expected entity.UnitStatus, unit *entity.InventoryUnit) error
	DeleteByProduct(productID string) error
}
