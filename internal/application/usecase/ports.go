package usecase

import (
	"context"

	"github.com/edievo/edsis-api/internal/application/dto"
	"github.com/edievo/edsis-api/internal/domain/entity"
	"github.com/edievo/edsis-api/internal/domain/repository"
)

// TxRunner runs a function inside a database transaction, passing
// repositories bound to that transaction. Product creation, stock
// seeding, bulk import and cascade deletion all need the product row and
// its units to commit or roll back together.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		unitRepo repository.UnitRepository,
		discountRepo repository.DiscountRepository,
	) error) error
}

// LabelGenerator renders printable QR labels for a product's units.
type LabelGenerator interface {
	UnitLabels(product *entity.Product, units []*entity.InventoryUnit) ([]byte, error)
}

// WorkbookGenerator renders the catalog export spreadsheet.
type WorkbookGenerator interface {
	CatalogWorkbook(rows []dto.ExportRow) ([]byte, error)
}

// WorkbookParser reads a bulk import spreadsheet into rows and renders
// the blank template operators fill in.
type WorkbookParser interface {
	ParseImport(data []byte) ([]dto.ImportRow, error)
	ImportTemplate() ([]byte, error)
}

// EventPublisher emits unit lifecycle events to the message bus. A
// publish failure is logged by implementations and never fails the
// originating operation.
type EventPublisher interface {
	PublishUnitEvent(ctx context.Context, eventType string, unit *entity.InventoryUnit) error
}
