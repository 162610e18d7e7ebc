package usecase

import (
	"strings"

	"github.com/edievo/edsis-api/internal/application/dto"
	"github.com/edievo/edsis-api/internal/domain/entity"
	"github.com/edievo/edsis-api/internal/domain/pricing"
	"github.com/edievo/edsis-api/internal/domain/repository"
)

// ExportUseCase renders the full catalog as a spreadsheet with derived
// prices and the stock rollup.
type ExportUseCase struct {
	productRepo  repository.ProductRepository
	settingsRepo repository.SettingsRepository
	workbook     WorkbookGenerator
}

// NewExportUseCase builds the use case.
func NewExportUseCase(productRepo repository.ProductRepository, settingsRepo repository.SettingsRepository, workbook WorkbookGenerator) *ExportUseCase {
	return &ExportUseCase{productRepo: productRepo, settingsRepo: settingsRepo, workbook: workbook}
}

// Catalog builds the export workbook bytes.
func (uc *ExportUseCase) Catalog() ([]byte, error) {
	list, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	rates, err := uc.settingsRepo.GetExchangeRates()
	if err != nil {
		return nil, err
	}
	rows := make([]dto.ExportRow, 0, len(list))
	for _, p := range list {
		quote := pricing.Derive(*p, *rates)
		rows = append(rows, dto.ExportRow{
			Brand:            p.Brand,
			Category:         p.Category,
			Collection:       p.Collection,
			Code:             p.Code,
			ManufacturerCode: p.ManufacturerCode,
			BaseCurrency:     p.BaseCurrency,
			RetailPriceEUR:   p.RetailPriceEUR,
			RetailPriceUSD:   p.RetailPriceUSD,
			RetailPriceIDR:   quote.RetailIDR,
			NettPriceIDR:     quote.NettIDR,
			Discounts:        discountLabel(p.Discounts),
			TotalStock:       p.TotalStock,
			BookedStock:      p.BookedStock,
			SoldStock:        p.SoldStock,
			AvailableStock:   p.AvailableStock(),
			Location:         p.Location,
		})
	}
	return uc.workbook.CatalogWorkbook(rows)
}

func discountLabel(discounts []entity.DiscountSnapshot) string {
	if len(discounts) == 0 {
		return ""
	}
	parts := make([]string, 0, len(discounts))
	for _, d := range discounts {
		parts = append(parts, d.Name+" "+d.Value.String()+"%")
	}
	return strings.Join(parts, " + ")
}
