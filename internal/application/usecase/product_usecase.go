package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/edievo/edsis-api/internal/application/dto"
	"github.com/edievo/edsis-api/internal/domain"
	"github.com/edievo/edsis-api/internal/domain/booking"
	"github.com/edievo/edsis-api/internal/domain/entity"
	"github.com/edievo/edsis-api/internal/domain/pricing"
	"github.com/edievo/edsis-api/internal/domain/repository"
	"github.com/edievo/edsis-api/internal/domain/sku"
)

// ProductUseCase catalog CRUD plus unit seeding. Stock counters are
// derived from units and never accepted from clients.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	unitRepo     repository.UnitRepository
	settingsRepo repository.SettingsRepository
	tx           TxRunner
	labels       LabelGenerator
}

// NewProductUseCase builds the use case.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	unitRepo repository.UnitRepository,
	settingsRepo repository.SettingsRepository,
	tx TxRunner,
	labels LabelGenerator,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		unitRepo:     unitRepo,
		settingsRepo: settingsRepo,
		tx:           tx,
		labels:       labels,
	}
}

// Create registers a product: normalizes brand/category, generates the
// system SKU with collision resolution, and seeds the initial serialized
// units in the same transaction.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Brand == "" || in.Category == "" || in.Collection == "" {
		return nil, domain.ErrInvalidInput
	}
	if !validCurrency(in.BaseCurrency) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		ID:               uuid.New().String(),
		Brand:            NormalizeBrand(in.Brand),
		Category:         NormalizeCategory(in.Category),
		Collection:       strings.TrimSpace(in.Collection),
		ManufacturerCode: in.ManufacturerCode,
		BaseCurrency:     in.BaseCurrency,
		RetailPriceEUR:   in.RetailPriceEUR,
		RetailPriceUSD:   in.RetailPriceUSD,
		RetailPriceIDR:   in.RetailPriceIDR,
		IsNotForSale:     in.IsNotForSale,
		IsUpcoming:       in.IsUpcoming,
		UpcomingETA:      in.UpcomingETA,
		Location:         in.Location,
		Detail:           in.Detail,
		Dimensions:       in.Dimensions,
		Finishing:        in.Finishing,
		ImageRef:         in.ImageRef,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err := uc.tx.Run(ctx, func(
		productRepo repository.ProductRepository,
		unitRepo repository.UnitRepository,
		_ repository.DiscountRepository,
	) error {
		codes, err := productRepo.ListCodes()
		if err != nil {
			return err
		}
		base := sku.Base(product.Brand, product.Category, product.Collection)
		product.Code = sku.ResolveCollision(base, codes)

		if err := productRepo.Create(product); err != nil {
			return err
		}
		return seedUnits(productRepo, unitRepo, product, in.InitialStock, entity.ActionItemCreated, "", now)
	})
	if err != nil {
		return nil, err
	}
	return uc.priced(product)
}

// GetByID fetches one product with derived prices.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return uc.priced(product)
}

// List returns the full catalog with derived prices. The catalog is
// small enough to price in one pass; rates are read once per call.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	rates, err := uc.settingsRepo.GetExchangeRates()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p, *rates))
	}
	return items, nil
}

// Update applies a partial update. Brand/category edits are normalized
// again; the SKU is never regenerated, so existing serials and QR labels
// stay valid.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Brand != nil {
		product.Brand = NormalizeBrand(*in.Brand)
	}
	if in.Category != nil {
		product.Category = NormalizeCategory(*in.Category)
	}
	if in.Collection != nil {
		product.Collection = strings.TrimSpace(*in.Collection)
	}
	if in.ManufacturerCode != nil {
		product.ManufacturerCode = *in.ManufacturerCode
	}
	if in.BaseCurrency != nil {
		if !validCurrency(*in.BaseCurrency) {
			return nil, domain.ErrInvalidInput
		}
		product.BaseCurrency = *in.BaseCurrency
	}
	if in.RetailPriceEUR != nil {
		product.RetailPriceEUR = *in.RetailPriceEUR
	}
	if in.RetailPriceUSD != nil {
		product.RetailPriceUSD = *in.RetailPriceUSD
	}
	if in.RetailPriceIDR != nil {
		product.RetailPriceIDR = *in.RetailPriceIDR
	}
	if in.IsNotForSale != nil {
		product.IsNotForSale = *in.IsNotForSale
	}
	if in.IsUpcoming != nil {
		product.IsUpcoming = *in.IsUpcoming
	}
	if in.UpcomingETA != nil {
		product.UpcomingETA = *in.UpcomingETA
	}
	if in.Location != nil {
		product.Location = *in.Location
	}
	if in.Detail != nil {
		product.Detail = *in.Detail
	}
	if in.Dimensions != nil {
		product.Dimensions = *in.Dimensions
	}
	if in.Finishing != nil {
		product.Finishing = *in.Finishing
	}
	if in.ImageRef != nil {
		product.ImageRef = *in.ImageRef
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return uc.priced(product)
}

// Delete removes a product and cascades to all its units in one
// transaction.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(
		productRepo repository.ProductRepository,
		unitRepo repository.UnitRepository,
		_ repository.DiscountRepository,
	) error {
		if _, err := productRepo.GetByID(id); err != nil {
			return err
		}
		if err := unitRepo.DeleteByProduct(id); err != nil {
			return err
		}
		return productRepo.Delete(id)
	})
}

// AddStock seeds additional units for an existing product, continuing
// its serial sequence, and recomputes the stock rollup.
func (uc *ProductUseCase) AddStock(ctx context.Context, id string, in dto.AddStockRequest) (*dto.ProductResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var product *entity.Product
	err := uc.tx.Run(ctx, func(
		productRepo repository.ProductRepository,
		unitRepo repository.UnitRepository,
		_ repository.DiscountRepository,
	) error {
		var err error
		product, err = productRepo.GetByID(id)
		if err != nil {
			return err
		}
		if in.Location != "" {
			product.Location = in.Location
		}
		return seedUnits(productRepo, unitRepo, product, in.Quantity, entity.ActionItemCreated, "", time.Now())
	})
	if err != nil {
		return nil, err
	}
	return uc.priced(product)
}

// Units lists a product's serialized units.
func (uc *ProductUseCase) Units(id string) ([]dto.UnitResponse, error) {
	if _, err := uc.productRepo.GetByID(id); err != nil {
		return nil, err
	}
	units, err := uc.unitRepo.ListByProduct(id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UnitResponse, 0, len(units))
	for _, u := range units {
		out = append(out, *toUnitResponse(u))
	}
	return out, nil
}

// Labels renders the printable QR label sheet for a product's units.
func (uc *ProductUseCase) Labels(id string) ([]byte, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	units, err := uc.unitRepo.ListByProduct(id)
	if err != nil {
		return nil, err
	}
	return uc.labels.UnitLabels(product, units)
}

// AssignDiscounts replaces the product's discount set with snapshots of
// the given rules, preserving request order. Each rule must exist, be
// active today, and carry a valid percentage.
func (uc *ProductUseCase) AssignDiscounts(ctx context.Context, id string, in dto.AssignDiscountsRequest) (*dto.ProductResponse, error) {
	var product *entity.Product
	err := uc.tx.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.UnitRepository,
		discountRepo repository.DiscountRepository,
	) error {
		var err error
		product, err = productRepo.GetByID(id)
		if err != nil {
			return err
		}
		now := time.Now()
		snapshots := make([]entity.DiscountSnapshot, 0, len(in.DiscountIDs))
		for _, ruleID := range in.DiscountIDs {
			rule, err := discountRepo.GetByID(ruleID)
			if err != nil {
				return err
			}
			if !rule.ActiveOn(now) {
				return domain.ErrInvalidInput
			}
			if err := pricing.ValidateDiscountValue(rule.Value); err != nil {
				return err
			}
			snapshots = append(snapshots, entity.DiscountSnapshot{
				RuleID: rule.ID,
				Name:   rule.Name,
				Value:  rule.Value,
			})
		}
		product.Discounts = snapshots
		return productRepo.UpdateDiscounts(id, snapshots)
	})
	if err != nil {
		return nil, err
	}
	return uc.priced(product)
}

// seedUnits creates count serialized units continuing the product's
// sequence, then refreshes the counters. Shared by create, add-stock and
// bulk import (which passes its batch id).
func seedUnits(
	productRepo repository.ProductRepository,
	unitRepo repository.UnitRepository,
	product *entity.Product,
	count int,
	action, batchID string,
	now time.Time,
) error {
	for i := 1; i <= count; i++ {
		seq := product.LastSequence + i
		unit := &entity.InventoryUnit{
			ID:              uuid.New().String(),
			ProductID:       product.ID,
			ProductName:     product.Brand + " - " + product.Collection,
			SerialCode:      sku.SerialCode(product.Code, seq),
			Status:          booking.InitialStatus(product.IsNotForSale),
			CurrentLocation: product.Location,
			HistoryLog: []entity.HistoryEntry{{
				Action:   action,
				BatchID:  batchID,
				Location: product.Location,
				At:       now,
			}},
			CreatedAt: now,
		}
		if err := unitRepo.Create(unit); err != nil {
			return err
		}
	}
	product.LastSequence += count
	if err := productRepo.UpdateLastSequence(product.ID, product.LastSequence); err != nil {
		return err
	}
	units, err := unitRepo.ListByProduct(product.ID)
	if err != nil {
		return err
	}
	total, booked, sold := booking.Recompute(units)
	product.TotalStock, product.BookedStock, product.SoldStock = total, booked, sold
	return productRepo.UpdateStockCounters(product.ID, total, booked, sold)
}

func (uc *ProductUseCase) priced(p *entity.Product) (*dto.ProductResponse, error) {
	rates, err := uc.settingsRepo.GetExchangeRates()
	if err != nil {
		return nil, err
	}
	return toProductResponse(p, *rates), nil
}

var titleCaser = cases.Title(language.English)

// NormalizeBrand upper-cases a brand so "slamp" and "Slamp" group
// together.
func NormalizeBrand(brand string) string {
	return strings.ToUpper(strings.TrimSpace(brand))
}

// NormalizeCategory title-cases a category for the same reason.
func NormalizeCategory(category string) string {
	return titleCaser.String(strings.ToLower(strings.TrimSpace(category)))
}

func validCurrency(c string) bool {
	switch c {
	case entity.CurrencyEUR, entity.CurrencyUSD, entity.CurrencyIDR:
		return true
	}
	return false
}

func toProductResponse(p *entity.Product, rates entity.ExchangeRates) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	quote := pricing.Derive(*p, rates)
	discounts := make([]dto.DiscountSnapshotResponse, 0, len(p.Discounts))
	for _, d := range p.Discounts {
		discounts = append(discounts, dto.DiscountSnapshotResponse{
			RuleID: d.RuleID,
			Name:   d.Name,
			Value:  d.Value,
		})
	}
	return &dto.ProductResponse{
		ID:               p.ID,
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
		Discounts:        discounts,
		TotalStock:       p.TotalStock,
		BookedStock:      p.BookedStock,
		SoldStock:        p.SoldStock,
		AvailableStock:   p.AvailableStock(),
		IsNotForSale:     p.IsNotForSale,
		IsUpcoming:       p.IsUpcoming,
		UpcomingETA:      p.UpcomingETA,
		Location:         p.Location,
		Detail:           p.Detail,
		Dimensions:       p.Dimensions,
		Finishing:        p.Finishing,
		ImageRef:         p.ImageRef,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func toUnitResponse(u *entity.InventoryUnit) *dto.UnitResponse {
	if u == nil {
		return nil
	}
	history := make([]dto.HistoryEntryResponse, 0, len(u.HistoryLog))
	for _, h := range u.HistoryLog {
		history = append(history, dto.HistoryEntryResponse{
			Action:   h.Action,
			BatchID:  h.BatchID,
			Location: h.Location,
			At:       h.At,
			Note:     h.Note,
		})
	}
	resp := &dto.UnitResponse{
		ID:              u.ID,
		ProductID:       u.ProductID,
		ProductName:     u.ProductName,
		SerialCode:      u.SerialCode,
		Status:          string(u.Status),
		CurrentLocation: u.CurrentLocation,
		SoldAt:          u.SoldAt,
		PONumber:        u.PONumber,
		HistoryLog:      history,
		CreatedAt:       u.CreatedAt,
	}
	if u.Booking != nil {
		resp.Booking = &dto.BookingResponse{
			BookedBy:      u.Booking.BookedBy,
			BookedByStaff: u.Booking.BookedByStaff,
			BookedAt:      u.Booking.BookedAt,
			ExpiresAt:     u.Booking.ExpiresAt,
			Notes:         u.Booking.Notes,
		}
	}
	return resp
}
