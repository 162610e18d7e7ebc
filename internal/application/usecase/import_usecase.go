package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/edievo/edsis-api/internal/application/dto"
	"github.com/edievo/edsis-api/internal/domain"
	"github.com/edievo/edsis-api/internal/domain/entity"
	"github.com/edievo/edsis-api/internal/domain/pricing"
	"github.com/edievo/edsis-api/internal/domain/repository"
	"github.com/edievo/edsis-api/internal/domain/sku"
)

// ImportUseCase bulk-creates products and their units from a
// spreadsheet. The whole batch commits in one transaction; individual
// bad rows are reported and skipped, they never abort the batch.
type ImportUseCase struct {
	parser WorkbookParser
	tx     TxRunner
}

// NewImportUseCase builds the use case.
func NewImportUseCase(parser WorkbookParser, tx TxRunner) *ImportUseCase {
	return &ImportUseCase{parser: parser, tx: tx}
}

// Run parses the workbook and creates one product per valid row. Rows
// naming the same discount reuse one rule per batch instead of creating
// duplicates; an existing rule with that name is reused as-is.
func (uc *ImportUseCase) Run(ctx context.Context, data []byte) (*dto.ImportResult, error) {
	rows, err := uc.parser.ParseImport(data)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if len(rows) == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	result := &dto.ImportResult{BatchID: newBatchID(now)}

	err = uc.tx.Run(ctx, func(
		productRepo repository.ProductRepository,
		unitRepo repository.UnitRepository,
		discountRepo repository.DiscountRepository,
	) error {
		codes, err := productRepo.ListCodes()
		if err != nil {
			return err
		}
		// One rule per discount name for the whole batch.
		sessionRules := make(map[string]*entity.DiscountRule)

		for i, row := range rows {
			if reason := validateRow(row); reason != "" {
				result.Skipped++
				result.RowErrors = append(result.RowErrors, dto.ImportRowError{Row: i + 2, Reason: reason})
				continue
			}

			product := productFromRow(row, now)
			base := sku.Base(product.Brand, product.Category, product.Collection)
			product.Code = sku.ResolveCollision(base, codes)
			codes[product.Code] = struct{}{}

			if row.DiscountName != "" {
				rule, err := resolveBatchRule(discountRepo, sessionRules, row, now)
				if err != nil {
					result.Skipped++
					result.RowErrors = append(result.RowErrors, dto.ImportRowError{Row: i + 2, Reason: err.Error()})
					continue
				}
				product.Discounts = []entity.DiscountSnapshot{{RuleID: rule.ID, Name: rule.Name, Value: rule.Value}}
			}

			if err := productRepo.Create(product); err != nil {
				return err
			}
			if err := seedUnits(productRepo, unitRepo, product, row.Quantity, entity.ActionBulkImport, result.BatchID, now); err != nil {
				return err
			}
			result.Created++
			result.UnitsSeeded += row.Quantity
		}
		if result.Created == 0 {
			return domain.ErrInvalidInput
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Template returns the empty import workbook.
func (uc *ImportUseCase) Template() ([]byte, error) {
	return uc.parser.ImportTemplate()
}

func validateRow(row dto.ImportRow) string {
	switch {
	case row.Brand == "" || row.Category == "" || row.Collection == "":
		return "brand, category and collection are required"
	case !validCurrency(row.BaseCurrency):
		return "unknown base currency " + row.BaseCurrency
	case row.Quantity < 0:
		return "negative quantity"
	}
	return ""
}

func productFromRow(row dto.ImportRow, now time.Time) *entity.Product {
	product := &entity.Product{
		ID:               uuid.New().String(),
		Brand:            NormalizeBrand(row.Brand),
		Category:         NormalizeCategory(row.Category),
		Collection:       strings.TrimSpace(row.Collection),
		ManufacturerCode: row.ManufacturerCode,
		BaseCurrency:     row.BaseCurrency,
		Location:         row.Location,
		Detail:           row.Detail,
		Dimensions:       row.Dimensions,
		Finishing:        row.Finishing,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	switch row.BaseCurrency {
	case entity.CurrencyEUR:
		product.RetailPriceEUR = row.RetailPrice
	case entity.CurrencyUSD:
		product.RetailPriceUSD = row.RetailPrice
	default:
		product.RetailPriceIDR = row.RetailPrice
	}
	return product
}

func resolveBatchRule(
	discountRepo repository.DiscountRepository,
	sessionRules map[string]*entity.DiscountRule,
	row dto.ImportRow,
	now time.Time,
) (*entity.DiscountRule, error) {
	if rule, ok := sessionRules[row.DiscountName]; ok {
		return rule, nil
	}
	rule, err := discountRepo.GetByName(row.DiscountName)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if rule == nil {
		if err := pricing.ValidateDiscountValue(row.DiscountValue); err != nil {
			return nil, fmt.Errorf("discount %q: value must be between 0 and 100", row.DiscountName)
		}
		rule = &entity.DiscountRule{
			ID:        uuid.New().String(),
			Name:      row.DiscountName,
			Value:     row.DiscountValue,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := discountRepo.Create(rule); err != nil {
			return nil, err
		}
	}
	sessionRules[row.DiscountName] = rule
	return rule, nil
}

// newBatchID stamps a batch as IMPORT-YYYYMMDD-HHMM-XXXX; the random
// tail keeps two imports in the same minute distinct.
func newBatchID(now time.Time) string {
	tail := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("IMPORT-%s-%s", now.Format("20060102-1504"), tail)
}
