package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/edievo/edsis-api/internal/domain"
	"github.com/edievo/edsis-api/internal/domain/entity"
	"github.com/edievo/edsis-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, brand, category, collection, code, manufacturer_code, base_currency,
	retail_price_eur, retail_price_usd, retail_price_idr, discounts,
	total_stock, booked_stock, sold_stock, is_not_for_sale, is_upcoming, upcoming_eta,
	location, detail, dimensions, finishing, image_ref, last_sequence, created_at, updated_at`

// ProductRepo ProductRepository over PostgreSQL, usable with pool or tx.
// Discount snapshots live in a jsonb column: they are immutable copies,
// never joined back to the rules table.
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the persistence adapter. Pass a pool or a
// tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persists a new product.
func (r *ProductRepo) Create(product *entity.Product) error {
	discounts, err := json.Marshal(product.Discounts)
	if err != nil {
		return fmt.Errorf("marshal discounts: %w", err)
	}
	query := `
		INSERT INTO products (id, brand, category, collection, code, manufacturer_code, base_currency,
			retail_price_eur, retail_price_usd, retail_price_idr, discounts,
			total_stock, booked_stock, sold_stock, is_not_for_sale, is_upcoming, upcoming_eta,
			location, detail, dimensions, finishing, image_ref, last_sequence, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)`
	_, err = r.q.Exec(context.Background(), query,
		product.ID, product.Brand, product.Category, product.Collection, product.Code,
		product.ManufacturerCode, product.BaseCurrency,
		product.RetailPriceEUR, product.RetailPriceUSD, product.RetailPriceIDR, discounts,
		product.TotalStock, product.BookedStock, product.SoldStock,
		product.IsNotForSale, product.IsUpcoming, product.UpcomingETA,
		product.Location, product.Detail, product.Dimensions, product.Finishing, product.ImageRef,
		product.LastSequence, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID fetches a product by ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List returns the whole catalog ordered by brand and collection.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY brand, collection`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ListCodes returns every assigned SKU, for collision resolution.
func (r *ProductRepo) ListCodes() (map[string]struct{}, error) {
	rows, err := r.q.Query(context.Background(), `SELECT code FROM products`)
	if err != nil {
		return nil, fmt.Errorf("list codes: %w", err)
	}
	defer rows.Close()
	codes := make(map[string]struct{})
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan code: %w", err)
		}
		codes[code] = struct{}{}
	}
	return codes, rows.Err()
}

// Update rewrites the catalog fields. Stock counters, discounts and the
// serial sequence have their own narrower updates.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET brand = $2, category = $3, collection = $4, manufacturer_code = $5,
			base_currency = $6, retail_price_eur = $7, retail_price_usd = $8, retail_price_idr = $9,
			is_not_for_sale = $10, is_upcoming = $11, upcoming_eta = $12,
			location = $13, detail = $14, dimensions = $15, finishing = $16, image_ref = $17, updated_at = $18
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Brand, product.Category, product.Collection, product.ManufacturerCode,
		product.BaseCurrency, product.RetailPriceEUR, product.RetailPriceUSD, product.RetailPriceIDR,
		product.IsNotForSale, product.IsUpcoming, product.UpcomingETA,
		product.Location, product.Detail, product.Dimensions, product.Finishing, product.ImageRef,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateDiscounts replaces the snapshot set.
func (r *ProductRepo) UpdateDiscounts(id string, discounts []entity.DiscountSnapshot) error {
	payload, err := json.Marshal(discounts)
	if err != nil {
		return fmt.Errorf("marshal discounts: %w", err)
	}
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET discounts = $2, updated_at = now() WHERE id = $1`, id, payload)
	if err != nil {
		return fmt.Errorf("update discounts: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStockCounters writes the derived rollup.
func (r *ProductRepo) UpdateStockCounters(id string, total, booked, sold int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET total_stock = $2, booked_stock = $3, sold_stock = $4, updated_at = now() WHERE id = $1`,
		id, total, booked, sold)
	if err != nil {
		return fmt.Errorf("update stock counters: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateLastSequence advances the serial counter.
func (r *ProductRepo) UpdateLastSequence(id string, lastSequence int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET last_sequence = $2, updated_at = now() WHERE id = $1`, id, lastSequence)
	if err != nil {
		return fmt.Errorf("update last sequence: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a product. Units are deleted by the caller in the same
// transaction.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var discounts []byte
	err := row.Scan(
		&p.ID, &p.Brand, &p.Category, &p.Collection, &p.Code, &p.ManufacturerCode, &p.BaseCurrency,
		&p.RetailPriceEUR, &p.RetailPriceUSD, &p.RetailPriceIDR, &discounts,
		&p.TotalStock, &p.BookedStock, &p.SoldStock, &p.IsNotForSale, &p.IsUpcoming, &p.UpcomingETA,
		&p.Location, &p.Detail, &p.Dimensions, &p.Finishing, &p.ImageRef,
		&p.LastSequence, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(discounts) > 0 {
		if err := json.Unmarshal(discounts, &p.Discounts); err != nil {
			return nil, fmt.Errorf("unmarshal discounts: %w", err)
		}
	}
	return &p, nil
}
