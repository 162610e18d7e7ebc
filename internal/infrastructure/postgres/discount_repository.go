package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/edievo/edsis-api/internal/domain"
	"github.com/edievo/edsis-api/internal/domain/entity"
	"github.com/edievo/edsis-api/internal/domain/repository"
)

var _ repository.DiscountRepository = (*DiscountRepo)(nil)

const discountColumns = `id, name, value, start_date, end_date, is_active, created_at, updated_at`

// DiscountRepo DiscountRepository over PostgreSQL.
type DiscountRepo struct {
	q Querier
}

// NewDiscountRepository builds the persistence adapter. Pass a pool or
// a tx (Querier).
func NewDiscountRepository(q Querier) *DiscountRepo {
	return &DiscountRepo{q: q}
}

// Create persists a new rule. Names carry a unique constraint.
func (r *DiscountRepo) Create(rule *entity.DiscountRule) error {
	query := `
		INSERT INTO discount_rules (id, name, value, start_date, end_date, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		rule.ID, rule.Name, rule.Value, rule.StartDate, rule.EndDate, rule.IsActive,
		rule.CreatedAt, rule.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert discount rule: %w", err)
	}
	return nil
}

// GetByID fetches a rule by ID.
func (r *DiscountRepo) GetByID(id string) (*entity.DiscountRule, error) {
	query := `SELECT ` + discountColumns + ` FROM discount_rules WHERE id = $1`
	return r.get(query, id)
}

// GetByName fetches a rule by its unique name.
func (r *DiscountRepo) GetByName(name string) (*entity.DiscountRule, error) {
	query := `SELECT ` + discountColumns + ` FROM discount_rules WHERE name = $1`
	return r.get(query, name)
}

// List returns every rule, newest first.
func (r *DiscountRepo) List() ([]*entity.DiscountRule, error) {
	query := `SELECT ` + discountColumns + ` FROM discount_rules ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list discount rules: %w", err)
	}
	defer rows.Close()
	var list []*entity.DiscountRule
	for rows.Next() {
		var rule entity.DiscountRule
		if err := rows.Scan(&rule.ID, &rule.Name, &rule.Value, &rule.StartDate, &rule.EndDate,
			&rule.IsActive, &rule.CreatedAt, &rule.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan discount rule: %w", err)
		}
		list = append(list, &rule)
	}
	return list, rows.Err()
}

// Update rewrites a rule's master record.
func (r *DiscountRepo) Update(rule *entity.DiscountRule) error {
	query := `
		UPDATE discount_rules SET name = $2, value = $3, start_date = $4, end_date = $5,
			is_active = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		rule.ID, rule.Name, rule.Value, rule.StartDate, rule.EndDate, rule.IsActive, rule.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update discount rule: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a rule. Applied snapshots keep their copies.
func (r *DiscountRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM discount_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete discount rule: %w", err)
	}
	return nil
}

func (r *DiscountRepo) get(query string, arg any) (*entity.DiscountRule, error) {
	var rule entity.DiscountRule
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&rule.ID, &rule.Name, &rule.Value, &rule.StartDate, &rule.EndDate,
		&rule.IsActive, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get discount rule: %w", err)
	}
	return &rule, nil
}
