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

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo SettingsRepository over PostgreSQL. Exchange rates live
// in a single fixed row; the upsert keeps it that way.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository builds the persistence adapter.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// GetExchangeRates reads the current rate record.
func (r *SettingsRepo) GetExchangeRates() (*entity.ExchangeRates, error) {
	var rates entity.ExchangeRates
	err := r.q.QueryRow(context.Background(),
		`SELECT eur_rate, usd_rate, updated_at FROM settings WHERE id = 'exchange_rates'`,
	).Scan(&rates.EURRate, &rates.USDRate, &rates.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get exchange rates: %w", err)
	}
	return &rates, nil
}

// UpdateExchangeRates upserts the rate record.
func (r *SettingsRepo) UpdateExchangeRates(rates *entity.ExchangeRates) error {
	query := `
		INSERT INTO settings (id, eur_rate, usd_rate, updated_at)
		VALUES ('exchange_rates', $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET eur_rate = $1, usd_rate = $2, updated_at = $3`
	_, err := r.q.Exec(context.Background(), query, rates.EURRate, rates.USDRate, rates.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update exchange rates: %w", err)
	}
	return nil
}
