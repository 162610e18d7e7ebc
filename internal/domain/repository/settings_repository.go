package repository

import "github.com/edievo/edsis-api/internal/domain/entity"

// SettingsRepository stores the process-wide exchange rate record.
type SettingsRepository interface {
	GetExchangeRates() (*entity.ExchangeRates, error)
	UpdateExchangeRates(rates *entity.ExchangeRates) error
}
