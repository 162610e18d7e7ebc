package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/edievo/edsis-api/internal/application/dto"
	"github.com/edievo/edsis-api/internal/domain"
	"github.com/edievo/edsis-api/internal/domain/entity"
	"github.com/edievo/edsis-api/internal/domain/repository"
)

// RatesUseCase reads and updates the process-wide exchange rates.
type RatesUseCase struct {
	repo repository.SettingsRepository
}

// NewRatesUseCase builds the use case.
func NewRatesUseCase(repo repository.SettingsRepository) *RatesUseCase {
	return &RatesUseCase{repo: repo}
}

// Get returns the current rates with their freshness timestamp.
func (uc *RatesUseCase) Get() (*dto.ExchangeRatesResponse, error) {
	rates, err := uc.repo.GetExchangeRates()
	if err != nil {
		return nil, err
	}
	return toRatesResponse(rates), nil
}

// Update replaces both rates. Non-positive rates are data entry errors.
// Derived prices change immediately; nothing stored is rewritten.
func (uc *RatesUseCase) Update(in dto.UpdateRatesRequest) (*dto.ExchangeRatesResponse, error) {
	if in.EURRate.LessThanOrEqual(decimal.Zero) || in.USDRate.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	rates := &entity.ExchangeRates{
		EURRate:   in.EURRate,
		USDRate:   in.USDRate,
		UpdatedAt: time.Now(),
	}
	if err := uc.repo.UpdateExchangeRates(rates); err != nil {
		return nil, err
	}
	return toRatesResponse(rates), nil
}

func toRatesResponse(r *entity.ExchangeRates) *dto.ExchangeRatesResponse {
	if r == nil {
		return nil
	}
	return &dto.ExchangeRatesResponse{
		EURRate:   r.EURRate,
		USDRate:   r.USDRate,
		UpdatedAt: r.UpdatedAt,
	}
}
