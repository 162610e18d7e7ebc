package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/edievo/edsis-api/internal/application/dto"
	"github.com/edievo/edsis-api/internal/domain"
	"github.com/edievo/edsis-api/internal/domain/entity"
	"github.com/edievo/edsis-api/internal/domain/pricing"
	"github.com/edievo/edsis-api/internal/domain/repository"
)

// DiscountUseCase CRUD over master discount rules. Products hold
// snapshots, so nothing here ever rewrites an applied discount.
type DiscountUseCase struct {
	repo repository.DiscountRepository
}

// NewDiscountUseCase builds the use case.
func NewDiscountUseCase(repo repository.DiscountRepository) *DiscountUseCase {
	return &DiscountUseCase{repo: repo}
}

// Create registers a rule. Names are unique; the percentage must fall
// strictly between 0 and 100.
func (uc *DiscountUseCase) Create(in dto.CreateDiscountRequest) (*dto.DiscountResponse, error) {
	if err := pricing.ValidateDiscountValue(in.Value); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	now := time.Now()
	rule := &entity.DiscountRule{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Value:     in.Value,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(rule); err != nil {
		return nil, err
	}
	return toDiscountResponse(rule), nil
}

// GetByID fetches one rule.
func (uc *DiscountUseCase) GetByID(id string) (*dto.DiscountResponse, error) {
	rule, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toDiscountResponse(rule), nil
}

// List returns every rule.
func (uc *DiscountUseCase) List() ([]dto.DiscountResponse, error) {
	rules, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.DiscountResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, *toDiscountResponse(r))
	}
	return out, nil
}

// Update edits a rule's master record. Snapshots already applied to
// products keep their captured terms.
func (uc *DiscountUseCase) Update(id string, in dto.UpdateDiscountRequest) (*dto.DiscountResponse, error) {
	rule, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil && *in.Name != rule.Name {
		existing, err := uc.repo.GetByName(*in.Name)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		rule.Name = *in.Name
	}
	if in.Value != nil {
		if err := pricing.ValidateDiscountValue(*in.Value); err != nil {
			return nil, err
		}
		rule.Value = *in.Value
	}
	if in.StartDate != nil {
		rule.StartDate = in.StartDate
	}
	if in.EndDate != nil {
		rule.EndDate = in.EndDate
	}
	if in.IsActive != nil {
		rule.IsActive = *in.IsActive
	}
	rule.UpdatedAt = time.Now()
	if err := uc.repo.Update(rule); err != nil {
		return nil, err
	}
	return toDiscountResponse(rule), nil
}

// Delete removes a master rule. Products that snapshotted it keep their
// markdown until it is unassigned.
func (uc *DiscountUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toDiscountResponse(r *entity.DiscountRule) *dto.DiscountResponse {
	if r == nil {
		return nil
	}
	return &dto.DiscountResponse{
		ID:        r.ID,
		Name:      r.Name,
		Value:     r.Value,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
