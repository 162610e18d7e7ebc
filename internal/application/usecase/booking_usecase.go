package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/edievo/edsis-api/internal/application/dto"
	"github.com/edievo/edsis-api/internal/domain"
	"github.com/edievo/edsis-api/internal/domain/booking"
	"github.com/edievo/edsis-api/internal/domain/entity"
	"github.com/edievo/edsis-api/internal/domain/repository"
)

// Unit lifecycle event types.
const (
	EventUnitBooked       = "unit.booked"
	EventUnitReleased     = "unit.released"
	EventUnitAutoReleased = "unit.auto_released"
	EventUnitSold         = "unit.sold"
	EventUnitRelocated    = "unit.relocated"
)

// BookingUseCase drives the unit lifecycle. Every transition is
// computed on a value copy and persisted with a conditional update
// guarded by the status it was computed from, so two concurrent holds on
// the same unit cannot both win.
type BookingUseCase struct {
	unitRepo    repository.UnitRepository
	productRepo repository.ProductRepository
	events      EventPublisher
}

// NewBookingUseCase builds the use case. events may be nil when no
// broker is configured.
func NewBookingUseCase(unitRepo repository.UnitRepository, productRepo repository.ProductRepository, events EventPublisher) *BookingUseCase {
	return &BookingUseCase{unitRepo: unitRepo, productRepo: productRepo, events: events}
}

// Book places a hold on an available unit for a client. The requested
// expiry is pinned to the end of its day.
func (uc *BookingUseCase) Book(ctx context.Context, unitID, staff string, in dto.BookUnitRequest) (*dto.UnitResponse, error) {
	unit, err := uc.unitRepo.GetByID(unitID)
	if err != nil {
		return nil, err
	}
	updated, err := booking.Book(*unit, booking.BookInput{
		BookedBy:  in.BookedBy,
		Staff:     staff,
		ExpiresAt: booking.NormalizeExpiry(in.ExpiresAt),
		Notes:     in.Notes,
	}, time.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.persist(ctx, unit.Status, &updated, EventUnitBooked); err != nil {
		return nil, err
	}
	return toUnitResponse(&updated), nil
}

// Release clears a hold manually.
func (uc *BookingUseCase) Release(ctx context.Context, unitID string) (*dto.UnitResponse, error) {
	unit, err := uc.unitRepo.GetByID(unitID)
	if err != nil {
		return nil, err
	}
	updated, err := booking.Release(*unit, time.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.persist(ctx, unit.Status, &updated, EventUnitReleased); err != nil {
		return nil, err
	}
	return toUnitResponse(&updated), nil
}

// Sell marks a unit sold, from available or through an existing hold.
func (uc *BookingUseCase) Sell(ctx context.Context, unitID string, in dto.SellUnitRequest) (*dto.UnitResponse, error) {
	unit, err := uc.unitRepo.GetByID(unitID)
	if err != nil {
		return nil, err
	}
	updated, err := booking.Sell(*unit, in.PONumber, time.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.persist(ctx, unit.Status, &updated, EventUnitSold); err != nil {
		return nil, err
	}
	return toUnitResponse(&updated), nil
}

// Relocate moves a unit to a new location, in any status.
func (uc *BookingUseCase) Relocate(ctx context.Context, unitID string, in dto.RelocateUnitRequest) (*dto.UnitResponse, error) {
	unit, err := uc.unitRepo.GetByID(unitID)
	if err != nil {
		return nil, err
	}
	updated, err := booking.Relocate(*unit, in.Location, in.Note, time.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.persist(ctx, unit.Status, &updated, EventUnitRelocated); err != nil {
		return nil, err
	}
	return toUnitResponse(&updated), nil
}

// ActiveBookings lists every live hold, flagged when already past
// expiry (a sweep has not caught it yet).
func (uc *BookingUseCase) ActiveBookings() ([]dto.ActiveBookingResponse, error) {
	units, err := uc.unitRepo.ListByStatus(entity.StatusBooked)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := make([]dto.ActiveBookingResponse, 0, len(units))
	for _, u := range units {
		if u.Booking == nil {
			continue
		}
		out = append(out, dto.ActiveBookingResponse{
			UnitID:        u.ID,
			ProductID:     u.ProductID,
			ProductName:   u.ProductName,
			SerialCode:    u.SerialCode,
			BookedBy:      u.Booking.BookedBy,
			BookedByStaff: u.Booking.BookedByStaff,
			BookedAt:      u.Booking.BookedAt,
			ExpiresAt:     u.Booking.ExpiresAt,
			Expired:       booking.IsExpired(*u, now),
			Notes:         u.Booking.Notes,
		})
	}
	return out, nil
}

// SweepExpired releases every booked unit whose hold has lapsed. A unit
// that changed status between the read and the conditional write is
// skipped, not failed: the next sweep sees its final state. A write
// failure on one unit is recorded and the loop moves on; the unit stays
// booked and the next run retries it.
func (uc *BookingUseCase) SweepExpired(ctx context.Context) (*dto.SweepResponse, error) {
	units, err := uc.unitRepo.ListByStatus(entity.StatusBooked)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	released := 0
	var failures []string
	touched := make(map[string]struct{})
	for _, u := range units {
		if !booking.IsExpired(*u, now) {
			continue
		}
		updated, err := booking.Expire(*u, now)
		if err != nil {
			continue
		}
		err = uc.unitRepo.UpdateStatus(u.ID, entity.StatusBooked, &updated)
		if errors.Is(err, domain.ErrConflict) {
			continue
		}
		if err != nil {
			failures = append(failures, fmt.Sprintf("unit %s: %v", u.ID, err))
			continue
		}
		released++
		touched[u.ProductID] = struct{}{}
		uc.publish(ctx, EventUnitAutoReleased, &updated)
	}
	for productID := range touched {
		if err := uc.recomputeCounters(productID); err != nil {
			failures = append(failures, fmt.Sprintf("counters %s: %v", productID, err))
		}
	}
	return &dto.SweepResponse{
		Checked:  len(units),
		Released: released,
		Failed:   len(failures),
		Errors:   failures,
		RanAt:    now,
	}, nil
}

// persist writes a computed transition with the CAS guard, refreshes the
// product counters and emits the lifecycle event. A guard miss surfaces
// as ErrInvalidTransition: the caller lost the race and the unit is no
// longer in the state the transition assumed.
func (uc *BookingUseCase) persist(ctx context.Context, observed entity.UnitStatus, unit *entity.InventoryUnit, eventType string) error {
	err := uc.unitRepo.UpdateStatus(unit.ID, observed, unit)
	if errors.Is(err, domain.ErrConflict) {
		return domain.ErrInvalidTransition
	}
	if err != nil {
		return err
	}
	if err := uc.recomputeCounters(unit.ProductID); err != nil {
		return err
	}
	uc.publish(ctx, eventType, unit)
	return nil
}

func (uc *BookingUseCase) recomputeCounters(productID string) error {
	units, err := uc.unitRepo.ListByProduct(productID)
	if err != nil {
		return err
	}
	total, booked, sold := booking.Recompute(units)
	return uc.productRepo.UpdateStockCounters(productID, total, booked, sold)
}

func (uc *BookingUseCase) publish(ctx context.Context, eventType string, unit *entity.InventoryUnit) {
	if uc.events == nil {
		return
	}
	_ = uc.events.PublishUnitEvent(ctx, eventType, unit)
}
