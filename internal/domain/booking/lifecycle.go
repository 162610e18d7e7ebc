// Package booking is the per-unit lifecycle state machine. Transitions
// operate on value copies and return the mutated unit; persisting the
// result atomically (conditional update guarded by the status the
// transition was computed from) is the caller's responsibility.
package booking

import (
	"fmt"
	"time"

	"github.com/edievo/edsis-api/internal/domain"
	"github.com/edievo/edsis-api/internal/domain/entity"
)

// BookInput carries the hold details for Book.
type BookInput struct {
	BookedBy  string // client name, required
	Staff     string // operator
	ExpiresAt time.Time
	Notes     string
}

// InitialStatus is the status for a newly seeded unit.
func InitialStatus(productNotForSale bool) entity.UnitStatus {
	if productNotForSale {
		return entity.StatusNotForSale
	}
	return entity.StatusAvailable
}

// Book places a hold on an AVAILABLE unit. Any other current status is a
// hard failure: no queueing, no waitlist.
func Book(u entity.InventoryUnit, in BookInput, now time.Time) (entity.InventoryUnit, error) {
	if in.BookedBy == "" || in.ExpiresAt.IsZero() {
		return u, domain.ErrInvalidInput
	}
	if u.Status != entity.StatusAvailable {
		return u, domain.ErrInvalidTransition
	}
	u.Status = entity.StatusBooked
	u.Booking = &entity.Booking{
		BookedBy:      in.BookedBy,
		BookedByStaff: in.Staff,
		BookedAt:      now,
		ExpiresAt:     in.ExpiresAt,
		Notes:         in.Notes,
	}
	u.HistoryLog = appendHistory(u.HistoryLog, entity.HistoryEntry{
		Action:   entity.ActionBooked,
		Location: u.CurrentLocation,
		At:       now,
		Note:     fmt.Sprintf("Booked for %s by %s", in.BookedBy, in.Staff),
	})
	return u, nil
}

// Release clears the hold on a BOOKED unit.
func Release(u entity.InventoryUnit, now time.Time) (entity.InventoryUnit, error) {
	if u.Status != entity.StatusBooked {
		return u, domain.ErrInvalidTransition
	}
	u.Status = entity.StatusAvailable
	u.Booking = nil
	u.HistoryLog = appendHistory(u.HistoryLog, entity.HistoryEntry{
		Action:   entity.ActionReleased,
		Location: u.CurrentLocation,
		At:       now,
		Note:     "Booking released manually",
	})
	return u, nil
}

// Expire releases an expired hold, logging AUTO_RELEASED_EXPIRED instead
// of RELEASED. Guarded the same way as Release so a unit concurrently
// transitioned out of BOOKED fails cleanly and the sweep skips it.
func Expire(u entity.InventoryUnit, now time.Time) (entity.InventoryUnit, error) {
	if u.Status != entity.StatusBooked {
		return u, domain.ErrInvalidTransition
	}
	u.Status = entity.StatusAvailable
	u.Booking = nil
	u.HistoryLog = appendHistory(u.HistoryLog, entity.HistoryEntry{
		Action:   entity.ActionAutoReleased,
		Location: u.CurrentLocation,
		At:       now,
		Note:     "Global expiration check",
	})
	return u, nil
}

// Sell marks a unit SOLD. Allowed from AVAILABLE or BOOKED; a booked
// unit's hold is consumed by the sale.
func Sell(u entity.InventoryUnit, poNumber string, now time.Time) (entity.InventoryUnit, error) {
	if u.Status != entity.StatusAvailable && u.Status != entity.StatusBooked {
		return u, domain.ErrInvalidTransition
	}
	u.Status = entity.StatusSold
	u.Booking = nil
	u.SoldAt = &now
	u.PONumber = poNumber
	u.HistoryLog = appendHistory(u.HistoryLog, entity.HistoryEntry{
		Action:   entity.ActionSold,
		Location: u.CurrentLocation,
		At:       now,
		Note:     soldNote(poNumber),
	})
	return u, nil
}

// Relocate moves a unit to a new location. Allowed in any status; the
// physical item can move regardless of its commercial state.
func Relocate(u entity.InventoryUnit, location, note string, now time.Time) (entity.InventoryUnit, error) {
	if location == "" {
		return u, domain.ErrInvalidInput
	}
	u.CurrentLocation = location
	u.HistoryLog = appendHistory(u.HistoryLog, entity.HistoryEntry{
		Action:   entity.ActionRelocated,
		Location: location,
		At:       now,
		Note:     note,
	})
	return u, nil
}

// IsExpired reports whether a booked unit's hold has lapsed.
func IsExpired(u entity.InventoryUnit, now time.Time) bool {
	return u.Status == entity.StatusBooked && u.Booking != nil && u.Booking.ExpiresAt.Before(now)
}

// NormalizeExpiry pins a requested expiry day to its last second, so a
// booking stays valid through the whole requested date.
func NormalizeExpiry(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, day.Location())
}

// Recompute is the read-side stock rollup: total counts every unit of
// the product, booked and sold count by status. Always derived from the
// full unit set, never patched, to avoid drift.
func Recompute(units []*entity.InventoryUnit) (total, booked, sold int) {
	for _, u := range units {
		total++
		switch u.Status {
		case entity.StatusBooked:
			booked++
		case entity.StatusSold:
			sold++
		}
	}
	return total, booked, sold
}

// appendHistory copies before appending so a transition computed from a
// shared snapshot never aliases the caller's slice.
func appendHistory(log []entity.HistoryEntry, e entity.HistoryEntry) []entity.HistoryEntry {
	out := make([]entity.HistoryEntry, len(log), len(log)+1)
	copy(out, log)
	return append(out, e)
}

func soldNote(poNumber string) string {
	if poNumber == "" {
		return "Marked as sold"
	}
	return "Sold under PO " + poNumber
}
