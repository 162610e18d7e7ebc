package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edievo/edsis-api/internal/domain"
	"github.com/edievo/edsis-api/internal/domain/booking"
	"github.com/edievo/edsis-api/internal/domain/entity"
)

var now = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

func availableUnit() entity.InventoryUnit {
	return entity.InventoryUnit{
		ID:              "u1",
		ProductID:       "p1",
		SerialCode:      "SLAM-POLA-TUBA-0001",
		Status:          entity.StatusAvailable,
		CurrentLocation: "Warehouse (New)",
		HistoryLog: []entity.HistoryEntry{
			{Action: entity.ActionItemCreated, Location: "Warehouse (New)", At: now.Add(-48 * time.Hour)},
		},
	}
}

func bookInput() booking.BookInput {
	return booking.BookInput{
		BookedBy:  "Mrs. Tanaka",
		Staff:     "dewi",
		ExpiresAt: now.Add(72 * time.Hour),
		Notes:     "follow up friday",
	}
}

func TestBook_FromAvailable(t *testing.T) {
	got, err := booking.Book(availableUnit(), bookInput(), now)
	require.NoError(t, err)

	assert.Equal(t, entity.StatusBooked, got.Status)
	require.NotNil(t, got.Booking)
	assert.Equal(t, "Mrs. Tanaka", got.Booking.BookedBy)
	assert.Equal(t, "dewi", got.Booking.BookedByStaff)
	assert.Equal(t, now, got.Booking.BookedAt)

	require.Len(t, got.HistoryLog, 2)
	assert.Equal(t, entity.ActionBooked, got.HistoryLog[1].Action)
}

func TestBook_OnlyFromAvailable(t *testing.T) {
	for _, status := range []entity.UnitStatus{
		entity.StatusBooked, entity.StatusSold, entity.StatusDamaged, entity.StatusNotForSale,
	} {
		t.Run(string(status), func(t *testing.T) {
			u := availableUnit()
			u.Status = status
			_, err := booking.Book(u, bookInput(), now)
			assert.ErrorIs(t, err, domain.ErrInvalidTransition, "no queueing, no waitlist")
		})
	}
}

func TestBook_RequiresClientAndExpiry(t *testing.T) {
	in := bookInput()
	in.BookedBy = ""
	_, err := booking.Book(availableUnit(), in, now)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = bookInput()
	in.ExpiresAt = time.Time{}
	_, err = booking.Book(availableUnit(), in, now)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBook_DoesNotMutateInput(t *testing.T) {
	u := availableUnit()
	_, err := booking.Book(u, bookInput(), now)
	require.NoError(t, err)

	assert.Equal(t, entity.StatusAvailable, u.Status)
	assert.Nil(t, u.Booking)
	assert.Len(t, u.HistoryLog, 1, "history of the snapshot must stay untouched")
}

func TestRelease_ClearsBooking(t *testing.T) {
	booked, err := booking.Book(availableUnit(), bookInput(), now)
	require.NoError(t, err)

	released, err := booking.Release(booked, now.Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, entity.StatusAvailable, released.Status)
	assert.Nil(t, released.Booking)
	require.Len(t, released.HistoryLog, 3)
	assert.Equal(t, entity.ActionReleased, released.HistoryLog[2].Action)
}

func TestRelease_OnlyFromBooked(t *testing.T) {
	_, err := booking.Release(availableUnit(), now)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestExpire_LogsAutoRelease(t *testing.T) {
	booked, err := booking.Book(availableUnit(), bookInput(), now)
	require.NoError(t, err)

	expired, err := booking.Expire(booked, now.Add(100*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, entity.StatusAvailable, expired.Status)
	assert.Nil(t, expired.Booking)
	assert.Equal(t, entity.ActionAutoReleased, expired.HistoryLog[len(expired.HistoryLog)-1].Action)
}

func TestSell_FromAvailableAndBooked(t *testing.T) {
	sold, err := booking.Sell(availableUnit(), "PO-1042", now)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusSold, sold.Status)
	assert.Equal(t, "PO-1042", sold.PONumber)
	require.NotNil(t, sold.SoldAt)
	assert.Equal(t, now, *sold.SoldAt)

	booked, err := booking.Book(availableUnit(), bookInput(), now)
	require.NoError(t, err)
	sold, err = booking.Sell(booked, "PO-1043", now)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusSold, sold.Status)
	assert.Nil(t, sold.Booking, "a sale consumes the hold")
}

func TestSell_NotFromSoldOrFlagged(t *testing.T) {
	for _, status := range []entity.UnitStatus{entity.StatusSold, entity.StatusDamaged, entity.StatusNotForSale} {
		u := availableUnit()
		u.Status = status
		_, err := booking.Sell(u, "PO-1", now)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	}
}

func TestRelocate_AppendsHistory(t *testing.T) {
	moved, err := booking.Relocate(availableUnit(), "Showroom Seminyak", "display rotation", now)
	require.NoError(t, err)

	assert.Equal(t, "Showroom Seminyak", moved.CurrentLocation)
	last := moved.HistoryLog[len(moved.HistoryLog)-1]
	assert.Equal(t, entity.ActionRelocated, last.Action)
	assert.Equal(t, "Showroom Seminyak", last.Location)

	_, err = booking.Relocate(availableUnit(), "", "", now)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIsExpired(t *testing.T) {
	booked, err := booking.Book(availableUnit(), bookInput(), now)
	require.NoError(t, err)

	assert.False(t, booking.IsExpired(booked, now.Add(time.Hour)))
	assert.True(t, booking.IsExpired(booked, now.Add(200*time.Hour)))
	assert.False(t, booking.IsExpired(availableUnit(), now.Add(200*time.Hour)),
		"only booked units expire")
}

func TestNormalizeExpiry_EndOfDay(t *testing.T) {
	day := time.Date(2026, 3, 14, 9, 15, 0, 0, time.UTC)
	got := booking.NormalizeExpiry(day)
	assert.Equal(t, time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC), got)
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, entity.StatusAvailable, booking.InitialStatus(false))
	assert.Equal(t, entity.StatusNotForSale, booking.InitialStatus(true))
}

func TestRecompute_CountsByStatus(t *testing.T) {
	units := []*entity.InventoryUnit{
		{Status: entity.StatusAvailable},
		{Status: entity.StatusBooked},
		{Status: entity.StatusBooked},
		{Status: entity.StatusSold},
		{Status: entity.StatusNotForSale},
	}
	total, booked, sold := booking.Recompute(units)
	assert.Equal(t, 5, total, "total counts every unit regardless of status")
	assert.Equal(t, 2, booked)
	assert.Equal(t, 1, sold)
}
