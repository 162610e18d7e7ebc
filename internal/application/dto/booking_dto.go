package dto

import "time"

// BookUnitRequest places a hold on an available unit. ExpiresAt is
// normalized server-side to the end of the requested day.
type BookUnitRequest struct {
	BookedBy  string    `json:"booked_by" validate:"required,min=1,max=200"`
	ExpiresAt time.Time `json:"expires_at" validate:"required"`
	Notes     string    `json:"notes"`
}

// ActiveBookingResponse one live hold in the bookings overview.
type ActiveBookingResponse struct {
	UnitID        string    `json:"unit_id"`
	ProductID     string    `json:"product_id"`
	ProductName   string    `json:"product_name"`
	SerialCode    string    `json:"serial_code"`
	BookedBy      string    `json:"booked_by"`
	BookedByStaff string    `json:"booked_by_staff"`
	BookedAt      time.Time `json:"booked_at"`
	ExpiresAt     time.Time `json:"expires_at"`
	Expired       bool      `json:"expired"`
	Notes         string    `json:"notes,omitempty"`
}

// SweepResponse outcome of one expiry sweep run. Failed counts units
// whose release could not be written; they stay booked for the next run.
type SweepResponse struct {
	Checked  int       `json:"checked"`
	Released int       `json:"released"`
	Failed   int       `json:"failed"`
	Errors   []string  `json:"errors,omitempty"`
	RanAt    time.Time `json:"ran_at"`
}
