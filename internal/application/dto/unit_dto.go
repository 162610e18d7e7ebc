package dto

import "time"

// BookingResponse the active hold on a BOOKED unit.
type BookingResponse struct {
	BookedBy      string    `json:"booked_by"`
	BookedByStaff string    `json:"booked_by_staff"`
	BookedAt      time.Time `json:"booked_at"`
	ExpiresAt     time.Time `json:"expires_at"`
	Notes         string    `json:"notes,omitempty"`
}

// HistoryEntryResponse one audit record on a unit.
type HistoryEntryResponse struct {
	Action   string    `json:"action"`
	BatchID  string    `json:"batch_id,omitempty"`
	Location string    `json:"location"`
	At       time.Time `json:"at"`
	Note     string    `json:"note,omitempty"`
}

// UnitResponse one serialized inventory unit.
type UnitResponse struct {
	ID              string                 `json:"id"`
	ProductID       string                 `json:"product_id"`
	ProductName     string                 `json:"product_name"`
	SerialCode      string                 `json:"serial_code"`
	Status          string                 `json:"status"`
	CurrentLocation string                 `json:"current_location"`
	Booking         *BookingResponse       `json:"booking,omitempty"`
	SoldAt          *time.Time             `json:"sold_at,omitempty"`
	PONumber        string                 `json:"po_number,omitempty"`
	HistoryLog      []HistoryEntryResponse `json:"history_log"`
	CreatedAt       time.Time              `json:"created_at"`
}

// SellUnitRequest marks a unit as sold, optionally against a PO.
type SellUnitRequest struct {
	PONumber string `json:"po_number"`
}

// RelocateUnitRequest moves a unit to a new physical location.
type RelocateUnitRequest struct {
	Location string `json:"location" validate:"required,min=1,max=200"`
	Note     string `json:"note"`
}
