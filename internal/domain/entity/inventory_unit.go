package entity

import "time"

// UnitStatus is the lifecycle state of a physical inventory unit. The
// status field is the source of truth; the history log is an audit
// side-channel and is never replayed to derive state.
type UnitStatus string

const (
	StatusAvailable  UnitStatus = "AVAILABLE"
	StatusBooked     UnitStatus = "BOOKED"
	StatusSold       UnitStatus = "SOLD"
	StatusDamaged    UnitStatus = "DAMAGED"
	StatusNotForSale UnitStatus = "NOT_FOR_SALE"
)

// History log actions.
const (
	ActionItemCreated  = "ITEM_CREATED"
	ActionBulkImport   = "BULK_IMPORT"
	ActionBooked       = "BOOKED"
	ActionReleased     = "RELEASED"
	ActionAutoReleased = "AUTO_RELEASED_EXPIRED"
	ActionSold         = "SOLD"
	ActionRelocated    = "RELOCATED"
)

// Booking is a temporary client hold attached to exactly one unit.
// It exists only while the unit's status is BOOKED.
type Booking struct {
	BookedBy      string    `json:"booked_by"`       // client name
	BookedByStaff string    `json:"booked_by_staff"` // operator
	BookedAt      time.Time `json:"booked_at"`
	ExpiresAt     time.Time `json:"expires_at"`
	Notes         string    `json:"notes,omitempty"`
}

// HistoryEntry is one append-only audit record on a unit.
type HistoryEntry struct {
	Action   string    `json:"action"`
	BatchID  string    `json:"batch_id,omitempty"`
	Location string    `json:"location"`
	At       time.Time `json:"at"`
	Note     string    `json:"note,omitempty"`
}

// InventoryUnit is one physically serialized stock item belonging to a
// Product. Units are created when stock is set or added, mutated only
// through the booking state machine or explicit relocation/sale, and
// deleted only by cascading product deletion.
type InventoryUnit struct {
	ID              string
	ProductID       string
	ProductName     string // denormalized "BRAND - Collection" label
	SerialCode      string // SKU + zero-padded sequence, QR payload
	Status          UnitStatus
	CurrentLocation string
	Booking         *Booking // non-nil iff Status == BOOKED
	SoldAt          *time.Time
	PONumber        string
	HistoryLog      []HistoryEntry
	CreatedAt       time.Time
}
