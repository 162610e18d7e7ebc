package entity

import "time"

// Staff roles.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User is a staff account. The authenticated name is recorded as the
// operator on bookings and history entries.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext past registration
	Name         string
	Role         string // admin, staff
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
