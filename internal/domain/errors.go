package domain

import "errors"

// Domain errors (no external dependencies). Infrastructure adapters map
// driver errors onto these; handlers map them onto HTTP status codes.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrConflict           = errors.New("conflict with current state")
	ErrInvalidTransition  = errors.New("invalid state transition")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access denied")
)
