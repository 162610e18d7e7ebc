package repository

import "github.com/edievo/edsis-api/internal/domain/entity"

// UserRepository is the persistence port for staff accounts.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
