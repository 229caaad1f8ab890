// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"backoffice/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create persists a new user. A duplicate email yields domainerrors.ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by id. Returns domainerrors.ErrUserNotFound when absent.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail retrieves a user by email. Returns domainerrors.ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindFirst retrieves the user with the lowest id.
	FindFirst(ctx context.Context) (*entity.User, error)
}
