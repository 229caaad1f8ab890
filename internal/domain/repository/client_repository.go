package repository

import (
	"context"

	"backoffice/internal/domain/entity"
)

// ClientRepository defines the interface for client-related database operations.
type ClientRepository interface {
	// Create persists a new client. A duplicate name, email or tax id yields domainerrors.ErrClientAlreadyExists.
	Create(ctx context.Context, client *entity.Client) error

	// FindByID retrieves a client by id. Returns domainerrors.ErrClientNotFound when absent.
	FindByID(ctx context.Context, id uint) (*entity.Client, error)

	// FindAll retrieves every client ordered by id.
	FindAll(ctx context.Context) ([]*entity.Client, error)
}
