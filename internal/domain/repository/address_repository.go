package repository

import (
	"context"

	"backoffice/internal/domain/entity"
)

// AddressRepository defines the interface for address-related database operations.
type AddressRepository interface {
	// Create persists a new address for a client.
	Create(ctx context.Context, address *entity.Address) error

	// FindByIDAndClient retrieves an address only if it belongs to the client.
	// Returns domainerrors.ErrAddressNotFound otherwise.
	FindByIDAndClient(ctx context.Context, id, clientID uint) (*entity.Address, error)

	// FindByClient retrieves all addresses of a client ordered by id.
	FindByClient(ctx context.Context, clientID uint) ([]*entity.Address, error)
}
