package repository

import (
	"context"

	"backoffice/internal/domain/entity"
)

// ProductRepository defines the interface for catalog operations.
type ProductRepository interface {
	// Create persists a new product. A duplicate code or name yields domainerrors.ErrProductAlreadyExists.
	Create(ctx context.Context, product *entity.Product) error

	// FindAll retrieves every product ordered by id.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// CountByIDs returns how many of the given distinct ids exist.
	CountByIDs(ctx context.Context, ids []uint) (int64, error)
}
