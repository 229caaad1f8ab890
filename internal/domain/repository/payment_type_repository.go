package repository

import (
	"context"

	"backoffice/internal/domain/entity"
)

// PaymentTypeRepository defines the interface for payment type operations.
type PaymentTypeRepository interface {
	// Create persists a new payment type. A duplicate type yields domainerrors.ErrPaymentTypeAlreadyExists.
	Create(ctx context.Context, paymentType *entity.PaymentType) error

	// FindAll retrieves every payment type ordered by id.
	FindAll(ctx context.Context) ([]*entity.PaymentType, error)

	// CountByIDs returns how many of the given distinct ids exist.
	CountByIDs(ctx context.Context, ids []uint) (int64, error)
}
