package repository

import (
	"context"

	"backoffice/internal/domain/entity"
)

// OrderRepository defines the interface for order persistence.
// Writes are expected to run inside TransactionManager.Execute.
type OrderRepository interface {
	// Create persists the order row and assigns its id.
	Create(ctx context.Context, order *entity.Order) error

	// CreateItems persists the items; each item must already carry its OrderID.
	CreateItems(ctx context.Context, items []*entity.OrderItem) error

	// CreatePayments persists the payments; each payment must already carry its OrderID.
	CreatePayments(ctx context.Context, payments []*entity.Payment) error

	// FindByID retrieves an order with its items and payments.
	// Returns domainerrors.ErrOrderNotFound when absent.
	FindByID(ctx context.Context, id uint) (*entity.Order, error)

	// FindAll retrieves every order with its items and payments, ordered by id.
	FindAll(ctx context.Context) ([]*entity.Order, error)
}
