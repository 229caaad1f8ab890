package usecase

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// OrderItemInput is one requested line.
type OrderItemInput struct {
	ProductID  uint
	ItemAmount int
	ItemPrice  decimal.Decimal
}

// PaymentInput allocates part of the order value to a payment type.
type PaymentInput struct {
	PaymentTypeID uint
	Value         decimal.Decimal
}

// CreateOrderInput defines the data required to place an order.
type CreateOrderInput struct {
	UserID    uint
	ClientID  uint
	AddressID uint
	Items     []OrderItemInput
	Payments  []PaymentInput
}

// OrderUsecase defines order placement and listing.
type OrderUsecase interface {
	// CreateOrder validates references and totals, then writes the order,
	// its items and its payments atomically.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)
	ListOrders(ctx context.Context) ([]*entity.Order, error)
}
