package usecase

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CreateProductInput defines the data required to add a product to the catalog.
type CreateProductInput struct {
	Code         string
	Name         string
	DefaultPrice decimal.Decimal
	Height       *string
	Width        *string
	Depth        *string
}

// ProductUsecase defines catalog operations.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
}

// PaymentTypeUsecase defines payment type operations.
type PaymentTypeUsecase interface {
	CreatePaymentType(ctx context.Context, paymentType string) (*entity.PaymentType, error)
	ListPaymentTypes(ctx context.Context) ([]*entity.PaymentType, error)
}
