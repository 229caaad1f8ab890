package impl

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
)

type productService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository) usecase.ProductUsecase {
	return &productService{productRepo: productRepo}
}

// CreateProduct relies on the unique code and name indexes to reject duplicates.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Code:         input.Code,
		Name:         input.Name,
		DefaultPrice: input.DefaultPrice,
		Height:       input.Height,
		Width:        input.Width,
		Depth:        input.Depth,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

func (srv *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

type paymentTypeService struct {
	paymentTypeRepo repository.PaymentTypeRepository
}

// NewPaymentTypeService creates a new payment type service.
func NewPaymentTypeService(paymentTypeRepo repository.PaymentTypeRepository) usecase.PaymentTypeUsecase {
	return &paymentTypeService{paymentTypeRepo: paymentTypeRepo}
}

func (srv *paymentTypeService) CreatePaymentType(ctx context.Context, paymentType string) (*entity.PaymentType, error) {
	created := &entity.PaymentType{Type: paymentType}
	if err := srv.paymentTypeRepo.Create(ctx, created); err != nil {
		return nil, errors.Wrap(err, "failed to create payment type")
	}

	return created, nil
}

func (srv *paymentTypeService) ListPaymentTypes(ctx context.Context) ([]*entity.PaymentType, error) {
	paymentTypes, err := srv.paymentTypeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payment types")
	}

	return paymentTypes, nil
}
