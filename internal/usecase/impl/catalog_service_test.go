package impl

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	mockRepo "backoffice/internal/mocks/repository"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_CreateProduct(t *testing.T) {
	height := "10cm"

	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "created", repoErr: nil},
		{name: "duplicate code or name", repoErr: domainerrors.ErrProductAlreadyExists, wantErr: domainerrors.ErrProductAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productRepo := mockRepo.NewMockProductRepository(t)
			ctx := context.Background()

			productRepo.EXPECT().
				Create(ctx, mock.MatchedBy(func(p *entity.Product) bool {
					return p.Code == "P-1" && p.DefaultPrice.Equal(decimal.RequireFromString("9.90")) && p.Height == &height
				})).
				Run(func(_ context.Context, p *entity.Product) { p.ID = 3 }).
				Return(tt.repoErr)

			product, err := NewProductService(productRepo).CreateProduct(ctx, &usecase.CreateProductInput{
				Code:         "P-1",
				Name:         "Chair",
				DefaultPrice: decimal.RequireFromString("9.90"),
				Height:       &height,
			})

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, product)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(3), product.ID)
		})
	}
}

func TestPaymentTypeService(t *testing.T) {
	t.Run("duplicate type", func(t *testing.T) {
		paymentTypeRepo := mockRepo.NewMockPaymentTypeRepository(t)
		ctx := context.Background()
		paymentTypeRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrPaymentTypeAlreadyExists)

		_, err := NewPaymentTypeService(paymentTypeRepo).CreatePaymentType(ctx, "pix")
		assert.True(t, errors.Is(err, domainerrors.ErrPaymentTypeAlreadyExists))
	})

	t.Run("list", func(t *testing.T) {
		paymentTypeRepo := mockRepo.NewMockPaymentTypeRepository(t)
		ctx := context.Background()
		paymentTypeRepo.EXPECT().FindAll(ctx).Return([]*entity.PaymentType{{ID: 1, Type: "pix"}}, nil)

		paymentTypes, err := NewPaymentTypeService(paymentTypeRepo).ListPaymentTypes(ctx)
		require.NoError(t, err)
		assert.Len(t, paymentTypes, 1)
	})
}
