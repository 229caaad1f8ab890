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

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service         usecase.OrderUsecase
	txManager       *mockRepo.MockTransactionManager
	clientRepo      *mockRepo.MockClientRepository
	addressRepo     *mockRepo.MockAddressRepository
	productRepo     *mockRepo.MockProductRepository
	paymentTypeRepo *mockRepo.MockPaymentTypeRepository
	orderRepo       *mockRepo.MockOrderRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	fx := orderServiceFixtures{
		txManager:       mockRepo.NewMockTransactionManager(t),
		clientRepo:      mockRepo.NewMockClientRepository(t),
		addressRepo:     mockRepo.NewMockAddressRepository(t),
		productRepo:     mockRepo.NewMockProductRepository(t),
		paymentTypeRepo: mockRepo.NewMockPaymentTypeRepository(t),
		orderRepo:       mockRepo.NewMockOrderRepository(t),
	}
	fx.service = NewOrderService(OrderServiceParams{
		TxManager:       fx.txManager,
		ClientRepo:      fx.clientRepo,
		AddressRepo:     fx.addressRepo,
		ProductRepo:     fx.productRepo,
		PaymentTypeRepo: fx.paymentTypeRepo,
		OrderRepo:       fx.orderRepo,
		Logger:          newDiscardLogger(),
	})

	return fx
}

func validOrderInput() *usecase.CreateOrderInput {
	return &usecase.CreateOrderInput{
		UserID:    1,
		ClientID:  2,
		AddressID: 3,
		Items: []usecase.OrderItemInput{
			{ProductID: 10, ItemAmount: 2, ItemPrice: decimal.RequireFromString("15.50")},
			{ProductID: 11, ItemAmount: 1, ItemPrice: decimal.RequireFromString("9.00")},
			{ProductID: 10, ItemAmount: 1, ItemPrice: decimal.RequireFromString("15.50")},
		},
		Payments: []usecase.PaymentInput{
			{PaymentTypeID: 20, Value: decimal.RequireFromString("50.00")},
			{PaymentTypeID: 21, Value: decimal.RequireFromString("5.50")},
		},
	}
}

// expectReferencesFound stubs the client, address, product and payment type lookups as successful.
func (fx orderServiceFixtures) expectReferencesFound(ctx context.Context) {
	fx.clientRepo.EXPECT().FindByID(ctx, uint(2)).Return(&entity.Client{ID: 2}, nil)
	fx.addressRepo.EXPECT().FindByIDAndClient(ctx, uint(3), uint(2)).Return(&entity.Address{ID: 3, ClientID: 2}, nil)
	fx.productRepo.EXPECT().CountByIDs(ctx, []uint{10, 11}).Return(int64(2), nil)
	fx.paymentTypeRepo.EXPECT().CountByIDs(ctx, []uint{20, 21}).Return(int64(2), nil)
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	fx.expectReferencesFound(ctx)

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().OrderRepo().Return(txOrderRepo)
	})

	txOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) { order.ID = 99 }).
		Return(nil)
	txOrderRepo.EXPECT().
		CreateItems(ctx, mock.MatchedBy(func(items []*entity.OrderItem) bool {
			for _, item := range items {
				if item.OrderID != 99 {
					return false
				}
			}

			return len(items) == 3
		})).
		Return(nil)
	txOrderRepo.EXPECT().
		CreatePayments(ctx, mock.MatchedBy(func(payments []*entity.Payment) bool {
			return len(payments) == 2 && payments[0].OrderID == 99 && payments[1].OrderID == 99
		})).
		Return(nil)
	txOrderRepo.EXPECT().FindByID(ctx, uint(99)).Return(&entity.Order{ID: 99, Items: make([]*entity.OrderItem, 3)}, nil)

	order, err := fx.service.CreateOrder(ctx, validOrderInput())
	require.NoError(t, err)
	assert.Equal(t, uint(99), order.ID)
	assert.Len(t, order.Items, 3)
}

func TestOrderService_CreateOrder_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.CreateOrderInput)
	}{
		{"no items", func(in *usecase.CreateOrderInput) { in.Items = nil }},
		{"no payments", func(in *usecase.CreateOrderInput) { in.Payments = nil }},
		{"missing client", func(in *usecase.CreateOrderInput) { in.ClientID = 0 }},
		{"missing user", func(in *usecase.CreateOrderInput) { in.UserID = 0 }},
		{"zero quantity", func(in *usecase.CreateOrderInput) { in.Items[0].ItemAmount = 0 }},
		{"negative price", func(in *usecase.CreateOrderInput) { in.Items[1].ItemPrice = decimal.NewFromInt(-1) }},
		{"missing product", func(in *usecase.CreateOrderInput) { in.Items[2].ProductID = 0 }},
		{"zero payment", func(in *usecase.CreateOrderInput) { in.Payments[0].Value = decimal.Zero }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No repository expectations: validation must fail before any lookup.
			fx := createTestOrderService(t)
			input := validOrderInput()
			tt.mutate(input)

			order, err := fx.service.CreateOrder(context.Background(), input)
			assert.Nil(t, order)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "got %v", err)
		})
	}
}

func TestOrderService_CreateOrder_ClientNotFound(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.clientRepo.EXPECT().FindByID(ctx, uint(2)).Return(nil, domainerrors.ErrClientNotFound)

	_, err := fx.service.CreateOrder(ctx, validOrderInput())
	assert.True(t, errors.Is(err, domainerrors.ErrClientNotFound))
}

func TestOrderService_CreateOrder_AddressOfAnotherClient(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.clientRepo.EXPECT().FindByID(ctx, uint(2)).Return(&entity.Client{ID: 2}, nil)
	fx.addressRepo.EXPECT().FindByIDAndClient(ctx, uint(3), uint(2)).Return(nil, domainerrors.ErrAddressNotFound)

	_, err := fx.service.CreateOrder(ctx, validOrderInput())

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.KindNotFound, appErr.Kind())
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

func TestOrderService_CreateOrder_UnknownProduct(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.clientRepo.EXPECT().FindByID(ctx, uint(2)).Return(&entity.Client{ID: 2}, nil)
	fx.addressRepo.EXPECT().FindByIDAndClient(ctx, uint(3), uint(2)).Return(&entity.Address{ID: 3, ClientID: 2}, nil)
	fx.productRepo.EXPECT().CountByIDs(ctx, []uint{10, 11}).Return(int64(1), nil)

	_, err := fx.service.CreateOrder(ctx, validOrderInput())
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestOrderService_CreateOrder_UnknownPaymentType(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.clientRepo.EXPECT().FindByID(ctx, uint(2)).Return(&entity.Client{ID: 2}, nil)
	fx.addressRepo.EXPECT().FindByIDAndClient(ctx, uint(3), uint(2)).Return(&entity.Address{ID: 3, ClientID: 2}, nil)
	fx.productRepo.EXPECT().CountByIDs(ctx, []uint{10, 11}).Return(int64(2), nil)
	fx.paymentTypeRepo.EXPECT().CountByIDs(ctx, []uint{20, 21}).Return(int64(0), nil)

	_, err := fx.service.CreateOrder(ctx, validOrderInput())
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentTypeNotFound))
}

func TestOrderService_CreateOrder_TotalMismatchWritesNothing(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	fx.expectReferencesFound(ctx)

	input := validOrderInput()
	input.Payments[1].Value = decimal.RequireFromString("5.49")

	// txManager has no expectation; reaching Execute would fail the test.
	order, err := fx.service.CreateOrder(ctx, input)
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "ORDER_TOTAL_MISMATCH", appErr.ErrorCode())
	assert.Equal(t, 409, appErr.HTTPCode())
	assert.Contains(t, appErr.Details(), "55.50")
}

func TestOrderService_CreateOrder_TransactionFailure(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	fx.expectReferencesFound(ctx)

	dbErr := errors.New("insert failed")
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().OrderRepo().Return(txOrderRepo)
	})
	txOrderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	txOrderRepo.EXPECT().CreateItems(ctx, mock.Anything).Return(dbErr)

	order, err := fx.service.CreateOrder(ctx, validOrderInput())
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "failed to create order items")
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().FindAll(ctx).Return([]*entity.Order{{ID: 1}, {ID: 2}}, nil)

	orders, err := fx.service.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
