package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager       repository.TransactionManager
	clientRepo      repository.ClientRepository
	addressRepo     repository.AddressRepository
	productRepo     repository.ProductRepository
	paymentTypeRepo repository.PaymentTypeRepository
	orderRepo       repository.OrderRepository
	logger          *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	ClientRepo      repository.ClientRepository
	AddressRepo     repository.AddressRepository
	ProductRepo     repository.ProductRepository
	PaymentTypeRepo repository.PaymentTypeRepository
	OrderRepo       repository.OrderRepository
	Logger          *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:       params.TxManager,
		clientRepo:      params.ClientRepo,
		addressRepo:     params.AddressRepo,
		productRepo:     params.ProductRepo,
		paymentTypeRepo: params.PaymentTypeRepo,
		orderRepo:       params.OrderRepo,
		logger:          params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder runs the checks in a fixed order and stops at the first failure:
// shape, client, address ownership, products, payment types, totals.
// Only then are the order, its items and its payments written in one transaction.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if err := validateOrderInput(input); err != nil {
		return nil, err
	}

	order := buildOrderEntity(input)

	if err := srv.checkReferences(ctx, order); err != nil {
		return nil, err
	}

	if !order.IsSettled() {
		srv.log(ctx).Warn("Order totals do not match",
			slog.String("itemsTotal", order.ItemsTotal().StringFixed(2)),
			slog.String("paymentsTotal", order.PaymentsTotal().StringFixed(2)),
		)

		return nil, domainerrors.ErrOrderTotalMismatch.WithDetails(fmt.Sprintf(
			"items total %s, payments total %s",
			order.ItemsTotal().StringFixed(2), order.PaymentsTotal().StringFixed(2),
		))
	}

	var created *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		for _, item := range order.Items {
			item.OrderID = order.ID
		}
		if err := orderRepo.CreateItems(ctx, order.Items); err != nil {
			return errors.Wrap(err, "failed to create order items")
		}

		for _, payment := range order.Payments {
			payment.OrderID = order.ID
		}
		if err := orderRepo.CreatePayments(ctx, order.Payments); err != nil {
			return errors.Wrap(err, "failed to create payments")
		}

		var err error
		created, err = orderRepo.FindByID(ctx, order.ID)

		return errors.Wrap(err, "failed to reload order")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute order transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order transaction")
	}

	srv.log(ctx).Info("Order created",
		slog.Uint64("orderID", uint64(created.ID)),
		slog.Int("items", len(created.Items)),
		slog.Int("payments", len(created.Payments)),
	)

	return created, nil
}

func (srv *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// checkReferences verifies client, address ownership, products and payment types, in that order.
func (srv *orderService) checkReferences(ctx context.Context, order *entity.Order) error {
	if _, err := srv.clientRepo.FindByID(ctx, order.ClientID); err != nil {
		return errors.Wrap(err, "failed to find order client")
	}

	if _, err := srv.addressRepo.FindByIDAndClient(ctx, order.AddressID, order.ClientID); err != nil {
		return errors.Wrap(err, "failed to find order address")
	}

	productIDs := order.ProductIDs()
	found, err := srv.productRepo.CountByIDs(ctx, productIDs)
	if err != nil {
		return errors.Wrap(err, "failed to count products")
	}
	if found != int64(len(productIDs)) {
		return domainerrors.ErrProductNotFound.WithDetails(
			fmt.Sprintf("%d of %d referenced products do not exist", int64(len(productIDs))-found, len(productIDs)),
		)
	}

	paymentTypeIDs := order.PaymentTypeIDs()
	found, err = srv.paymentTypeRepo.CountByIDs(ctx, paymentTypeIDs)
	if err != nil {
		return errors.Wrap(err, "failed to count payment types")
	}
	if found != int64(len(paymentTypeIDs)) {
		return domainerrors.ErrPaymentTypeNotFound.WithDetails(
			fmt.Sprintf("%d of %d referenced payment types do not exist", int64(len(paymentTypeIDs))-found, len(paymentTypeIDs)),
		)
	}

	return nil
}

func validateOrderInput(input *usecase.CreateOrderInput) error {
	switch {
	case input == nil:
		return domainerrors.ErrValidationFailed.WithDetails("order body is required")
	case input.UserID == 0 || input.ClientID == 0 || input.AddressID == 0:
		return domainerrors.ErrValidationFailed.WithDetails("userId, clientId and addressId are required")
	case len(input.Items) == 0:
		return domainerrors.ErrValidationFailed.WithDetails("an order needs at least one item")
	case len(input.Payments) == 0:
		return domainerrors.ErrValidationFailed.WithDetails("an order needs at least one payment")
	}

	for i, item := range input.Items {
		if item.ProductID == 0 || item.ItemAmount <= 0 || item.ItemPrice.IsNegative() {
			return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("item %d is malformed", i))
		}
	}

	for i, payment := range input.Payments {
		if payment.PaymentTypeID == 0 || !payment.Value.IsPositive() {
			return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("payment %d is malformed", i))
		}
	}

	return nil
}

func buildOrderEntity(input *usecase.CreateOrderInput) *entity.Order {
	order := &entity.Order{
		ClientID:  input.ClientID,
		AddressID: input.AddressID,
		UserID:    input.UserID,
		Items:     make([]*entity.OrderItem, len(input.Items)),
		Payments:  make([]*entity.Payment, len(input.Payments)),
	}
	for i, item := range input.Items {
		order.Items[i] = &entity.OrderItem{
			ProductID:  item.ProductID,
			ItemAmount: item.ItemAmount,
			ItemPrice:  item.ItemPrice,
		}
	}
	for i, payment := range input.Payments {
		order.Payments[i] = &entity.Payment{
			PaymentTypeID: payment.PaymentTypeID,
			Value:         payment.Value,
		}
	}

	return order
}
