package postgres

import (
	"context"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// orderRepository persists orders with their items and payments.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order row only; items and payments are written by
// CreateItems and CreatePayments once the id is known.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := &model.OrderModel{
		ClientID:  order.ClientID,
		AddressID: order.AddressID,
		UserID:    order.UserID,
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderReferenceNotFound.WrapMessage("failed to create order")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

func (repo *orderRepository) CreateItems(ctx context.Context, items []*entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	itemMs := make([]*model.OrderItemModel, len(items))
	for i, item := range items {
		itemMs[i] = fromOrderItemDomain(item)
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(&itemMs).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("order item references a missing product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order items")
	}

	for i, itemM := range itemMs {
		items[i].ID = itemM.ID
	}

	return nil
}

func (repo *orderRepository) CreatePayments(ctx context.Context, payments []*entity.Payment) error {
	if len(payments) == 0 {
		return nil
	}

	paymentMs := make([]*model.PaymentModel, len(payments))
	for i, payment := range payments {
		paymentMs[i] = fromPaymentDomain(payment)
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(&paymentMs).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPaymentTypeNotFound.WrapMessage("payment references a missing payment type")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payments")
	}

	for i, paymentM := range paymentMs {
		payments[i].ID = paymentM.ID
	}

	return nil
}

// FindByID reads from the primary because it follows the order's own insert.
func (repo *orderRepository) FindByID(ctx context.Context, id uint) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.withLines(repo.db.WithContext(ctx).Clauses(dbresolver.Write)).
		First(&orderM, id).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	var orderMs []*model.OrderModel
	if err := repo.withLines(repo.db.WithContext(ctx)).Order("id").Find(&orderMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	orders := make([]*entity.Order, len(orderMs))
	for i, orderM := range orderMs {
		orders[i] = toOrderDomain(orderM)
	}

	return orders, nil
}

// withLines preloads items and payments in insertion order.
func (repo *orderRepository) withLines(db *gorm.DB) *gorm.DB {
	byID := func(db *gorm.DB) *gorm.DB { return db.Order("id") }

	return db.Preload("Items", byID).Preload("Payments", byID)
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:        data.ID,
		ClientID:  data.ClientID,
		AddressID: data.AddressID,
		UserID:    data.UserID,
		Items:     make([]*entity.OrderItem, len(data.Items)),
		Payments:  make([]*entity.Payment, len(data.Payments)),
		CreatedAt: data.CreatedAt,
	}
	for i := range data.Items {
		order.Items[i] = toOrderItemDomain(&data.Items[i])
	}
	for i := range data.Payments {
		order.Payments[i] = toPaymentDomain(&data.Payments[i])
	}

	return order
}

func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	return &entity.OrderItem{
		ID:         data.ID,
		OrderID:    data.OrderID,
		ProductID:  data.ProductID,
		ItemAmount: data.ItemAmount,
		ItemPrice:  data.ItemPrice,
	}
}

func fromOrderItemDomain(data *entity.OrderItem) *model.OrderItemModel {
	if data == nil {
		return nil
	}

	return &model.OrderItemModel{
		ID:         data.ID,
		OrderID:    data.OrderID,
		ProductID:  data.ProductID,
		ItemAmount: data.ItemAmount,
		ItemPrice:  data.ItemPrice,
	}
}

func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:            data.ID,
		OrderID:       data.OrderID,
		PaymentTypeID: data.PaymentTypeID,
		Value:         data.Value,
	}
}

func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:            data.ID,
		OrderID:       data.OrderID,
		PaymentTypeID: data.PaymentTypeID,
		Value:         data.Value,
	}
}
