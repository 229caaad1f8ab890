package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID        uint `gorm:"primaryKey"`
	ClientID  uint `gorm:"not null;index"`
	AddressID uint `gorm:"not null;index"`
	UserID    uint `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Client  *ClientModel  `gorm:"foreignKey:ClientID"`
	Address *AddressModel `gorm:"foreignKey:AddressID"`
	User    *UserModel    `gorm:"foreignKey:UserID"`

	Items    []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payments []PaymentModel   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID         uint            `gorm:"primaryKey"`
	OrderID    uint            `gorm:"not null;index"`
	ProductID  uint            `gorm:"not null;index"`
	ItemAmount int             `gorm:"not null"`
	ItemPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// PaymentModel mirrors the 'payments' table.
type PaymentModel struct {
	ID            uint            `gorm:"primaryKey"`
	OrderID       uint            `gorm:"not null;index"`
	PaymentTypeID uint            `gorm:"not null;index"`
	Value         decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	PaymentType *PaymentTypeModel `gorm:"foreignKey:PaymentTypeID"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}

// All lists every model in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&SessionModel{},
		&ClientModel{},
		&AddressModel{},
		&ProductModel{},
		&PaymentTypeModel{},
		&OrderModel{},
		&OrderItemModel{},
		&PaymentModel{},
	}
}
