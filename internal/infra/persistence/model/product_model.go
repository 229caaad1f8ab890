package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. Code and name are each unique.
type ProductModel struct {
	ID           uint            `gorm:"primaryKey"`
	Code         string          `gorm:"column:cod;type:varchar(50);uniqueIndex;not null"`
	Name         string          `gorm:"type:varchar(255);uniqueIndex;not null"`
	DefaultPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Height       *string         `gorm:"type:varchar(20)"`
	Width        *string         `gorm:"type:varchar(20)"`
	Depth        *string         `gorm:"type:varchar(20)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// PaymentTypeModel mirrors the 'payment_types' table.
type PaymentTypeModel struct {
	ID        uint   `gorm:"primaryKey"`
	Type      string `gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentTypeModel) TableName() string {
	return "payment_types"
}
