package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry that order items reference.
type Product struct {
	ID           uint
	Code         string
	Name         string
	DefaultPrice decimal.Decimal
	Height       *string
	Width        *string
	Depth        *string
	CreatedAt    time.Time
}

// PaymentType is a payment method (cash, card, pix...) payments are allocated to.
type PaymentType struct {
	ID        uint
	Type      string
	CreatedAt time.Time
}
