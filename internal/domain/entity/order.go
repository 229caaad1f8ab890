package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order groups line items and the payments that settle them.
type Order struct {
	ID        uint
	ClientID  uint
	AddressID uint
	UserID    uint
	Items     []*OrderItem
	Payments  []*Payment
	CreatedAt time.Time
}

// OrderItem is one product line of an order. It is immutable once created.
type OrderItem struct {
	ID         uint
	OrderID    uint
	ProductID  uint
	ItemAmount int             // Quantity.
	ItemPrice  decimal.Decimal // Unit price.
}

// Payment allocates part of an order's value to a payment type.
type Payment struct {
	ID            uint
	OrderID       uint
	PaymentTypeID uint
	Value         decimal.Decimal
}

// Total returns quantity times unit price for the line.
func (i *OrderItem) Total() decimal.Decimal {
	return i.ItemPrice.Mul(decimal.NewFromInt(int64(i.ItemAmount)))
}

// ItemsTotal returns the sum of all line totals.
func (o *Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Total())
	}

	return total
}

// PaymentsTotal returns the sum of all payment values.
func (o *Order) PaymentsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, payment := range o.Payments {
		total = total.Add(payment.Value)
	}

	return total
}

// IsSettled reports whether payments exactly cover the items.
func (o *Order) IsSettled() bool {
	return o.ItemsTotal().Equal(o.PaymentsTotal())
}

// ProductIDs returns the distinct product ids referenced by the items, in first-seen order.
func (o *Order) ProductIDs() []uint {
	seen := make(map[uint]struct{}, len(o.Items))
	ids := make([]uint, 0, len(o.Items))
	for _, item := range o.Items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	return ids
}

// PaymentTypeIDs returns the distinct payment type ids referenced by the payments, in first-seen order.
func (o *Order) PaymentTypeIDs() []uint {
	seen := make(map[uint]struct{}, len(o.Payments))
	ids := make([]uint, 0, len(o.Payments))
	for _, payment := range o.Payments {
		if _, ok := seen[payment.PaymentTypeID]; ok {
			continue
		}
		seen[payment.PaymentTypeID] = struct{}{}
		ids = append(ids, payment.PaymentTypeID)
	}

	return ids
}
