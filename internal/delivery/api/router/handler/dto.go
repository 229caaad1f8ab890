package handler

import (
	"time"

	"backoffice/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Response bodies. JSON keys follow the public contract of the API, which
// predates this service and mixes English and Portuguese names.

type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type SignInResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}

type ClientResponse struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	MainNumber string    `json:"mainNumber"`
	TaxID      string    `json:"CPForCNPJ"`
	CreatedAt  time.Time `json:"createdAt"`
}

type AddressResponse struct {
	ID       uint   `json:"id"`
	ClientID uint   `json:"clientId"`
	Street   string `json:"rua"`
	Number   string `json:"numero"`
	District string `json:"bairro"`
	City     string `json:"cidade"`
	Zip      string `json:"CEP,omitempty"`
	Phone    string `json:"telefone"`
}

type ProductResponse struct {
	ID           uint            `json:"id"`
	Code         string          `json:"COD"`
	Name         string          `json:"name"`
	DefaultPrice decimal.Decimal `json:"defaultPrice"`
	Height       *string         `json:"height,omitempty"`
	Width        *string         `json:"width,omitempty"`
	Depth        *string         `json:"depth,omitempty"`
}

type PaymentTypeResponse struct {
	ID   uint   `json:"id"`
	Type string `json:"type"`
}

type OrderItemResponse struct {
	ID         uint            `json:"id"`
	ProductID  uint            `json:"productId"`
	ItemAmount int             `json:"itemAmount"`
	ItemPrice  decimal.Decimal `json:"itemPrice"`
}

type PaymentResponse struct {
	ID            uint            `json:"id"`
	PaymentTypeID uint            `json:"paymentTypeId"`
	Value         decimal.Decimal `json:"value"`
}

type OrderResponse struct {
	ID        uint                 `json:"id"`
	UserID    uint                 `json:"userId"`
	ClientID  uint                 `json:"clientId"`
	AddressID uint                 `json:"addressId"`
	Total     decimal.Decimal      `json:"total"`
	Items     []*OrderItemResponse `json:"itens"`
	Payments  []*PaymentResponse   `json:"paymentType"`
	CreatedAt time.Time            `json:"createdAt"`
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}

func toClientResponse(client *entity.Client) *ClientResponse {
	return &ClientResponse{
		ID:         client.ID,
		Name:       client.Name,
		Email:      client.Email,
		MainNumber: client.MainNumber,
		TaxID:      client.TaxID,
		CreatedAt:  client.CreatedAt,
	}
}

func toAddressResponse(address *entity.Address) *AddressResponse {
	return &AddressResponse{
		ID:       address.ID,
		ClientID: address.ClientID,
		Street:   address.Street,
		Number:   address.Number,
		District: address.District,
		City:     address.City,
		Zip:      address.Zip,
		Phone:    address.Phone,
	}
}

func toProductResponse(product *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:           product.ID,
		Code:         product.Code,
		Name:         product.Name,
		DefaultPrice: product.DefaultPrice,
		Height:       product.Height,
		Width:        product.Width,
		Depth:        product.Depth,
	}
}

func toPaymentTypeResponse(paymentType *entity.PaymentType) *PaymentTypeResponse {
	return &PaymentTypeResponse{ID: paymentType.ID, Type: paymentType.Type}
}

func toOrderResponse(order *entity.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:        order.ID,
		UserID:    order.UserID,
		ClientID:  order.ClientID,
		AddressID: order.AddressID,
		Total:     order.ItemsTotal(),
		Items:     make([]*OrderItemResponse, len(order.Items)),
		Payments:  make([]*PaymentResponse, len(order.Payments)),
		CreatedAt: order.CreatedAt,
	}
	for i, item := range order.Items {
		resp.Items[i] = &OrderItemResponse{
			ID:         item.ID,
			ProductID:  item.ProductID,
			ItemAmount: item.ItemAmount,
			ItemPrice:  item.ItemPrice,
		}
	}
	for i, payment := range order.Payments {
		resp.Payments[i] = &PaymentResponse{
			ID:            payment.ID,
			PaymentTypeID: payment.PaymentTypeID,
			Value:         payment.Value,
		}
	}

	return resp
}

// mapSlice converts every element with fn.
func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}

	return out
}
