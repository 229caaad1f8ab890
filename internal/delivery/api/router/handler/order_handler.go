package handler

import (
	"log/slog"
	"net/http"

	"backoffice/internal/delivery/api/middleware"
	"backoffice/internal/delivery/api/response"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves order placement and listing.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	UserID    uint                  `json:"userId" validate:"required"`
	ClientID  uint                  `json:"clientId" validate:"required"`
	AddressID uint                  `json:"addressId" validate:"required"`
	Items     []OrderItemRequest    `json:"itens" validate:"required,min=1,dive"`
	Payments  []OrderPaymentRequest `json:"paymentType" validate:"required,min=1,dive"`
}

// OrderItemRequest is one line of CreateOrderRequest
type OrderItemRequest struct {
	ProductID  uint             `json:"productId" validate:"required"`
	ItemAmount int              `json:"itemAmount" validate:"required,gt=0"`
	ItemPrice  *decimal.Decimal `json:"itemPrice" validate:"required,gte=0"`
}

// OrderPaymentRequest is one payment allocation of CreateOrderRequest
type OrderPaymentRequest struct {
	PaymentTypeID uint             `json:"paymentTypeId" validate:"required"`
	Value         *decimal.Decimal `json:"value" validate:"required,gt=0"`
}

// CreateOrder handles POST /ordder
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if operatorID, ok := middleware.GetUserID(c); ok && operatorID != req.UserID {
		h.logger.DebugContext(c.Request().Context(), "Order placed on behalf of another user",
			slog.Uint64("operatorID", uint64(operatorID)),
			slog.Uint64("userID", uint64(req.UserID)),
		)
	}

	input := &usecase.CreateOrderInput{
		UserID:    req.UserID,
		ClientID:  req.ClientID,
		AddressID: req.AddressID,
		Items:     make([]usecase.OrderItemInput, len(req.Items)),
		Payments:  make([]usecase.PaymentInput, len(req.Payments)),
	}
	for i, item := range req.Items {
		input.Items[i] = usecase.OrderItemInput{
			ProductID:  item.ProductID,
			ItemAmount: item.ItemAmount,
			ItemPrice:  *item.ItemPrice,
		}
	}
	for i, payment := range req.Payments {
		input.Payments[i] = usecase.PaymentInput{
			PaymentTypeID: payment.PaymentTypeID,
			Value:         *payment.Value,
		}
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(order))
}

// ListOrders handles GET /ordder
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.ListOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(orders, toOrderResponse))
}
