package handler

import (
	"net/http"

	"backoffice/internal/delivery/api/response"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	ProductUC     usecase.ProductUsecase
	PaymentTypeUC usecase.PaymentTypeUsecase
}

// CatalogHandler serves products and payment types.
type CatalogHandler struct {
	productUC     usecase.ProductUsecase
	paymentTypeUC usecase.PaymentTypeUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		productUC:     params.ProductUC,
		paymentTypeUC: params.PaymentTypeUC,
	}
}

// CreateProductRequest represents the request body for adding a product
type CreateProductRequest struct {
	Code         string           `json:"COD" validate:"required,min=3"`
	Name         string           `json:"name" validate:"required,min=4"`
	DefaultPrice *decimal.Decimal `json:"defaultPrice" validate:"required,gte=0"`
	Height       *string          `json:"height"`
	Width        *string          `json:"width"`
	Depth        *string          `json:"depth"`
}

// CreatePaymentTypeRequest represents the request body for adding a payment type
type CreatePaymentTypeRequest struct {
	Type string `json:"type" validate:"required"`
}

// CreateProduct handles POST /products/new
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		Code:         req.Code,
		Name:         req.Name,
		DefaultPrice: *req.DefaultPrice,
		Height:       req.Height,
		Width:        req.Width,
		Depth:        req.Depth,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product))
}

// ListProducts handles GET /products
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.productUC.ListProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(products, toProductResponse))
}

// CreatePaymentType handles POST /payment-type
func (h *CatalogHandler) CreatePaymentType(c echo.Context) error {
	var req CreatePaymentTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment type input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	paymentType, err := h.paymentTypeUC.CreatePaymentType(c.Request().Context(), req.Type)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPaymentTypeResponse(paymentType))
}

// ListPaymentTypes handles GET /payment-type
func (h *CatalogHandler) ListPaymentTypes(c echo.Context) error {
	paymentTypes, err := h.paymentTypeUC.ListPaymentTypes(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(paymentTypes, toPaymentTypeResponse))
}
