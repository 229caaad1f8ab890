package handler

import (
	"net/http"
	"strconv"

	"backoffice/internal/delivery/api/response"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ClientHandlerParams holds dependencies for ClientHandler, injected by Fx.
type ClientHandlerParams struct {
	fx.In

	ClientUC  usecase.ClientUsecase
	AddressUC usecase.AddressUsecase
}

// ClientHandler serves clients and their addresses.
type ClientHandler struct {
	clientUC  usecase.ClientUsecase
	addressUC usecase.AddressUsecase
}

// NewClientHandler is the constructor for ClientHandler
func NewClientHandler(params ClientHandlerParams) *ClientHandler {
	return &ClientHandler{
		clientUC:  params.ClientUC,
		addressUC: params.AddressUC,
	}
}

// CreateClientRequest represents the request body for registering a client
type CreateClientRequest struct {
	Name       string `json:"name" validate:"required,min=3"`
	Email      string `json:"email" validate:"required,email"`
	MainNumber string `json:"mainNumber" validate:"required,min=10"`
	TaxID      string `json:"CPForCNPJ" validate:"required,min=10,max=14"`
}

// CreateAddressRequest represents the request body for registering an address
type CreateAddressRequest struct {
	ClientID uint   `json:"clientId" validate:"required"`
	Zip      string `json:"CEP" validate:"omitempty,min=8"`
	City     string `json:"cidade" validate:"required,min=3"`
	Street   string `json:"rua" validate:"required,min=3"`
	District string `json:"bairro" validate:"required,min=3"`
	Number   string `json:"numero" validate:"required,min=1"`
	Phone    string `json:"telefone" validate:"required,min=8"`
}

// CreateClient handles POST /clients
func (h *ClientHandler) CreateClient(c echo.Context) error {
	var req CreateClientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	client, err := h.clientUC.CreateClient(c.Request().Context(), &usecase.CreateClientInput{
		Name:       req.Name,
		Email:      req.Email,
		MainNumber: req.MainNumber,
		TaxID:      req.TaxID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toClientResponse(client))
}

// ListClients handles GET /clients
func (h *ClientHandler) ListClients(c echo.Context) error {
	clients, err := h.clientUC.ListClients(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(clients, toClientResponse))
}

// CreateAddress handles POST /address
func (h *ClientHandler) CreateAddress(c echo.Context) error {
	var req CreateAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	address, err := h.addressUC.CreateAddress(c.Request().Context(), &usecase.CreateAddressInput{
		ClientID: req.ClientID,
		Street:   req.Street,
		Number:   req.Number,
		District: req.District,
		City:     req.City,
		Zip:      req.Zip,
		Phone:    req.Phone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAddressResponse(address))
}

// ListAddresses handles GET /address/all/:clientId
func (h *ClientHandler) ListAddresses(c echo.Context) error {
	clientID, err := strconv.ParseUint(c.Param("clientId"), 10, 0)
	if err != nil || clientID == 0 {
		return response.BadRequest(c, "INVALID_ID", "Invalid client ID")
	}

	addresses, err := h.addressUC.ListAddressesByClient(c.Request().Context(), uint(clientID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(addresses, toAddressResponse))
}
