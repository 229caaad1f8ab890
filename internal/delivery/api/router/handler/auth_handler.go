// Package handler contains the echo handlers of the back-office API.
package handler

import (
	"log/slog"
	"net/http"

	"backoffice/internal/delivery/api/response"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// AuthHandler serves sign-up, sign-in and the public user lookup.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// SignUpRequest represents the request body for sign-up
type SignUpRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=5"`
	PasswordVerify string `json:"passwordVerify" validate:"required"`
}

// SignInRequest represents the request body for sign-in
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
}

// SignUp registers an operator account.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-up input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	user, err := h.authUC.SignUp(c.Request().Context(), &usecase.SignUpInput{
		Email:          req.Email,
		Name:           req.Name,
		Password:       req.Password,
		PasswordVerify: req.PasswordVerify,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user))
}

// SignIn exchanges credentials for a bearer token.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	out, err := h.authUC.SignIn(c.Request().Context(), &usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &SignInResponse{
		User:  toUserResponse(out.User),
		Token: out.Token,
	})
}

// GetFirstUser returns the oldest operator account.
func (h *AuthHandler) GetFirstUser(c echo.Context) error {
	user, err := h.userUC.GetFirstUser(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}
