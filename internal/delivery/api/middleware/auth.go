package middleware

import (
	"strings"

	"backoffice/internal/delivery/api/response"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
}

// AuthMiddleware guards routes that require a signed-in operator.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{authUC: params.AuthUC}
}

// Authenticate requires "Authorization: Bearer <token>" where the token verifies
// and a session row holds it. Every failure answers 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		token, ok := strings.CutPrefix(authHeader, bearerPrefix)
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		session, err := m.authUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token or no active session")
		}

		deliverycontext.SetUserID(c, session.UserID)

		return next(c)
	}
}

// GetUserID returns the id of the operator authenticated for this request.
func GetUserID(c echo.Context) (uint, bool) {
	return deliverycontext.GetUserID(c)
}
