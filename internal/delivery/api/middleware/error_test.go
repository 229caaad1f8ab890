package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/internal/delivery/api/response"
	domainerrors "backoffice/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:       "unmapped error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   domainerrors.ErrInternalError.ErrorCode(),
		},
		{
			name:       "failed transaction",
			err:        errors.Wrap(domainerrors.ErrTransactionFailed, "failed to execute order transaction"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "TRANSACTION_FAILED",
		},
		{
			name:        "validation error keeps details",
			err:         domainerrors.ErrValidationFailed.WithDetails("item 0 is malformed"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "item 0 is malformed",
		},
		{
			name:       "database error hides details",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("conn reset"), "failed to list orders"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATABASE_EXECUTE_FAILED",
		},
		{
			name:       "echo http error",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "HTTP_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/ordder", nil), rec)

			NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
		})
	}
}
