package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name     string
		header   string
		expectID func(t *testing.T, id string)
	}{
		{"keeps client id", "client-id", func(t *testing.T, id string) { assert.Equal(t, "client-id", id) }},
		{"generates when missing", "", func(t *testing.T, id string) { assert.Len(t, id, 36) }},
		{"replaces oversized id", strings.Repeat("x", maxRequestIDLength+1), func(t *testing.T, id string) { assert.Len(t, id, 36) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			err := mw.Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})(c)

			require.NoError(t, err)
			tt.expectID(t, seen)
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
		})
	}
}

func TestLoggerMiddleware_LogsServerErrorsOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	mw := NewLoggerMiddleware(logger, &config.Config{})

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/ok", nil), httptest.NewRecorder())
	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
	assert.Empty(t, buf.String())

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/boom", nil), httptest.NewRecorder())
	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusInternalServerError) })(c))
	assert.Contains(t, buf.String(), "uri=/boom")
	assert.Contains(t, buf.String(), "level=ERROR")
}
