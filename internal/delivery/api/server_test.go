package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/config"
	apimiddleware "backoffice/internal/delivery/api/middleware"
	"backoffice/internal/delivery/api/response"
	"backoffice/internal/delivery/api/router"
	"backoffice/internal/delivery/api/router/handler"
	"backoffice/internal/domain/service"
	"backoffice/internal/infra/auth"
	"backoffice/internal/infra/persistence/model"
	"backoffice/internal/infra/persistence/postgres"
	"backoffice/internal/infra/persistence/sqlitetest"
	"backoffice/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testAPI struct {
	e      *echo.Echo
	db     *gorm.DB
	tokens service.TokenService
}

type envelope[T any] struct {
	Data  T                   `json:"data"`
	Error *response.ErrorInfo `json:"error"`
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.SecretKey.Access = "test-access-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := sqlitetest.Open(t)

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	clientRepo := postgres.NewClientRepository(db)
	addressRepo := postgres.NewAddressRepository(db)
	productRepo := postgres.NewProductRepository(db)
	paymentTypeRepo := postgres.NewPaymentTypeRepository(db)
	orderRepo := postgres.NewOrderRepository(db)

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo:     userRepo,
		SessionRepo:  sessionRepo,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokens,
		Logger:       logger,
	})
	clientParams := impl.ClientServiceParams{ClientRepo: clientRepo, AddressRepo: addressRepo, Logger: logger}

	routerParams := router.RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			AuthUC: authUC,
			UserUC: impl.NewUserService(userRepo),
			Logger: logger,
		}),
		ClientHandler: handler.NewClientHandler(handler.ClientHandlerParams{
			ClientUC:  impl.NewClientService(clientParams),
			AddressUC: impl.NewAddressService(clientParams),
		}),
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{
			ProductUC:     impl.NewProductService(productRepo),
			PaymentTypeUC: impl.NewPaymentTypeService(paymentTypeRepo),
		}),
		OrderHandler: handler.NewOrderHandler(handler.OrderHandlerParams{
			OrderUC: impl.NewOrderService(impl.OrderServiceParams{
				TxManager:       postgres.NewTransactionManager(db),
				ClientRepo:      clientRepo,
				AddressRepo:     addressRepo,
				ProductRepo:     productRepo,
				PaymentTypeRepo: paymentTypeRepo,
				OrderRepo:       orderRepo,
				Logger:          logger,
			}),
			Logger: logger,
		}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{AuthUC: authUC}),
	}

	return &testAPI{
		e:      newEchoServer(cfg, logger, routerParams),
		db:     db,
		tokens: tokens,
	}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var env envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

// signIn registers an operator and returns a session-backed token and the user id.
func (a *testAPI) signIn(t *testing.T) (string, uint) {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/auth/sign-up", "", map[string]string{
		"name":           "Operator",
		"email":          "operator@example.com",
		"password":       "secret123",
		"passwordVerify": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = a.do(t, http.MethodPost, "/auth/sign-in", "", map[string]string{
		"email":    "operator@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	out := decode[handler.SignInResponse](t, rec)
	require.NotEmpty(t, out.Data.Token)

	return out.Data.Token, out.Data.User.ID
}

func (a *testAPI) createClient(t *testing.T, token, name, email, taxID string) uint {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/clients", token, map[string]string{
		"name":       name,
		"email":      email,
		"mainNumber": "11999990000",
		"CPForCNPJ":  taxID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return decode[handler.ClientResponse](t, rec).Data.ID
}

func (a *testAPI) createAddress(t *testing.T, token string, clientID uint, street string) uint {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/address", token, map[string]any{
		"clientId": clientID,
		"CEP":      "01001000",
		"cidade":   "Sao Paulo",
		"rua":      street,
		"bairro":   "Centro",
		"numero":   "100",
		"telefone": "1133334444",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return decode[handler.AddressResponse](t, rec).Data.ID
}

func (a *testAPI) createProduct(t *testing.T, token, code, name string) uint {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/products/new", token, map[string]any{
		"COD":          code,
		"name":         name,
		"defaultPrice": 10.5,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return decode[handler.ProductResponse](t, rec).Data.ID
}

func (a *testAPI) createPaymentType(t *testing.T, token, kind string) uint {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/payment-type", token, map[string]string{"type": kind})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return decode[handler.PaymentTypeResponse](t, rec).Data.ID
}

func TestAPI_Health(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_Auth(t *testing.T) {
	api := newTestAPI(t)

	t.Run("sign-up with mismatched passwords", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/auth/sign-up", "", map[string]string{
			"name":           "Operator",
			"email":          "mismatch@example.com",
			"password":       "secret123",
			"passwordVerify": "secret124",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "PASSWORD_MISMATCH", decode[any](t, rec).Error.Code)
	})

	token, userID := api.signIn(t)

	t.Run("duplicate email", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/auth/sign-up", "", map[string]string{
			"name":           "Other",
			"email":          "operator@example.com",
			"password":       "secret123",
			"passwordVerify": "secret123",
		})

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/auth/sign-in", "", map[string]string{
			"email":    "operator@example.com",
			"password": "wrong-pass",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/auth/sign-in", "", map[string]string{
			"email":    "nobody@example.com",
			"password": "secret123",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		rec := api.do(t, http.MethodGet, "/clients", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token without session", func(t *testing.T) {
		orphan, err := api.tokens.GenerateToken(userID)
		require.NoError(t, err)

		rec := api.do(t, http.MethodGet, "/clients", orphan, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("session token", func(t *testing.T) {
		rec := api.do(t, http.MethodGet, "/clients", token, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("first user", func(t *testing.T) {
		rec := api.do(t, http.MethodGet, "/user/first", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID, decode[handler.UserResponse](t, rec).Data.ID)
	})
}

func TestAPI_ClientUniqueness(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.signIn(t)
	api.createClient(t, token, "Acme Ltda", "acme@example.com", "12345678901")

	tests := []struct {
		name string
		body  map[string]string
	}{
		{"same name", map[string]string{"name": "Acme Ltda", "email": "a@example.com", "CPForCNPJ": "10000000001"}},
		{"same email", map[string]string{"name": "Acme Two", "email": "acme@example.com", "CPForCNPJ": "10000000002"}},
		{"same tax id", map[string]string{"name": "Acme Three", "email": "b@example.com", "CPForCNPJ": "12345678901"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.body["mainNumber"] = "11999990000"
			rec := api.do(t, http.MethodPost, "/clients", token, tt.body)

			assert.Equal(t, http.StatusConflict, rec.Code)
			assert.Equal(t, "CLIENT_ALREADY_EXISTS", decode[any](t, rec).Error.Code)
		})
	}

	rec := api.do(t, http.MethodGet, "/clients", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]handler.ClientResponse](t, rec).Data, 1)
}

func TestAPI_ProductUniqueness(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.signIn(t)
	api.createProduct(t, token, "P-001", "Widget")

	for _, body := range []map[string]any{
		{"COD": "P-001", "name": "Gadget", "defaultPrice": 1},
		{"COD": "P-002", "name": "Widget", "defaultPrice": 1},
	} {
		rec := api.do(t, http.MethodPost, "/products/new", token, body)
		assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
	}

	rec := api.do(t, http.MethodPost, "/payment-type", token, map[string]string{"type": "pix"})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = api.do(t, http.MethodPost, "/payment-type", token, map[string]string{"type": "pix"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAPI_AddressesScopedToClient(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.signIn(t)
	first := api.createClient(t, token, "First Client", "first@example.com", "11111111111")
	second := api.createClient(t, token, "Second Client", "second@example.com", "22222222222")
	addressID := api.createAddress(t, token, first, "Rua Um")

	rec := api.do(t, http.MethodGet, fmt.Sprintf("/address/all/%d", first), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	addresses := decode[[]handler.AddressResponse](t, rec).Data
	require.Len(t, addresses, 1)
	assert.Equal(t, addressID, addresses[0].ID)

	rec = api.do(t, http.MethodGet, fmt.Sprintf("/address/all/%d", second), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]handler.AddressResponse](t, rec).Data)

	rec = api.do(t, http.MethodGet, "/address/all/999", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(t, http.MethodGet, "/address/all/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_Orders(t *testing.T) {
	api := newTestAPI(t)
	token, userID := api.signIn(t)
	clientID := api.createClient(t, token, "Order Client", "orders@example.com", "33333333333")
	addressID := api.createAddress(t, token, clientID, "Rua Pedido")
	otherClient := api.createClient(t, token, "Other Client", "other@example.com", "44444444444")
	foreignAddress := api.createAddress(t, token, otherClient, "Rua Alheia")

	productIDs := []uint{
		api.createProduct(t, token, "P-100", "Chair"),
		api.createProduct(t, token, "P-200", "Table"),
		api.createProduct(t, token, "P-300", "Lamp"),
	}
	var paymentTypeIDs []uint
	for _, kind := range []string{"pix", "cash", "credit", "debit", "voucher"} {
		paymentTypeIDs = append(paymentTypeIDs, api.createPaymentType(t, token, kind))
	}

	// 15 lines of 2 x 10.50 = 315, split in 5 payments of 63.
	items := make([]map[string]any, 15)
	for i := range items {
		items[i] = map[string]any{"productId": productIDs[i%len(productIDs)], "itemAmount": 2, "itemPrice": "10.50"}
	}
	payments := func(value string) []map[string]any {
		out := make([]map[string]any, len(paymentTypeIDs))
		for i, id := range paymentTypeIDs {
			out[i] = map[string]any{"paymentTypeId": id, "value": value}
		}

		return out
	}
	orderBody := func(address uint, value string) map[string]any {
		return map[string]any{
			"userId":      userID,
			"clientId":    clientID,
			"addressId":   address,
			"itens":       items,
			"paymentType": payments(value),
		}
	}

	countRows := func(t *testing.T, m any) int64 {
		var n int64
		require.NoError(t, api.db.Model(m).Count(&n).Error)

		return n
	}

	t.Run("mismatched totals persist nothing", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/ordder", token, orderBody(addressID, "60"))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "ORDER_TOTAL_MISMATCH", decode[any](t, rec).Error.Code)
		assert.Zero(t, countRows(t, &model.OrderModel{}))
		assert.Zero(t, countRows(t, &model.OrderItemModel{}))
		assert.Zero(t, countRows(t, &model.PaymentModel{}))
	})

	t.Run("address of another client", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/ordder", token, orderBody(foreignAddress, "63"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "ADDRESS_NOT_FOUND", decode[any](t, rec).Error.Code)
	})

	t.Run("empty items", func(t *testing.T) {
		body := orderBody(addressID, "63")
		body["itens"] = []map[string]any{}
		rec := api.do(t, http.MethodPost, "/ordder", token, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown product", func(t *testing.T) {
		body := orderBody(addressID, "63")
		body["itens"] = []map[string]any{{"productId": 999, "itemAmount": 1, "itemPrice": "315"}}
		rec := api.do(t, http.MethodPost, "/ordder", token, body)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("fifteen items and five payments", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/ordder", token, orderBody(addressID, "63"))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		created := decode[handler.OrderResponse](t, rec).Data
		assert.NotZero(t, created.ID)
		assert.Len(t, created.Items, 15)
		assert.Len(t, created.Payments, 5)
		assert.True(t, decimal.NewFromInt(315).Equal(created.Total), created.Total.String())

		rec = api.do(t, http.MethodGet, "/ordder", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		orders := decode[[]handler.OrderResponse](t, rec).Data
		require.Len(t, orders, 1)
		assert.Equal(t, created.ID, orders[0].ID)
		assert.Len(t, orders[0].Items, 15)
		assert.Len(t, orders[0].Payments, 5)
	})
}
