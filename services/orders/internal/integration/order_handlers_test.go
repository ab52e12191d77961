package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/vinyl_shop/pkg/authclient"
	"github.com/Skotchmaster/vinyl_shop/pkg/catalogclient"
	"github.com/Skotchmaster/vinyl_shop/services/orders/internal/httpserver"
	"github.com/Skotchmaster/vinyl_shop/services/orders/internal/models"
	"github.com/Skotchmaster/vinyl_shop/services/orders/internal/notify"
	"github.com/Skotchmaster/vinyl_shop/services/orders/internal/recclient"
	"github.com/Skotchmaster/vinyl_shop/services/orders/internal/repo"
	"github.com/Skotchmaster/vinyl_shop/services/orders/internal/service"
	"github.com/Skotchmaster/vinyl_shop/services/orders/internal/transport"
)

type fakeAuth struct {
	user *authclient.UserInfo
	err  error
}

func (f *fakeAuth) CurrentUser(context.Context, string) (*authclient.UserInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type fakeCatalog struct {
	products []catalogclient.Product
	err      error
}

func (f *fakeCatalog) ListProducts(context.Context) ([]catalogclient.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

type fakeRecommender struct {
	simpleCalls int
	fullCalls   int
	simpleReply string
	simpleErr   error
	recs        []recclient.Recommendation
	recsErr     error
}

func (f *fakeRecommender) SimplePrompt(context.Context, string) (string, error) {
	f.simpleCalls++
	return f.simpleReply, f.simpleErr
}

func (f *fakeRecommender) Recommendations(context.Context, string, int) ([]recclient.Recommendation, error) {
	f.fullCalls++
	return f.recs, f.recsErr
}

type testEnv struct {
	e  *echo.Echo
	db *gorm.DB
}

func newEnv(t *testing.T, auth httpserver.Auth, catalog service.Catalog, rec service.Recommender) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Order{}, &models.OrderItem{}))

	svc := &service.OrderService{
		Repo:        &repo.GormRepo{DB: db},
		Catalog:     catalog,
		Recommender: rec,
		Mailer:      notify.NewMailer(notify.EmailConfig{}),
		Telegram:    notify.NewTelegram("", ""),
	}

	e := echo.New()
	httpserver.Register(e, &httpserver.OrderHTTP{Svc: svc, Auth: auth})
	return &testEnv{e: e, db: db}
}

func activeUser() *fakeAuth {
	return &fakeAuth{user: &authclient.UserInfo{ID: 1, Email: "buyer@example.com", IsActive: true}}
}

func stockedCatalog() *fakeCatalog {
	return &fakeCatalog{products: []catalogclient.Product{
		{ID: 1, Name: "Abbey Road", Artist: "The Beatles", Price: 29.99},
		{ID: 5, Name: "The Dark Side of the Moon", Artist: "Pink Floyd", Price: 34.99},
	}}
}

func doJSON(t *testing.T, e *echo.Echo, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	env := newEnv(t, activeUser(), stockedCatalog(), &fakeRecommender{})
	rec := doJSON(t, env.e, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateOrderRequiresAuth(t *testing.T) {
	env := newEnv(t, activeUser(), stockedCatalog(), &fakeRecommender{})

	rec := doJSON(t, env.e, http.MethodPost, "/api/v1/orders", "", transport.CreateOrderRequest{ProductIDs: []string{"1"}})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateOrderRejectsInvalidToken(t *testing.T) {
	auth := &fakeAuth{err: fmt.Errorf("%w: token expired", authclient.ErrUnauthorized)}
	env := newEnv(t, auth, stockedCatalog(), &fakeRecommender{})

	rec := doJSON(t, env.e, http.MethodPost, "/api/v1/orders", "bad-token", transport.CreateOrderRequest{ProductIDs: []string{"1"}})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateOrderAuthServiceDown(t *testing.T) {
	auth := &fakeAuth{err: fmt.Errorf("auth request: connection refused")}
	env := newEnv(t, auth, stockedCatalog(), &fakeRecommender{})

	rec := doJSON(t, env.e, http.MethodPost, "/api/v1/orders", "token", transport.CreateOrderRequest{ProductIDs: []string{"1"}})
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCreateOrderEmptyProducts(t *testing.T) {
	env := newEnv(t, activeUser(), stockedCatalog(), &fakeRecommender{})

	rec := doJSON(t, env.e, http.MethodPost, "/api/v1/orders", "token", transport.CreateOrderRequest{ProductIDs: []string{}})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrderPersistsAndPrices(t *testing.T) {
	env := newEnv(t, activeUser(), stockedCatalog(), &fakeRecommender{simpleReply: "Отличный вкус!"})

	rec := doJSON(t, env.e, http.MethodPost, "/api/v1/orders", "token", transport.CreateOrderRequest{
		ProductIDs: []string{"1", "5", "42"},
		Quantities: map[string]int{"1": 2},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.CreateOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.OrderID)
	require.Equal(t, "Заказ успешно создан", resp.Message)
	require.Equal(t, []string{"1", "5", "42"}, resp.ProductIDs)
	require.Equal(t, 2, resp.TotalItems)

	var order models.Order
	require.NoError(t, env.db.Preload("Items").First(&order, "order_id = ?", resp.OrderID).Error)
	require.Equal(t, "buyer@example.com", order.UserEmail)
	require.InDelta(t, 29.99*2+34.99, order.TotalPrice, 0.001)
	require.Len(t, order.Items, 3)

	byVinyl := map[uint]models.OrderItem{}
	for _, item := range order.Items {
		byVinyl[item.VinylID] = item
	}
	require.Equal(t, 2, byVinyl[1].Quantity)
	require.InDelta(t, 29.99, byVinyl[1].PriceAtPurchase, 0.001)
	require.Equal(t, 1, byVinyl[5].Quantity)
	require.Equal(t, 1, byVinyl[42].Quantity)
	require.Equal(t, 0.0, byVinyl[42].PriceAtPurchase)
}

func TestCreateOrderTotalItemsDefaultsToCount(t *testing.T) {
	env := newEnv(t, activeUser(), stockedCatalog(), &fakeRecommender{})

	rec := doJSON(t, env.e, http.MethodPost, "/api/v1/orders", "token", transport.CreateOrderRequest{
		ProductIDs: []string{"1", "5"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.CreateOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.TotalItems)
	require.NotNil(t, resp.Quantities)
}

func TestCreateOrderSurvivesCatalogOutage(t *testing.T) {
	env := newEnv(t, activeUser(), &fakeCatalog{err: fmt.Errorf("connection refused")}, &fakeRecommender{})

	rec := doJSON(t, env.e, http.MethodPost, "/api/v1/orders", "token", transport.CreateOrderRequest{
		ProductIDs: []string{"1", "5"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.CreateOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	var order models.Order
	require.NoError(t, env.db.Preload("Items").First(&order, "order_id = ?", resp.OrderID).Error)
	require.Equal(t, 0.0, order.TotalPrice)
	require.Len(t, order.Items, 2)
}

func TestCreateOrderRecommendationFallback(t *testing.T) {
	recStub := &fakeRecommender{
		simpleReply: "Советуем послушать ещё",
		recsErr:     fmt.Errorf("status 500"),
	}
	env := newEnv(t, activeUser(), stockedCatalog(), recStub)

	rec := doJSON(t, env.e, http.MethodPost, "/api/v1/orders", "token", transport.CreateOrderRequest{
		ProductIDs: []string{"1"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	require.Equal(t, 1, recStub.fullCalls)
	// Praise plus the recommendations fallback.
	require.Equal(t, 2, recStub.simpleCalls)
}

func TestCreateOrderSurvivesRecommenderOutage(t *testing.T) {
	recStub := &fakeRecommender{
		simpleErr: fmt.Errorf("connection refused"),
		recsErr:   fmt.Errorf("connection refused"),
	}
	env := newEnv(t, activeUser(), stockedCatalog(), recStub)

	rec := doJSON(t, env.e, http.MethodPost, "/api/v1/orders", "token", transport.CreateOrderRequest{
		ProductIDs: []string{"1"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetOrders(t *testing.T) {
	env := newEnv(t, activeUser(), stockedCatalog(), &fakeRecommender{})

	rec := doJSON(t, env.e, http.MethodGet, "/api/v1/orders", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.OrdersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Orders)
	require.Empty(t, resp.Orders)

	doJSON(t, env.e, http.MethodPost, "/api/v1/orders", "token", transport.CreateOrderRequest{ProductIDs: []string{"1"}})
	doJSON(t, env.e, http.MethodPost, "/api/v1/orders", "token", transport.CreateOrderRequest{ProductIDs: []string{"5"}})

	rec = doJSON(t, env.e, http.MethodGet, "/api/v1/orders", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Orders, 2)
	require.Len(t, resp.Orders[0].Items, 1)
}
