package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/vinyl_shop/pkg/catalogclient"
	"github.com/Skotchmaster/vinyl_shop/services/cart/internal/httpserver"
	"github.com/Skotchmaster/vinyl_shop/services/cart/internal/service"
	"github.com/Skotchmaster/vinyl_shop/services/cart/internal/transport"
)

func newCatalogStub(t *testing.T, products []catalogclient.Product) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"products": products})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newEnv(catalogURL string) *echo.Echo {
	svc := &service.CartService{Catalog: catalogclient.NewClient(catalogURL)}
	e := echo.New()
	httpserver.Register(e, &httpserver.Deps{CartHandler: &httpserver.CartHTTP{Svc: svc}})
	return e
}

func calculate(t *testing.T, e *echo.Echo, ids []string) transport.CartResponse {
	body, err := json.Marshal(transport.CartRequest{ProductIDs: ids})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/calculate", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCalculateFromCatalog(t *testing.T) {
	stub := newCatalogStub(t, []catalogclient.Product{
		{ID: 1, Name: "Abbey Road", Artist: "The Beatles", Price: 3500, CoverURL: "http://covers/1"},
		{ID: 5, Name: "The Dark Side of the Moon", Artist: "Pink Floyd", Price: 4000},
	})
	e := newEnv(stub.URL)

	resp := calculate(t, e, []string{"1", "5"})
	require.Len(t, resp.Items, 2)
	require.Equal(t, "Abbey Road", resp.Items[0].Title)
	require.Equal(t, "The Beatles", resp.Items[0].Artist)
	require.InDelta(t, 7500.0, resp.Total, 0.001)
}

func TestCalculateFallsBackToMockForUnknownID(t *testing.T) {
	stub := newCatalogStub(t, []catalogclient.Product{
		{ID: 1, Name: "Abbey Road", Artist: "The Beatles", Price: 3500},
	})
	e := newEnv(stub.URL)

	// id 2 is not in the stub catalog but exists in the mock table
	resp := calculate(t, e, []string{"1", "2"})
	require.Len(t, resp.Items, 2)
	require.Equal(t, "Sgt. Pepper's Lonely Hearts Club Band", resp.Items[1].Title)
	require.InDelta(t, 3500.0+32.99, resp.Total, 0.001)
}

func TestCalculateWithCatalogDown(t *testing.T) {
	e := newEnv("http://127.0.0.1:1")

	resp := calculate(t, e, []string{"1", "5"})
	require.Len(t, resp.Items, 2)
	require.InDelta(t, 29.99+34.99, resp.Total, 0.001)
}

func TestCalculateSkipsUnknownIDs(t *testing.T) {
	e := newEnv("http://127.0.0.1:1")

	resp := calculate(t, e, []string{"999", "abc"})
	require.Empty(t, resp.Items)
	require.Zero(t, resp.Total)
}

func TestCalculateOrderIndependentTotal(t *testing.T) {
	stub := newCatalogStub(t, []catalogclient.Product{
		{ID: 1, Name: "A", Artist: "X", Price: 10},
		{ID: 2, Name: "B", Artist: "Y", Price: 20},
		{ID: 3, Name: "C", Artist: "Z", Price: 30},
	})
	e := newEnv(stub.URL)

	a := calculate(t, e, []string{"1", "2", "3"})
	b := calculate(t, e, []string{"3", "1", "2"})
	require.InDelta(t, a.Total, b.Total, 0.001)
	require.InDelta(t, 60.0, a.Total, 0.001)
}

func TestCalculateEmptyCart(t *testing.T) {
	e := newEnv("http://127.0.0.1:1")

	resp := calculate(t, e, nil)
	require.Empty(t, resp.Items)
	require.Zero(t, resp.Total)
}
