package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/vinyl_shop/services/catalog/internal/httpserver"
	"github.com/Skotchmaster/vinyl_shop/services/catalog/internal/models"
	"github.com/Skotchmaster/vinyl_shop/services/catalog/internal/repo"
	"github.com/Skotchmaster/vinyl_shop/services/catalog/internal/seed"
	"github.com/Skotchmaster/vinyl_shop/services/catalog/internal/service"
	"github.com/Skotchmaster/vinyl_shop/services/catalog/internal/transport"
)

type testEnv struct {
	E  *echo.Echo
	DB *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.Artist{}, &models.Category{}, &models.VinylRecord{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	svc := &service.CatalogService{Repo: &repo.GormRepo{DB: db}}
	e := echo.New()
	httpserver.Register(e, &httpserver.Deps{
		CatalogHandler: &httpserver.CatalogHTTP{Svc: svc},
	})

	return &testEnv{E: e, DB: db}
}

func (env *testEnv) doJSON(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "ok", resp["status"])
}

func TestSeedAndListProducts(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, seed.Run(context.Background(), env.DB))

	rec := env.doJSON(t, http.MethodGet, "/api/v1/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Products []transport.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 37)

	first := resp.Products[0]
	require.EqualValues(t, 1, first.ID)
	require.Equal(t, "Abbey Road", first.Name)
	require.Equal(t, "The Beatles", first.Artist)
	require.EqualValues(t, 1, first.ArtistID)
	require.InDelta(t, 3500.0, first.Price, 0.001)

	// seeding again must not duplicate rows
	require.NoError(t, seed.Run(context.Background(), env.DB))
	rec = env.doJSON(t, http.MethodGet, "/api/v1/products", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 37)
}

func TestGetProduct(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, seed.Run(context.Background(), env.DB))

	rec := env.doJSON(t, http.MethodGet, "/api/v1/products/5", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "The Dark Side of the Moon", resp.Name)
	require.Equal(t, "Pink Floyd", resp.Artist)

	rec = env.doJSON(t, http.MethodGet, "/api/v1/products/9999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.doJSON(t, http.MethodGet, "/api/v1/products/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProductWithNewArtist(t *testing.T) {
	env := newTestEnv(t)

	name := "Joy Division"
	body := transport.CreateProductRequest{
		Name:        "Unknown Pleasures",
		ArtistName:  &name,
		Description: "Debut album, 1979",
		Price:       2900,
	}

	rec := env.doJSON(t, http.MethodPost, "/api/v1/admin/products", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp transport.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Unknown Pleasures", resp.Name)
	require.Equal(t, "Joy Division", resp.Artist)
	require.NotZero(t, resp.ArtistID)

	// same name, case-insensitive, reuses the artist row
	lower := "joy division"
	body2 := transport.CreateProductRequest{
		Name:       "Closer",
		ArtistName: &lower,
		Price:      3100,
	}
	rec = env.doJSON(t, http.MethodPost, "/api/v1/admin/products", body2)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp2 transport.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp2))
	require.Equal(t, resp.ArtistID, resp2.ArtistID)
	require.Equal(t, "Joy Division", resp2.Artist)
}

func TestCreateProductValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/api/v1/admin/products", transport.CreateProductRequest{
		Name: "No Artist",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	name := "Someone"
	rec = env.doJSON(t, http.MethodPost, "/api/v1/admin/products", transport.CreateProductRequest{
		Name:       "",
		ArtistName: &name,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.doJSON(t, http.MethodPost, "/api/v1/admin/products", transport.CreateProductRequest{
		Name:       "Negative",
		ArtistName: &name,
		Price:      -5,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	unknown := uint(777)
	rec = env.doJSON(t, http.MethodPost, "/api/v1/admin/products", transport.CreateProductRequest{
		Name:     "Ghost Artist",
		ArtistID: &unknown,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProduct(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, seed.Run(context.Background(), env.DB))

	desc := "Updated description"
	price := 4444.0
	rec := env.doJSON(t, http.MethodPut, "/api/v1/admin/products/1", transport.UpdateProductRequest{
		Description: &desc,
		Price:       &price,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Abbey Road", resp.Name, "untouched fields keep their values")
	require.Equal(t, desc, resp.Description)
	require.InDelta(t, price, resp.Price, 0.001)

	rec = env.doJSON(t, http.MethodPut, "/api/v1/admin/products/9999", transport.UpdateProductRequest{
		Description: &desc,
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, seed.Run(context.Background(), env.DB))

	rec := env.doJSON(t, http.MethodDelete, "/api/v1/admin/products/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.doJSON(t, http.MethodGet, "/api/v1/products/1", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.doJSON(t, http.MethodDelete, "/api/v1/admin/products/1", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetArtists(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, seed.Run(context.Background(), env.DB))

	rec := env.doJSON(t, http.MethodGet, "/api/v1/admin/artists", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Artists []models.Artist `json:"artists"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Artists, 25)
	require.Equal(t, "The Beatles", resp.Artists[0].Name)
}
