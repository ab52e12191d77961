package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/vinyl_shop/services/users/internal/httpserver"
)

func newEnv() *echo.Echo {
	e := echo.New()
	httpserver.Register(e)
	return e
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newEnv().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestListUsersEmpty(t *testing.T) {
	rec := httptest.NewRecorder()
	newEnv().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string][]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	users, ok := resp["users"]
	require.True(t, ok)
	require.Empty(t, users)
}

func TestCreateUserRedirectsToAuth(t *testing.T) {
	rec := httptest.NewRecorder()
	newEnv().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/users", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["message"])
}
