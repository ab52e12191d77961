// Package httpserver exposes the user-profile API. Profiles live in the
// auth service for now, so the endpoints answer with empty placeholders
// until the profile data moves here.
package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type usersResponse struct {
	Users []any `json:"users"`
}

func Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "users"})
	})

	api := e.Group("/api/v1")
	api.GET("/users", func(c echo.Context) error {
		return c.JSON(http.StatusOK, usersResponse{Users: []any{}})
	})
	api.POST("/users", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "User creation is handled by the auth service"})
	})
}
