package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	AuthHandler *AuthHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.POST("/register", d.AuthHandler.Register)
	e.POST("/token", d.AuthHandler.Token)
	e.GET("/users/me", d.AuthHandler.Me)
}
