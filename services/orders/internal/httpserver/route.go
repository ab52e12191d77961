package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func Register(e *echo.Echo, h *OrderHTTP) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "orders"})
	})

	api := e.Group("/api/v1")
	api.GET("/orders", h.GetOrders)
	api.POST("/orders", h.CreateOrder)
}
