package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/vinyl_shop/pkg/logging"
	"github.com/Skotchmaster/vinyl_shop/services/cart/internal/service"
	"github.com/Skotchmaster/vinyl_shop/services/cart/internal/transport"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) Calculate(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.calculate")

	var req transport.CartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("calculate_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	resp := h.Svc.Calculate(ctx, req.ProductIDs)
	l.Info("calculate_success", "requested", len(req.ProductIDs), "found", len(resp.Items))
	return c.JSON(http.StatusOK, resp)
}
