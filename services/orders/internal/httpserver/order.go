package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/vinyl_shop/pkg/authclient"
	"github.com/Skotchmaster/vinyl_shop/pkg/logging"
	"github.com/Skotchmaster/vinyl_shop/services/orders/internal/service"
	"github.com/Skotchmaster/vinyl_shop/services/orders/internal/transport"
)

type Auth interface {
	CurrentUser(ctx context.Context, accessToken string) (*authclient.UserInfo, error)
}

type OrderHTTP struct {
	Svc  *service.OrderService
	Auth Auth
}

func (h *OrderHTTP) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	log := logging.FromContext(ctx).With("handler", "get_orders")

	orders, err := h.Svc.GetOrders(ctx)
	if err != nil {
		log.Error("orders fetch failed", "error", err.Error())
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, transport.OrdersResponse{Orders: orders})
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	log := logging.FromContext(ctx).With("handler", "create_order")

	token, ok := bearerToken(c)
	if !ok {
		log.Warn("order rejected", "status", "unauthorized", "reason", "missing bearer token")
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}

	user, err := h.Auth.CurrentUser(ctx, token)
	if err != nil {
		if errors.Is(err, authclient.ErrUnauthorized) {
			log.Warn("order rejected", "status", "unauthorized", "reason", "invalid token")
			return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
		}
		log.Error("auth service unavailable", "error", err.Error())
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Auth service unavailable")
	}

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("bind failed", "error", err.Error())
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if len(req.ProductIDs) == 0 {
		log.Warn("order rejected", "status", "validation_error", "reason", "empty product_ids")
		return echo.NewHTTPError(http.StatusBadRequest, "product_ids must not be empty")
	}

	resp, err := h.Svc.CreateOrder(ctx, user.Email, req)
	if err != nil {
		log.Error("order create failed", "error", err.Error())
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	log.Info("order created", "status", "ok", "order_id", resp.OrderID, "user_email", user.Email)
	return c.JSON(http.StatusOK, resp)
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", false
	}
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}
