package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/vinyl_shop/pkg/logging"
	"github.com/Skotchmaster/vinyl_shop/services/auth/internal/service"
	"github.com/Skotchmaster/vinyl_shop/services/auth/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Register(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			l.Warn("register_failed", "status", 400, "reason", "email taken")
			return echo.NewHTTPError(http.StatusBadRequest, "Email already registered")
		}
		if errors.Is(err, service.ErrValidation) {
			l.Warn("register_failed", "status", 400, "reason", "validation", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("register_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot register user")
	}

	l.Info("register_success", "user_id", user.ID)
	return c.JSON(http.StatusCreated, transport.RegisterResponse{ID: user.ID, Email: user.Email})
}

// Token implements the password grant form used by the storefront:
// username and password arrive urlencoded, the reply carries a bearer
// access token.
func (h *AuthHTTP) Token(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.token")

	email := c.FormValue("username")
	password := c.FormValue("password")
	if email == "" || password == "" {
		l.Warn("token_failed", "status", 400, "reason", "missing credentials")
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}

	token, err := h.Svc.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			l.Warn("token_failed", "status", 401, "reason", "invalid credentials")
			return echo.NewHTTPError(http.StatusUnauthorized, "Incorrect email or password")
		}
		l.Error("token_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot issue token")
	}

	l.Info("token_success")
	return c.JSON(http.StatusOK, transport.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *AuthHTTP) Me(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.me")

	token := bearerToken(c)
	if token == "" {
		l.Warn("me_failed", "status", 401, "reason", "missing bearer token")
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}

	user, err := h.Svc.CurrentUser(ctx, token)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			l.Warn("me_failed", "status", 401, "reason", "invalid token")
			return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
		}
		l.Error("me_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot resolve user")
	}

	return c.JSON(http.StatusOK, transport.MeResponse{ID: user.ID, Email: user.Email})
}

func bearerToken(c echo.Context) string {
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
