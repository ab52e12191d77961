package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/vinyl_shop/pkg/logging"
	"github.com/Skotchmaster/vinyl_shop/pkg/ratelimit"
	"github.com/Skotchmaster/vinyl_shop/services/recommender/internal/service"
)

// RateLimit rejects requests over the per-client budget. A nil limiter
// disables the check.
func RateLimit(limiter *ratelimit.FixedWindowLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limiter == nil {
				return next(c)
			}
			if !limiter.Allow(c.RealIP()) {
				logging.FromContext(c.Request().Context()).Warn("request throttled", "status", "rate_limited", "client_ip", c.RealIP())
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests")
			}
			return next(c)
		}
	}
}

func Register(e *echo.Echo, svc *service.RecommenderService, limiter *ratelimit.FixedWindowLimiter) {
	h := &RecommenderHTTP{Service: svc}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "recommender"})
	})

	api := e.Group("/api/v1")
	api.GET("/models", h.Models)

	limited := api.Group("", RateLimit(limiter))
	limited.POST("/recommendations/generate", h.Generate)
	limited.POST("/recommendations/generate-description/:product_id", h.GenerateDescription)
	limited.POST("/chat", h.Chat)
	limited.POST("/chat/message", h.Chat)
}
