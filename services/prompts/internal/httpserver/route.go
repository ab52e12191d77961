package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	PromptHandler *PromptHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "prompts"})
	})

	prompts := e.Group("/api/v1/prompts")
	prompts.GET("", d.PromptHandler.GetPrompts)
	prompts.GET("/:id", d.PromptHandler.GetPrompt)
	prompts.PUT("/:id", d.PromptHandler.UpdatePrompt)
	prompts.POST("/:id/reset", d.PromptHandler.ResetPrompt)
}
