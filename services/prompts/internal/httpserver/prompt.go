package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/vinyl_shop/pkg/logging"
	"github.com/Skotchmaster/vinyl_shop/services/prompts/internal/service"
)

type PromptHTTP struct {
	Svc *service.PromptService
}

type updateRequest struct {
	Template string `json:"template"`
}

func intQuery(c echo.Context, name string, def int) int {
	v := c.QueryParam(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func (h *PromptHTTP) GetPrompts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "prompts.get_prompts")

	skip := intQuery(c, "skip", 0)
	limit := intQuery(c, "limit", 100)

	prompts, err := h.Svc.GetPrompts(ctx, skip, limit)
	if err != nil {
		l.Error("get_prompts_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list prompts")
	}

	return c.JSON(http.StatusOK, prompts)
}

func (h *PromptHTTP) GetPrompt(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "prompts.get_prompt")

	id := c.Param("id")
	prompt, err := h.Svc.GetPrompt(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_prompt_failed", "status", 404, "prompt_id", id)
			return echo.NewHTTPError(http.StatusNotFound, "Prompt not found")
		}
		l.Error("get_prompt_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get prompt")
	}

	return c.JSON(http.StatusOK, prompt)
}

func (h *PromptHTTP) UpdatePrompt(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "prompts.update_prompt")

	id := c.Param("id")
	var req updateRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_prompt_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	prompt, err := h.Svc.UpdateTemplate(ctx, id, req.Template)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("update_prompt_failed", "status", 400, "reason", "validation", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("update_prompt_failed", "status", 404, "prompt_id", id)
			return echo.NewHTTPError(http.StatusNotFound, "Prompt not found")
		}
		l.Error("update_prompt_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update prompt")
	}

	l.Info("update_prompt_success", "prompt_id", id)
	return c.JSON(http.StatusOK, prompt)
}

func (h *PromptHTTP) ResetPrompt(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "prompts.reset_prompt")

	id := c.Param("id")
	prompt, err := h.Svc.Reset(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNoDefault) {
			l.Warn("reset_prompt_failed", "status", 400, "prompt_id", id, "reason", "no default")
			return echo.NewHTTPError(http.StatusBadRequest, "Prompt has no default value to reset to")
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("reset_prompt_failed", "status", 404, "prompt_id", id)
			return echo.NewHTTPError(http.StatusNotFound, "Prompt not found")
		}
		l.Error("reset_prompt_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot reset prompt")
	}

	l.Info("reset_prompt_success", "prompt_id", id)
	return c.JSON(http.StatusOK, prompt)
}
