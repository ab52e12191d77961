package httpserver

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/vinyl_shop/pkg/catalogclient"
	"github.com/Skotchmaster/vinyl_shop/pkg/logging"
	"github.com/Skotchmaster/vinyl_shop/services/recommender/internal/llm"
	"github.com/Skotchmaster/vinyl_shop/services/recommender/internal/promptclient"
	"github.com/Skotchmaster/vinyl_shop/services/recommender/internal/service"
	"github.com/Skotchmaster/vinyl_shop/services/recommender/internal/transport"
)

type RecommenderHTTP struct {
	Service *service.RecommenderService
}

// Generate handles both request shapes: a bare {"prompt": ...} body gets a
// free-form answer, a preferences form gets structured recommendations.
func (h *RecommenderHTTP) Generate(c echo.Context) error {
	ctx := c.Request().Context()
	log := logging.FromContext(ctx).With("handler", "generate_recommendations")

	var req transport.GenerateRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("bind failed", "error", err.Error())
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if req.Prompt != nil {
		text, err := h.Service.GenerateSimple(ctx, *req.Prompt, req.Model)
		if err != nil {
			return llmError(log, err)
		}
		log.Info("simple prompt answered", "status", "ok")
		return c.JSON(http.StatusOK, transport.SimpleResponse{Response: text})
	}

	resp, err := h.Service.Generate(ctx, req)
	if err != nil {
		return llmError(log, err)
	}
	log.Info("recommendations generated", "status", "ok", "count", len(resp.Recommendations))
	return c.JSON(http.StatusOK, resp)
}

func (h *RecommenderHTTP) GenerateDescription(c echo.Context) error {
	ctx := c.Request().Context()
	log := logging.FromContext(ctx).With("handler", "generate_description")

	id, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid product id")
	}

	resp, err := h.Service.GenerateDescription(ctx, uint(id))
	if err != nil {
		switch {
		case errors.Is(err, catalogclient.ErrNotFound):
			log.Warn("description rejected", "status", "not_found", "product_id", id)
			return echo.NewHTTPError(http.StatusNotFound, "Product not found")
		case errors.Is(err, service.ErrCatalogTimeout):
			log.Error("catalog timeout", "product_id", id, "error", err.Error())
			return echo.NewHTTPError(http.StatusGatewayTimeout, "Catalog service timed out")
		case errors.Is(err, service.ErrCatalogDown):
			log.Error("catalog unavailable", "product_id", id, "error", err.Error())
			return echo.NewHTTPError(http.StatusServiceUnavailable, "Catalog service unavailable")
		}
		return llmError(log, err)
	}
	log.Info("description generated", "status", "ok", "product_id", id)
	return c.JSON(http.StatusOK, resp)
}

func (h *RecommenderHTTP) Chat(c echo.Context) error {
	ctx := c.Request().Context()
	log := logging.FromContext(ctx).With("handler", "chat")

	var req transport.ChatRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("bind failed", "error", err.Error())
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	text, err := h.Service.Chat(ctx, req)
	if err != nil {
		return llmError(log, err)
	}
	log.Info("chat answered", "status", "ok")
	return c.JSON(http.StatusOK, transport.ChatResponse{Response: text, Success: true})
}

func (h *RecommenderHTTP) Models(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Service.Models())
}

func llmError(log *slog.Logger, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		log.Warn("request rejected", "status", "validation_error", "reason", err.Error())
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, promptclient.ErrNotFound):
		log.Warn("prompt missing", "status", "not_found", "error", err.Error())
		return echo.NewHTTPError(http.StatusNotFound, "Prompt template not found")
	case errors.Is(err, promptclient.ErrUnavailable):
		log.Error("prompts service unavailable", "error", err.Error())
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Prompts service unavailable")
	case errors.Is(err, llm.ErrTimeout):
		log.Error("llm timeout", "error", err.Error())
		return echo.NewHTTPError(http.StatusGatewayTimeout, "LLM request timed out")
	case errors.Is(err, llm.ErrModelUnavailable):
		log.Error("llm model unavailable", "error", err.Error())
		return echo.NewHTTPError(http.StatusBadGateway, "LLM model unavailable")
	default:
		log.Error("llm request failed", "error", err.Error())
		return echo.NewHTTPError(http.StatusBadGateway, "LLM request failed")
	}
}
