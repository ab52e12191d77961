package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/vinyl_shop/pkg/catalogclient"
	pkgcfg "github.com/Skotchmaster/vinyl_shop/pkg/config"
	"github.com/Skotchmaster/vinyl_shop/pkg/logging"
	loggingmw "github.com/Skotchmaster/vinyl_shop/pkg/middleware/logging"
	"github.com/Skotchmaster/vinyl_shop/pkg/ratelimit"

	reccfg "github.com/Skotchmaster/vinyl_shop/services/recommender/internal/config"
	"github.com/Skotchmaster/vinyl_shop/services/recommender/internal/httpserver"
	"github.com/Skotchmaster/vinyl_shop/services/recommender/internal/llm"
	"github.com/Skotchmaster/vinyl_shop/services/recommender/internal/promptclient"
	"github.com/Skotchmaster/vinyl_shop/services/recommender/internal/service"
)

func main() {
	pkgcfg.LoadEnvFile()

	cfg := reccfg.Load()

	logger := logging.New(os.Getenv("LOG_LEVEL")).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	var limiter *ratelimit.FixedWindowLimiter
	if cfg.RedisAddr != "" {
		var err error
		limiter, err = ratelimit.NewFixedWindowLimiter(cfg.RedisAddr, cfg.RedisPassword, "vinylshop:recommender", cfg.RateLimit, cfg.RateLimitWindow)
		if err != nil {
			log.Fatalf("rate limiter: %v", err)
		}
	}

	svc := &service.RecommenderService{
		LLM:     llm.NewClient(cfg.OpenRouterBaseURL, cfg.OpenRouterAPIKey, cfg.LLMTimeout),
		Catalog: catalogclient.NewClient(cfg.CatalogServiceURL),
		Prompts: promptclient.NewClient(cfg.PromptsServiceURL),
	}

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, svc, limiter)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.LLMTimeout + 30*time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("recommender listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	log.Println("recommender stopped")
}
