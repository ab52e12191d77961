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

	pkgcfg "github.com/Skotchmaster/vinyl_shop/pkg/config"
	pkgdb "github.com/Skotchmaster/vinyl_shop/pkg/db"
	"github.com/Skotchmaster/vinyl_shop/pkg/logging"
	loggingmw "github.com/Skotchmaster/vinyl_shop/pkg/middleware/logging"

	promptscfg "github.com/Skotchmaster/vinyl_shop/services/prompts/internal/config"
	"github.com/Skotchmaster/vinyl_shop/services/prompts/internal/httpserver"
	"github.com/Skotchmaster/vinyl_shop/services/prompts/internal/models"
	"github.com/Skotchmaster/vinyl_shop/services/prompts/internal/repo"
	"github.com/Skotchmaster/vinyl_shop/services/prompts/internal/seed"
	"github.com/Skotchmaster/vinyl_shop/services/prompts/internal/service"
)

func main() {
	pkgcfg.LoadEnvFile()

	cfg := promptscfg.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if err := db.AutoMigrate(&models.Prompt{}); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	promptRepo := &repo.GormRepo{DB: db}
	if err := seed.Run(context.Background(), promptRepo); err != nil {
		log.Fatalf("seed: %v", err)
	}

	logger := logging.New(os.Getenv("LOG_LEVEL")).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	svc := &service.PromptService{Repo: promptRepo}
	handler := &httpserver.PromptHTTP{Svc: svc}

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{PromptHandler: handler})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("prompts listening on %s", srv.Addr)
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

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("prompts stopped")
}
