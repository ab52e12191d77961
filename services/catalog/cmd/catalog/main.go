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
	"github.com/Skotchmaster/vinyl_shop/pkg/events"
	"github.com/Skotchmaster/vinyl_shop/pkg/logging"
	loggingmw "github.com/Skotchmaster/vinyl_shop/pkg/middleware/logging"

	catalogcfg "github.com/Skotchmaster/vinyl_shop/services/catalog/internal/config"
	"github.com/Skotchmaster/vinyl_shop/services/catalog/internal/httpserver"
	"github.com/Skotchmaster/vinyl_shop/services/catalog/internal/models"
	"github.com/Skotchmaster/vinyl_shop/services/catalog/internal/repo"
	"github.com/Skotchmaster/vinyl_shop/services/catalog/internal/seed"
	"github.com/Skotchmaster/vinyl_shop/services/catalog/internal/service"
)

func main() {
	pkgcfg.LoadEnvFile()

	cfg := catalogcfg.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if err := db.AutoMigrate(&models.Artist{}, &models.Category{}, &models.VinylRecord{}); err != nil {
		log.Fatalf("db migrate: %v", err)
	}
	if err := seed.Run(context.Background(), db); err != nil {
		log.Fatalf("seed: %v", err)
	}

	logger := logging.New(os.Getenv("LOG_LEVEL")).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	producer := events.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	repo := &repo.GormRepo{DB: db}
	svc := &service.CatalogService{Repo: repo, Producer: producer}
	handler := &httpserver.CatalogHTTP{Svc: svc}

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{CatalogHandler: handler})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("catalog listening on %s", srv.Addr)
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

	log.Println("catalog stopped")
}
