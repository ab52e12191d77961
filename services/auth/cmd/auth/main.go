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

	authcfg "github.com/Skotchmaster/vinyl_shop/services/auth/internal/config"
	"github.com/Skotchmaster/vinyl_shop/services/auth/internal/httpserver"
	"github.com/Skotchmaster/vinyl_shop/services/auth/internal/models"
	"github.com/Skotchmaster/vinyl_shop/services/auth/internal/repo"
	"github.com/Skotchmaster/vinyl_shop/services/auth/internal/service"
)

func main() {
	pkgcfg.LoadEnvFile()

	cfg := authcfg.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	logger := logging.New(os.Getenv("LOG_LEVEL")).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	producer := events.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	svc := &service.AuthService{
		Repo:      &repo.GormRepo{DB: db},
		Producer:  producer,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
	}
	handler := &httpserver.AuthHTTP{Svc: svc}

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{AuthHandler: handler})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("auth listening on %s", srv.Addr)
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

	log.Println("auth stopped")
}
