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

	cartcfg "github.com/Skotchmaster/vinyl_shop/services/cart/internal/config"
	"github.com/Skotchmaster/vinyl_shop/services/cart/internal/httpserver"
	"github.com/Skotchmaster/vinyl_shop/services/cart/internal/service"
)

func main() {
	pkgcfg.LoadEnvFile()

	cfg := cartcfg.Load()

	logger := logging.New(os.Getenv("LOG_LEVEL")).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	svc := &service.CartService{Catalog: catalogclient.NewClient(cfg.CatalogURL)}
	handler := &httpserver.CartHTTP{Svc: svc}

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{CartHandler: handler})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("cart listening on %s", srv.Addr)
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

	log.Println("cart stopped")
}
