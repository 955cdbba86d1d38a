package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"pricelist/internal/config"
	"pricelist/internal/handler"
	"pricelist/internal/metrics"
	"pricelist/internal/port"
	"pricelist/internal/quote"
	"pricelist/internal/router"
	"pricelist/internal/service"
	"pricelist/internal/storage/local"
	s3storage "pricelist/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log.SetFlags(cfg.Log.Flags())
	if cfg.Server.Environment == "production" || !cfg.Log.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize storage
	storage, err := newStorage(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize %s storage: %w", cfg.Storage.Provider, err)
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	// Initialize services
	priceListSvc := service.NewPriceListService(storage, &cfg.Upload, &cfg.Storage, m)
	quoteSvc := service.NewQuoteService(priceListSvc, quote.NewBuilder(cfg.Quote.MaxItems, cfg.Quote.CurrencySymbol), m)

	// Setup router
	r := router.Setup(router.Handlers{
		Upload:  handler.NewUploadHandler(priceListSvc, cfg.Upload.MaxFileSizeMB),
		Product: handler.NewProductHandler(priceListSvc),
		Quote:   handler.NewQuoteHandler(quoteSvc),
		Health:  handler.NewHealthHandler(storage),
	}, cfg.CORS.AllowedOrigins, m)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s (storage: %s, max upload: %d MB)",
			cfg.Server.Port, cfg.Storage.Provider, cfg.Upload.MaxFileSizeMB)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func newStorage(cfg *config.Config) (port.ObjectStorage, error) {
	switch cfg.Storage.Provider {
	case config.StorageS3:
		return s3storage.NewS3Client(&cfg.S3)
	default:
		return local.NewLocalStorage(cfg.Storage.LocalDir)
	}
}
