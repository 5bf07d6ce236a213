package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/app"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/config"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/events"
	httpapi "github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/http"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/logging"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/metrics"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/order"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = os.Stderr.WriteString("load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat).With(zap.String("service", "storefront-service"))
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backend, db, err := openBackend(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open store", zap.String("backend", cfg.StoreBackend), zap.Error(err))
	}
	if db != nil {
		defer db.Close()
	}

	var publisher order.EventPublisher = order.NopPublisher{}
	if cfg.RabbitURL != "" {
		conn, err := events.Dial(cfg.RabbitURL)
		if err != nil {
			logger.Fatal("connect rabbitmq", zap.Error(err))
		}
		defer conn.Close()

		rp, err := events.NewRabbitPublisher(conn)
		if err != nil {
			logger.Fatal("create order publisher", zap.Error(err))
		}
		defer func() {
			if err := rp.Close(); err != nil {
				logger.Warn("publisher close", zap.Error(err))
			}
		}()
		publisher = rp
	} else {
		logger.Info("RABBITMQ_URL not set, order events disabled")
	}

	m := metrics.New()
	sf := app.New(backend, publisher, logger, m)

	h := httpapi.NewHandler(sf.Catalog, sf.Carts, sf.Wishlist, sf.Promos, sf.Orders, logger)
	router := httpapi.NewRouter(h, httpapi.RouterOptions{
		Logger:         logger,
		Metrics:        m,
		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("storefront-service listening", zap.String("addr", srv.Addr), zap.String("backend", cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Fatal("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", zap.Error(err))
	}
}

// openBackend returns the configured store. db is non-nil only for the
// postgres backend and must be closed by the caller.
func openBackend(ctx context.Context, cfg *config.Config, logger *zap.Logger) (store.Backend, *sql.DB, error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		if err := store.RunMigrations(cfg.StoreDSN, logger); err != nil {
			return nil, nil, err
		}
		db, err := store.OpenPostgres(ctx, cfg.StoreDSN)
		if err != nil {
			return nil, nil, err
		}
		return store.NewPostgresStore(db), db, nil
	case config.BackendMemory:
		return store.NewMemoryStore(), nil, nil
	default:
		return store.NewFileStore(cfg.DataDir), nil, nil
	}
}
