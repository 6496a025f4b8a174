package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"

	"bewear/internal"
	"bewear/internal/cache"
	"bewear/internal/cep"
	"bewear/internal/handler/storefront"
	"bewear/internal/jobs"
	"bewear/internal/middleware"
	"bewear/internal/repository"
	"bewear/internal/router"
	"bewear/internal/routes"
	"bewear/internal/service"
)

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize database/sql connection for migrations
	logger.Info("Connecting to database...")
	sqlDB, err := sql.Open("pgx", cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer sqlDB.Close()

	// Verify database connection
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	logger.Info("Database connection established")

	// Run migrations
	logger.Info("Running database migrations...")
	if err := internal.RunMigrations(sqlDB); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize pgx connection pool for application
	pool, err := pgxpool.New(ctx, cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}
	defer pool.Close()

	// Initialize repository
	repo := repository.New(pool)

	// Initialize page cache
	logger.Info("Connecting to Redis...")
	pages, err := cache.New(ctx, cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Redis.PageTTL,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize page cache: %w", err)
	}
	logger.Info("Page cache initialized")

	// Initialize ViaCEP client
	cepClient := cep.New(cep.Config{
		BaseURL: cfg.CEP.BaseURL,
		Timeout: cfg.CEP.Timeout,
	}, logger)

	// Initialize services
	addressService := service.NewAddressService(repo, pages, logger)
	cartService := service.NewCartService(repo, pages, logger)
	productService := service.NewProductService(repo)
	orderService := service.NewOrderService(repo)

	// Sweep expired sessions left behind by the auth provider
	sessionCleanup := jobs.NewCleanup(repo, time.Hour, logger)
	go sessionCleanup.Run(ctx)

	// Initialize Prometheus metrics
	metrics := middleware.NewMetrics("bewear")

	// Build route dependencies
	deps := routes.StorefrontDeps{
		ProductHandler:  storefront.NewProductHandler(productService),
		CartHandler:     storefront.NewCartHandler(cartService),
		CheckoutHandler: storefront.NewCheckoutHandler(cartService, pages),
		AddressHandler:  storefront.NewAddressHandler(addressService),
		CEPHandler:      storefront.NewCEPHandler(cepClient),
		OrderHandler:    storefront.NewOrderHandler(orderService),
		MetricsHandler:  metrics.Handler(),
		HealthHandler:   healthHandler(pool),
	}

	// Create router and register routes
	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		router.Logger(logger),
		middleware.WithUser(repo),
		middleware.WithRequestLogger(logger),
	)
	routes.RegisterStorefrontRoutes(r, deps)

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting storefront server", "address", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

// healthHandler reports readiness; a failed database ping answers 503 so
// the load balancer stops routing here.
func healthHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
