package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/erp_ledger_app/internal/core/services"
	"github.com/SscSPs/erp_ledger_app/internal/handlers"
	"github.com/SscSPs/erp_ledger_app/internal/middleware"
	"github.com/SscSPs/erp_ledger_app/internal/platform/config"
	"github.com/SscSPs/erp_ledger_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/erp_ledger_app/internal/utils"
	"github.com/SscSPs/erp_ledger_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var (
	flagSkipMigrations bool
	flagPort           string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run migrations and start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, cfg, err := setup()
		if err != nil {
			return err
		}
		if flagPort != "" {
			cfg.Port = flagPort
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, logger, cfg)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&flagSkipMigrations, "skip-migrations", false, "Do not apply pending migrations on startup")
	serveCmd.Flags().StringVar(&flagPort, "port", "", "Listen port (overrides PORT)")
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, logger *slog.Logger, cfg *config.Config) error {
	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return fmt.Errorf("failed to initialize database pool: %w", err)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if !flagSkipMigrations {
		logger.Info("Running database migrations...")
		if err := runMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath, migrateUp); err != nil {
			return err
		}
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	analytics := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer analytics.Close()

	r, err := newRouter(logger, cfg, analytics)
	if err != nil {
		return err
	}
	handlers.RegisterRoutes(r, cfg, serviceContainer, analytics)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", slog.String("error", err.Error()))
		}
		return nil
	case err := <-errCh:
		return fmt.Errorf("server failed to run: %w", err)
	}
}

// newRouter builds the engine with the global middleware chain.
func newRouter(logger *slog.Logger, cfg *config.Config, analytics *utils.PosthogClientWrapper) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}

	r.Use(
		cors.New(corsConfig),
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.MetricsMiddleware(),
	)

	if cfg.RateLimit != "" {
		limiterInstance, err := middleware.NewRateLimiter(cfg.RateLimit)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT %q: %w", cfg.RateLimit, err)
		}
		r.Use(middleware.RateLimit(limiterInstance))
	}

	r.Use(middleware.PosthogMiddleware(analytics))
	return r, nil
}
