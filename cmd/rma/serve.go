package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/SscSPs/rental_management_app/internal/adapters/identity"
	portssvc "github.com/SscSPs/rental_management_app/internal/core/ports/services"
	"github.com/SscSPs/rental_management_app/internal/handlers"
	"github.com/SscSPs/rental_management_app/internal/middleware"
	"github.com/SscSPs/rental_management_app/internal/platform/config"
	"github.com/SscSPs/rental_management_app/internal/platform/tracing"
	"github.com/SscSPs/rental_management_app/internal/utils"
	"github.com/SscSPs/rental_management_app/pkg/database"
)

const shutdownTimeout = 15 * time.Second

func serveCmd() *cobra.Command {
	var migrateFirst bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), migrateFirst)
		},
	}
	cmd.Flags().BoolVar(&migrateFirst, "migrate", true, "apply pending migrations before serving (postgres storage only)")
	return cmd
}

func serve(ctx context.Context, migrateFirst bool) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.StorageDriver == config.StoragePostgres && migrateFirst {
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return err
		}
	}

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.close()

	tp, err := tracing.Setup(ctx, tracing.Config{
		Enabled:        cfg.TracingEnabled,
		ServiceName:    "rental-management-app",
		ServiceVersion: cfg.ServiceVersion,
		SamplingRate:   cfg.TracingSamplingRate,
	})
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}

	analytics := utils.NewAnalytics(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer analytics.Close()

	router, err := handlers.NewRouter(handlers.Dependencies{
		Config:    cfg,
		Services:  a.services,
		Logger:    logger,
		Metrics:   a.metrics,
		Analytics: analytics,
		NewProvider: func(l *slog.Logger) portssvc.IdentityProvider {
			return identity.NewLocalProvider(a.authority, l)
		},
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           middleware.Traced(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.Bool("tracing", tp.Enabled()))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed to run: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
	if err := tp.Shutdown(shutdownCtx); err != nil {
		logger.Error("Tracer shutdown failed", slog.String("error", err.Error()))
	}
	return nil
}
