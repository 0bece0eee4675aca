package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/rental_management_app/internal/adapters/identity"
	portsrepo "github.com/SscSPs/rental_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_management_app/internal/core/ports/services"
	"github.com/SscSPs/rental_management_app/internal/core/services"
	"github.com/SscSPs/rental_management_app/internal/platform/config"
	"github.com/SscSPs/rental_management_app/internal/platform/logging"
	"github.com/SscSPs/rental_management_app/internal/platform/metrics"
	"github.com/SscSPs/rental_management_app/internal/repositories/database/memory"
	"github.com/SscSPs/rental_management_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/rental_management_app/internal/seed"
	"github.com/SscSPs/rental_management_app/pkg/database"
)

// app is the wiring shared by every command.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	repos     portsrepo.RepositoryProvider
	writer    portsrepo.SeedWriter
	authority *identity.Authority
	services  *portssvc.ServiceContainer
	metrics   *metrics.Metrics
	close     func()
}

// loadConfig reads configuration and installs the default logger.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger := logging.New(os.Stdout, cfg.LogFormat, cfg.LogLevel)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

// newApp opens the configured storage backend and builds the services. The
// memory backend starts out holding the demo dataset.
func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	a := &app{cfg: cfg, logger: logger, metrics: metrics.New(), close: func() {}}

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		store := pgsql.NewStore(pool)
		a.repos = pgsql.NewRepositoryProvider(store)
		a.writer = store
		a.close = func() { database.ClosePgxPool(pool, logger) }
	default:
		store := memory.NewStore()
		a.repos = memory.NewRepositoryProvider(store)
		a.writer = store
		if err := a.seedDemo(ctx); err != nil {
			return nil, err
		}
	}

	a.authority = identity.NewAuthority(a.repos.AuthUserRepo, a.repos.ProfileRepo, identity.Config{
		JWTSecret:  cfg.JWTSecret,
		Issuer:     cfg.JWTIssuer,
		AccessTTL:  cfg.JWTExpiryDuration,
		RefreshTTL: cfg.RefreshTokenExpiryDuration,
	}, logger)
	a.services = services.NewServiceContainer(cfg, a.repos, a.authority)

	logger.Info("Application wired", slog.String("storage", cfg.StorageDriver))
	return a, nil
}

// seedDemo loads the demo records and sign-in accounts.
func (a *app) seedDemo(ctx context.Context) error {
	ds := seed.Demo()
	if err := seed.Load(ctx, a.writer, ds, a.logger); err != nil {
		return fmt.Errorf("failed to load demo dataset: %w", err)
	}
	if err := seed.LoadAccounts(ctx, a.repos.AuthUserRepo, a.repos.ProfileRepo, seed.Accounts(ds), a.logger); err != nil {
		return fmt.Errorf("failed to load demo accounts: %w", err)
	}
	return nil
}
