package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/Sdjishan552/fin/internal/core/services"
	"github.com/Sdjishan552/fin/internal/handlers"
	"github.com/Sdjishan552/fin/internal/middleware"
	"github.com/Sdjishan552/fin/internal/platform/config"
	"github.com/Sdjishan552/fin/internal/repositories/database/sqlite"
	"github.com/Sdjishan552/fin/pkg/database"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	loc, err := time.LoadLocation(cfg.BusinessTimezone)
	if err != nil {
		logger.Error("Invalid business timezone", slog.String("timezone", cfg.BusinessTimezone), slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.NewSQLiteDB(ctx, cfg.SQLitePath)
	if err != nil {
		logger.Error("Failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.CloseSQLiteDB(db)

	// --- Run Database Migrations ---
	logger.Info("Running database migrations...")
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		logger.Error("Could not create sqlite driver instance for migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations/sqlite", "sqlite3", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	// --- End Database Migrations ---

	repos := sqlite.NewRepositoryProvider(db)
	serviceContainer := services.NewServiceContainer(repos, loc, services.ElevationParams{
		Secret: cfg.ElevationTokenSecret,
		Expiry: cfg.ElevationTokenExpiry,
		Issuer: cfg.ElevationTokenIssuer,
	})

	// Today's opening balance must exist before the first request.
	if err := serviceContainer.Ledger.EnsureOpeningBalance(ctx, serviceContainer.Ledger.Today()); err != nil {
		logger.Error("Failed to create startup opening balance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Watch for the business-day boundary while the process runs.
	watcherCtx, cancelWatcher := context.WithCancel(ctx)
	defer cancelWatcher()
	watcher := services.NewRolloverWatcher(serviceContainer.Ledger, cfg.RolloverCheckInterval, logger)
	go watcher.Run(watcherCtx)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := handlers.RegisterValidations(); err != nil {
		logger.Error("Failed to register validations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
