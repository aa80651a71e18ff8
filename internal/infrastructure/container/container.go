// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"fmt"

	"github.com/kalehq/kale/internal/application/catalogsvc"
	"github.com/kalehq/kale/internal/application/mealplan"
	"github.com/kalehq/kale/internal/infrastructure/config"
	"github.com/kalehq/kale/internal/infrastructure/http/handlers"
	"github.com/kalehq/kale/internal/infrastructure/http/server"
	gormRepo "github.com/kalehq/kale/internal/infrastructure/persistence/gorm"
	"github.com/kalehq/kale/internal/infrastructure/persistence/postgres"
	"github.com/kalehq/kale/internal/infrastructure/persistence/sqlite"
	"github.com/kalehq/kale/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	RepositoryModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the catalog database connection
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		switch cfg.Database.Driver {
		case "postgres":
			db, err := postgres.Connect(cfg, log)
			if err != nil {
				return nil, err
			}
			if cfg.Database.Seed {
				if err := sqlite.SeedDatabase(db); err != nil {
					log.Warn("Failed to seed catalog", zap.Error(err))
				}
			}
			return db, nil
		default:
			logLevel := gormLogger.Silent
			if cfg.App.Debug {
				logLevel = gormLogger.Info
			}

			db, err := sqlite.SetupDatabase(cfg.Database.Path, logLevel)
			if err != nil {
				return nil, fmt.Errorf("failed to setup SQLite database: %w", err)
			}

			if cfg.Database.Seed {
				if err := sqlite.SeedDatabase(db); err != nil {
					log.Warn("Failed to seed catalog", zap.Error(err))
				}
			}

			log.Info("Connected to SQLite database",
				zap.String("path", cfg.Database.Path),
				zap.Bool("in_memory", cfg.Database.Path == ":memory:" || cfg.Database.Path == ""),
			)
			return db, nil
		}
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormRepo.NewCatalogRepository,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	mealplan.NewMealPlanService,
	catalogsvc.NewCatalogService,
)

// HTTPModule provides the HTTP transport
var HTTPModule = fx.Provide(
	handlers.NewAPIHandlers,
	server.NewServer,
)

// LifecycleModule starts and stops the HTTP server with the fx lifecycle
var LifecycleModule = fx.Invoke(
	func(lc fx.Lifecycle, srv *server.Server, log *zap.Logger) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				go func() {
					if err := srv.Start(); err != nil {
						log.Fatal("HTTP server failed", zap.Error(err))
					}
				}()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				return srv.Shutdown(ctx)
			},
		})
	},
)
