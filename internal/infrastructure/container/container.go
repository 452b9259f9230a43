// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/platewise/v1/internal/application/pantry"
	"github.com/platewise/v1/internal/application/recipe"
	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/infrastructure/http/server"
	"github.com/platewise/v1/internal/infrastructure/persistence/gorm"
	"github.com/platewise/v1/internal/infrastructure/persistence/memory"
	"github.com/platewise/v1/internal/infrastructure/persistence/migrations"
	"github.com/platewise/v1/internal/infrastructure/persistence/postgres"
	redisrepo "github.com/platewise/v1/internal/infrastructure/persistence/redis"
	"github.com/platewise/v1/internal/infrastructure/persistence/sqlite"
	"github.com/platewise/v1/internal/matching"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/healthcheck"
	"github.com/platewise/v1/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	gormdb "gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	MatchingModule,
	RepositoryModule,
	ServiceModule,
	HealthModule,
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
	func(log *zap.Logger) *zap.SugaredLogger {
		return log.Sugar()
	},
)

// DatabaseModule provides the database connection for the configured driver
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gormdb.DB, error) {
		switch cfg.Database.Driver {
		case "sqlite":
			logLevel := gormLogger.Silent
			if cfg.App.Debug {
				logLevel = gormLogger.Info
			}

			dbPath := ""
			if cfg.Database.Database != "" && cfg.Database.Database != ":memory:" {
				dbPath = cfg.Database.Database + ".db"
			}

			db, err := sqlite.SetupDatabase(dbPath, logLevel)
			if err != nil {
				return nil, fmt.Errorf("failed to setup SQLite database: %w", err)
			}

			if cfg.IsDevelopment() {
				if err := sqlite.SeedDatabase(db); err != nil {
					log.Warn("Failed to seed database", zap.Error(err))
				}
			}

			log.Info("Connected to SQLite database",
				zap.String("path", dbPath),
				zap.Bool("in_memory", dbPath == ""),
			)

			return db, nil

		default:
			cm, err := postgres.NewConnectionManager(cfg, log)
			if err != nil {
				return nil, err
			}

			if cfg.Database.AutoMigrate {
				sqlDB, err := cm.GetDB().DB()
				if err != nil {
					return nil, err
				}

				migrator, err := migrations.New(sqlDB, cfg.Database.Database, log)
				if err != nil {
					return nil, fmt.Errorf("failed to create migrator: %w", err)
				}
				if err := migrator.Up(); err != nil {
					return nil, fmt.Errorf("failed to run migrations: %w", err)
				}
			}

			return cm.GetDB(), nil
		}
	},
)

// CacheModule provides the cache repository, Redis-backed when enabled
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*goredis.Client, outbound.CacheRepository) {
		if !cfg.Redis.Enabled {
			log.Info("Redis disabled, using in-memory cache")
			return nil, memory.NewCacheRepository()
		}

		client := goredis.NewClient(&goredis.Options{
			Addr:         cfg.RedisAddr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.Database,
			MaxRetries:   cfg.Redis.MaxRetries,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
			PoolSize:     cfg.Redis.PoolSize,
		})

		log.Info("Connected to Redis", zap.String("addr", cfg.RedisAddr()))

		return client, redisrepo.NewCacheRepository(client, log)
	},
)

// MatchingModule provides the matching engine components from config
var MatchingModule = fx.Provide(
	func(cfg *config.Config) *matching.Scanner {
		rules := matching.DefaultDietRules()
		if cfg.Matching.CarbLimitGrams > 0 {
			rules.CarbLimitGrams = cfg.Matching.CarbLimitGrams
		}
		if cfg.Matching.FatLimitGrams > 0 {
			rules.FatLimitGrams = cfg.Matching.FatLimitGrams
		}
		return matching.NewScanner(rules)
	},
	func(cfg *config.Config) *matching.Filter {
		return matching.NewFilter(cfg.Matching.Locale)
	},
	func(cfg *config.Config) *matching.Detector {
		return matching.NewDetector(matching.DetectorConfig{
			SectionKeywordWeight: cfg.Matching.Detector.SectionKeywordWeight,
			CookingVerbWeight:    cfg.Matching.Detector.CookingVerbWeight,
			ListMarkerWeight:     cfg.Matching.Detector.ListMarkerWeight,
			MeasurementWeight:    cfg.Matching.Detector.MeasurementWeight,
			Threshold:            cfg.Matching.Detector.Threshold,
		})
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gorm.NewRecipeRepository,
	gorm.NewPantryRepository,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	recipe.NewRecipeService,
	pantry.NewPantryService,
)

// HealthModule provides the health check registry
var HealthModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger, db *gormdb.DB, redisClient *goredis.Client) (*healthcheck.HealthCheck, error) {
		hc := healthcheck.New(cfg.App.Version, log)

		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		hc.Register("database", healthcheck.NewDatabaseChecker(sqlDB))

		if redisClient != nil {
			hc.Register("redis", healthcheck.NewRedisChecker(redisClient))
		}

		return hc, nil
	},
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	server.NewServer,
)

// LifecycleModule registers application lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks starts and stops the HTTP server with the app
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gormdb.DB,
	redisClient *goredis.Client,
	srv *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting application",
				zap.String("name", cfg.App.Name),
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down application")

			if err := srv.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			if redisClient != nil {
				if err := redisClient.Close(); err != nil {
					log.Error("Failed to close Redis client", zap.Error(err))
				}
			}

			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			_ = log.Sync()

			return nil
		},
	})
}
