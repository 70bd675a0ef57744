package main

import (
	"context"
	"os"

	"github.com/Seirafashion/sui-backend/config"
	"github.com/Seirafashion/sui-backend/internal/cache"
	"github.com/Seirafashion/sui-backend/internal/migrate"
	"github.com/Seirafashion/sui-backend/internal/repository"
	"github.com/Seirafashion/sui-backend/internal/seed"
	"github.com/Seirafashion/sui-backend/pkg/database"
	"github.com/Seirafashion/sui-backend/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Drops the store schema, recreates it and loads the demo catalog.
func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)

	var (
		db   *gorm.DB
		opts migrate.MigrateOptions
	)
	if cfg.DB.Driver == config.DriverSQLite {
		var err error
		db, err = database.ConnectSQLite(cfg.DB.SQLitePath, log)
		if err != nil {
			log.Fatal("Не удалось открыть SQLite", zap.Error(err))
		}
		opts = migrate.PortableMigrateOptions()
	} else {
		db = database.ConnectDB(&cfg.DB.Config, log)
		opts = migrate.DefaultMigrateOptions()
	}
	defer database.CloseDB(db, log)

	ctx := context.Background()

	if err := migrate.Reset(ctx, db, log); err != nil {
		log.Fatal("Ошибка при сбросе схемы", zap.Error(err))
	}
	if err := migrate.MigrateStoreDB(ctx, db, log, opts); err != nil {
		log.Fatal("Ошибка при выполнении миграции", zap.Error(err))
	}

	if _, err := seed.Load(ctx, repository.New(db), log); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}

	// Cached catalog entries point at the old ids.
	if cfg.Redis.Enabled {
		rc, err := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)
		if err != nil {
			log.Warn("redis unavailable, cache not flushed", zap.Error(err))
			return
		}
		defer rc.Close()
		if err := rc.Flush(ctx); err != nil {
			log.Warn("cache flush failed", zap.Error(err))
		}
	}
}
