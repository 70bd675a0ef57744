package main

import (
	"context"
	"os"

	"github.com/Seirafashion/sui-backend/config"
	"github.com/Seirafashion/sui-backend/internal/migrate"
	"github.com/Seirafashion/sui-backend/pkg/database"
	"github.com/Seirafashion/sui-backend/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

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
		db = database.ConnectDBForMigration(&cfg.DB.Config, log)
		opts = migrate.DefaultMigrateOptions()
	}
	defer database.CloseDB(db, log)

	ctx := context.Background()

	if len(os.Args) > 1 && os.Args[1] == "reset" {
		if err := migrate.Reset(ctx, db, log); err != nil {
			log.Fatal("Ошибка при сбросе схемы", zap.Error(err))
		}
	}

	if err := migrate.MigrateStoreDB(ctx, db, log, opts); err != nil {
		log.Fatal("Ошибка при выполнении миграции", zap.Error(err))
	}

	log.Info("Миграция успешно завершена")
}
