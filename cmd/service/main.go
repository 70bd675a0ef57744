package main

import (
	"context"
	"errors"
	"net"
	nethttp "net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Seirafashion/sui-backend/config"
	_ "github.com/Seirafashion/sui-backend/docs"
	"github.com/Seirafashion/sui-backend/internal/cache"
	"github.com/Seirafashion/sui-backend/internal/migrate"
	"github.com/Seirafashion/sui-backend/internal/producer"
	"github.com/Seirafashion/sui-backend/internal/repository"
	"github.com/Seirafashion/sui-backend/internal/service"
	gtransport "github.com/Seirafashion/sui-backend/internal/transport/grpc"
	httptransport "github.com/Seirafashion/sui-backend/internal/transport/http"
	"github.com/Seirafashion/sui-backend/pkg/database"
	"github.com/Seirafashion/sui-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// @title Storefront API
// @version 1.0
// @description Catalog browsing and checkout for the storefront.
// @BasePath /
func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()
	if !isDev {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg := config.Load(log)
	db := openDB(cfg, log)
	defer database.CloseDB(db, log)

	repos := repository.New(db)

	// Cache and event bus are optional (nil disables them)
	var catalogCache service.CatalogCache
	if cfg.Redis.Enabled {
		rc, err := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)
		if err != nil {
			log.Warn("redis unavailable, catalog cache disabled", zap.Error(err))
		} else {
			defer rc.Close()
			catalogCache = rc
		}
	}

	var events service.EventBus
	if cfg.Kafka.Enabled() {
		p := producer.NewOrderEventProducer(cfg.Kafka.Brokers, cfg.Kafka.OrdersTopic)
		defer p.Close()
		events = p
		log.Info("order events enabled", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.OrdersTopic))
	}

	catalogSvc := service.NewCatalogService(repos, catalogCache, cfg.Redis.TTL(), log)
	orderSvc := service.NewOrderService(repos, events, log)

	router := httptransport.Router(catalogSvc, orderSvc, httptransport.RouterConfig{
		StaticDir:   cfg.StaticDir,
		CORSOrigins: cfg.CORSOrigins,
	}, log)

	srv := &nethttp.Server{
		Addr:              listenAddr(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var healthSrv *gtransport.HealthServer
	stopRefresh := make(chan struct{})
	if cfg.GRPCPort != "" {
		lis, err := net.Listen("tcp", listenAddr(cfg.GRPCPort))
		if err != nil {
			log.Fatal("failed to listen", zap.Error(err))
		}
		healthSrv = gtransport.NewHealthServer(db)

		go func() {
			log.Info("Starting gRPC health server", zap.String("addr", lis.Addr().String()))
			if err := healthSrv.Server.Serve(lis); err != nil {
				log.Error("gRPC health server failed", zap.Error(err))
			}
		}()

		go healthSrv.RefreshEvery(15*time.Second, stopRefresh)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("Starting storefront HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-quit
	log.Info("Shutting down storefront...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("HTTP shutdown error", zap.Error(err))
	}
	close(stopRefresh)
	if healthSrv != nil {
		healthSrv.Shutdown()
	}
	log.Info("Storefront stopped gracefully")
}

func openDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	if cfg.DB.Driver != config.DriverSQLite {
		return database.ConnectDB(&cfg.DB.Config, log)
	}

	db, err := database.ConnectSQLite(cfg.DB.SQLitePath, log)
	if err != nil {
		log.Fatal("Не удалось открыть SQLite", zap.Error(err))
	}
	// SQLite runs embedded, so the schema is brought up on start.
	if err := migrate.MigrateStoreDB(context.Background(), db, log, migrate.PortableMigrateOptions()); err != nil {
		log.Fatal("Ошибка при выполнении миграции", zap.Error(err))
	}
	return db
}

// listenAddr accepts both "8080" and ":8080".
func listenAddr(port string) string {
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}
