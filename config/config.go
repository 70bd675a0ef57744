package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Seirafashion/sui-backend/pkg/database"

	"go.uber.org/zap"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port        string
	GRPCPort    string
	StaticDir   string
	CORSOrigins []string
	DB          DB
	Redis       Redis
	Kafka       Kafka
}

type DB struct {
	Driver     string
	SQLitePath string
	database.Config
}

type Redis struct {
	Enabled    bool
	Addr       string
	Password   string
	DB         int
	TTLSeconds int
}

func (r Redis) TTL() time.Duration { return time.Duration(r.TTLSeconds) * time.Second }

type Kafka struct {
	Brokers     []string
	OrdersTopic string
}

func (k Kafka) Enabled() bool { return len(k.Brokers) > 0 }

func Load(log *zap.Logger) *Config {
	cfg := &Config{
		Port:        getEnv("APP_PORT", log),
		GRPCPort:    os.Getenv("GRPC_PORT"),
		StaticDir:   getEnvDefault("STATIC_DIR", "."),
		CORSOrigins: splitAndTrim(getEnvDefault("CORS_ORIGINS", "*")),
		DB: DB{
			Driver:     strings.ToLower(getEnvDefault("DB_DRIVER", DriverPostgres)),
			SQLitePath: getEnvDefault("SQLITE_PATH", "storefront.db"),
		},
		Kafka: Kafka{
			Brokers:     splitAndTrim(os.Getenv("KAFKA_BROKERS")),
			OrdersTopic: getEnvDefault("KAFKA_TOPIC_ORDERS", "orders.created"),
		},
	}

	if cfg.DB.Driver == DriverPostgres {
		cfg.DB.Config = database.Config{
			Host:     getEnv("DB_HOST", log),
			Port:     getEnv("DB_PORT", log),
			User:     getEnv("DB_USER", log),
			Password: getEnv("DB_PASSWORD", log),
			Name:     getEnv("DB_NAME", log),
			SSLMode:  getEnv("DB_SSLMODE", log),
		}
	}

	if os.Getenv("REDIS_ENABLED") == "true" {
		cfg.Redis = Redis{
			Enabled:    true,
			Addr:       getEnv("REDIS_ADDR", log),
			Password:   os.Getenv("REDIS_PASSWORD"),
			DB:         atoiDefault(os.Getenv("REDIS_DB"), 0),
			TTLSeconds: atoiDefault(os.Getenv("CACHE_TTL_SECONDS"), 60),
		}
	}

	return cfg
}

func getEnv(key string, log *zap.Logger) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	log.Error("Обязательная переменная окружения не установлена", zap.String("key", key))
	panic("missing required environment variable: " + key)
}

func getEnvDefault(key, def string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return def
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := []string{}
	for _, p := range strings.Split(s, ",") {
		pt := strings.TrimSpace(p)
		if pt != "" {
			parts = append(parts, pt)
		}
	}
	return parts
}
