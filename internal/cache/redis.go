package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Seirafashion/sui-backend/internal/models"
	"github.com/Seirafashion/sui-backend/internal/service"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "catalog:"

type RedisClient struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedisClient(addr, password string, db int, log *zap.Logger) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Info("Redis connected successfully", zap.String("addr", addr))

	return NewFromClient(rdb, log), nil
}

// NewFromClient wraps an existing client, e.g. one pointed at miniredis.
func NewFromClient(rdb *redis.Client, log *zap.Logger) *RedisClient {
	return &RedisClient{client: rdb, log: log}
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func categoriesKey() string { return keyPrefix + "categories" }

func productsKey(f service.ProductFilter) string {
	return fmt.Sprintf("%sproducts:%s:%s", keyPrefix, f.CategorySlug, f.Search)
}

func productKey(id uint) string { return fmt.Sprintf("%sproduct:%d", keyPrefix, id) }

func (r *RedisClient) getJSON(ctx context.Context, key string, dst any) (bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		// битая запись: считаем промахом и удаляем
		r.log.Warn("drop undecodable cache entry", zap.String("key", key), zap.Error(err))
		_ = r.client.Del(ctx, key).Err()
		return false, nil
	}
	return true, nil
}

func (r *RedisClient) setJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *RedisClient) GetCategories(ctx context.Context) ([]models.Category, bool, error) {
	var list []models.Category
	ok, err := r.getJSON(ctx, categoriesKey(), &list)
	return list, ok, err
}

func (r *RedisClient) SetCategories(ctx context.Context, list []models.Category, ttl time.Duration) error {
	return r.setJSON(ctx, categoriesKey(), list, ttl)
}

func (r *RedisClient) GetProducts(ctx context.Context, f service.ProductFilter) ([]models.Product, bool, error) {
	var list []models.Product
	ok, err := r.getJSON(ctx, productsKey(f), &list)
	return list, ok, err
}

func (r *RedisClient) SetProducts(ctx context.Context, f service.ProductFilter, list []models.Product, ttl time.Duration) error {
	return r.setJSON(ctx, productsKey(f), list, ttl)
}

func (r *RedisClient) GetProduct(ctx context.Context, id uint) (*models.Product, bool, error) {
	var p models.Product
	ok, err := r.getJSON(ctx, productKey(id), &p)
	if !ok || err != nil {
		return nil, ok, err
	}
	return &p, true, nil
}

func (r *RedisClient) SetProduct(ctx context.Context, p *models.Product, ttl time.Duration) error {
	return r.setJSON(ctx, productKey(p.ID), p, ttl)
}

// Flush drops every catalog entry. The seeder calls it after reloading data.
func (r *RedisClient) Flush(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

var _ service.CatalogCache = (*RedisClient)(nil)
