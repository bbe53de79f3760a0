package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/barangay-api/app/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisCacheService is the shared result cache, used as the L2 layer when
// several instances serve the same dataset.
type RedisCacheService struct {
	client *redis.Client
	logger *zap.Logger
	prefix string
	ttl    time.Duration
}

// NewRedisCacheService connects to Redis and verifies the connection.
func NewRedisCacheService(redisURL string, logger *zap.Logger) (*RedisCacheService, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("connect Redis: %w", err)
	}

	return &RedisCacheService{
		client: client,
		logger: logger,
		prefix: "barangay_api:",
		ttl:    24 * time.Hour,
	}, nil
}

// Get returns the cached results for key, if present.
func (rcs *RedisCacheService) Get(ctx context.Context, key string) ([]models.BarangayMatch, bool, error) {
	cacheKey := rcs.prefix + key

	val, err := rcs.client.Get(ctx, cacheKey).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		rcs.logger.Error("Redis get failed", zap.Error(err), zap.String("key", cacheKey))
		return nil, false, err
	}

	var results []models.BarangayMatch
	if err := json.Unmarshal([]byte(val), &results); err != nil {
		rcs.logger.Error("Corrupt cache entry", zap.Error(err), zap.String("key", cacheKey))
		return nil, false, err
	}

	rcs.logger.Debug("Redis cache hit", zap.String("key", key))
	return results, true, nil
}

// Set stores results under key with the service TTL.
func (rcs *RedisCacheService) Set(ctx context.Context, key string, results []models.BarangayMatch) error {
	cacheKey := rcs.prefix + key

	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}

	if err := rcs.client.Set(ctx, cacheKey, data, rcs.ttl).Err(); err != nil {
		rcs.logger.Error("Redis set failed", zap.Error(err), zap.String("key", cacheKey))
		return err
	}
	return nil
}

// Delete removes key from the cache.
func (rcs *RedisCacheService) Delete(ctx context.Context, key string) error {
	return rcs.client.Del(ctx, rcs.prefix+key).Err()
}

// Clear removes every key under the service prefix.
func (rcs *RedisCacheService) Clear(ctx context.Context) error {
	keys, err := rcs.client.Keys(ctx, rcs.prefix+"*").Result()
	if err != nil {
		return fmt.Errorf("list cache keys: %w", err)
	}
	if len(keys) > 0 {
		if err := rcs.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("delete cache keys: %w", err)
		}
	}
	rcs.logger.Info("Cleared Redis cache", zap.Int("keys_deleted", len(keys)))
	return nil
}

// SetTTL overrides the default entry TTL.
func (rcs *RedisCacheService) SetTTL(ttl time.Duration) {
	rcs.ttl = ttl
}

// Close closes the Redis connection.
func (rcs *RedisCacheService) Close() error {
	return rcs.client.Close()
}
