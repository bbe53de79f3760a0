package services

import (
	"context"
	"fmt"
	"time"

	"github.com/barangay-api/app/models"
	"go.uber.org/zap"
)

// HybridCacheService layers the in-process LRU (L1) over Redis (L2). L1
// misses fall through to Redis; an L2 hit is copied back into L1 in the
// background.
type HybridCacheService struct {
	lruCache   *LRUCacheService
	redisCache *RedisCacheService
	logger     *zap.Logger
}

// NewHybridCacheService creates the two-level cache.
func NewHybridCacheService(lruCache *LRUCacheService, redisCache *RedisCacheService, logger *zap.Logger) *HybridCacheService {
	return &HybridCacheService{
		lruCache:   lruCache,
		redisCache: redisCache,
		logger:     logger,
	}
}

// Get checks the LRU first, then Redis.
func (hcs *HybridCacheService) Get(ctx context.Context, key string) ([]models.BarangayMatch, bool, error) {
	results, found, err := hcs.lruCache.Get(ctx, key)
	if err == nil && found {
		return results, true, nil
	}

	results, found, err = hcs.redisCache.Get(ctx, key)
	if err != nil {
		// Redis being down degrades to L1-only, it must not fail reads.
		hcs.logger.Warn("Redis cache unavailable", zap.Error(err))
		return nil, false, nil
	}
	if !found {
		return nil, false, nil
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := hcs.lruCache.Set(bgCtx, key, results); err != nil {
			hcs.logger.Warn("L2->L1 backfill failed", zap.Error(err), zap.String("key", key))
		}
	}()

	hcs.logger.Debug("L2 cache hit (Redis)", zap.String("key", key))
	return results, true, nil
}

// Set writes both levels in parallel.
func (hcs *HybridCacheService) Set(ctx context.Context, key string, results []models.BarangayMatch) error {
	errCh := make(chan error, 2)

	go func() {
		errCh <- hcs.lruCache.Set(ctx, key, results)
	}()
	go func() {
		err := hcs.redisCache.Set(ctx, key, results)
		if err != nil {
			hcs.logger.Warn("Redis cache set failed", zap.Error(err))
		}
		errCh <- err
	}()

	var errs []error
	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("cache errors: %v", errs)
	}
	return nil
}

// Delete removes key from both levels.
func (hcs *HybridCacheService) Delete(ctx context.Context, key string) error {
	errCh := make(chan error, 2)

	go func() { errCh <- hcs.lruCache.Delete(ctx, key) }()
	go func() { errCh <- hcs.redisCache.Delete(ctx, key) }()

	var errs []error
	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("delete errors: %v", errs)
	}
	return nil
}

// Clear empties both levels.
func (hcs *HybridCacheService) Clear(ctx context.Context) error {
	errCh := make(chan error, 2)

	go func() { errCh <- hcs.lruCache.Clear(ctx) }()
	go func() { errCh <- hcs.redisCache.Clear(ctx) }()

	var errs []error
	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("clear errors: %v", errs)
	}
	hcs.logger.Info("Cleared hybrid cache (LRU + Redis)")
	return nil
}

// Close closes both levels.
func (hcs *HybridCacheService) Close() error {
	lruErr := hcs.lruCache.Close()
	redisErr := hcs.redisCache.Close()
	if lruErr != nil || redisErr != nil {
		return fmt.Errorf("close errors: %v, %v", lruErr, redisErr)
	}
	return nil
}
