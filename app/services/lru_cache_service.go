package services

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/barangay-api/app/models"
	"go.uber.org/zap"
)

// LRUCacheService is the in-process result cache: a bounded LRU, safe for
// concurrent use.
type LRUCacheService struct {
	cache  *lru.Cache[string, []models.BarangayMatch]
	logger *zap.Logger
}

// NewLRUCacheService creates an LRU cache holding up to size entries.
func NewLRUCacheService(size int, logger *zap.Logger) (*LRUCacheService, error) {
	cache, err := lru.New[string, []models.BarangayMatch](size)
	if err != nil {
		return nil, err
	}
	return &LRUCacheService{cache: cache, logger: logger}, nil
}

// Get returns the cached results for key, if present.
func (cs *LRUCacheService) Get(ctx context.Context, key string) ([]models.BarangayMatch, bool, error) {
	results, found := cs.cache.Get(key)
	if found {
		cs.logger.Debug("LRU cache hit", zap.String("key", key))
	}
	return results, found, nil
}

// Set stores results under key, evicting the least recently used entry
// when full.
func (cs *LRUCacheService) Set(ctx context.Context, key string, results []models.BarangayMatch) error {
	cs.cache.Add(key, results)
	return nil
}

// Delete removes key from the cache.
func (cs *LRUCacheService) Delete(ctx context.Context, key string) error {
	cs.cache.Remove(key)
	return nil
}

// Clear empties the cache.
func (cs *LRUCacheService) Clear(ctx context.Context) error {
	cs.cache.Purge()
	return nil
}

// Size returns the number of cached entries.
func (cs *LRUCacheService) Size() int {
	return cs.cache.Len()
}

// Close is a no-op for the in-process cache.
func (cs *LRUCacheService) Close() error {
	return nil
}
