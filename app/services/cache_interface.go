package services

import (
	"context"

	"github.com/barangay-api/app/models"
)

// ICacheService caches search results keyed by a request fingerprint.
type ICacheService interface {
	Get(ctx context.Context, key string) ([]models.BarangayMatch, bool, error)
	Set(ctx context.Context, key string, results []models.BarangayMatch) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Close() error
}
