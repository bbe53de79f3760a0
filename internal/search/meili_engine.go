package search

import (
	"context"
	"fmt"
	"time"

	"github.com/barangay-api/app/models"
	"github.com/meilisearch/meilisearch-go"
	"go.uber.org/zap"
)

// MeiliConfig holds the Meilisearch connection settings.
type MeiliConfig struct {
	Host      string
	APIKey    string
	IndexName string
	Timeout   time.Duration
}

// MeiliEngine serves search from a Meilisearch index instead of the
// in-process matcher. The index is populated out of band by cmd/seed.
type MeiliEngine struct {
	client    meilisearch.ServiceManager
	logger    *zap.Logger
	indexName string
	timeout   time.Duration
}

// NewMeiliEngine connects and verifies the server is reachable.
func NewMeiliEngine(cfg MeiliConfig, logger *zap.Logger) (*MeiliEngine, error) {
	client := meilisearch.New(cfg.Host, meilisearch.WithAPIKey(cfg.APIKey))

	if _, err := client.Health(); err != nil {
		return nil, fmt.Errorf("meilisearch unreachable: %w", err)
	}

	return &MeiliEngine{
		client:    client,
		logger:    logger,
		indexName: cfg.IndexName,
		timeout:   cfg.Timeout,
	}, nil
}

// hookAttributes maps match hooks onto index attributes.
func hookAttributes(matchHooks []string) []string {
	attrs := make([]string, 0, len(matchHooks))
	for _, h := range orderHooks(matchHooks) {
		switch h {
		case HookBarangay:
			attrs = append(attrs, "barangay")
		case HookMunicipality:
			attrs = append(attrs, "municipality_or_city")
		case HookProvince:
			attrs = append(attrs, "province_or_huc")
		}
	}
	return attrs
}

// SearchBarangay delegates ranking to Meilisearch and rescales its
// ranking score to the API's 0-100 scale.
func (me *MeiliEngine) SearchBarangay(ctx context.Context, query string, matchHooks []string, threshold float64, limit int) ([]Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	index := me.client.Index(me.indexName)
	searchReq := &meilisearch.SearchRequest{
		Limit:                int64(limit),
		AttributesToSearchOn: hookAttributes(matchHooks),
		ShowRankingScore:     true,
	}

	result, err := index.Search(query, searchReq)
	if err != nil {
		return nil, fmt.Errorf("meilisearch query: %w", err)
	}

	matches := make([]Match, 0, len(result.Hits))
	for _, hit := range result.Hits {
		hitMap, ok := hit.(map[string]interface{})
		if !ok {
			continue
		}

		score := 0.0
		if rankingScore, ok := hitMap["_rankingScore"].(float64); ok {
			score = rankingScore * 100
		}
		if score < threshold {
			continue
		}

		m := Match{Score: score}
		if v, ok := hitMap["barangay"].(string); ok {
			m.Barangay = v
		}
		if v, ok := hitMap["province_or_huc"].(string); ok {
			m.ProvinceOrHUC = v
		}
		if v, ok := hitMap["municipality_or_city"].(string); ok {
			m.MunicipalityOrCity = v
		}
		if v, ok := hitMap["psgc_id"].(string); ok {
			m.PSGCID = v
		}
		matches = append(matches, m)
	}
	return matches, nil
}

// ConfigureIndex applies the index settings: which attributes are
// searchable and how tolerant the typo matching is.
func (me *MeiliEngine) ConfigureIndex() error {
	index := me.client.Index(me.indexName)

	task, err := index.UpdateSettings(&meilisearch.Settings{
		SearchableAttributes: []string{"barangay", "municipality_or_city", "province_or_huc", "name"},
		FilterableAttributes: []string{"psgc_id", "province_or_huc", "municipality_or_city"},
		RankingRules:         []string{"words", "typo", "proximity", "attribute", "sort", "exactness"},
		TypoTolerance: &meilisearch.TypoTolerance{
			Enabled: true,
			MinWordSizeForTypos: meilisearch.MinWordSizeForTypos{
				OneTypo:  3,
				TwoTypos: 7,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("update index settings: %w", err)
	}

	me.logger.Info("Configured Meilisearch index",
		zap.String("index", me.indexName),
		zap.Int64("task_uid", task.TaskUID))
	return nil
}

// SeedDocuments uploads the dataset's barangay records in batches.
func (me *MeiliEngine) SeedDocuments(areas []models.Area) error {
	index := me.client.Index(me.indexName)

	var documents []map[string]interface{}
	for _, a := range areas {
		if a.Level != models.LevelBarangay {
			continue
		}
		documents = append(documents, map[string]interface{}{
			"id":                   a.PSGCID,
			"psgc_id":              a.PSGCID,
			"name":                 a.Name,
			"barangay":             a.Barangay,
			"province_or_huc":      a.ProvinceOrHUC,
			"municipality_or_city": a.MunicipalityOrCity,
		})
	}

	batchSize := 1000
	for i := 0; i < len(documents); i += batchSize {
		end := i + batchSize
		if end > len(documents) {
			end = len(documents)
		}

		task, err := index.AddDocuments(documents[i:end], "id")
		if err != nil {
			return fmt.Errorf("add documents %d-%d: %w", i, end, err)
		}
		me.logger.Info("Added document batch",
			zap.Int("from", i),
			zap.Int("to", end),
			zap.Int64("task_uid", task.TaskUID))
	}

	me.logger.Info("Seeded Meilisearch index", zap.Int("documents", len(documents)))
	return nil
}
