// Command seed pushes the embedded PSGC dataset into a Meilisearch
// instance and configures the index. Run it once before starting the API
// with search.engine set to "meilisearch".
package main

import (
	"flag"
	"log"
	"time"

	"github.com/barangay-api/internal/dataset"
	"github.com/barangay-api/internal/search"
	"go.uber.org/zap"
)

func main() {
	host := flag.String("host", "http://localhost:7700", "Meilisearch host URL")
	apiKey := flag.String("api-key", "", "Meilisearch API key")
	index := flag.String("index", "barangays", "Meilisearch index name")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal("Cannot initialize logger:", err)
	}
	defer logger.Sync()

	ds, err := dataset.Load()
	if err != nil {
		logger.Fatal("Failed to load dataset", zap.Error(err))
	}

	engine, err := search.NewMeiliEngine(search.MeiliConfig{
		Host:      *host,
		APIKey:    *apiKey,
		IndexName: *index,
		Timeout:   60 * time.Second,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to connect to Meilisearch", zap.Error(err))
	}

	if err := engine.ConfigureIndex(); err != nil {
		logger.Fatal("Failed to configure index", zap.Error(err))
	}

	start := time.Now()
	if err := engine.SeedDocuments(ds.Flat()); err != nil {
		logger.Fatal("Failed to seed documents", zap.Error(err))
	}

	logger.Info("Seeding complete",
		zap.Int("documents", len(ds.Flat())),
		zap.Duration("elapsed", time.Since(start)))
}
