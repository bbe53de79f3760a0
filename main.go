package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/barangay-api/app/config"
	"github.com/barangay-api/app/controllers"
	"github.com/barangay-api/app/services"
	"github.com/barangay-api/internal/dataset"
	"github.com/barangay-api/internal/search"
	"github.com/barangay-api/routes"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	loadConfig()

	// 2. Init logger
	logger := initLogger()
	defer logger.Sync()

	logger.Info("Starting Barangay API")

	// 3. Matcher defaults (match hooks, threshold, scoring knobs)
	if err := config.Load(viper.GetString("matcher.config")); err != nil {
		logger.Fatal("Failed to load matcher config", zap.Error(err))
	}

	// 4. Load the embedded PSGC dataset
	ds, err := dataset.Load()
	if err != nil {
		logger.Fatal("Failed to load dataset", zap.Error(err))
	}
	logger.Info("Dataset loaded", zap.Any("stats", ds.Stats()))

	// 5. Pick the search engine
	engine := initSearchEngine(ds, logger)

	// 6. Result cache (LRU L1, optionally Redis L2)
	cacheService := initCache(logger)

	// 7. Services
	lookupService := services.NewLookupService(ds, logger)
	searchService := services.NewSearchService(engine, cacheService, logger)

	// 8. Controller
	barangayController := controllers.NewBarangayController(lookupService, searchService, logger)

	// 9. Gin router
	if viper.GetString("app.env") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// 10. Routes
	routes.SetupAllRoutes(router, barangayController)

	// 11. Start the server
	port := viper.GetString("app.port")
	logger.Info("Barangay API starting", zap.String("port", port))

	if err := router.Run(":" + port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// loadConfig loads configuration from file and env vars.
func loadConfig() {
	viper.SetConfigName("app")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	// Set defaults
	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("search.engine", "memory")
	viper.SetDefault("matcher.config", "config/matcher.yaml")
	viper.SetDefault("meilisearch.url", "http://meili:7700")
	viper.SetDefault("meilisearch.master_key", "")
	viper.SetDefault("meilisearch.index", "barangays")
	viper.SetDefault("cache.l1_size", 10000)
	viper.SetDefault("redis.url", "")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Cannot read config file: %v", err)
	}
}

// initLogger sets up the structured logger.
func initLogger() *zap.Logger {
	env := getEnv("APP_ENV", viper.GetString("app.env"))

	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		log.Fatal("Cannot initialize logger:", err)
	}

	return logger
}

// initSearchEngine builds the configured engine. The in-memory matcher
// needs nothing external; the Meilisearch engine expects a reachable
// instance already seeded via cmd/seed.
func initSearchEngine(ds *dataset.Dataset, logger *zap.Logger) search.Engine {
	switch viper.GetString("search.engine") {
	case "meilisearch":
		cfg := search.MeiliConfig{
			Host:      viper.GetString("meilisearch.url"),
			APIKey:    viper.GetString("meilisearch.master_key"),
			IndexName: viper.GetString("meilisearch.index"),
			Timeout:   30 * time.Second,
		}
		engine, err := search.NewMeiliEngine(cfg, logger)
		if err != nil {
			logger.Fatal("Failed to initialize Meilisearch", zap.Error(err))
		}
		logger.Info("Using Meilisearch engine", zap.String("host", cfg.Host))
		return engine
	default:
		logger.Info("Using in-memory fuzzy engine")
		return search.NewMemoryEngine(ds, logger)
	}
}

// initCache builds the result cache. With REDIS_URL set the LRU cache is
// fronted for a shared L2; without it the process runs standalone.
func initCache(logger *zap.Logger) services.ICacheService {
	l1Size := viper.GetInt("cache.l1_size")
	lruCache, err := services.NewLRUCacheService(l1Size, logger)
	if err != nil {
		logger.Fatal("Failed to initialize LRU cache", zap.Error(err))
	}

	redisURL := getEnv("REDIS_URL", viper.GetString("redis.url"))
	if redisURL == "" {
		return lruCache
	}

	redisCache, err := services.NewRedisCacheService(redisURL, logger)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to LRU-only cache", zap.Error(err))
		return lruCache
	}

	return services.NewHybridCacheService(lruCache, redisCache, logger)
}

// getEnv reads an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
