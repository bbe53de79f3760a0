package services

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"github.com/barangay-api/app/config"
	"github.com/barangay-api/app/models"
	"github.com/barangay-api/app/requests"
	"github.com/barangay-api/app/responses"
	"github.com/barangay-api/internal/search"
	"go.uber.org/zap"
)

// maxLenResults caps `len_results`; the value is client-controlled and
// must not size allocations unchecked.
const maxLenResults = 1000

// SearchService wraps the search engine: it validates the match hooks,
// fills in the defaults, shapes the output and reports elapsed wall-clock
// time. Ranking itself is entirely the engine's business.
type SearchService struct {
	engine search.Engine
	cache  ICacheService
	logger *zap.Logger
}

// NewSearchService creates a SearchService. cache may be nil to disable
// result caching.
func NewSearchService(engine search.Engine, cache ICacheService, logger *zap.Logger) *SearchService {
	return &SearchService{
		engine: engine,
		cache:  cache,
		logger: logger,
	}
}

// SearchBarangay handles one search request end to end.
//
// The one real business rule lives here: "barangay" must be among the
// match hooks, checked before the engine is ever invoked. An absent or
// empty hook list falls back to the configured default instead.
func (ss *SearchService) SearchBarangay(ctx context.Context, req requests.SearchBarangayRequest) (*responses.SearchBarangayResponse, error) {
	start := time.Now()

	matchHooks := req.MatchHooks
	if len(matchHooks) == 0 {
		matchHooks = config.C.Defaults.MatchHooks
	}
	threshold := req.Threshold
	if threshold == 0 {
		threshold = config.C.Defaults.Threshold
	}
	lenResults := req.LenResults
	if lenResults == 0 {
		lenResults = config.C.Defaults.LenResults
	}
	if lenResults < 0 || lenResults > maxLenResults {
		return nil, &InvalidRequestError{
			Reason: fmt.Sprintf("`len_results` must be between 1 and %d, got %d", maxLenResults, lenResults),
		}
	}

	for _, h := range matchHooks {
		if !search.ValidHook(h) {
			return nil, &InvalidRequestError{
				Reason: fmt.Sprintf("unknown match hook '%s'. Valid hooks are 'barangay', 'municipality', 'province'.", h),
			}
		}
	}
	if !containsHook(matchHooks, search.HookBarangay) {
		return nil, &InvalidRequestError{
			Reason: "`match_hooks` needs at least 'barangay'. For example ['barangay', 'municipality']",
		}
	}

	key := fingerprint(req.SearchString, matchHooks, threshold, lenResults)
	if ss.cache != nil {
		if cached, found, err := ss.cache.Get(ctx, key); err == nil && found {
			return &responses.SearchBarangayResponse{
				Results:        cached,
				ElapsedSeconds: time.Since(start).Seconds(),
			}, nil
		}
	}

	matches, err := ss.engine.SearchBarangay(ctx, req.SearchString, matchHooks, threshold, lenResults)
	if err != nil {
		return nil, fmt.Errorf("search engine: %w", err)
	}

	results := make([]models.BarangayMatch, 0, len(matches))
	for _, m := range matches {
		results = append(results, models.BarangayMatch{
			Barangay:           m.Barangay,
			ProvinceOrHUC:      m.ProvinceOrHUC,
			MunicipalityOrCity: m.MunicipalityOrCity,
			PSGCID:             m.PSGCID,
		})
	}

	if ss.cache != nil {
		if err := ss.cache.Set(ctx, key, results); err != nil {
			ss.logger.Warn("Result cache set failed", zap.Error(err))
		}
	}

	elapsed := time.Since(start)
	ss.logger.Debug("Barangay search completed",
		zap.String("query", req.SearchString),
		zap.Strings("match_hooks", matchHooks),
		zap.Float64("threshold", threshold),
		zap.Int("results", len(results)),
		zap.Duration("elapsed", elapsed))

	return &responses.SearchBarangayResponse{
		Results:        results,
		ElapsedSeconds: elapsed.Seconds(),
	}, nil
}

func containsHook(hooks []string, want string) bool {
	for _, h := range hooks {
		if h == want {
			return true
		}
	}
	return false
}

// fingerprint keys the result cache on everything that influences the
// result set.
func fingerprint(query string, hooks []string, threshold float64, lenResults int) string {
	input := fmt.Sprintf("%s\x1f%s\x1f%g\x1f%d", query, strings.Join(hooks, ","), threshold, lenResults)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(input)))
}
