package search

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/barangay-api/app/config"
	"github.com/barangay-api/app/models"
	"github.com/barangay-api/internal/dataset"
	"github.com/barangay-api/internal/normalizer"
	"github.com/xrash/smetrics"
	"go.uber.org/zap"
)

// MemoryEngine scores every barangay record in the dataset against the
// query. Match keys are precomputed at construction; a search is a single
// pass over ~42k records, cheap enough that no index is needed.
type MemoryEngine struct {
	docs   []document
	logger *zap.Logger
}

type document struct {
	match Match
	keys  map[string]string // hook -> normalized field
}

// NewMemoryEngine builds the match-key table from the dataset's barangay
// records.
func NewMemoryEngine(ds *dataset.Dataset, logger *zap.Logger) *MemoryEngine {
	var docs []document
	for _, a := range ds.Flat() {
		if a.Level != models.LevelBarangay {
			continue
		}
		docs = append(docs, document{
			match: Match{
				Barangay:           a.Barangay,
				ProvinceOrHUC:      a.ProvinceOrHUC,
				MunicipalityOrCity: a.MunicipalityOrCity,
				PSGCID:             a.PSGCID,
			},
			keys: map[string]string{
				HookBarangay:     normalizer.MatchKey(a.Barangay),
				HookMunicipality: normalizer.MatchKey(a.MunicipalityOrCity),
				HookProvince:     normalizer.MatchKey(a.ProvinceOrHUC),
			},
		})
	}
	logger.Info("Memory search engine ready", zap.Int("documents", len(docs)))
	return &MemoryEngine{docs: docs, logger: logger}
}

// SearchBarangay scores each record on the enabled hooks and returns the
// best candidates above threshold, ordered by score descending with the
// PSGC code as tiebreaker.
func (me *MemoryEngine) SearchBarangay(ctx context.Context, query string, matchHooks []string, threshold float64, limit int) ([]Match, error) {
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	queryKey := normalizer.MatchKey(query)
	hooks := orderHooks(matchHooks)

	var candidates []Match
	for _, doc := range me.docs {
		score := me.scoreDocument(queryKey, doc, hooks)
		if score < threshold {
			continue
		}
		m := doc.match
		m.Score = score
		candidates = append(candidates, m)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].PSGCID < candidates[j].PSGCID
	})
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

// scoreDocument takes the best score across each hooked field alone and
// the hooked fields joined, so both "aguho" and "aguho pateros" rank the
// same record highly.
func (me *MemoryEngine) scoreDocument(queryKey string, doc document, hooks []string) float64 {
	best := 0.0
	parts := make([]string, 0, len(hooks))
	for _, hook := range hooks {
		key := doc.keys[hook]
		if key == "" {
			continue
		}
		parts = append(parts, key)
		if s := similarity(queryKey, key); s > best {
			best = s
		}
	}
	if len(parts) > 1 {
		if s := similarity(queryKey, strings.Join(parts, " ")); s > best {
			best = s
		}
	}
	return best
}

// orderHooks maps the caller's hook set onto the canonical order.
func orderHooks(matchHooks []string) []string {
	enabled := make(map[string]bool, len(matchHooks))
	for _, h := range matchHooks {
		enabled[h] = true
	}
	ordered := make([]string, 0, len(enabled))
	for _, h := range canonicalHooks {
		if enabled[h] {
			ordered = append(ordered, h)
		}
	}
	return ordered
}

// similarity scores two match keys on a 0-100 scale: the max of
// Jaro-Winkler and length-normalized Levenshtein, same combination the
// address matcher this grew out of used.
func similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}

	jw := smetrics.JaroWinkler(a, b, config.C.Scoring.JWBoostThreshold, config.C.Scoring.JWPrefixSize) * 100

	dist := levenshtein.ComputeDistance(a, b)
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	lev := (1 - float64(dist)/float64(maxLen)) * 100

	if lev > jw {
		return lev
	}
	return jw
}
