package search

import "context"

// Match hooks: the dimensions the matcher is allowed to score a query
// against.
const (
	HookBarangay     = "barangay"
	HookMunicipality = "municipality"
	HookProvince     = "province"
)

// canonicalHooks fixes the order hook fields are joined in, so results
// do not depend on the order the caller listed the hooks.
var canonicalHooks = []string{HookBarangay, HookMunicipality, HookProvince}

// ValidHook reports whether h names a known match hook.
func ValidHook(h string) bool {
	for _, known := range canonicalHooks {
		if h == known {
			return true
		}
	}
	return false
}

// Match is one scored candidate from an engine, ordered best-first.
type Match struct {
	Barangay           string
	ProvinceOrHUC      string
	MunicipalityOrCity string
	PSGCID             string
	Score              float64
}

// Engine ranks barangay records against a free-text query. Scores are on
// a 0-100 scale; only candidates at or above threshold are returned, at
// most limit of them. A non-positive limit disables truncation.
type Engine interface {
	SearchBarangay(ctx context.Context, query string, matchHooks []string, threshold float64, limit int) ([]Match, error)
}
