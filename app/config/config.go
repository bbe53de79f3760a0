package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Defaults applied to a search request when the field is absent. The
// match-hook default deliberately mirrors the runtime behavior of the
// original service: two hooks, not the three the old schema declared.
type SearchDefaults struct {
	MatchHooks []string `yaml:"match_hooks" json:"match_hooks"`
	Threshold  float64  `yaml:"threshold" json:"threshold"`
	LenResults int      `yaml:"len_results" json:"len_results"`
}

// Scoring tunes the in-memory matcher.
type Scoring struct {
	JWBoostThreshold float64 `yaml:"jw_boost_threshold" json:"jw_boost_threshold"`
	JWPrefixSize     int     `yaml:"jw_prefix_size" json:"jw_prefix_size"`
}

type MatcherCfg struct {
	Defaults SearchDefaults `yaml:"defaults" json:"defaults"`
	Scoring  Scoring        `yaml:"scoring" json:"scoring"`
}

var C = Default()

// Default returns the built-in matcher configuration.
func Default() MatcherCfg {
	return MatcherCfg{
		Defaults: SearchDefaults{
			MatchHooks: []string{"barangay", "municipality"},
			Threshold:  60,
			LenResults: 1,
		},
		Scoring: Scoring{
			JWBoostThreshold: 0.7,
			JWPrefixSize:     4,
		},
	}
}

// Load overlays the YAML file at path onto the defaults, then applies
// ENV overrides. A missing file is not an error; a malformed one is.
func Load(path string) error {
	C = Default()

	b, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(b, &C); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	// ENV overrides
	if v := os.Getenv("SEARCH_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			C.Defaults.Threshold = f
		}
	}
	if v := os.Getenv("SEARCH_LEN_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			C.Defaults.LenResults = n
		}
	}
	return nil
}
