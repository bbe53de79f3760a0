package requests

// SearchBarangayRequest is the body of POST /search_barangay. MatchHooks,
// Threshold and LenResults are optional; absent (or zero) values take the
// configured defaults.
type SearchBarangayRequest struct {
	SearchString string   `json:"search_string" binding:"required"`
	MatchHooks   []string `json:"match_hooks"`
	Threshold    float64  `json:"threshold"`
	LenResults   int      `json:"len_results"`
}
