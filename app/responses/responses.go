package responses

import (
	"github.com/barangay-api/app/models"
)

// SearchBarangayResponse is the body of POST /search_barangay.
type SearchBarangayResponse struct {
	Results        []models.BarangayMatch `json:"results"`
	ElapsedSeconds float64                `json:"elapsed_seconds"`
}

// Error codes
const (
	ErrNotFound       = "NOT_FOUND"
	ErrInvalidRequest = "INVALID_REQUEST"
	ErrInternal       = "INTERNAL_ERROR"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// HealthCheckResponse is the body of GET /health.
type HealthCheckResponse struct {
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	Uptime    string         `json:"uptime"`
	Version   string         `json:"version"`
	Dataset   map[string]int `json:"dataset"`
}
