package services

import "fmt"

// Lookup kinds reported by NotFoundError.
const (
	KindRegion             = "region"
	KindProvinceOrHUC      = "province or highly urbanized city"
	KindMunicipalityOrCity = "municipality or city"
	KindID                 = "id"
)

// NotFoundError reports a hierarchy or identifier lookup miss. Hint names
// the endpoint the caller should query for valid options.
type NotFoundError struct {
	Kind  string
	Value string
	Hint  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no such %s: %q", e.Kind, e.Value)
}

// Message is the caller-facing text, including the corrective hint.
func (e *NotFoundError) Message() string {
	if e.Hint == "" {
		return fmt.Sprintf("No such %s: '%s'.", e.Kind, e.Value)
	}
	return fmt.Sprintf("No such %s: '%s'. %s", e.Kind, e.Value, e.Hint)
}

// InvalidRequestError reports malformed search parameters.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return "malformed request: " + e.Reason
}

// Message is the caller-facing text.
func (e *InvalidRequestError) Message() string {
	return "Malformed request: " + e.Reason
}
