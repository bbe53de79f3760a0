package models

// BarangayMatch is one search result in the shape the API returns.
// ProvinceOrHUC and MunicipalityOrCity are always serialized, possibly
// empty, so callers get a stable shape regardless of the record's level.
type BarangayMatch struct {
	Barangay           string `json:"barangay"`
	ProvinceOrHUC      string `json:"province_or_huc"`
	MunicipalityOrCity string `json:"municipality_or_city"`
	PSGCID             string `json:"psgc_id"`
}
