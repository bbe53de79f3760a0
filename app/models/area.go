package models

// Area is one administrative-area record keyed by its PSGC code.
// The display fields are filled depending on the level: a barangay record
// carries all three, a municipality carries two, a region carries none.
type Area struct {
	Name               string `json:"name"`
	PSGCID             string `json:"psgc_id"`
	Level              string `json:"level"`
	Barangay           string `json:"barangay,omitempty"`
	ProvinceOrHUC      string `json:"province_or_huc,omitempty"`
	MunicipalityOrCity string `json:"municipality_or_city,omitempty"`
}

// Level constants
const (
	LevelRegion              = "region"
	LevelProvince            = "province"
	LevelHighlyUrbanizedCity = "highly urbanized city"
	LevelMunicipality        = "municipality"
	LevelCity                = "city"
	LevelBarangay            = "barangay"
)

// IsValidLevel checks the level against the known PSGC levels.
func (a *Area) IsValidLevel() bool {
	switch a.Level {
	case LevelRegion, LevelProvince, LevelHighlyUrbanizedCity,
		LevelMunicipality, LevelCity, LevelBarangay:
		return true
	}
	return false
}
