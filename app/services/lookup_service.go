package services

import (
	"github.com/barangay-api/app/models"
	"github.com/barangay-api/internal/dataset"
	"go.uber.org/zap"
)

// LookupService walks the administrative hierarchy one validated step at
// a time. Every method is a pure read over the immutable dataset.
type LookupService struct {
	ds     *dataset.Dataset
	logger *zap.Logger
}

// NewLookupService creates a LookupService over a loaded dataset.
func NewLookupService(ds *dataset.Dataset, logger *zap.Logger) *LookupService {
	return &LookupService{ds: ds, logger: logger}
}

// Regions returns all region names in dataset order. Never fails.
func (ls *LookupService) Regions() []string {
	return ls.ds.RegionNames()
}

// checkRegion resolves a region name or fails with the /regions hint.
func (ls *LookupService) checkRegion(region string) (*dataset.Region, error) {
	r, ok := ls.ds.Region(region)
	if !ok {
		return nil, &NotFoundError{
			Kind:  KindRegion,
			Value: region,
			Hint:  "Try `/regions`?",
		}
	}
	return r, nil
}

// checkProvinceOrHUC resolves a province/HUC under an already-validated
// region.
func (ls *LookupService) checkProvinceOrHUC(r *dataset.Region, provinceOrHUC string) (*dataset.ProvinceNode, error) {
	node, ok := r.Province(provinceOrHUC)
	if !ok {
		return nil, &NotFoundError{
			Kind:  KindProvinceOrHUC,
			Value: provinceOrHUC,
			Hint:  "Try `/{region}/provinces_and_highly_urbanized_cities`?",
		}
	}
	return node, nil
}

// ProvincesAndCities lists the provinces and highly urbanized cities of a
// region. In some unusual cases this also includes a municipality
// (Pateros in the National Capital Region).
func (ls *LookupService) ProvincesAndCities(region string) ([]string, error) {
	r, err := ls.checkRegion(region)
	if err != nil {
		return nil, err
	}
	return r.ProvinceNames(), nil
}

// MunicipalitiesAndCities lists the municipalities and cities under a
// province or HUC. When the addressed node carries its barangays
// directly, the name itself is returned as the single valid
// municipality/city.
func (ls *LookupService) MunicipalitiesAndCities(region, provinceOrHUC string) ([]string, error) {
	r, err := ls.checkRegion(region)
	if err != nil {
		return nil, err
	}
	node, err := ls.checkProvinceOrHUC(r, provinceOrHUC)
	if err != nil {
		return nil, err
	}
	if _, direct := node.DirectBarangays(); direct {
		return []string{provinceOrHUC}, nil
	}
	return node.MunicipalityNames(), nil
}

// Barangays lists the barangays of a municipality or city. When the
// province/HUC node is a direct barangay list it is returned as-is
// without validating municipalityOrCity against it — longstanding
// behavior callers rely on. Otherwise the municipality is accepted if it
// is a child of the node or, failing that, a direct-list entry at the
// region level.
func (ls *LookupService) Barangays(region, provinceOrHUC, municipalityOrCity string) ([]string, error) {
	r, err := ls.checkRegion(region)
	if err != nil {
		return nil, err
	}
	node, err := ls.checkProvinceOrHUC(r, provinceOrHUC)
	if err != nil {
		return nil, err
	}

	if brgys, direct := node.DirectBarangays(); direct {
		return brgys, nil
	}

	if brgys, ok := node.Barangays(municipalityOrCity); ok {
		return brgys, nil
	}

	// Region-level fallback: the name may itself be a direct-list node
	// of this region (an HUC given in the municipality slot).
	if sibling, ok := r.Province(municipalityOrCity); ok {
		if brgys, direct := sibling.DirectBarangays(); direct {
			return brgys, nil
		}
	}

	return nil, &NotFoundError{
		Kind:  KindMunicipalityOrCity,
		Value: municipalityOrCity,
		Hint:  "Try `/{region}/{province_or_highly_urbanized_city}/municipalities_and_cities`?",
	}
}

// ByID returns the administrative area with the given PSGC code.
func (ls *LookupService) ByID(psgcID string) (*models.Area, error) {
	a, ok := ls.ds.ByID(psgcID)
	if !ok {
		return nil, &NotFoundError{
			Kind:  KindID,
			Value: psgcID,
			Hint:  "Are you using the 10-digit PSGC format?",
		}
	}
	return a, nil
}

// ByName returns every record matching the official name exactly, across
// all levels. The result may be empty; that is not an error.
func (ls *LookupService) ByName(name string) []models.Area {
	return ls.ds.ByName(name)
}

// Stats exposes dataset record counts for the health endpoint.
func (ls *LookupService) Stats() map[string]int {
	return ls.ds.Stats()
}
