package dataset

import (
	"github.com/barangay-api/app/models"
)

// ProvinceNode is one entry in a region: either a province holding
// municipalities/cities, or a highly urbanized city (and the odd
// municipality, e.g. Pateros) that carries its barangays directly.
// Exactly one of the two variants is populated; the variant is fixed at
// load time, never re-inspected downstream.
type ProvinceNode struct {
	name      string
	childKeys []string            // municipality/city names in dataset order
	children  map[string][]string // municipality/city -> barangay names
	barangays []string            // direct-list variant
}

// Name returns the province or HUC name.
func (n *ProvinceNode) Name() string { return n.name }

// DirectBarangays returns the barangay list and true for the HUC-as-leaf
// variant, nil and false for a province with municipalities.
func (n *ProvinceNode) DirectBarangays() ([]string, bool) {
	if n.children != nil {
		return nil, false
	}
	return n.barangays, true
}

// MunicipalityNames returns the child names in dataset order. Empty for
// the direct-list variant.
func (n *ProvinceNode) MunicipalityNames() []string { return n.childKeys }

// Barangays returns the barangay list of a municipality or city under
// this node.
func (n *ProvinceNode) Barangays(municipalityOrCity string) ([]string, bool) {
	b, ok := n.children[municipalityOrCity]
	return b, ok
}

// Region is one region with its province/HUC nodes in dataset order.
type Region struct {
	name          string
	provinceKeys  []string
	provinceNodes map[string]*ProvinceNode
}

// Name returns the region name.
func (r *Region) Name() string { return r.name }

// ProvinceNames returns the province/HUC names in dataset order.
func (r *Region) ProvinceNames() []string { return r.provinceKeys }

// Province returns the node for a province or HUC name.
func (r *Region) Province(name string) (*ProvinceNode, bool) {
	n, ok := r.provinceNodes[name]
	return n, ok
}

// Dataset holds the full PSGC hierarchy and the flat index. Built once at
// startup and read-only afterwards, so it is safe to share across
// requests without locking.
type Dataset struct {
	regionKeys []string
	regions    map[string]*Region
	flat       []models.Area
	byID       map[string]*models.Area
}

// RegionNames returns all region names in dataset order.
func (d *Dataset) RegionNames() []string { return d.regionKeys }

// Region returns the region by name.
func (d *Dataset) Region(name string) (*Region, bool) {
	r, ok := d.regions[name]
	return r, ok
}

// Flat returns every record in the flat index.
func (d *Dataset) Flat() []models.Area { return d.flat }

// ByID returns the record with the given PSGC code.
func (d *Dataset) ByID(psgcID string) (*models.Area, bool) {
	a, ok := d.byID[psgcID]
	return a, ok
}

// ByName returns every record whose official name matches exactly, in
// flat-index order. The slice is never nil.
func (d *Dataset) ByName(name string) []models.Area {
	res := make([]models.Area, 0)
	for _, a := range d.flat {
		if a.Name == name {
			res = append(res, a)
		}
	}
	return res
}

// Stats returns record counts per level plus the total.
func (d *Dataset) Stats() map[string]int {
	stats := map[string]int{"total": len(d.flat)}
	for _, a := range d.flat {
		stats[a.Level]++
	}
	return stats
}
