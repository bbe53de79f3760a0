package dataset

import (
	"testing"

	"github.com/barangay-api/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)
	require.NotNil(t, ds)

	assert.Contains(t, ds.RegionNames(), "National Capital Region")
	assert.NotEmpty(t, ds.Flat())
}

// TestLoad_FlatMatchesHierarchy checks that every barangay reachable by
// walking the hierarchy has a flat record reachable by ID.
func TestLoad_FlatMatchesHierarchy(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	byName := map[string]bool{}
	for _, a := range ds.Flat() {
		byName[a.Name] = true
	}

	for _, regionName := range ds.RegionNames() {
		r, ok := ds.Region(regionName)
		require.True(t, ok, regionName)
		for _, provName := range r.ProvinceNames() {
			node, ok := r.Province(provName)
			require.True(t, ok, provName)

			if brgys, direct := node.DirectBarangays(); direct {
				for _, b := range brgys {
					assert.True(t, byName[b], "missing flat record for %s", b)
				}
				continue
			}
			for _, muni := range node.MunicipalityNames() {
				brgys, ok := node.Barangays(muni)
				require.True(t, ok, muni)
				for _, b := range brgys {
					assert.True(t, byName[b], "missing flat record for %s", b)
				}
			}
		}
	}
}

func TestLoad_UniqueIDs(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, a := range ds.Flat() {
		assert.False(t, seen[a.PSGCID], "duplicate psgc_id %s", a.PSGCID)
		seen[a.PSGCID] = true
		assert.True(t, a.IsValidLevel(), "bad level %q on %s", a.Level, a.PSGCID)
	}
}

// TestProvinceNode_Variants checks that the two node shapes decode into
// the right variant: a HUC keeps its barangays directly, a province keeps
// a municipality map.
func TestProvinceNode_Variants(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	ncr, ok := ds.Region("National Capital Region")
	require.True(t, ok)

	manila, ok := ncr.Province("City of Manila")
	require.True(t, ok)
	brgys, direct := manila.DirectBarangays()
	assert.True(t, direct)
	assert.NotEmpty(t, brgys)
	assert.Empty(t, manila.MunicipalityNames())

	ilocos, ok := ds.Region("Ilocos Region (Region I)")
	require.True(t, ok)

	norte, ok := ilocos.Province("Ilocos Norte")
	require.True(t, ok)
	_, direct = norte.DirectBarangays()
	assert.False(t, direct)
	assert.Contains(t, norte.MunicipalityNames(), "Laoag City")

	laoag, ok := norte.Barangays("Laoag City")
	assert.True(t, ok)
	assert.NotEmpty(t, laoag)
}

func TestByID(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	aguho, ok := ds.ByID("137404001")
	require.True(t, ok)
	assert.Equal(t, "Aguho", aguho.Name)
	assert.Equal(t, models.LevelBarangay, aguho.Level)
	assert.Equal(t, "Pateros", aguho.MunicipalityOrCity)
	assert.Equal(t, "Pateros", aguho.ProvinceOrHUC)

	_, ok = ds.ByID("000000000")
	assert.False(t, ok)
}

func TestByName(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	// Pateros exists as both a municipality and the province_or_huc slot
	// holder; by-name returns the flat records, one per level.
	pateros := ds.ByName("Pateros")
	require.Len(t, pateros, 1)
	assert.Equal(t, models.LevelMunicipality, pateros[0].Level)

	// Duplicate barangay names across municipalities come back together.
	poblacion := ds.ByName("Poblacion")
	assert.Greater(t, len(poblacion), 1)
	for _, a := range poblacion {
		assert.Equal(t, models.LevelBarangay, a.Level)
	}

	// Unknown names produce an empty, non-nil slice.
	none := ds.ByName("Atlantis")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestStats(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	stats := ds.Stats()
	assert.Equal(t, len(ds.Flat()), stats["total"])
	assert.Equal(t, len(ds.RegionNames()), stats[models.LevelRegion])
	assert.Greater(t, stats[models.LevelBarangay], 0)
}
