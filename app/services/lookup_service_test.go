package services

import (
	"testing"

	"github.com/barangay-api/app/models"
	"github.com/barangay-api/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestLookupService(t *testing.T) *LookupService {
	t.Helper()
	ds, err := dataset.Load()
	require.NoError(t, err)
	return NewLookupService(ds, zap.NewNop())
}

func TestLookupService_Regions(t *testing.T) {
	ls := newTestLookupService(t)

	regions := ls.Regions()
	assert.NotEmpty(t, regions)
	assert.Contains(t, regions, "National Capital Region")
}

func TestLookupService_ProvincesAndCities(t *testing.T) {
	ls := newTestLookupService(t)

	names, err := ls.ProvincesAndCities("National Capital Region")
	require.NoError(t, err)
	assert.Contains(t, names, "City of Manila")
	// NCR lists Pateros, a municipality, at the province level.
	assert.Contains(t, names, "Pateros")

	_, err = ls.ProvincesAndCities("Narnia")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, KindRegion, notFound.Kind)
	assert.Equal(t, "Narnia", notFound.Value)
	assert.Contains(t, notFound.Message(), "/regions")
}

func TestLookupService_MunicipalitiesAndCities(t *testing.T) {
	ls := newTestLookupService(t)

	// A real province lists its municipalities and cities.
	names, err := ls.MunicipalitiesAndCities("Ilocos Region (Region I)", "Ilocos Norte")
	require.NoError(t, err)
	assert.Contains(t, names, "Laoag City")
	assert.Contains(t, names, "Pagudpud")

	// A HUC that carries its barangays directly answers with itself as
	// the single municipality/city.
	names, err = ls.MunicipalitiesAndCities("National Capital Region", "Quezon City")
	require.NoError(t, err)
	assert.Equal(t, []string{"Quezon City"}, names)

	// Unknown province under a valid region.
	_, err = ls.MunicipalitiesAndCities("National Capital Region", "Ilocos Norte")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, KindProvinceOrHUC, notFound.Kind)
	assert.Contains(t, notFound.Message(), "provinces_and_highly_urbanized_cities")
}

func TestLookupService_Barangays(t *testing.T) {
	ls := newTestLookupService(t)

	// The regular path: region -> province -> municipality.
	brgys, err := ls.Barangays("Ilocos Region (Region I)", "Ilocos Norte", "Laoag City")
	require.NoError(t, err)
	assert.NotEmpty(t, brgys)

	// Direct-list nodes ignore the municipality segment entirely.
	direct, err := ls.Barangays("National Capital Region", "Pateros", "Pateros")
	require.NoError(t, err)
	assert.Contains(t, direct, "Aguho")

	alsoDirect, err := ls.Barangays("National Capital Region", "Pateros", "whatever")
	require.NoError(t, err)
	assert.Equal(t, direct, alsoDirect)

	// Region-level fallback: a direct-list sibling named in the
	// municipality slot resolves to its own barangays.
	baguio, err := ls.Barangays("Cordillera Administrative Region (CAR)", "Abra", "City of Baguio")
	require.NoError(t, err)
	assert.Contains(t, baguio, "Alfonso Tabora")

	// A name that is neither a child nor a direct-list sibling fails.
	_, err = ls.Barangays("Ilocos Region (Region I)", "Ilocos Norte", "Atlantis")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, KindMunicipalityOrCity, notFound.Kind)
	assert.Contains(t, notFound.Message(), "municipalities_and_cities")

	// The fallback accepts only direct-list siblings. A sibling province
	// with its own municipalities in the municipality slot is not found.
	_, err = ls.Barangays("Ilocos Region (Region I)", "Ilocos Norte", "La Union")
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, KindMunicipalityOrCity, notFound.Kind)
}

func TestLookupService_ByID(t *testing.T) {
	ls := newTestLookupService(t)

	area, err := ls.ByID("137404001")
	require.NoError(t, err)
	assert.Equal(t, "Aguho", area.Name)
	assert.Equal(t, models.LevelBarangay, area.Level)

	_, err = ls.ByID("000000000")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, KindID, notFound.Kind)
	assert.Contains(t, notFound.Message(), "10-digit PSGC format")
}

func TestLookupService_ByName(t *testing.T) {
	ls := newTestLookupService(t)

	areas := ls.ByName("Poblacion")
	assert.Greater(t, len(areas), 1)

	// No match is an empty list, never an error.
	areas = ls.ByName("Atlantis")
	assert.NotNil(t, areas)
	assert.Empty(t, areas)
}
