package services

import (
	"context"
	"errors"
	"testing"

	"github.com/barangay-api/app/requests"
	"github.com/barangay-api/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeEngine records the parameters of the last call and returns canned
// matches.
type fakeEngine struct {
	matches []search.Match
	err     error

	lastQuery     string
	lastHooks     []string
	lastThreshold float64
	lastLimit     int
	calls         int
}

func (fe *fakeEngine) SearchBarangay(ctx context.Context, query string, matchHooks []string, threshold float64, limit int) ([]search.Match, error) {
	fe.calls++
	fe.lastQuery = query
	fe.lastHooks = matchHooks
	fe.lastThreshold = threshold
	fe.lastLimit = limit
	return fe.matches, fe.err
}

func TestSearchService_DefaultsApplied(t *testing.T) {
	engine := &fakeEngine{matches: []search.Match{
		{Barangay: "Aguho", ProvinceOrHUC: "Pateros", MunicipalityOrCity: "Pateros", PSGCID: "137404001", Score: 100},
	}}
	ss := NewSearchService(engine, nil, zap.NewNop())

	resp, err := ss.SearchBarangay(context.Background(), requests.SearchBarangayRequest{
		SearchString: "aguho",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"barangay", "municipality"}, engine.lastHooks)
	assert.Equal(t, 60.0, engine.lastThreshold)
	assert.Equal(t, 1, engine.lastLimit)

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Aguho", resp.Results[0].Barangay)
	assert.Equal(t, "137404001", resp.Results[0].PSGCID)
	assert.GreaterOrEqual(t, resp.ElapsedSeconds, 0.0)
}

func TestSearchService_ExplicitParamsPassedThrough(t *testing.T) {
	engine := &fakeEngine{}
	ss := NewSearchService(engine, nil, zap.NewNop())

	_, err := ss.SearchBarangay(context.Background(), requests.SearchBarangayRequest{
		SearchString: "aguho",
		MatchHooks:   []string{"barangay", "province"},
		Threshold:    85,
		LenResults:   7,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"barangay", "province"}, engine.lastHooks)
	assert.Equal(t, 85.0, engine.lastThreshold)
	assert.Equal(t, 7, engine.lastLimit)
}

func TestSearchService_BarangayHookRequired(t *testing.T) {
	engine := &fakeEngine{}
	ss := NewSearchService(engine, nil, zap.NewNop())

	_, err := ss.SearchBarangay(context.Background(), requests.SearchBarangayRequest{
		SearchString: "aguho",
		MatchHooks:   []string{"municipality"},
	})

	var invalid *InvalidRequestError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Message(), "'barangay'")
	assert.Zero(t, engine.calls, "engine must not run for invalid hooks")
}

func TestSearchService_UnknownHookRejected(t *testing.T) {
	engine := &fakeEngine{}
	ss := NewSearchService(engine, nil, zap.NewNop())

	_, err := ss.SearchBarangay(context.Background(), requests.SearchBarangayRequest{
		SearchString: "aguho",
		MatchHooks:   []string{"barangay", "street"},
	})

	var invalid *InvalidRequestError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Message(), "street")
	assert.Zero(t, engine.calls)
}

// len_results is client-controlled; out-of-range values must be rejected
// before they reach the engine, never sized into an allocation.
func TestSearchService_LenResultsOutOfRange(t *testing.T) {
	testCases := []struct {
		name       string
		lenResults int
	}{
		{name: "Negative", lenResults: -1},
		{name: "Huge", lenResults: 1 << 40},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			engine := &fakeEngine{}
			ss := NewSearchService(engine, nil, zap.NewNop())

			_, err := ss.SearchBarangay(context.Background(), requests.SearchBarangayRequest{
				SearchString: "aguho",
				LenResults:   tc.lenResults,
			})

			var invalid *InvalidRequestError
			require.ErrorAs(t, err, &invalid)
			assert.Contains(t, invalid.Message(), "len_results")
			assert.Zero(t, engine.calls, "engine must not run for out-of-range len_results")
		})
	}
}

func TestSearchService_EmptyResultsAreAList(t *testing.T) {
	engine := &fakeEngine{matches: nil}
	ss := NewSearchService(engine, nil, zap.NewNop())

	resp, err := ss.SearchBarangay(context.Background(), requests.SearchBarangayRequest{
		SearchString: "zzzzz",
	})
	require.NoError(t, err)
	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
}

func TestSearchService_EngineErrorWrapped(t *testing.T) {
	engine := &fakeEngine{err: errors.New("meilisearch down")}
	ss := NewSearchService(engine, nil, zap.NewNop())

	_, err := ss.SearchBarangay(context.Background(), requests.SearchBarangayRequest{
		SearchString: "aguho",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "meilisearch down")
}

func TestSearchService_CacheHitSkipsEngine(t *testing.T) {
	engine := &fakeEngine{matches: []search.Match{
		{Barangay: "Aguho", PSGCID: "137404001", Score: 100},
	}}
	cache, err := NewLRUCacheService(16, zap.NewNop())
	require.NoError(t, err)
	ss := NewSearchService(engine, cache, zap.NewNop())

	req := requests.SearchBarangayRequest{SearchString: "aguho"}

	first, err := ss.SearchBarangay(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, engine.calls)

	second, err := ss.SearchBarangay(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, engine.calls, "second call must be served from cache")
	assert.Equal(t, first.Results, second.Results)
}

// Different parameters must never share a cache slot.
func TestSearchService_CacheKeyedOnAllParams(t *testing.T) {
	engine := &fakeEngine{}
	cache, err := NewLRUCacheService(16, zap.NewNop())
	require.NoError(t, err)
	ss := NewSearchService(engine, cache, zap.NewNop())

	_, err = ss.SearchBarangay(context.Background(), requests.SearchBarangayRequest{SearchString: "aguho"})
	require.NoError(t, err)
	_, err = ss.SearchBarangay(context.Background(), requests.SearchBarangayRequest{SearchString: "aguho", Threshold: 80})
	require.NoError(t, err)
	_, err = ss.SearchBarangay(context.Background(), requests.SearchBarangayRequest{SearchString: "aguho", LenResults: 5})
	require.NoError(t, err)

	assert.Equal(t, 3, engine.calls)
}
