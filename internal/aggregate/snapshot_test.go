package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/dashview/internal/model"
	"github.com/roach88/dashview/internal/testutil"
)

func TestCompute_Pharmacies(t *testing.T) {
	s := Compute(testutil.Pharmacies())

	assert.Equal(t, 10, s.Count)
	assert.Equal(t, 11278, s.TotalSells)
	assert.Equal(t, 7396, s.TotalBuys)
	assert.InDelta(t, 1127.8, s.AverageSells, 1e-9)
	assert.InDelta(t, 739.6, s.AverageBuys, 1e-9)
	assert.Equal(t, 1128, s.AverageSellsRounded)

	require.NotNil(t, s.TopCity)
	assert.Equal(t, GroupCount{Value: "Cairo", Count: 3}, *s.TopCity)

	require.NotNil(t, s.TopSeller)
	assert.Equal(t, model.ID(3), s.TopSeller.ID)
	assert.Equal(t, 1562, s.TopSeller.Sells)
	assert.Len(t, s.Cities, 6)
}

func TestCompute_Empty(t *testing.T) {
	s := Compute(nil)

	assert.Zero(t, s.Count)
	assert.Zero(t, s.TotalSells)
	assert.Zero(t, s.TotalBuys)
	assert.Equal(t, 0.0, s.AverageSells)
	assert.Equal(t, 0.0, s.AverageBuys)
	assert.Zero(t, s.AverageSellsRounded)
	assert.NotNil(t, s.Cities)
	assert.Empty(t, s.Cities)
	assert.Nil(t, s.TopCity)
	assert.Nil(t, s.TopSeller)
}

func TestCompute_FilteredSubset(t *testing.T) {
	var cairo []model.Record
	for _, r := range testutil.Pharmacies() {
		if r.City == "Cairo" {
			cairo = append(cairo, r)
		}
	}

	s := Compute(cairo)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 1245+843+1500, s.TotalSells)
	require.NotNil(t, s.TopSeller)
	assert.Equal(t, model.ID(10), s.TopSeller.ID)
}

func TestParseScope(t *testing.T) {
	s, err := ParseScope("")
	require.NoError(t, err)
	assert.Equal(t, ScopeAll, s)

	s, err = ParseScope("Filtered")
	require.NoError(t, err)
	assert.Equal(t, ScopeFiltered, s)

	_, err = ParseScope("page")
	assert.True(t, model.IsInvalidInput(err))
}
