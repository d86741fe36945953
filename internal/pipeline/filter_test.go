package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/dashview/internal/model"
	"github.com/roach88/dashview/internal/testutil"
)

func TestFilter_EmptyQueryKeepsEverything(t *testing.T) {
	records := testutil.Pharmacies()
	got := Filter(records, "")
	assert.Equal(t, records, got)
}

func TestFilter_CaseInsensitiveCity(t *testing.T) {
	got := Filter(testutil.Pharmacies(), "cairo")
	assert.Equal(t, []model.ID{1, 4, 10}, model.IDs(got))

	got = Filter(testutil.Pharmacies(), "CAIRO")
	assert.Equal(t, []model.ID{1, 4, 10}, model.IDs(got))
}

func TestFilter_MatchesNameOrCity(t *testing.T) {
	records := []model.Record{
		testutil.Record(1, "Nile Pharmacy", "Giza", 1, 1),
		testutil.Record(2, "Delta Care", "Nile City", 1, 1),
		testutil.Record(3, "Other", "Luxor", 1, 1),
	}

	got := Filter(records, "nile")
	assert.Equal(t, []model.ID{1, 2}, model.IDs(got))
}

func TestFilter_DoesNotSearchLicense(t *testing.T) {
	got := Filter(testutil.Pharmacies(), "PH123456")
	assert.Empty(t, got)
}

func TestFilter_Substring(t *testing.T) {
	got := Filter(testutil.Pharmacies(), "harm")
	assert.Len(t, got, 10)

	got = Filter(testutil.Pharmacies(), "alex")
	assert.Equal(t, []model.ID{3, 8}, model.IDs(got))
}

func TestFilter_EmptyInput(t *testing.T) {
	got := Filter(nil, "cairo")
	require.NotNil(t, got)
	assert.Empty(t, got)

	got = Filter(nil, "")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	records := testutil.Pharmacies()
	got := Filter(records, "")
	got[0].Name = "changed"
	assert.Equal(t, "Light Pharmacy", records[0].Name)
}

// Property: the result holds exactly the matching records, in input order.
func TestFilter_ExactMatchSet(t *testing.T) {
	records := testutil.Numbered(40)
	for _, q := range []string{"", "cai", "GIZA", "pharmacy 1", "x", "0"} {
		got := Filter(records, q)
		var want []model.ID
		for _, r := range records {
			if Matches(r, model.Fold(q)) {
				want = append(want, r.ID)
			}
		}
		if want == nil {
			want = []model.ID{}
		}
		assert.Equal(t, want, model.IDs(got), "query %q", q)
	}
}
