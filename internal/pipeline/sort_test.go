package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/dashview/internal/model"
	"github.com/roach88/dashview/internal/testutil"
)

func TestSort_NilSpecIsIdentity(t *testing.T) {
	records := testutil.Pharmacies()
	got := Sort(records, nil)
	assert.Equal(t, records, got)
}

func TestSort_BySellsAscending(t *testing.T) {
	got := Sort(testutil.Pharmacies(), &SortSpec{Key: model.FieldSells, Direction: Ascending})
	assert.Equal(t, []model.ID{5, 4, 7, 2, 9, 6, 1, 8, 10, 3}, model.IDs(got))
}

func TestSort_BySellsDescending(t *testing.T) {
	got := Sort(testutil.Pharmacies(), &SortSpec{Key: model.FieldSells, Direction: Descending})
	assert.Equal(t, []model.ID{3, 10, 8, 1, 6, 9, 2, 7, 4, 5}, model.IDs(got))
}

func TestSort_ByNameLexicographic(t *testing.T) {
	got := Sort(testutil.Pharmacies(), &SortSpec{Key: model.FieldName, Direction: Ascending})
	// Blue, Gold, Green, Healing, Hope, Life, Light, Mercy, Red, Sunshine
	assert.Equal(t, []model.ID{8, 10, 7, 2, 3, 4, 1, 5, 9, 6}, model.IDs(got))
}

func TestSort_ByIDNumeric(t *testing.T) {
	records := []model.Record{{ID: 10}, {ID: 9}, {ID: 100}, {ID: 1}}
	got := Sort(records, &SortSpec{Key: model.FieldID, Direction: Ascending})
	assert.Equal(t, []model.ID{1, 9, 10, 100}, model.IDs(got))
}

func TestSort_StableOnEqualKeys(t *testing.T) {
	// Cairo: 1, 4, 10; Giza: 2, 9; Alexandria: 3, 8
	records := testutil.Pharmacies()

	asc := Sort(records, &SortSpec{Key: model.FieldCity, Direction: Ascending})
	assert.Equal(t, []model.ID{3, 8, 7, 1, 4, 10, 2, 9, 6, 5}, model.IDs(asc))

	desc := Sort(records, &SortSpec{Key: model.FieldCity, Direction: Descending})
	assert.Equal(t, []model.ID{5, 6, 2, 9, 1, 4, 10, 7, 3, 8}, model.IDs(desc),
		"descending keeps input order among equal keys")
}

func TestSort_Idempotent(t *testing.T) {
	records := testutil.Numbered(25)
	for _, f := range model.Fields {
		for _, dir := range []Direction{Ascending, Descending} {
			spec := &SortSpec{Key: f, Direction: dir}
			once := Sort(records, spec)
			twice := Sort(once, spec)
			assert.Equal(t, once, twice, "sorting twice by %s", spec)
		}
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	records := testutil.Pharmacies()
	_ = Sort(records, &SortSpec{Key: model.FieldSells, Direction: Descending})
	assert.Equal(t, testutil.Pharmacies(), records)
}

func TestSort_EmptyInput(t *testing.T) {
	got := Sort(nil, &SortSpec{Key: model.FieldName, Direction: Ascending})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestToggle(t *testing.T) {
	first := Toggle(nil, model.FieldSells)
	assert.Equal(t, SortSpec{Key: model.FieldSells, Direction: Ascending}, first)

	second := Toggle(&first, model.FieldSells)
	assert.Equal(t, SortSpec{Key: model.FieldSells, Direction: Descending}, second)

	third := Toggle(&second, model.FieldSells)
	assert.Equal(t, SortSpec{Key: model.FieldSells, Direction: Ascending}, third)

	other := Toggle(&second, model.FieldName)
	assert.Equal(t, SortSpec{Key: model.FieldName, Direction: Ascending}, other)
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("DESC")
	require.NoError(t, err)
	assert.Equal(t, Descending, d)

	d, err = ParseDirection("ascending")
	require.NoError(t, err)
	assert.Equal(t, Ascending, d)

	_, err = ParseDirection("sideways")
	assert.True(t, model.IsInvalidInput(err))
}
