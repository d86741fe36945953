package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/dashview/internal/model"
	"github.com/roach88/dashview/internal/session"
	"github.com/roach88/dashview/internal/testutil"
)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	sess, err := session.New(testutil.Pharmacies(), session.WithID("assert"))
	require.NoError(t, err)
	return sess
}

func TestEvaluateAssertions_AllPass(t *testing.T) {
	sess := newSession(t)
	sess.SetQuery("alexandria")

	errs := EvaluateAssertions(sess, []Assertion{
		{Type: AssertVisibleIDs, IDs: []model.ID{3, 8}},
		{Type: AssertTotalPages, Value: float(1)},
		{Type: AssertCurrentPage, Value: float(1)},
		{Type: AssertFilteredCount, Value: float(2)},
		{Type: AssertSort, Sort: "none"},
		{Type: AssertAggregate, Scope: "filtered", Metric: "total_sells", Value: float(2912)},
		{Type: AssertAggregate, Scope: "filtered", Metric: "average_buys", Value: float(911)},
		{Type: AssertAggregate, Scope: "all", Metric: "city_count", Value: float(6)},
		{Type: AssertAggregate, Metric: "top_city_count", Value: float(3)},
	}, nil)
	assert.Empty(t, errs)
}

func TestEvaluateAssertions_Failures(t *testing.T) {
	sess := newSession(t)

	errs := EvaluateAssertions(sess, []Assertion{
		{Type: AssertVisibleIDs, IDs: []model.ID{5, 4, 3, 2, 1}},
		{Type: AssertTotalPages, Value: float(3)},
		{Type: AssertSort, Sort: "name ascending"},
		{Type: AssertAggregate, Metric: "count", Value: float(11)},
	}, nil)
	require.Len(t, errs, 4)
	assert.Contains(t, errs[0], "assertions[0]: Assertion failed: visible_ids")
	assert.Contains(t, errs[1], "Expected: 3")
	assert.Contains(t, errs[1], "Actual: 2")
	assert.Contains(t, errs[2], "Actual: none")
	assert.Contains(t, errs[3], "aggregate all/count")
}

func TestEvaluateAssertions_EmptyVisibleIDs(t *testing.T) {
	sess := newSession(t)
	sess.SetQuery("no such pharmacy")

	errs := EvaluateAssertions(sess, []Assertion{
		{Type: AssertVisibleIDs},
		{Type: AssertVisibleIDs, IDs: []model.ID{}},
	}, nil)
	assert.Empty(t, errs)
}

func TestEvaluateAssertions_SortIsCaseInsensitive(t *testing.T) {
	sess := newSession(t)
	_, err := sess.RequestSort(model.FieldBuys)
	require.NoError(t, err)
	_, err = sess.RequestSort(model.FieldBuys)
	require.NoError(t, err)

	errs := EvaluateAssertions(sess, []Assertion{
		{Type: AssertSort, Sort: "NUMBER_BUYS Descending"},
		{Type: AssertVisibleIDs, IDs: []model.ID{10, 3, 8, 1, 6}},
	}, nil)
	assert.Empty(t, errs)
}

func TestAssertionError_IncludesSteps(t *testing.T) {
	err := &AssertionError{
		Type:     AssertTotalPages,
		Expected: "2",
		Actual:   "1",
		Trace: []TraceEvent{
			{Seq: 1, Op: OpSetQuery, Arg: "giza", Page: 1, TotalPages: 1, IDs: []model.ID{2, 9}},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "Assertion failed: total_pages")
	assert.Contains(t, msg, "[1] set_query giza -> page 1/1 [2 9]")
}
