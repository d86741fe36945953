package harness

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/roach88/dashview/internal/aggregate"
	"github.com/roach88/dashview/internal/model"
	"github.com/roach88/dashview/internal/session"
)

// floatTolerance absorbs rounding in averages written as decimals.
const floatTolerance = 1e-9

// metrics maps aggregate metric names to snapshot readers.
var metrics = map[string]func(aggregate.Snapshot) float64{
	"count":                 func(s aggregate.Snapshot) float64 { return float64(s.Count) },
	"total_sells":           func(s aggregate.Snapshot) float64 { return float64(s.TotalSells) },
	"total_buys":            func(s aggregate.Snapshot) float64 { return float64(s.TotalBuys) },
	"average_sells":         func(s aggregate.Snapshot) float64 { return s.AverageSells },
	"average_buys":          func(s aggregate.Snapshot) float64 { return s.AverageBuys },
	"average_sells_rounded": func(s aggregate.Snapshot) float64 { return float64(s.AverageSellsRounded) },
	"city_count":            func(s aggregate.Snapshot) float64 { return float64(len(s.Cities)) },
	"top_city_count": func(s aggregate.Snapshot) float64 {
		if s.TopCity == nil {
			return 0
		}
		return float64(s.TopCity.Count)
	},
	"top_seller_id": func(s aggregate.Snapshot) float64 {
		if s.TopSeller == nil {
			return 0
		}
		return float64(s.TopSeller.ID)
	},
}

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string       // Assertion type
	Expected string       // Human-readable expected outcome
	Actual   string       // Human-readable actual outcome
	Trace    []TraceEvent // Steps leading to the failure
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if len(e.Trace) > 0 {
		fmt.Fprintf(&buf, "\nSteps:\n")
		for _, event := range e.Trace {
			fmt.Fprintf(&buf, "  [%d] %s %s -> page %d/%d %v\n",
				event.Seq, event.Op, event.Arg, event.Page, event.TotalPages, event.IDs)
		}
	}
	return buf.String()
}

// EvaluateAssertions checks every assertion against sess and returns one
// message per failure.
func EvaluateAssertions(sess *session.Session, assertions []Assertion, trace []TraceEvent) []string {
	var errs []string
	for i, a := range assertions {
		if err := evaluateAssertion(sess, a, trace); err != nil {
			errs = append(errs, fmt.Sprintf("assertions[%d]: %v", i, err))
		}
	}
	return errs
}

func evaluateAssertion(sess *session.Session, a Assertion, trace []TraceEvent) error {
	switch a.Type {
	case AssertVisibleIDs:
		return assertVisibleIDs(sess, a, trace)
	case AssertTotalPages, AssertCurrentPage, AssertFilteredCount:
		return assertPageNumber(sess, a, trace)
	case AssertSort:
		return assertSort(sess, a, trace)
	case AssertAggregate:
		return assertAggregate(sess, a, trace)
	}
	return fmt.Errorf("unknown assertion type %q", a.Type)
}

func assertVisibleIDs(sess *session.Session, a Assertion, trace []TraceEvent) error {
	page, err := sess.VisiblePage()
	if err != nil {
		return err
	}
	want := a.IDs
	if want == nil {
		want = []model.ID{}
	}
	got := model.IDs(page.Items)
	if slices.Equal(want, got) {
		return nil
	}
	return &AssertionError{
		Type:     a.Type,
		Expected: fmt.Sprintf("%v", want),
		Actual:   fmt.Sprintf("%v", got),
		Trace:    trace,
	}
}

func assertPageNumber(sess *session.Session, a Assertion, trace []TraceEvent) error {
	page, err := sess.VisiblePage()
	if err != nil {
		return err
	}
	var got int
	switch a.Type {
	case AssertTotalPages:
		got = page.TotalPages
	case AssertCurrentPage:
		got = page.CurrentPage
	case AssertFilteredCount:
		got = page.TotalItems
	}
	return compareNumber(a, float64(got), trace)
}

func assertSort(sess *session.Session, a Assertion, trace []TraceEvent) error {
	got := "none"
	if spec := sess.SortSpec(); spec != nil {
		got = spec.String()
	}
	if strings.EqualFold(strings.TrimSpace(a.Sort), got) {
		return nil
	}
	return &AssertionError{
		Type:     a.Type,
		Expected: a.Sort,
		Actual:   got,
		Trace:    trace,
	}
}

func assertAggregate(sess *session.Session, a Assertion, trace []TraceEvent) error {
	scope, err := aggregate.ParseScope(a.Scope)
	if err != nil {
		return err
	}
	read, ok := metrics[a.Metric]
	if !ok {
		return fmt.Errorf("unknown metric %q", a.Metric)
	}
	a.Type = fmt.Sprintf("%s %s/%s", a.Type, scope, a.Metric)
	return compareNumber(a, read(sess.Aggregates(scope)), trace)
}

func compareNumber(a Assertion, got float64, trace []TraceEvent) error {
	if math.Abs(*a.Value-got) <= floatTolerance {
		return nil
	}
	return &AssertionError{
		Type:     a.Type,
		Expected: formatNumber(*a.Value),
		Actual:   formatNumber(got),
		Trace:    trace,
	}
}

func formatNumber(v float64) string {
	return fmt.Sprintf("%g", v)
}
