package aggregate

import (
	"fmt"
	"math"
	"strings"

	"github.com/roach88/dashview/internal/model"
)

// Scope selects the collection aggregates are computed over.
type Scope string

const (
	// ScopeAll aggregates the full collection.
	ScopeAll Scope = "all"
	// ScopeFiltered aggregates only records passing the active query.
	ScopeFiltered Scope = "filtered"
)

// ParseScope accepts "all" and "filtered". An empty string means ScopeAll.
func ParseScope(s string) (Scope, error) {
	switch Scope(strings.ToLower(strings.TrimSpace(s))) {
	case "", ScopeAll:
		return ScopeAll, nil
	case ScopeFiltered:
		return ScopeFiltered, nil
	}
	return "", &model.Error{
		Code:    model.ErrCodeInvalidInput,
		Message: fmt.Sprintf("unknown aggregate scope %q", s),
	}
}

// Snapshot is every dashboard metric computed from one collection read.
type Snapshot struct {
	Count      int `json:"count"`
	TotalSells int `json:"total_sells"`
	TotalBuys  int `json:"total_buys"`

	AverageSells        float64 `json:"average_sells"`
	AverageBuys         float64 `json:"average_buys"`
	AverageSellsRounded int     `json:"average_sells_rounded"`

	// Cities lists city group counts in first-encountered order.
	Cities []GroupCount `json:"cities"`

	// TopCity is the largest city group; nil for an empty collection.
	TopCity *GroupCount `json:"top_city,omitempty"`

	// TopSeller is the record with the most sells; nil for an empty collection.
	TopSeller *model.Record `json:"top_seller,omitempty"`
}

// Compute builds a Snapshot. It never fails: every field has a defined value
// for the empty collection.
func Compute(records []model.Record) Snapshot {
	// Field kinds below are fixed, so the helpers cannot fail.
	sells, _ := Sum(records, model.FieldSells)
	buys, _ := Sum(records, model.FieldBuys)
	avgSells, _ := Average(records, model.FieldSells)
	avgBuys, _ := Average(records, model.FieldBuys)
	cities, _ := GroupCounts(records, model.FieldCity)

	s := Snapshot{
		Count:               len(records),
		TotalSells:          sells,
		TotalBuys:           buys,
		AverageSells:        avgSells,
		AverageBuys:         avgBuys,
		AverageSellsRounded: int(math.Round(avgSells)),
		Cities:              cities,
	}

	if top, ok := Largest(cities); ok {
		s.TopCity = &top
	}
	if len(records) > 0 {
		top, _ := TopBy(records, model.FieldSells)
		s.TopSeller = &top
	}
	return s
}
