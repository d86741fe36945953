package pipeline

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/dashview/internal/model"
)

// Direction is a sort direction.
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// ParseDirection accepts "ascending"/"asc" and "descending"/"desc".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascending", "asc":
		return Ascending, nil
	case "descending", "desc":
		return Descending, nil
	}
	return "", &model.Error{
		Code:    model.ErrCodeInvalidInput,
		Message: fmt.Sprintf("unknown sort direction %q", s),
	}
}

// SortSpec is the active sort key and direction.
// A nil *SortSpec means "no sort": the filter order is kept.
type SortSpec struct {
	Key       model.Field `json:"key" yaml:"key"`
	Direction Direction   `json:"direction" yaml:"direction"`
}

// String renders the spec as "key ascending".
func (s SortSpec) String() string {
	return fmt.Sprintf("%s %s", s.Key, s.Direction)
}

// Toggle returns the spec that results from asking to sort by key while
// current is active. {key, ascending} becomes {key, descending}; any other
// current spec, including nil, becomes {key, ascending}.
func Toggle(current *SortSpec, key model.Field) SortSpec {
	if current != nil && current.Key == key && current.Direction == Ascending {
		return SortSpec{Key: key, Direction: Descending}
	}
	return SortSpec{Key: key, Direction: Ascending}
}

// Sort returns records ordered by spec. Records with equal keys keep their
// input order. A nil spec returns a copy in input order. The input is never
// modified and the result is never nil.
func Sort(records []model.Record, spec *SortSpec) []model.Record {
	out := model.Clone(records)
	if spec == nil {
		return out
	}

	key := spec.Key
	desc := spec.Direction == Descending
	slices.SortStableFunc(out, func(a, b model.Record) int {
		c := model.Compare(a, b, key)
		if desc {
			return -c
		}
		return c
	})
	return out
}
