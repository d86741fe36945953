package pipeline

import (
	"strings"

	"github.com/roach88/dashview/internal/model"
)

// Filter returns the records whose Name or City contains query,
// case-insensitively. Input order is preserved. An empty query returns a copy
// of every record. The result is never nil.
func Filter(records []model.Record, query string) []model.Record {
	if query == "" {
		return model.Clone(records)
	}

	needle := model.Fold(query)
	out := make([]model.Record, 0, len(records))
	for _, r := range records {
		if Matches(r, needle) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether r passes a pre-folded query (see model.Fold).
func Matches(r model.Record, foldedQuery string) bool {
	if foldedQuery == "" {
		return true
	}
	return strings.Contains(model.Fold(r.Name), foldedQuery) ||
		strings.Contains(model.Fold(r.City), foldedQuery)
}
