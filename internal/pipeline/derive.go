package pipeline

import "github.com/roach88/dashview/internal/model"

// Derive runs the full chain Filter → Sort → Paginate.
func Derive(records []model.Record, query string, spec *SortSpec, state PageState) (Page, error) {
	return Paginate(Sort(Filter(records, query), spec), state)
}
