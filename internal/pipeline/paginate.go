package pipeline

import "github.com/roach88/dashview/internal/model"

// DefaultPageSize is the page size used when none is configured.
const DefaultPageSize = 5

// PageState is the current 1-based page and the page size.
type PageState struct {
	Size    int `json:"page_size" yaml:"page_size"`
	Current int `json:"current_page" yaml:"current_page"`
}

// DefaultPageState returns page 1 at DefaultPageSize.
func DefaultPageState() PageState {
	return PageState{Size: DefaultPageSize, Current: 1}
}

// Page is the visible slice of an ordered collection.
type Page struct {
	Items       []model.Record `json:"items"`
	CurrentPage int            `json:"current_page"`
	TotalPages  int            `json:"total_pages"`
	TotalItems  int            `json:"total_items"`
	PageSize    int            `json:"page_size"`
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.CurrentPage > 1 }

// HasNext reports whether a following page exists.
func (p Page) HasNext() bool { return p.CurrentPage < p.TotalPages }

// TotalPages returns max(1, ceil(n/size)). size must be positive.
func TotalPages(n, size int) int {
	if size <= 0 || n <= 0 {
		return 1
	}
	return (n + size - 1) / size
}

// ClampPage pulls page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	return min(max(page, 1), totalPages)
}

// CheckPageSize returns an INVALID_CONFIGURATION error for size <= 0.
func CheckPageSize(size int) error {
	if size <= 0 {
		return model.NewPageSizeError(size)
	}
	return nil
}

// CheckPage returns an OUT_OF_RANGE error if page is outside [1, totalPages].
func CheckPage(page, totalPages int) error {
	if page < 1 || page > totalPages {
		return model.NewOutOfRangeError(page, totalPages)
	}
	return nil
}

// Paginate returns the page of records selected by state.
//
// Fails with INVALID_CONFIGURATION if state.Size <= 0 and with OUT_OF_RANGE if
// state.Current is outside [1, TotalPages]. An empty collection has exactly
// one, empty, page.
func Paginate(records []model.Record, state PageState) (Page, error) {
	if err := CheckPageSize(state.Size); err != nil {
		return Page{}, err
	}

	total := TotalPages(len(records), state.Size)
	if err := CheckPage(state.Current, total); err != nil {
		return Page{}, err
	}

	start := (state.Current - 1) * state.Size
	end := min(start+state.Size, len(records))
	items := make([]model.Record, end-start)
	copy(items, records[start:end])

	return Page{
		Items:       items,
		CurrentPage: state.Current,
		TotalPages:  total,
		TotalItems:  len(records),
		PageSize:    state.Size,
	}, nil
}

// Pages splits records into every page in order. Concatenating the Items of
// the result reproduces records exactly.
func Pages(records []model.Record, size int) ([]Page, error) {
	if err := CheckPageSize(size); err != nil {
		return nil, err
	}
	total := TotalPages(len(records), size)
	pages := make([]Page, 0, total)
	for n := 1; n <= total; n++ {
		p, err := Paginate(records, PageState{Size: size, Current: n})
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, nil
}
