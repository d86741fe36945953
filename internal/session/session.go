// Package session owns the mutable dashboard state for one user view: the
// record collection, the search query, the sort spec and the page state.
//
// Session is the Record Store of the view engine. Mutations are explicit
// (ReplaceCollection, SetQuery, RequestSort, GoToPage, SetPageSize) and every
// read recomputes the derived views from scratch through package pipeline and
// package aggregate. Nothing is pushed and nothing is cached.
//
// Every mutation either fully succeeds or returns an error and leaves the
// session untouched. The page-state invariant
//
//	1 <= current page <= max(1, ceil(filtered count / page size))
//
// holds after every successful call.
package session

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/roach88/dashview/internal/aggregate"
	"github.com/roach88/dashview/internal/model"
	"github.com/roach88/dashview/internal/pipeline"
)

// Session is the state of one dashboard view.
//
// Thread-safety: all methods are safe for concurrent use. A read always
// observes the most recently completed write.
type Session struct {
	mu sync.Mutex

	id      string
	logger  *slog.Logger
	records []model.Record
	query   string
	sort    *pipeline.SortSpec
	page    pipeline.PageState
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for state transitions.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithID sets a fixed session id instead of a generated UUID.
func WithID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

// WithPageSize sets the initial page size. Validated by New.
func WithPageSize(size int) Option {
	return func(s *Session) {
		s.page.Size = size
	}
}

// New creates a session over records. The collection is validated like
// ReplaceCollection; the query starts empty, unsorted, on page 1.
func New(records []model.Record, opts ...Option) (*Session, error) {
	s := &Session{
		logger: slog.Default(),
		page:   pipeline.DefaultPageState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.id == "" {
		s.id = uuid.Must(uuid.NewV7()).String()
	}

	if err := pipeline.CheckPageSize(s.page.Size); err != nil {
		return nil, err
	}
	if err := model.ValidateCollection(records); err != nil {
		return nil, err
	}
	s.records = model.Clone(records)
	s.logger = s.logger.With("session", s.id)
	s.logger.Debug("session created", "records", len(s.records), "page_size", s.page.Size)
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// ReplaceCollection swaps the whole collection and resets query, sort and
// current page. The page size is kept. Fails with INVALID_INPUT on duplicate
// ids or negative counters, in which case nothing changes.
func (s *Session) ReplaceCollection(records []model.Record) error {
	if err := model.ValidateCollection(records); err != nil {
		s.logger.Warn("collection rejected", "records", len(records), "error", err)
		return err
	}
	next := model.Clone(records)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = next
	s.query = ""
	s.sort = nil
	s.page.Current = 1
	s.logger.Debug("collection replaced", "records", len(next))
	return nil
}

// SetQuery sets the free-text filter and returns to page 1. The sort spec is
// kept. Any string is accepted; "" clears the filter.
func (s *Session) SetQuery(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = text
	s.page.Current = 1
	s.logger.Debug("query set", "query", text)
}

// RequestSort toggles sorting by key (see pipeline.Toggle) and returns to
// page 1. Returns the new spec. The key may be any name model.ParseField
// accepts; an unknown field fails with INVALID_INPUT.
func (s *Session) RequestSort(key model.Field) (pipeline.SortSpec, error) {
	key, err := model.ParseField(string(key))
	if err != nil {
		s.logger.Warn("sort rejected", "error", err)
		return pipeline.SortSpec{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := pipeline.Toggle(s.sort, key)
	s.sort = &next
	s.page.Current = 1
	s.logger.Debug("sort requested", "key", string(next.Key), "direction", string(next.Direction))
	return next, nil
}

// ClearSort drops the sort spec so the filter order is shown again.
func (s *Session) ClearSort() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort = nil
	s.page.Current = 1
}

// GoToPage moves to page n. Fails with OUT_OF_RANGE if n is outside
// [1, TotalPages] for the current filtered count.
func (s *Session) GoToPage(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := pipeline.TotalPages(s.filteredCountLocked(), s.page.Size)
	if err := pipeline.CheckPage(n, total); err != nil {
		s.logger.Warn("page navigation rejected", "page", n, "total_pages", total)
		return err
	}
	s.page.Current = n
	s.logger.Debug("page changed", "page", n)
	return nil
}

// SetPageSize changes the page size and returns to page 1. Fails with
// INVALID_CONFIGURATION for n <= 0.
func (s *Session) SetPageSize(n int) error {
	if err := pipeline.CheckPageSize(n); err != nil {
		s.logger.Warn("page size rejected", "page_size", n)
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = pipeline.PageState{Size: n, Current: 1}
	s.logger.Debug("page size set", "page_size", n)
	return nil
}

// VisiblePage derives the current page: filter, sort, paginate.
func (s *Session) VisiblePage() (pipeline.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pipeline.Derive(s.records, s.query, s.sort, s.page)
}

// View is a visible page together with the query and sort that produced it.
type View struct {
	Page  pipeline.Page
	Query string
	Sort  *pipeline.SortSpec
}

// View derives the current page and returns it with its inputs, all read
// under one lock so a concurrent mutation cannot split them.
func (s *Session) View() (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	page, err := pipeline.Derive(s.records, s.query, s.sort, s.page)
	if err != nil {
		return View{}, err
	}
	v := View{Page: page, Query: s.query}
	if s.sort != nil {
		spec := *s.sort
		v.Sort = &spec
	}
	return v, nil
}

// Aggregates computes the aggregate snapshot over the full collection
// (ScopeAll) or the records passing the current query (ScopeFiltered).
// Sort and page state never affect the result.
func (s *Session) Aggregates(scope aggregate.Scope) aggregate.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if scope == aggregate.ScopeFiltered {
		return aggregate.Compute(pipeline.Filter(s.records, s.query))
	}
	return aggregate.Compute(s.records)
}

// State is a point-in-time copy of the session's inputs.
type State struct {
	ID       string             `json:"id"`
	Query    string             `json:"query"`
	Sort     *pipeline.SortSpec `json:"sort,omitempty"`
	Page     pipeline.PageState `json:"page"`
	Records  int                `json:"records"`
	Filtered int                `json:"filtered"`
}

// State returns a copy of the current inputs.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := State{
		ID:       s.id,
		Query:    s.query,
		Page:     s.page,
		Records:  len(s.records),
		Filtered: s.filteredCountLocked(),
	}
	if s.sort != nil {
		spec := *s.sort
		st.Sort = &spec
	}
	return st
}

// Query returns the active query.
func (s *Session) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// SortSpec returns a copy of the active sort spec, or nil.
func (s *Session) SortSpec() *pipeline.SortSpec {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sort == nil {
		return nil
	}
	spec := *s.sort
	return &spec
}

// PageState returns the current page state.
func (s *Session) PageState() pipeline.PageState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// Records returns a copy of the full collection in input order.
func (s *Session) Records() []model.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.Clone(s.records)
}

// FilteredCount returns the number of records passing the current query.
func (s *Session) FilteredCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filteredCountLocked()
}

func (s *Session) filteredCountLocked() int {
	if s.query == "" {
		return len(s.records)
	}
	folded := model.Fold(s.query)
	n := 0
	for _, r := range s.records {
		if pipeline.Matches(r, folded) {
			n++
		}
	}
	return n
}
