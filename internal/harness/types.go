package harness

import (
	"github.com/roach88/dashview/internal/model"
	"github.com/roach88/dashview/internal/session"
)

// TraceEvent is the visible state after one step. Seq 0 is the initial state.
type TraceEvent struct {
	Seq        int        `json:"seq"`
	Op         string     `json:"op"`
	Arg        string     `json:"arg,omitempty"`
	Error      string     `json:"error,omitempty"`
	Sort       string     `json:"sort,omitempty"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
	Filtered   int        `json:"filtered"`
	IDs        []model.ID `json:"ids"`
}

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true when every step behaved as expected and every
	// assertion held.
	Pass bool `json:"pass"`

	// Trace has one event per step plus the initial state.
	Trace []TraceEvent `json:"trace"`

	// Errors lists failed expectations. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// State is the session state after the last step.
	State session.State `json:"state"`
}

// NewResult creates a passing result with an empty trace.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError records a failed expectation and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
