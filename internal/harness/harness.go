package harness

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/roach88/dashview/internal/model"
	"github.com/roach88/dashview/internal/seed"
	"github.com/roach88/dashview/internal/session"
)

// Run executes a scenario against a fresh session:
//
//  1. Build the starting collection (records, seed file or built-in data)
//  2. Create the session with the scenario's page size
//  3. Apply each step, checking its expected error code
//  4. Evaluate assertions against the final state
//
// Failed expectations are reported in Result.Errors. The returned error is
// reserved for scenarios that cannot run at all, such as a missing seed file.
func Run(scenario *Scenario) (*Result, error) {
	records, searchTerm, err := startingRecords(scenario)
	if err != nil {
		return nil, err
	}

	opts := []session.Option{
		session.WithID("scenario:" + scenario.Name),
		session.WithLogger(slog.New(slog.DiscardHandler)),
	}
	if scenario.PageSize > 0 {
		opts = append(opts, session.WithPageSize(scenario.PageSize))
	}
	sess, err := session.New(records, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	if searchTerm != "" {
		sess.SetQuery(searchTerm)
	}

	result := NewResult()
	if err := result.observe(sess, 0, "init", "", ""); err != nil {
		return nil, err
	}

	for i, step := range scenario.Steps {
		stepErr := apply(sess, step)

		code := ""
		if stepErr != nil {
			c, ok := model.CodeOf(stepErr)
			if !ok {
				return nil, fmt.Errorf("steps[%d] %s: %w", i, step.Op, stepErr)
			}
			code = string(c)
		}

		switch {
		case step.ExpectError == "" && stepErr != nil:
			result.AddError(fmt.Sprintf("steps[%d] %s: unexpected error: %v", i, step.Op, stepErr))
		case step.ExpectError != "" && stepErr == nil:
			result.AddError(fmt.Sprintf("steps[%d] %s: expected %s, got success", i, step.Op, step.ExpectError))
		case step.ExpectError != code:
			result.AddError(fmt.Sprintf("steps[%d] %s: expected %s, got %s", i, step.Op, step.ExpectError, code))
		}

		if err := result.observe(sess, i+1, step.Op, stepArg(step), code); err != nil {
			return nil, err
		}
	}

	result.State = sess.State()
	for _, msg := range EvaluateAssertions(sess, scenario.Assertions, result.Trace) {
		result.AddError(msg)
	}
	return result, nil
}

// startingRecords returns the initial collection and, for seed files, the
// seed's initial search term.
func startingRecords(scenario *Scenario) ([]model.Record, string, error) {
	switch {
	case len(scenario.Records) > 0:
		return scenario.Records, "", nil
	case scenario.Seed != "":
		doc, err := seed.LoadFile(scenario.Seed)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load seed: %w", err)
		}
		return doc.Pharmacies, doc.SearchTerm, nil
	}
	return seed.Default(), "", nil
}

func apply(sess *session.Session, step Step) error {
	switch step.Op {
	case OpSetQuery:
		sess.SetQuery(step.Query)
		return nil
	case OpRequestSort:
		_, err := sess.RequestSort(model.Field(step.Key))
		return err
	case OpClearSort:
		sess.ClearSort()
		return nil
	case OpGoToPage:
		return sess.GoToPage(step.Page)
	case OpSetPageSize:
		return sess.SetPageSize(step.PageSize)
	case OpReplace:
		return sess.ReplaceCollection(step.Records)
	}
	return fmt.Errorf("unknown op %q", step.Op)
}

func stepArg(step Step) string {
	switch step.Op {
	case OpSetQuery:
		return step.Query
	case OpRequestSort:
		return step.Key
	case OpGoToPage:
		return strconv.Itoa(step.Page)
	case OpSetPageSize:
		return strconv.Itoa(step.PageSize)
	case OpReplace:
		return fmt.Sprintf("%d records", len(step.Records))
	}
	return ""
}

// observe appends the session's visible state to the trace.
func (r *Result) observe(sess *session.Session, seq int, op, arg, code string) error {
	view, err := sess.View()
	if err != nil {
		return fmt.Errorf("failed to derive page after %s: %w", op, err)
	}
	page := view.Page

	event := TraceEvent{
		Seq:        seq,
		Op:         op,
		Arg:        arg,
		Error:      code,
		Page:       page.CurrentPage,
		TotalPages: page.TotalPages,
		Filtered:   page.TotalItems,
		IDs:        model.IDs(page.Items),
	}
	if view.Sort != nil {
		event.Sort = view.Sort.String()
	}
	r.Trace = append(r.Trace, event)
	return nil
}
