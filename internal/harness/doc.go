// Package harness runs scripted dashboard scenarios against a session.
//
// A scenario seeds a session, applies a list of steps and then checks
// assertions against the final state. Every step is recorded in a trace so
// the whole run can be compared against a golden file.
//
// # Scenario Format
//
//	name: cairo_by_sells
//	description: "Filter to Cairo and sort by sells"
//	seed: ../seeds/pharmacies.yaml   # optional, built-in data otherwise; its search_term is the initial query
//	page_size: 2                     # optional, 5 otherwise
//	steps:
//	  - op: set_query
//	    query: cairo
//	  - op: request_sort
//	    key: number_sells
//	  - op: go_to_page
//	    page: 3
//	    expect_error: OUT_OF_RANGE
//	assertions:
//	  - type: visible_ids
//	    ids: [4, 1]
//	  - type: aggregate
//	    scope: filtered
//	    metric: total_sells
//	    value: 3588
//
// # Step Ops
//
//   - set_query: replaces the search text (query)
//   - request_sort: toggles sorting by a column (key)
//   - clear_sort: removes the active sort
//   - go_to_page: moves to a page (page)
//   - set_page_size: changes the page size (page_size)
//   - replace: swaps the collection (records)
//
// A step that sets expect_error must fail with that error code. A step
// without it must succeed.
//
// # Assertion Types
//
//   - visible_ids: ids on the visible page, in order
//   - total_pages, current_page, filtered_count: integer value
//   - sort: active sort as "key direction", or "none"
//   - aggregate: a metric of the all or filtered aggregate snapshot
//
// # Determinism
//
// The session id is derived from the scenario name and logging is
// discarded, so identical scenarios always produce identical traces.
package harness
