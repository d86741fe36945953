// Package pipeline implements the three pure stages that turn a record
// collection into a visible page:
//
//	records → Filter(query) → Sort(spec) → Paginate(state) → Page
//
// Every stage is a pure function: it never mutates its input, allocates a
// fresh output slice and returns identical output for identical input.
// Callers recompute the whole chain whenever an input changes; nothing is
// cached between calls.
//
// # Stage Contracts
//
//   - Filter keeps records whose name or city contains the query,
//     case-insensitively, in input order. An empty query keeps everything.
//   - Sort orders records stably by one field. A nil spec is the identity.
//   - Paginate slices the ordered records into fixed-size pages and refuses
//     page numbers outside [1, TotalPages] instead of returning an empty page.
package pipeline
