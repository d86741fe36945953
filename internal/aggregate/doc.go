// Package aggregate computes summary statistics over a record collection.
//
// All functions are pure: they read their input, allocate no persistent
// state and return identical output for identical input regardless of call
// order. They are independent of filter, sort and page state; callers choose
// whether to pass the full collection or the filtered subset (see Scope).
//
// Compute consolidates every metric the dashboard displays into one
// Snapshot so that all figures shown together come from the same read.
package aggregate
