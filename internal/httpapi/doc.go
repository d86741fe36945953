// Package httpapi exposes a dashboard session over JSON HTTP.
//
// Every response uses the same envelope as the CLI's JSON output:
//
//	{"status": "ok", "data": {...}}
//	{"status": "error", "error": {"code": "OUT_OF_RANGE", "message": "..."}}
//
// Reads (GET /page, GET /aggregates, GET /state) derive their result from the
// session on every request. GET /owner returns the account owner and initials.
// Mutations (PUT /query, POST /sort, DELETE /sort, PUT /page, PUT /page-size,
// PUT /records) return the page that is visible after the change. PUT /records
// saves the collection before swapping it in, and applies the document's owner
// and search_term. Request counts and rejected mutations are exported at
// GET /metrics.
package httpapi
