// Package httpapi provides the JSON HTTP interface to helix.
//
// Routes:
//
//	GET  /             liveness message
//	POST /search       best-window search across the reference store
//	POST /align-global global alignment of two sequences
//	POST /align-local  local alignment of two sequences
//	GET  /db/status    reference store status
//	GET  /db/records   first record IDs (?limit=10)
//
// Every response carries an X-Request-ID header. CORS, an optional
// token-bucket rate limit and request logging are applied as middleware.
// Errors are returned as {"detail": "..."}.
package httpapi
