// Package api provides the HTTP API layer for the price comparison
// application. It wires the standard library mux with CORS, request
// logging and per-IP rate limiting.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: route registration and middleware assembly
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
//	GET  /api/search?q=...&stores=...  aggregated product search
//	POST /api/config/location          set the user's postal code
//	POST /api/config/store             select a store for a retailer
//	GET  /api/config/stores            read the current configuration
//	GET  /health                       liveness probe
//
// # Error Handling
//
// Errors are returned as a JSON body with a single "error" field.
// Validation failures map to 400, everything else to 500. Per-source
// search failures are NOT transport errors: they appear in the
// "errors" array of a 200 response so one slow retailer never hides
// results from the others.
package api
