// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"

	"prixmalin-api/core/domain"
)

// ResultCache stores per-source search results keyed by (query, source).
// Implementations can be SQLite, in-memory, Redis, or any other backend.
//
// Queries are normalized (case-folded, trimmed) by the implementation, so
// "Huile " and "huile" address the same entry. At most one live entry
// exists per key; Set is an upsert and the later write wins. Entries older
// than the store's TTL are treated as absent and purged on the next Get
// (lazy expiration).
type ResultCache interface {
	// Get returns the cached product list for (query, source).
	// Returns errors.ErrCacheMiss when no live entry exists; any other
	// error indicates a backend or decode failure the caller should
	// treat as a miss.
	Get(ctx context.Context, query, source string) ([]domain.Product, error)

	// Set upserts the product list for (query, source), stamping the
	// entry with the current time.
	Set(ctx context.Context, query, source string, products []domain.Product) error

	// Close releases the backend connection.
	Close() error
}
