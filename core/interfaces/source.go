package interfaces

import (
	"context"

	"prixmalin-api/core/domain"
)

// Source is the capability contract every retailer backend implements.
// The coordinator treats all sources identically and never inspects how
// a source obtains its data (browser automation, JSON APIs, raw markup).
//
// A source may internally chain several extraction strategies; the first
// one returning products wins. That chain is invisible to callers.
type Source interface {
	// Key returns the stable lowercase identifier for this retailer
	// (e.g. "aldi"). Used as registry key and cache key component.
	Key() string

	// StoreName returns the human-readable retailer name used in
	// error strings (e.g. "Aldi").
	StoreName() string

	// Search looks the query up at the retailer. Failures of any kind
	// (network, parse, blocked) surface as a single error; a successful
	// call with no matches returns an empty slice and nil error.
	Search(ctx context.Context, query string) ([]domain.Product, error)

	// ConfigureLocation performs the retailer's location-specific setup
	// for the given postal code. Returns whether a store was selected.
	ConfigureLocation(ctx context.Context, postalCode string) (bool, error)
}
