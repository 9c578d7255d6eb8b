// ABOUTME: Search configuration for coordinator-level tunables
// ABOUTME: Provides configuration options independent of HTTP request structures

package config

import "time"

// SearchOptions controls the aggregation coordinator's behavior.
type SearchOptions struct {
	// SourceTimeout is the per-source fetch deadline
	SourceTimeout time.Duration

	// RelevanceCoverage is the minimum fraction of a product name's
	// significant tokens that must relate to the query keywords.
	// The 0.5 default is a tuned heuristic, not a derived constant.
	RelevanceCoverage float64
}

// DefaultSearchOptions returns the default coordinator configuration.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		SourceTimeout:     45 * time.Second,
		RelevanceCoverage: 0.5,
	}
}

// SearchOption is a functional option for configuring the coordinator
type SearchOption func(*SearchOptions)

// WithSourceTimeout overrides the per-source fetch deadline.
func WithSourceTimeout(d time.Duration) SearchOption {
	return func(o *SearchOptions) {
		o.SourceTimeout = d
	}
}

// WithRelevanceCoverage overrides the coverage-ratio threshold.
func WithRelevanceCoverage(ratio float64) SearchOption {
	return func(o *SearchOptions) {
		o.RelevanceCoverage = ratio
	}
}

// NewSearchOptions creates a configuration with the given options applied.
func NewSearchOptions(opts ...SearchOption) SearchOptions {
	options := DefaultSearchOptions()

	for _, opt := range opts {
		opt(&options)
	}

	return options
}
