// ABOUTME: Aggregated search result joining per-source products and errors
// ABOUTME: Built once per request by the coordinator, immutable afterwards

package domain

// SearchResult is the aggregate answer for one search request.
// Products holds every surviving hit in source-registration order,
// Errors one human-readable string per failed source.
type SearchResult struct {
	Query    string    `json:"query"`
	Products []Product `json:"results"`
	Errors   []string  `json:"errors"`
}

// NewSearchResult creates an empty result for the given query.
func NewSearchResult(query string) *SearchResult {
	return &SearchResult{
		Query:    query,
		Products: []Product{},
		Errors:   []string{},
	}
}
