// ABOUTME: Request DTOs for search API endpoints
// ABOUTME: Parses and validates query parameters for product searches

package requests

import "strings"

// SearchRequest represents the parameters of a product search
type SearchRequest struct {
	// Query is the product search text
	Query string

	// Stores optionally restricts the search to these source keys
	Stores []string
}

// ParseStores splits a comma-separated store list, dropping empties.
func ParseStores(raw string) []string {
	if raw == "" {
		return nil
	}

	var stores []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			stores = append(stores, trimmed)
		}
	}

	return stores
}
