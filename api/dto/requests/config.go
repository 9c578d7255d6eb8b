// ABOUTME: Request DTOs for configuration API endpoints
// ABOUTME: Provides validation for location and store selection updates

package requests

import (
	"strings"
	"unicode"
)

// LocationRequest represents the request body for setting the postal code
type LocationRequest struct {
	// PostalCode is the French postal code to configure
	PostalCode string `json:"postal_code"`
}

// Validate checks the postal code shape (five digits).
func (r *LocationRequest) Validate() error {
	code := strings.TrimSpace(r.PostalCode)
	if code == "" {
		return errEmptyPostalCode
	}
	if len(code) != 5 {
		return errInvalidPostalCode
	}
	for _, c := range code {
		if !unicode.IsDigit(c) {
			return errInvalidPostalCode
		}
	}
	return nil
}

// StoreConfigRequest represents the request body for selecting a store
type StoreConfigRequest struct {
	// StoreKey is the retailer source key (e.g. "intermarche")
	StoreKey string `json:"store_key"`

	// StoreID is the retailer-specific store identifier
	StoreID string `json:"store_id"`

	// StoreName is the human-readable store label
	StoreName string `json:"store_name"`
}

// Validate checks that the required fields are present.
func (r *StoreConfigRequest) Validate() error {
	if strings.TrimSpace(r.StoreKey) == "" {
		return errEmptyStoreKey
	}
	if strings.TrimSpace(r.StoreID) == "" {
		return errEmptyStoreID
	}
	return nil
}
