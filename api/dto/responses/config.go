// ABOUTME: Response DTOs for configuration API endpoints
// ABOUTME: Defines the wire shape of the application configuration

package responses

// AppConfigResponse is the body returned by the config endpoints
type AppConfigResponse struct {
	// PostalCode is the configured postal code, empty when unset
	PostalCode string `json:"postal_code,omitempty"`

	// Stores maps source keys to their selected store
	Stores map[string]StoreConfigResponse `json:"stores"`
}

// StoreConfigResponse is one selected store in a config response
type StoreConfigResponse struct {
	StoreID   string `json:"store_id"`
	StoreName string `json:"store_name"`
}

// ErrorResponse is the standard error body
type ErrorResponse struct {
	Error string `json:"error"`
}
