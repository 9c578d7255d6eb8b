// ABOUTME: Persisted user configuration: postal code and preferred stores
// ABOUTME: Loaded and saved through the ConfigStorage interface

package domain

// StoreConfig identifies the physical store a user selected for a retailer.
type StoreConfig struct {
	StoreID   string `json:"store_id"`
	StoreName string `json:"store_name"`
}

// AppConfig is the persisted user configuration.
type AppConfig struct {
	PostalCode string                 `json:"postal_code,omitempty"`
	Stores     map[string]StoreConfig `json:"stores"`
}

// NewAppConfig returns an empty configuration.
func NewAppConfig() *AppConfig {
	return &AppConfig{Stores: map[string]StoreConfig{}}
}
