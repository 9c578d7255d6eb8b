// ABOUTME: Response DTOs for search API endpoints
// ABOUTME: Defines the wire shape of search results and products

package responses

// SearchResponse is the body returned by the search endpoint
type SearchResponse struct {
	// Query echoes the searched text
	Query string `json:"query"`

	// Results holds the aggregated, price-sorted products
	Results []ProductResponse `json:"results"`

	// Errors lists per-source failures, one entry per failed source
	Errors []string `json:"errors"`
}

// ProductResponse is one product entry in a search response
type ProductResponse struct {
	Name         string   `json:"name"`
	Price        *float64 `json:"price"`
	PricePerUnit string   `json:"price_per_unit,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	ProductURL   string   `json:"product_url"`
	StoreName    string   `json:"store_name"`

	// AccentColor is the dominant image color, present only when color
	// enrichment was requested
	AccentColor *RGBColorResponse `json:"accent_color,omitempty"`
}

// RGBColorResponse is a dominant color in a search response
type RGBColorResponse struct {
	R uint32 `json:"r"`
	G uint32 `json:"g"`
	B uint32 `json:"b"`
}
