// ABOUTME: Product domain model represents a single retailer search hit
// ABOUTME: Immutable once produced by a source, carries optional pricing data

package domain

// Product represents one item returned by a retailer source.
// A Product is never mutated after the source produced it.
type Product struct {
	// Name is the product label as shown by the retailer
	Name string `json:"name"`

	// Price is the current price in euros, nil when the retailer
	// did not expose one
	Price *float64 `json:"price"`

	// PricePerUnit is the retailer's unit price label (e.g. "KG = 0.69")
	PricePerUnit string `json:"price_per_unit,omitempty"`

	// ImageURL points at the product thumbnail
	ImageURL string `json:"image_url,omitempty"`

	// ProductURL is the retailer's product page
	ProductURL string `json:"product_url"`

	// Source is the source key that produced this product (e.g. "aldi")
	Source string `json:"source"`
}

// HasPrice reports whether the retailer exposed a price for this product.
func (p Product) HasPrice() bool {
	return p.Price != nil
}
