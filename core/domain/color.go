package domain

// RGBColor is an 8-bit-per-channel color extracted from a product image.
type RGBColor struct {
	R uint32 `json:"r"`
	G uint32 `json:"g"`
	B uint32 `json:"b"`
}
