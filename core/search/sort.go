// ABOUTME: Price ordering for aggregated results
// ABOUTME: Stable sort, cheapest first, unpriced products last

package search

import (
	"sort"

	"prixmalin-api/core/domain"
)

// sortByPrice orders products cheapest first. Products without a price
// sink to the end. The sort is stable, so equal keys keep the
// concatenation order (source registration order, then each source's
// own ordering).
func sortByPrice(products []domain.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		pi, pj := products[i], products[j]
		if pi.HasPrice() != pj.HasPrice() {
			return pi.HasPrice()
		}
		if !pi.HasPrice() {
			return false
		}
		return *pi.Price < *pj.Price
	})
}
