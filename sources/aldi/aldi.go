// ABOUTME: Aldi product source scraping the rendered search results page
// ABOUTME: Tiles are injected client-side so the page goes through a headless browser

package aldi

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"prixmalin-api/core/domain"
	"prixmalin-api/pkg/utils/parse"
)

const (
	sourceKey = "aldi"
	storeName = "Aldi"
	searchURL = "https://www.aldi.fr/recherche.html?query=%s"
	baseURL   = "https://www.aldi.fr"

	tileSelector = ".product-tile"
)

// PageFetcher renders a page and returns its HTML
type PageFetcher interface {
	FetchRendered(ctx context.Context, pageURL, waitSelector string) (string, error)
}

// Source searches the Aldi France catalog
type Source struct {
	fetcher PageFetcher
}

// NewSource creates a new Aldi source backed by fetcher.
func NewSource(fetcher PageFetcher) *Source {
	return &Source{fetcher: fetcher}
}

// Key returns the registry key for this source
func (s *Source) Key() string { return sourceKey }

// StoreName returns the display name for this source
func (s *Source) StoreName() string { return storeName }

// Search fetches the rendered results page and parses its product tiles.
func (s *Source) Search(ctx context.Context, query string) ([]domain.Product, error) {
	pageURL := fmt.Sprintf(searchURL, url.QueryEscape(query))

	html, err := s.fetcher.FetchRendered(ctx, pageURL, tileSelector)
	if err != nil {
		return nil, fmt.Errorf("no product tiles: %w", err)
	}

	return parseTiles(html)
}

// ConfigureLocation is a no-op, Aldi prices do not vary by store.
func (s *Source) ConfigureLocation(ctx context.Context, postalCode string) (bool, error) {
	return false, nil
}

// parseTiles extracts products from the rendered search results HTML.
func parseTiles(html string) ([]domain.Product, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	var products []domain.Product
	doc.Find(tileSelector).Each(func(_ int, tile *goquery.Selection) {
		if product, ok := parseTile(tile); ok {
			products = append(products, product)
		}
	})

	if products == nil {
		products = []domain.Product{}
	}

	return products, nil
}

func parseTile(tile *goquery.Selection) (domain.Product, bool) {
	name := strings.TrimSpace(tile.Find(".product-tile__content__upper__product-name").First().Text())
	if name == "" {
		return domain.Product{}, false
	}

	if brand := strings.TrimSpace(tile.Find(".product-tile__content__upper__brand-name").First().Text()); brand != "" {
		name = name + " - " + brand
	}

	var price *float64
	priceEl := tile.Find("[data-testid$='tag-current-price-amount']").First()
	if priceEl.Length() == 0 {
		priceEl = tile.Find(".tag__label--price").First()
	}
	if priceEl.Length() > 0 {
		price = parse.Price(priceEl.Text())
	}

	// Base price reads like "KG = 0.69", sales unit like "1KG"
	pricePerUnit := strings.TrimSpace(tile.Find(".tag__marker--base-price").First().Text())
	if salesUnit := strings.TrimSpace(tile.Find(".tag__marker--salesunit").First().Text()); salesUnit != "" {
		if pricePerUnit != "" {
			pricePerUnit = fmt.Sprintf("%s (%s)", pricePerUnit, salesUnit)
		} else {
			pricePerUnit = salesUnit
		}
	}

	imageURL, _ := tile.Find(".product-tile__image-section img").First().Attr("src")

	var productURL string
	if href, ok := tile.Find("a[href]").First().Attr("href"); ok && href != "" {
		if strings.HasPrefix(href, "http") {
			productURL = href
		} else {
			productURL = baseURL + href
		}
	}

	return domain.Product{
		Name:         name,
		Price:        price,
		PricePerUnit: pricePerUnit,
		ImageURL:     imageURL,
		ProductURL:   productURL,
		Source:       storeName,
	}, true
}
