// ABOUTME: Intermarché product source querying the retailer's JSON search API
// ABOUTME: Handles the several payload shapes the API serves across regions

package intermarche

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"prixmalin-api/core/domain"
	"prixmalin-api/core/interfaces"
)

const (
	sourceKey = "intermarche"
	storeName = "Intermarché"
	baseURL   = "https://www.intermarche.com"

	searchPath = "/api/recherche/produits?q=%s"
	storesPath = "/api/magasins?codePostal=%s"
)

// Source searches the Intermarché catalog
type Source struct {
	client  interfaces.HTTPClient
	baseURL string

	mu         sync.Mutex
	storeID    string
	storeLabel string
}

// NewSource creates a new Intermarché source backed by client.
func NewSource(client interfaces.HTTPClient) *Source {
	return &Source{
		client:  client,
		baseURL: baseURL,
	}
}

// Key returns the registry key for this source
func (s *Source) Key() string { return sourceKey }

// StoreName returns the display name for this source
func (s *Source) StoreName() string { return storeName }

// Search queries the search API and parses whichever payload shape
// comes back.
func (s *Source) Search(ctx context.Context, query string) ([]domain.Product, error) {
	reqURL := s.baseURL + fmt.Sprintf(searchPath, url.QueryEscape(query))
	if storeID := s.selectedStoreID(); storeID != "" {
		reqURL += "&magasin=" + url.QueryEscape(storeID)
	}

	resp, err := s.client.Get(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode())
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("unexpected response format: %w", err)
	}

	return parsePayload(data), nil
}

// ConfigureLocation selects the first store serving the postal code.
func (s *Source) ConfigureLocation(ctx context.Context, postalCode string) (bool, error) {
	reqURL := s.baseURL + fmt.Sprintf(storesPath, url.QueryEscape(postalCode))

	resp, err := s.client.Get(ctx, reqURL)
	if err != nil {
		return false, fmt.Errorf("store lookup failed: %w", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return false, fmt.Errorf("store lookup returned status %d", resp.StatusCode())
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return false, fmt.Errorf("failed to read response: %w", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return false, fmt.Errorf("unexpected response format: %w", err)
	}

	id, name := firstStore(data)
	if id == "" {
		return false, nil
	}

	s.mu.Lock()
	s.storeID = id
	s.storeLabel = name
	s.mu.Unlock()

	return true, nil
}

// SelectedStore returns the store chosen by ConfigureLocation, if any.
func (s *Source) SelectedStore() (id, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storeID, s.storeLabel
}

func (s *Source) selectedStoreID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storeID
}

// parsePayload finds the item list in any of the shapes the API serves.
func parsePayload(data map[string]interface{}) []domain.Product {
	items := itemList(data, "products", "items", "hits", "articles", "results")
	if items == nil {
		if nested, ok := data["data"].(map[string]interface{}); ok {
			items = itemList(nested, "products", "items")
		}
	}

	products := []domain.Product{}
	for _, raw := range items {
		item, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		if product, ok := parseItem(item); ok {
			products = append(products, product)
		}
	}

	return products
}

func itemList(m map[string]interface{}, keys ...string) []interface{} {
	for _, key := range keys {
		if items, ok := m[key].([]interface{}); ok && len(items) > 0 {
			return items
		}
	}
	return nil
}

// parseItem converts one API entry, tolerating the key variations seen
// across the search and catalog endpoints.
func parseItem(item map[string]interface{}) (domain.Product, bool) {
	name := firstString(item, "title", "name", "label", "designation")
	if name == "" {
		return domain.Product{}, false
	}

	var price *float64
	for _, key := range []string{"price", "currentPrice", "sellingPrice"} {
		switch v := item[key].(type) {
		case float64:
			price = &v
		case map[string]interface{}:
			if p, ok := firstFloat(v, "value", "price", "amount"); ok {
				price = &p
			}
		}
		if price != nil {
			break
		}
	}
	if price == nil {
		if pricing, ok := item["pricing"].(map[string]interface{}); ok {
			if p, ok := firstFloat(pricing, "price", "currentPrice"); ok {
				price = &p
			}
		}
	}

	var pricePerUnit string
	for _, key := range []string{"pricePerUnit", "unitPrice", "pricePerKg"} {
		switch v := item[key].(type) {
		case string:
			pricePerUnit = v
		case map[string]interface{}:
			pricePerUnit = firstString(v, "label", "formatted")
		}
		if pricePerUnit != "" {
			break
		}
	}

	imageURL := firstString(item, "image", "imageUrl", "img")
	if imageURL == "" {
		if img, ok := item["image"].(map[string]interface{}); ok {
			imageURL = firstString(img, "url", "src")
		}
	}
	if imageURL == "" {
		if media, ok := item["media"].(map[string]interface{}); ok {
			imageURL = firstString(media, "url", "src")
		}
	}

	slug := firstString(item, "url", "slug", "href")
	var productURL string
	if slug != "" {
		if strings.HasPrefix(slug, "http") {
			productURL = slug
		} else {
			productURL = baseURL + slug
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

// firstStore extracts the first store entry from a locator response.
func firstStore(data map[string]interface{}) (id, name string) {
	stores := itemList(data, "stores", "magasins", "items", "results")
	if stores == nil {
		return "", ""
	}

	store, ok := stores[0].(map[string]interface{})
	if !ok {
		return "", ""
	}

	id = firstString(store, "id", "storeId", "code")
	if id == "" {
		if v, ok := store["id"].(float64); ok {
			id = fmt.Sprintf("%.0f", v)
		}
	}
	name = firstString(store, "name", "label", "enseigne")

	return id, name
}

func firstString(m map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v, ok := m[key].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func firstFloat(m map[string]interface{}, keys ...string) (float64, bool) {
	for _, key := range keys {
		if v, ok := m[key].(float64); ok && v != 0 {
			return v, true
		}
	}
	return 0, false
}
