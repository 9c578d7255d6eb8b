// ABOUTME: Carrefour product source reading the search page's embedded JSON state
// ABOUTME: Falls back to parsing product card markup when no state is found

package carrefour

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly"

	"prixmalin-api/core/domain"
	"prixmalin-api/pkg/utils/parse"
)

const (
	sourceKey = "carrefour"
	storeName = "Carrefour"
	searchURL = "https://www.carrefour.fr/s?q=%s"
	baseURL   = "https://www.carrefour.fr"

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	requestTimeout = 30 * time.Second
)

// Source searches the Carrefour France catalog
type Source struct {
	newCollector func() *colly.Collector
	searchURL    string
}

// NewSource creates a new Carrefour source.
func NewSource() *Source {
	return &Source{
		newCollector: defaultCollector,
		searchURL:    searchURL,
	}
}

func defaultCollector() *colly.Collector {
	c := colly.NewCollector(colly.UserAgent(userAgent))
	c.SetRequestTimeout(requestTimeout)
	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept-Language", "fr-FR,fr;q=0.9")
	})
	return c
}

// Key returns the registry key for this source
func (s *Source) Key() string { return sourceKey }

// StoreName returns the display name for this source
func (s *Source) StoreName() string { return storeName }

// Search fetches the search results page and extracts products from the
// embedded application state, falling back to card markup.
func (s *Source) Search(ctx context.Context, query string) ([]domain.Product, error) {
	pageURL := fmt.Sprintf(s.searchURL, url.QueryEscape(query))

	var body []byte
	c := s.newCollector()
	c.OnResponse(func(r *colly.Response) {
		body = r.Body
	})

	if err := c.Visit(pageURL); err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("empty response for %q", query)
	}

	return parsePage(string(body))
}

// ConfigureLocation is a no-op, national prices are shown without a store.
func (s *Source) ConfigureLocation(ctx context.Context, postalCode string) (bool, error) {
	return false, nil
}

// parsePage extracts products from a search results page.
func parsePage(html string) ([]domain.Product, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	// Embedded state carries structured product data
	if state := doc.Find("script#__NEXT_DATA__").First().Text(); state != "" {
		var data interface{}
		if err := json.Unmarshal([]byte(state), &data); err == nil {
			if products := parseEmbeddedData(data); len(products) > 0 {
				return products, nil
			}
		}
	}

	return parseCards(doc), nil
}

// parseEmbeddedData walks a decoded JSON tree and collects products
// from every "products" or "hits" array it finds.
func parseEmbeddedData(data interface{}) []domain.Product {
	var products []domain.Product
	walkJSON(data, &products)
	return products
}

func walkJSON(node interface{}, products *[]domain.Product) {
	m, ok := node.(map[string]interface{})
	if !ok {
		if list, ok := node.([]interface{}); ok {
			for _, item := range list {
				walkJSON(item, products)
			}
		}
		return
	}

	for _, key := range []string{"products", "hits"} {
		items, ok := m[key].([]interface{})
		if !ok {
			continue
		}
		for _, raw := range items {
			item, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			if product, ok := parseItem(item); ok {
				*products = append(*products, product)
			}
		}
		return
	}

	for _, child := range m {
		walkJSON(child, products)
	}
}

// parseItem converts one structured product entry.
func parseItem(item map[string]interface{}) (domain.Product, bool) {
	name := stringField(item, "title")
	if name == "" {
		name = stringField(item, "name")
	}
	if name == "" {
		return domain.Product{}, false
	}

	var price *float64
	var pricePerUnit string
	switch priceData := item["price"].(type) {
	case map[string]interface{}:
		if v, ok := floatField(priceData, "price"); ok {
			price = &v
		} else if v, ok := floatField(priceData, "value"); ok {
			price = &v
		}

		unitPrice, hasUnitPrice := floatField(priceData, "pricePerUnit")
		if !hasUnitPrice {
			unitPrice, hasUnitPrice = floatField(priceData, "unitPrice")
		}
		if hasUnitPrice {
			if unit := stringField(priceData, "unit"); unit != "" {
				pricePerUnit = fmt.Sprintf("%v €/%s", unitPrice, unit)
			} else {
				pricePerUnit = fmt.Sprintf("%v €", unitPrice)
			}
		}
	case float64:
		v := priceData
		price = &v
	}

	imageURL := stringField(item, "image")
	if imageURL == "" {
		imageURL = stringField(item, "imageUrl")
	}
	if imgMap, ok := item["image"].(map[string]interface{}); ok {
		imageURL = stringField(imgMap, "url")
	}

	productURL := stringField(item, "url")
	if productURL == "" {
		productURL = stringField(item, "href")
	}
	if productURL != "" && !strings.HasPrefix(productURL, "http") {
		productURL = baseURL + productURL
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

var cardSelectors = []string{
	"[data-testid='product-card-container']",
	".product-card-list__item",
	".ds-product-card",
	"li[data-testid]",
}

// parseCards is the markup fallback used when no embedded state exists.
func parseCards(doc *goquery.Document) []domain.Product {
	var cards *goquery.Selection
	for _, sel := range cardSelectors {
		cards = doc.Find(sel)
		if cards.Length() > 0 {
			break
		}
	}

	products := []domain.Product{}
	if cards == nil {
		return products
	}

	cards.Each(func(_ int, card *goquery.Selection) {
		if product, ok := parseCard(card); ok {
			products = append(products, product)
		}
	})

	return products
}

func parseCard(card *goquery.Selection) (domain.Product, bool) {
	var name string
	for _, sel := range []string{
		"[data-testid='product-card-title']",
		".product-card__title",
		".ds-product-card__title",
		"a[title]",
		"h2",
		"h3",
	} {
		el := card.Find(sel).First()
		if el.Length() == 0 {
			continue
		}
		if title, ok := el.Attr("title"); ok && strings.TrimSpace(title) != "" {
			name = strings.TrimSpace(title)
			break
		}
		if text := strings.TrimSpace(el.Text()); text != "" {
			name = text
			break
		}
	}
	if name == "" {
		return domain.Product{}, false
	}

	var price *float64
	for _, sel := range []string{
		"[data-testid='product-card-price']",
		".product-card__price",
		".ds-product-card__price",
		".product-price__amount",
	} {
		el := card.Find(sel).First()
		if el.Length() == 0 {
			continue
		}
		if price = parse.Price(el.Text()); price != nil {
			break
		}
	}

	var pricePerUnit string
	for _, sel := range []string{
		"[data-testid='product-card-unit-price']",
		".product-card__unit-price",
		".ds-product-card__unit-price",
		".product-price__unit",
	} {
		if text := strings.TrimSpace(card.Find(sel).First().Text()); text != "" {
			pricePerUnit = text
			break
		}
	}

	img := card.Find("img").First()
	imageURL, ok := img.Attr("src")
	if !ok || imageURL == "" {
		imageURL, _ = img.Attr("data-src")
	}

	var productURL string
	if href, ok := card.Find("a[href]").First().Attr("href"); ok && href != "" {
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

func stringField(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func floatField(m map[string]interface{}, key string) (float64, bool) {
	if v, ok := m[key].(float64); ok && v != 0 {
		return v, true
	}
	return 0, false
}
