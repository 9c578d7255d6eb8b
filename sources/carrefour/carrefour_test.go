package carrefour

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const embeddedStatePage = `<html><body>
<script id="__NEXT_DATA__" type="application/json">
{
  "props": {
    "pageProps": {
      "searchResult": {
        "data": {
          "products": [
            {
              "title": "Huile de tournesol 1L",
              "price": {"price": 2.89, "pricePerUnit": 2.89, "unit": "L"},
              "image": "https://static.carrefour.fr/huile.jpg",
              "url": "/p/huile-de-tournesol"
            },
            {
              "name": "Lait demi-écrémé 6x1L",
              "price": 7.20,
              "imageUrl": "https://static.carrefour.fr/lait.jpg",
              "href": "https://www.carrefour.fr/p/lait"
            },
            {
              "price": {"price": 1.10}
            }
          ]
        }
      }
    }
  }
}
</script>
</body></html>`

const markupOnlyPage = `<html><body>
<ul>
  <li data-testid="product-card-container">
    <a href="/p/beurre-doux" title="Beurre doux 250g">
      <img src="https://static.carrefour.fr/beurre.jpg">
      <span data-testid="product-card-price">2,35 €</span>
      <span data-testid="product-card-unit-price">9,40 €/kg</span>
    </a>
  </li>
  <li data-testid="product-card-container">
    <h3>Crème fraîche épaisse</h3>
    <img data-src="https://static.carrefour.fr/creme.jpg">
  </li>
</ul>
</body></html>`

func TestParsePage_EmbeddedState(t *testing.T) {
	products, err := parsePage(embeddedStatePage)
	if err != nil {
		t.Fatalf("parsePage() error = %v", err)
	}

	// The nameless entry is skipped
	if len(products) != 2 {
		t.Fatalf("Expected 2 products, got %d", len(products))
	}

	first := products[0]
	if first.Name != "Huile de tournesol 1L" {
		t.Errorf("Name = %q", first.Name)
	}
	if first.Price == nil || *first.Price != 2.89 {
		t.Errorf("Price = %v, want 2.89", first.Price)
	}
	if first.PricePerUnit != "2.89 €/L" {
		t.Errorf("PricePerUnit = %q", first.PricePerUnit)
	}
	if first.ProductURL != "https://www.carrefour.fr/p/huile-de-tournesol" {
		t.Errorf("ProductURL = %q", first.ProductURL)
	}
	if first.Source != "Carrefour" {
		t.Errorf("Source = %q", first.Source)
	}

	second := products[1]
	if second.Name != "Lait demi-écrémé 6x1L" {
		t.Errorf("Name = %q", second.Name)
	}
	if second.Price == nil || *second.Price != 7.20 {
		t.Errorf("Price = %v, want 7.20", second.Price)
	}
	if second.ImageURL != "https://static.carrefour.fr/lait.jpg" {
		t.Errorf("ImageURL = %q", second.ImageURL)
	}
	if second.ProductURL != "https://www.carrefour.fr/p/lait" {
		t.Errorf("ProductURL = %q", second.ProductURL)
	}
}

func TestParsePage_MarkupFallback(t *testing.T) {
	products, err := parsePage(markupOnlyPage)
	if err != nil {
		t.Fatalf("parsePage() error = %v", err)
	}

	if len(products) != 2 {
		t.Fatalf("Expected 2 products, got %d", len(products))
	}

	first := products[0]
	if first.Name != "Beurre doux 250g" {
		t.Errorf("Name = %q", first.Name)
	}
	if first.Price == nil || *first.Price != 2.35 {
		t.Errorf("Price = %v, want 2.35", first.Price)
	}
	if first.PricePerUnit != "9,40 €/kg" {
		t.Errorf("PricePerUnit = %q", first.PricePerUnit)
	}
	if first.ProductURL != "https://www.carrefour.fr/p/beurre-doux" {
		t.Errorf("ProductURL = %q", first.ProductURL)
	}

	second := products[1]
	if second.Name != "Crème fraîche épaisse" {
		t.Errorf("Name = %q", second.Name)
	}
	if second.Price != nil {
		t.Errorf("Expected nil price, got %v", *second.Price)
	}
	if second.ImageURL != "https://static.carrefour.fr/creme.jpg" {
		t.Errorf("ImageURL = %q", second.ImageURL)
	}
}

func TestParsePage_EmptyPage(t *testing.T) {
	products, err := parsePage("<html><body></body></html>")
	if err != nil {
		t.Fatalf("parsePage() error = %v", err)
	}
	if len(products) != 0 {
		t.Errorf("Expected no products, got %d", len(products))
	}
}

func TestParseEmbeddedData_HitsShape(t *testing.T) {
	var data interface{}
	raw := `{"hits": [{"title": "Pâtes penne 500g", "price": {"value": 1.05}}]}`
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		t.Fatalf("Failed to decode fixture: %v", err)
	}

	products := parseEmbeddedData(data)
	if len(products) != 1 {
		t.Fatalf("Expected 1 product, got %d", len(products))
	}
	if products[0].Name != "Pâtes penne 500g" {
		t.Errorf("Name = %q", products[0].Name)
	}
	if products[0].Price == nil || *products[0].Price != 1.05 {
		t.Errorf("Price = %v, want 1.05", products[0].Price)
	}
}

func TestParseCard_TitleAttributePreferred(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<div class="ds-product-card"><a href="/p/x" title="Riz basmati 1kg">truncated na…</a></div>`,
	))
	if err != nil {
		t.Fatalf("Failed to parse fixture: %v", err)
	}

	product, ok := parseCard(doc.Find(".ds-product-card").First())
	if !ok {
		t.Fatal("Expected a product")
	}
	if product.Name != "Riz basmati 1kg" {
		t.Errorf("Name = %q", product.Name)
	}
}

func TestSearch_ParsesServedPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "beurre doux" {
			t.Errorf("Query param q = %q, want 'beurre doux'", got)
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, markupOnlyPage)
	}))
	defer server.Close()

	source := NewSource()
	source.searchURL = server.URL + "/s?q=%s"

	products, err := source.Search(context.Background(), "beurre doux")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("Expected 2 products, got %d", len(products))
	}
	if products[0].Name != "Beurre doux 250g" {
		t.Errorf("Name = %q", products[0].Name)
	}
}

func TestSourceIdentity(t *testing.T) {
	source := NewSource()

	if source.Key() != "carrefour" {
		t.Errorf("Key() = %q, want carrefour", source.Key())
	}
	if source.StoreName() != "Carrefour" {
		t.Errorf("StoreName() = %q, want Carrefour", source.StoreName())
	}
}
