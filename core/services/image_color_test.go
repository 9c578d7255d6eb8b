package services

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
)

func servePNG(t *testing.T, fill color.RGBA) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		img := image.NewRGBA(image.Rect(0, 0, 32, 32))
		for y := 0; y < 32; y++ {
			for x := 0; x < 32; x++ {
				img.Set(x, y, fill)
			}
		}
		w.Header().Set("Content-Type", "image/png")
		if err := png.Encode(w, img); err != nil {
			t.Errorf("Failed to encode test image: %v", err)
		}
	}))
}

func TestExtractColor_EmptyURLReturnsDefault(t *testing.T) {
	svc := NewImageColorService(nil)

	got, err := svc.ExtractColor(context.Background(), "")
	if err != nil {
		t.Fatalf("ExtractColor() error = %v", err)
	}
	if got.R != defaultColorValue || got.G != defaultColorValue || got.B != defaultColorValue {
		t.Errorf("Expected default gray, got %+v", got)
	}
}

func TestExtractColor_SolidImage(t *testing.T) {
	server := servePNG(t, color.RGBA{R: 200, G: 30, B: 30, A: 255})
	defer server.Close()

	svc := NewImageColorService(nil)

	got, err := svc.ExtractColor(context.Background(), server.URL+"/product.png")
	if err != nil {
		t.Fatalf("ExtractColor() error = %v", err)
	}
	if got == nil {
		t.Fatal("Expected a color, got nil")
	}
	// A solid red image should come back dominantly red
	if got.R < got.G || got.R < got.B {
		t.Errorf("Expected red-dominant color, got %+v", got)
	}
}

func TestExtractColor_UnreachableURLFallsBackToDefault(t *testing.T) {
	svc := NewImageColorService(nil)

	got, err := svc.ExtractColor(context.Background(), "http://127.0.0.1:1/missing.png")
	if err != nil {
		t.Fatalf("ExtractColor() error = %v", err)
	}
	if got.R != defaultColorValue {
		t.Errorf("Expected default color on fetch failure, got %+v", got)
	}
}

func TestExtractColor_SVGFallsBackToDefault(t *testing.T) {
	svc := NewImageColorService(nil)

	got, err := svc.ExtractColor(context.Background(), "https://example.com/logo.svg")
	if err != nil {
		t.Fatalf("ExtractColor() error = %v", err)
	}
	if got.R != defaultColorValue {
		t.Errorf("Expected default color for SVG, got %+v", got)
	}
}

func TestExtractColor_CachesResult(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		img := image.NewRGBA(image.Rect(0, 0, 16, 16))
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				img.Set(x, y, color.RGBA{R: 10, G: 10, B: 220, A: 255})
			}
		}
		w.Header().Set("Content-Type", "image/png")
		png.Encode(w, img)
	}))
	defer server.Close()

	svc := NewImageColorService(nil)
	ctx := context.Background()
	url := server.URL + "/cached.png"

	if _, err := svc.ExtractColor(ctx, url); err != nil {
		t.Fatalf("ExtractColor() error = %v", err)
	}
	if _, err := svc.ExtractColor(ctx, url); err != nil {
		t.Fatalf("ExtractColor() error = %v", err)
	}

	if requests != 1 {
		t.Errorf("Expected 1 download, got %d", requests)
	}
}

func TestExtractColorBatch(t *testing.T) {
	server := servePNG(t, color.RGBA{R: 20, G: 180, B: 20, A: 255})
	defer server.Close()

	svc := NewImageColorService(nil)

	urls := []string{
		server.URL + "/a.png",
		server.URL + "/b.png",
		"",
	}

	results := svc.ExtractColorBatch(context.Background(), urls)

	for _, u := range urls {
		if _, ok := results[u]; !ok {
			t.Errorf("Expected result for %q", u)
		}
	}
}
