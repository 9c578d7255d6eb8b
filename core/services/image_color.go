// ABOUTME: Product image color extraction using K-means clustering
// ABOUTME: Finds the dominant color of product photos for UI accents

package services

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/EdlinOrg/prominentcolor"
	gocache "github.com/patrickmn/go-cache"
	_ "golang.org/x/image/webp" // WebP support

	"prixmalin-api/core/domain"
	"prixmalin-api/core/interfaces"
)

const (
	defaultColorValue = 128
	httpTimeout       = 10 * time.Second
	colorCacheTTL     = 24 * time.Hour
	batchConcurrency  = 5
)

// ImageColorService extracts prominent colors from product images
type ImageColorService struct {
	logger     interfaces.Logger
	httpClient *http.Client
	colors     *gocache.Cache
}

// NewImageColorService creates a new image color service
func NewImageColorService(logger interfaces.Logger) *ImageColorService {
	return &ImageColorService{
		logger: logger,
		httpClient: &http.Client{
			Timeout: httpTimeout,
		},
		colors: gocache.New(colorCacheTTL, colorCacheTTL),
	}
}

// ExtractColor extracts the prominent color from an image URL
func (s *ImageColorService) ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	if imageURL == "" {
		return s.defaultColor(), nil
	}

	if cached, found := s.colors.Get(imageURL); found {
		if color, ok := cached.(domain.RGBColor); ok {
			copied := color
			return &copied, nil
		}
	}

	color, err := s.extractColorFromURL(ctx, imageURL)
	if err != nil {
		s.logDebug("Failed to extract color from image", map[string]interface{}{
			"url":   imageURL,
			"error": err.Error(),
		})
		color = s.defaultColor()
	}

	if color == nil {
		color = s.defaultColor()
	}

	s.colors.Set(imageURL, *color, gocache.DefaultExpiration)

	return color, nil
}

// extractColorFromURL downloads and extracts color from image
func (s *ImageColorService) extractColorFromURL(ctx context.Context, imageURL string) (color *domain.RGBColor, err error) {
	// The clustering library can panic on degenerate inputs
	defer func() {
		if rec := recover(); rec != nil {
			s.logDebug("Recovered from panic in color extraction", map[string]interface{}{
				"url":   imageURL,
				"panic": fmt.Sprintf("%v", rec),
			})
			color = s.defaultColor()
			err = fmt.Errorf("panic recovered: %v", rec)
		}
	}()

	parsedURL, parseErr := url.Parse(imageURL)
	if parseErr != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid image URL: %s", imageURL)
	}

	// SVG files cannot be decoded as raster images
	if strings.HasSuffix(strings.ToLower(parsedURL.Path), ".svg") {
		return nil, fmt.Errorf("SVG images are not supported")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("image has empty bounds")
	}

	imgNRGBA := image.NewNRGBA(bounds)
	draw.Draw(imgNRGBA, bounds, img, bounds.Min, draw.Src)

	colors, err := prominentcolor.KmeansWithAll(
		prominentcolor.ArgumentDefault,
		imgNRGBA,
		prominentcolor.DefaultK,
		1,
		prominentcolor.GetDefaultMasks(),
	)

	// Product photos are often on a white background the masks remove
	// entirely, retry unmasked before giving up
	if err != nil || len(colors) == 0 {
		colors, err = prominentcolor.KmeansWithAll(
			prominentcolor.ArgumentDefault,
			imgNRGBA,
			prominentcolor.DefaultK,
			1,
			nil,
		)
		if err != nil || len(colors) == 0 {
			return nil, fmt.Errorf("no colors extracted from image")
		}
	}

	return &domain.RGBColor{
		R: colors[0].Color.R,
		G: colors[0].Color.G,
		B: colors[0].Color.B,
	}, nil
}

// defaultColor returns the default gray color
func (s *ImageColorService) defaultColor() *domain.RGBColor {
	return &domain.RGBColor{
		R: defaultColorValue,
		G: defaultColorValue,
		B: defaultColorValue,
	}
}

// ExtractColorBatch extracts colors for multiple URLs concurrently
func (s *ImageColorService) ExtractColorBatch(ctx context.Context, imageURLs []string) map[string]*domain.RGBColor {
	results := make(map[string]*domain.RGBColor)
	resultsMutex := sync.Mutex{}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, batchConcurrency)

	for _, u := range imageURLs {
		wg.Add(1)
		go func(imageURL string) {
			defer wg.Done()

			select {
			case semaphore <- struct{}{}:
				defer func() { <-semaphore }()

				color, err := s.ExtractColor(ctx, imageURL)
				if err != nil {
					return
				}

				resultsMutex.Lock()
				results[imageURL] = color
				resultsMutex.Unlock()

			case <-ctx.Done():
				return
			}
		}(u)
	}

	wg.Wait()

	s.logDebug("Completed batch color extraction", map[string]interface{}{
		"requested": len(imageURLs),
		"extracted": len(results),
	})

	return results
}

func (s *ImageColorService) logDebug(msg string, fields map[string]interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, fields)
	}
}
