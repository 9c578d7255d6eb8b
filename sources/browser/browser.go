// ABOUTME: Shared headless browser helper for sources that need rendered pages
// ABOUTME: Launches Chromium via rod with French locale and cookie banner handling

package browser

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Rotated to reduce fingerprinting
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/130.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
}

// Common consent button selectors on French retail sites
var cookieSelectors = []string{
	"#onetrust-accept-btn-handler",
	"#didomi-notice-agree-button",
	"[data-testid='accept-cookies']",
	"button[class*='cookie']",
	".cookie-consent button",
	"#footer_tc_privacy_button_2",
	"#CybsAcceptAll",
}

const (
	cookieTimeout   = 3 * time.Second
	settleDelay     = 1 * time.Second
	defaultSelector = 12 * time.Second
)

// Fetcher renders pages in a headless Chromium instance
type Fetcher struct {
	selectorTimeout time.Duration
}

// NewFetcher creates a new headless page fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{selectorTimeout: defaultSelector}
}

// FetchRendered navigates to pageURL, waits for waitSelector to appear
// and returns the rendered HTML. The browser instance lives only for
// the duration of the call.
func (f *Fetcher) FetchRendered(ctx context.Context, pageURL, waitSelector string) (string, error) {
	l := launcher.New().
		Headless(true).
		Set("no-sandbox").
		Set("disable-dev-shm-usage").
		Set("disable-blink-features", "AutomationControlled")

	if proxy := proxyFromEnv(); proxy != "" {
		l = l.Proxy(proxy)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return "", fmt.Errorf("failed to launch browser: %w", err)
	}
	defer l.Cleanup()

	b := rod.New().ControlURL(controlURL).Context(ctx)
	if err := b.Connect(); err != nil {
		return "", fmt.Errorf("failed to connect to browser: %w", err)
	}
	defer b.Close()

	page, err := b.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fmt.Errorf("failed to open page: %w", err)
	}

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
		UserAgent:      userAgents[rand.Intn(len(userAgents))],
		AcceptLanguage: "fr-FR",
	}); err != nil {
		return "", fmt.Errorf("failed to set user agent: %w", err)
	}

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             1366,
		Height:            768,
		DeviceScaleFactor: 1,
	}); err != nil {
		return "", fmt.Errorf("failed to set viewport: %w", err)
	}

	if err := page.Navigate(pageURL); err != nil {
		return "", fmt.Errorf("failed to navigate: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("failed to load page: %w", err)
	}

	acceptCookies(page)

	if waitSelector != "" {
		if _, err := page.Timeout(f.selectorTimeout).Element(waitSelector); err != nil {
			return "", fmt.Errorf("selector %q never appeared: %w", waitSelector, err)
		}
		// Client-side rendering keeps filling tiles after the first one
		time.Sleep(settleDelay)
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("failed to read page HTML: %w", err)
	}

	return html, nil
}

// acceptCookies clicks through consent banners when one is present.
// Failures are ignored, a lingering banner does not block scraping.
func acceptCookies(page *rod.Page) {
	for _, sel := range cookieSelectors {
		el, err := page.Timeout(cookieTimeout).Element(sel)
		if err != nil {
			continue
		}
		if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
			continue
		}
		time.Sleep(500 * time.Millisecond)
		return
	}
}

func proxyFromEnv() string {
	if proxy := os.Getenv("HTTPS_PROXY"); proxy != "" {
		return proxy
	}
	return os.Getenv("HTTP_PROXY")
}
