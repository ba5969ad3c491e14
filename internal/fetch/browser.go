// Package fetch - browser.go provides headless browser rendering for SPA sites.
package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// MinContentLength is the minimum extracted text length to consider a static
// HTTP fetch successful. Shorter content usually means the posting body is
// rendered client-side.
const MinContentLength = 500

// scriptGateMarkers are phrases a script-gated page shows in place of its
// content.
var scriptGateMarkers = []string{
	"enable javascript",
	"javascript is disabled",
	"javascript is required",
}

// ShouldUseBrowser returns true if the extracted text is too short or carries
// a script-gate notice, indicating the page is likely a JavaScript-rendered SPA.
func ShouldUseBrowser(extractedText string) bool {
	trimmed := strings.TrimSpace(extractedText)
	if len(trimmed) < MinContentLength {
		return true
	}
	lower := strings.ToLower(trimmed)
	for _, marker := range scriptGateMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// WithBrowser renders a page in a headless browser and returns the rendered HTML.
// Requires Chrome/Chromium to be installed on the system.
func WithBrowser(ctx context.Context, url string, timeout time.Duration, log *zap.Logger) (string, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log.Debug("starting headless browser", zap.String("url", url))

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string

	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Give client-side rendering a moment to fill the posting body.
		chromedp.Sleep(3*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// Dismiss cookie banners when present; ignore failures.
			_ = chromedp.Click(`button[id*="accept"], button[class*="accept"]`, chromedp.NodeVisible).Do(ctx)
			return nil
		}),
		chromedp.Sleep(1*time.Second),
		chromedp.OuterHTML("html", &html),
	)

	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	log.Debug("rendered page", zap.String("url", url), zap.Int("bytes", len(html)))
	return html, nil
}
