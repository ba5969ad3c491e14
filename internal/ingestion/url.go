package ingestion

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/resume-ranker/internal/fetch"
)

// IngestFromURL fetches a job posting from a URL, extracts the main content,
// and returns its cleaned text. Platform detection applies job-board-specific
// selectors, and when opts.UseBrowser is set, pages whose static HTML carries
// too little text are re-rendered in a headless browser.
func IngestFromURL(ctx context.Context, urlStr string, opts *fetch.Options) (string, error) {
	if opts == nil {
		opts = fetch.DefaultOptions()
	}
	log := loggerFrom(opts)

	platform := fetch.DetectPlatform(urlStr)
	log.Debug("fetching job posting",
		zap.String("url", urlStr),
		zap.String("platform", string(platform)))

	result, err := fetch.URL(ctx, urlStr, opts)
	if err != nil {
		return "", err
	}

	contentSelectors := fetch.PlatformContentSelectors(platform)
	noiseSelectors := fetch.PlatformNoiseSelectors(platform)

	text, err := fetch.ExtractMainText(result.HTML, contentSelectors, noiseSelectors...)
	if err != nil {
		return "", &fetch.Error{URL: urlStr, Message: "content extraction failed", Cause: err}
	}

	if opts.UseBrowser && fetch.ShouldUseBrowser(text) {
		log.Debug("static content too short, rendering with headless browser",
			zap.Int("chars", len(text)),
			zap.Int("min", fetch.MinContentLength))

		browserHTML, browserErr := fetch.WithBrowser(ctx, urlStr, opts.Timeout, log)
		if browserErr != nil {
			log.Warn("browser rendering failed, keeping static content", zap.Error(browserErr))
		} else if rendered, extractErr := fetch.ExtractMainText(browserHTML, contentSelectors, noiseSelectors...); extractErr == nil {
			text = rendered
		}
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", &fetch.Error{URL: urlStr, Message: "no textual content extracted"}
	}

	log.Debug("job posting ingested", zap.String("url", urlStr), zap.Int("chars", len(cleaned)))
	return cleaned, nil
}

func loggerFrom(opts *fetch.Options) *zap.Logger {
	if opts.Logger == nil {
		return zap.NewNop()
	}
	return opts.Logger
}
