package roposo

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"roposo-sync/config"
	"roposo-sync/utils"
)

// Fetcher downloads the listing page. It performs exactly one GET per call.
type Fetcher struct {
	client    *resty.Client
	sourceURL string
	logger    *utils.Logger
}

// NewFetcher creates a Fetcher for cfg.SourceURL.
func NewFetcher(cfg *config.Config, logger *utils.Logger) *Fetcher {
	client := resty.New().
		SetHeader("User-Agent", config.UserAgent)
	if cfg.HTTPTimeout > 0 {
		client.SetTimeout(cfg.HTTPTimeout)
	}
	return &Fetcher{client: client, sourceURL: cfg.SourceURL, logger: logger}
}

// Fetch returns the response body. Transport errors and non-2xx statuses are
// returned as errors; the caller decides how to degrade.
func (f *Fetcher) Fetch(ctx context.Context) (string, error) {
	f.logger.Info("[fetcher] Fetching products from %s...", f.sourceURL)

	res, err := f.client.R().
		SetContext(ctx).
		Get(f.sourceURL)
	if err != nil {
		return "", fmt.Errorf("fetch: get %s: %w", f.sourceURL, err)
	}
	if !res.IsSuccess() {
		return "", fmt.Errorf("fetch: get %s: unexpected status %s", f.sourceURL, res.Status())
	}

	f.logger.Debug("[fetcher] Got %d bytes", len(res.Body()))
	return res.String(), nil
}
