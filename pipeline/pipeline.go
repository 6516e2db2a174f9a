package pipeline

import (
	"context"

	"roposo-sync/config"
	"roposo-sync/models"
	"roposo-sync/scraper/roposo"
	"roposo-sync/services"
	"roposo-sync/storage"
	"roposo-sync/utils"
)

// Pipeline runs fetch → extract → price → upsert once.
type Pipeline struct {
	cfg     *config.Config
	logger  *utils.Logger
	fetcher *roposo.Fetcher
	pricer  *services.Pricer
	writer  storage.ProductWriter
	summary *services.Summary
}

// New wires a Pipeline. writer decides whether the run is live or dry.
func New(cfg *config.Config, logger *utils.Logger, writer storage.ProductWriter) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		logger:  logger,
		fetcher: roposo.NewFetcher(cfg, logger),
		pricer:  services.NewPricer(cfg.Markup, logger),
		writer:  writer,
		summary: services.NewSummary(logger, cfg.Mode() == config.ModeDryRun),
	}
}

// Summary exposes the run summary, mainly so callers can redirect its output.
func (p *Pipeline) Summary() *services.Summary {
	return p.summary
}

// Run never fails: every error is logged and reflected in the report.
func (p *Pipeline) Run(ctx context.Context) models.RunReport {
	defer func() { p.summary.Print(p.summary.Report()) }()

	body, err := p.fetcher.Fetch(ctx)
	if err != nil {
		p.logger.Error("Failed to fetch: %v", err)
		return p.summary.Report()
	}

	raw, containers, err := roposo.Extract(body, p.cfg.SiteOrigin)
	if err != nil {
		p.logger.Error("[extractor] %v", err)
		return p.summary.Report()
	}
	p.summary.Containers(containers)
	p.summary.Extracted(len(raw))
	p.logger.Info("[extractor] Found %d potential containers", containers)

	products, skipped := p.pricer.Transform(raw, p.cfg.SourceURL)
	p.summary.Skipped(skipped)

	for _, product := range products {
		if err := p.writer.Upsert(ctx, product); err != nil {
			p.summary.Failed(product, err)
			continue
		}
		p.summary.Processed(product)
	}

	return p.summary.Report()
}
