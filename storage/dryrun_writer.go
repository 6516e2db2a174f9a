package storage

import (
	"context"

	"roposo-sync/models"
	"roposo-sync/utils"
)

// DryRunWriter stands in for a real sink when no connection is configured.
// It makes no network calls.
type DryRunWriter struct {
	logger *utils.Logger
}

func NewDryRunWriter(logger *utils.Logger) *DryRunWriter {
	return &DryRunWriter{logger: logger}
}

func (w *DryRunWriter) Upsert(_ context.Context, p *models.Product) error {
	w.logger.Info("Would upsert: %s - $%.2f (Dry Run)", p.Name, p.Price)
	return nil
}

func (w *DryRunWriter) Close() error {
	return nil
}
