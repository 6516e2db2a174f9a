package storage

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"roposo-sync/config"
	"roposo-sync/models"
	"roposo-sync/utils"
)

// SupabaseWriter upserts products through the hosted table's REST endpoint.
type SupabaseWriter struct {
	client *resty.Client
	logger *utils.Logger
}

// NewSupabaseWriter creates a writer for the project at creds.URL.
func NewSupabaseWriter(creds *config.Credentials, logger *utils.Logger) *SupabaseWriter {
	client := resty.New().
		SetBaseURL(creds.URL+"/rest/v1").
		SetHeader("apikey", creds.Key).
		SetAuthToken(creds.Key).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "resolution=merge-duplicates,return=minimal")
	return &SupabaseWriter{client: client, logger: logger}
}

func (w *SupabaseWriter) Upsert(ctx context.Context, p *models.Product) error {
	res, err := w.client.R().
		SetContext(ctx).
		SetQueryParam("on_conflict", ConflictColumn).
		SetBody(p).
		Post("/" + ProductsTable)
	if err != nil {
		return fmt.Errorf("supabase: upsert %s: %w", p.SourceURL, err)
	}
	if !res.IsSuccess() {
		return fmt.Errorf("supabase: upsert %s: status %s: %s", p.SourceURL, res.Status(), res.String())
	}

	w.logger.Info("Upserted: %s - $%.2f", p.Name, p.Price)
	return nil
}

func (w *SupabaseWriter) Close() error {
	return nil
}
