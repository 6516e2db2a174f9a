package storage

import (
	"context"

	"roposo-sync/config"
	"roposo-sync/utils"
)

// Open returns the writer for cfg.Mode(), wrapped with a CSV copy when
// cfg.CSVOutputPath is set.
func Open(ctx context.Context, cfg *config.Config, logger *utils.Logger) (ProductWriter, error) {
	var primary ProductWriter
	switch cfg.Mode() {
	case config.ModeSupabase:
		creds, _ := cfg.Credentials()
		primary = NewSupabaseWriter(creds, logger)
	case config.ModePostgres:
		pw, err := NewPostgresWriter(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, err
		}
		primary = pw
	default:
		primary = NewDryRunWriter(logger)
	}

	if cfg.CSVOutputPath == "" {
		return primary, nil
	}
	csvWriter, err := NewCSVWriter(cfg.CSVOutputPath)
	if err != nil {
		_ = primary.Close()
		return nil, err
	}
	return Tee(logger, primary, csvWriter), nil
}
