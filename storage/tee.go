package storage

import (
	"context"
	"errors"

	"roposo-sync/models"
	"roposo-sync/utils"
)

type teeWriter struct {
	primary ProductWriter
	copies  []ProductWriter
	logger  *utils.Logger
}

// Tee writes to primary and, only when that succeeds, to every copy.
// A copy failing is logged and does not fail the upsert.
func Tee(logger *utils.Logger, primary ProductWriter, copies ...ProductWriter) ProductWriter {
	if len(copies) == 0 {
		return primary
	}
	return &teeWriter{primary: primary, copies: copies, logger: logger}
}

func (t *teeWriter) Upsert(ctx context.Context, p *models.Product) error {
	if err := t.primary.Upsert(ctx, p); err != nil {
		return err
	}
	for _, c := range t.copies {
		if err := c.Upsert(ctx, p); err != nil {
			t.logger.Warn("[sink] Copy of %s not written: %v", p.SourceURL, err)
		}
	}
	return nil
}

func (t *teeWriter) Close() error {
	errs := []error{t.primary.Close()}
	for _, c := range t.copies {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
