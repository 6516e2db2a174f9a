package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"roposo-sync/models"
	"roposo-sync/utils"
)

const upsertQuery = `
		INSERT INTO products (name, price, image_url, source_url, description, rating, is_trending)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (source_url) DO UPDATE SET
			name        = EXCLUDED.name,
			price       = EXCLUDED.price,
			image_url   = EXCLUDED.image_url,
			description = EXCLUDED.description,
			rating      = EXCLUDED.rating,
			is_trending = EXCLUDED.is_trending
	`

// PostgresWriter upserts products straight into the database behind the
// hosted table. The products table must already exist.
type PostgresWriter struct {
	db     *sql.DB
	logger *utils.Logger
}

// NewPostgresWriter opens and pings a connection for dsn.
func NewPostgresWriter(ctx context.Context, dsn string, logger *utils.Logger) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}
	return NewPostgresWriterFromDB(db, logger), nil
}

// NewPostgresWriterFromDB wraps an already opened handle.
func NewPostgresWriterFromDB(db *sql.DB, logger *utils.Logger) *PostgresWriter {
	return &PostgresWriter{db: db, logger: logger}
}

func (pw *PostgresWriter) Upsert(ctx context.Context, p *models.Product) error {
	_, err := pw.db.ExecContext(ctx, upsertQuery,
		p.Name, p.Price, p.ImageURL, p.SourceURL, p.Description, p.Rating, p.IsTrending)
	if err != nil {
		return fmt.Errorf("postgres: upsert %s: %w", p.SourceURL, err)
	}

	pw.logger.Info("Upserted: %s - $%.2f", p.Name, p.Price)
	return nil
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}
