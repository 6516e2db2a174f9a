package storage

import (
	"context"

	"roposo-sync/models"
)

// ProductsTable is the remote table every sink writes to.
const ProductsTable = "products"

// ConflictColumn is the natural key used to deduplicate across runs.
const ConflictColumn = "source_url"

// ProductWriter is the interface any storage backend must satisfy.
// Upsert inserts p or replaces the row that has the same SourceURL.
type ProductWriter interface {
	Upsert(ctx context.Context, p *models.Product) error
	Close() error
}
