package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"roposo-sync/models"
)

var csvHeader = []string{
	"name", "original_price", "price", "image_url", "source_url", "description",
	"rating", "is_trending", "written_at",
}

// CSVWriter keeps a local copy of every product written in the run.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

func (c *CSVWriter) Upsert(_ context.Context, p *models.Product) error {
	row := []string{
		p.Name,
		strconv.FormatFloat(p.OriginalPrice, 'f', 2, 64),
		strconv.FormatFloat(p.Price, 'f', 2, 64),
		p.ImageURL,
		p.SourceURL,
		p.Description,
		strconv.Itoa(p.Rating),
		strconv.FormatBool(p.IsTrending),
		time.Now().Format(time.RFC3339),
	}
	if err := c.writer.Write(row); err != nil {
		return fmt.Errorf("csv: write row: %w", err)
	}
	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}
