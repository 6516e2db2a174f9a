package services

import (
	"fmt"
	"io"
	"os"
	"strings"

	"roposo-sync/models"
	"roposo-sync/utils"
)

// Summary accumulates counts for one run and prints the final report.
type Summary struct {
	logger *utils.Logger
	out    io.Writer
	report models.RunReport
	total  float64
}

// NewSummary creates an empty Summary printing to stdout.
func NewSummary(logger *utils.Logger, dryRun bool) *Summary {
	return &Summary{
		logger: logger,
		out:    os.Stdout,
		report: models.RunReport{DryRun: dryRun},
	}
}

// SetOutput redirects Print.
func (s *Summary) SetOutput(w io.Writer) {
	s.out = w
}

// Containers records how many candidate containers the page had.
func (s *Summary) Containers(n int) { s.report.Containers = n }

// Extracted records how many containers yielded every field.
func (s *Summary) Extracted(n int) { s.report.Extracted = n }

// Skipped adds n records dropped for an unusable price.
func (s *Summary) Skipped(n int) { s.report.Skipped += n }

// Failed counts a record whose write was rejected.
func (s *Summary) Failed(p *models.Product, err error) {
	s.report.Failed++
	s.logger.Error("[sink] Upsert failed for %s: %v", p.SourceURL, err)
}

// Processed counts a record written (or simulated, in dry-run mode).
func (s *Summary) Processed(p *models.Product) {
	r := &s.report
	if r.Processed == 0 || p.Price < r.MinPrice {
		r.MinPrice = p.Price
	}
	if p.Price > r.MaxPrice {
		r.MaxPrice = p.Price
	}
	r.Processed++
	s.total += p.Price
	r.AveragePrice = round2(s.total / float64(r.Processed))
}

// Report returns a copy of the counts so far.
func (s *Summary) Report() models.RunReport {
	return s.report
}

// Print writes the run report. The last line is always the processed total.
func (s *Summary) Print(r models.RunReport) {
	thin := strings.Repeat("─", 40)
	mode := "live"
	if r.DryRun {
		mode = "dry run"
	}

	fmt.Fprintf(s.out, "\n  Run summary (%s)\n", mode)
	fmt.Fprintf(s.out, "  %s\n", thin)
	fmt.Fprintf(s.out, "  Containers found : %d\n", r.Containers)
	fmt.Fprintf(s.out, "  Extracted        : %d\n", r.Extracted)
	fmt.Fprintf(s.out, "  Skipped (price)  : %d\n", r.Skipped)
	fmt.Fprintf(s.out, "  Failed writes    : %d\n", r.Failed)
	if r.Processed > 0 {
		fmt.Fprintf(s.out, "  Resale price     : min $%.2f | avg $%.2f | max $%.2f\n",
			r.MinPrice, r.AveragePrice, r.MaxPrice)
	}
	fmt.Fprintf(s.out, "  %s\n", thin)
	fmt.Fprintf(s.out, "Total products processed: %d\n", r.Processed)
}
