package main

import (
	"context"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"roposo-sync/config"
	"roposo-sync/pipeline"
	"roposo-sync/services"
	"roposo-sync/storage"
	"roposo-sync/utils"
)

func main() {
	logger := utils.NewLogger()

	// Failures are reported in the log only; the scheduler must never see a
	// non-zero exit.
	defer func() {
		if r := recover(); r != nil {
			logger.Error("CRITICAL ERROR: Script failed with panic: %v\n%s", r, debug.Stack())
		}
		os.Exit(0)
	}()

	if err := newRootCmd(logger).ExecuteContext(context.Background()); err != nil {
		logger.Error("CRITICAL ERROR: Script failed: %v", err)
	}
}

func newRootCmd(logger *utils.Logger) *cobra.Command {
	var (
		envFiles []string
		dryRun   bool
		csvPath  string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:           "roposo-sync",
		Short:         "Scrape the Roposo trending listing and upsert it into the products table",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load(envFiles...)
			if dryRun {
				cfg.DryRun = true
			}
			if csvPath != "" {
				cfg.CSVOutputPath = csvPath
			}
			logger.SetVerbose(verbose || cfg.Verbose)

			return run(cmd.Context(), cfg, logger, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringSliceVar(&envFiles, "env-file", nil, "env files to load (default web/.env, .env)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "extract and price without writing")
	cmd.Flags().StringVar(&csvPath, "csv", "", "also write processed products to this CSV file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

// run writes the summary block to out, including when no writer could be
// opened, so the processed total is always the last thing printed.
func run(ctx context.Context, cfg *config.Config, logger *utils.Logger, out io.Writer) error {
	logger.Info("=== Roposo product sync starting (sink: %s) ===", cfg.Mode())

	if _, ok := cfg.Credentials(); !ok && cfg.DatabaseURL == "" {
		logger.Warn("Supabase credentials are missing. Skipping database upload.")
		logger.Warn("To enable database upload, set VITE_SUPABASE_URL and VITE_SUPABASE_ANON_KEY.")
	}

	writer, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("CRITICAL ERROR: Script failed: %v", err)
		summary := services.NewSummary(logger, false)
		summary.SetOutput(out)
		summary.Print(summary.Report())
		return nil
	}
	defer writer.Close()

	p := pipeline.New(cfg, logger, writer)
	p.Summary().SetOutput(out)
	p.Run(ctx)
	return nil
}
