package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/seoscan/seoscan/internal/config"
	"github.com/seoscan/seoscan/internal/database"
	"github.com/seoscan/seoscan/internal/model"
	"github.com/seoscan/seoscan/internal/report"
	"github.com/spf13/cobra"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the stored SEO findings as a report",
		Long: `Report renders everything the crawl has found so far: frontier
totals, issue counts by severity, and every page with at least one
issue.

The default output is a human-readable text report. JSON output is
meant for scripting and CI gates; Markdown output renders nicely in
pull requests and wikis.

Examples:
  # Human-readable report on stdout
  seoscan report

  # Include per-issue recommendations
  seoscan report --verbose

  # Machine-readable report for a CI check
  seoscan report --json --output reports/seo.json

  # Markdown summary for a pull request comment
  seoscan report --markdown`,
		RunE: runReportCmd,
	}

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: seoscan.yaml in current or XDG config directory)")
	cmd.Flags().String("db", "",
		"Database directory (default: XDG data directory)")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	markdownOutput, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}
	if jsonOutput && markdownOutput {
		return errors.New("--json and --markdown are mutually exclusive")
	}

	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	db, err := openExistingDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	crawlReport, err := buildCrawlReport(context.Background(), db, cfg)
	if err != nil {
		return err
	}

	return writeReport(crawlReport, jsonOutput, markdownOutput, outputPath, cfg.Verbose)
}

// buildCrawlReport assembles the report aggregate from the database.
func buildCrawlReport(ctx context.Context, db *database.CrawlDB, cfg *config.Config) (*model.CrawlReport, error) {
	crawlReport := model.NewCrawlReport(cfg.Site.BaseURL)

	counts, err := db.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count urls: %w", err)
	}
	crawlReport.TotalURLs = counts.Total()
	crawlReport.NewCount = counts.New
	crawlReport.CrawledCount = counts.Crawled
	crawlReport.ErrorCount = counts.Error

	terminal, err := db.CountTerminal(ctx, cfg.Crawler.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to count terminal urls: %w", err)
	}
	crawlReport.TerminalCount = terminal

	pages, err := db.ListPageIssues(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load page issues: %w", err)
	}
	for _, page := range pages {
		crawlReport.AddPage(page)
	}

	return crawlReport, nil
}

// writeReport renders the report in the requested format.
func writeReport(crawlReport *model.CrawlReport, jsonOutput, markdownOutput bool, outputPath string, verbose bool) error {
	// Determine output destination
	var output *os.File
	if outputPath != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(outputPath)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Reports can reveal unpublished staging URLs; keep the file
		// readable by the owner only
		f, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	if jsonOutput {
		writer := report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
		_, err := writer.Write(crawlReport)
		return err
	}

	if markdownOutput {
		writer := report.NewMarkdownWriter(output)
		_, err := writer.Write(crawlReport)
		return err
	}

	// Human-readable report (default)
	writer := report.NewSimpleWriter(output, report.WithVerbose(verbose))
	_, err := writer.Write(crawlReport)
	return err
}
