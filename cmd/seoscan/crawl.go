package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/seoscan/seoscan/internal/config"
	"github.com/seoscan/seoscan/internal/crawler"
	"github.com/seoscan/seoscan/internal/database"
	"github.com/seoscan/seoscan/internal/log"
	"github.com/seoscan/seoscan/internal/model"
	"github.com/seoscan/seoscan/internal/sitemap"
	"github.com/spf13/cobra"
)

// NewCrawlCmd creates the crawl command.
func NewCrawlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crawl [base-url]",
		Short: "Crawl the next batch of pages and record their SEO issues",
		Long: `Crawl fetches the next batch of pages from the site's URL frontier.

Each run selects a bounded batch: URLs whose previous fetch failed and
whose backoff has elapsed come first, followed by newly discovered URLs
in discovery order. Pages are fetched one at a time with a politeness
delay, their SEO fields extracted, issues classified, and everything
persisted before the next fetch. Interrupting a run never loses
completed pages.

The base URL normally comes from the configuration file; passing it as
an argument overrides the file and is enough for a first quick run.

Examples:
  # Crawl the next batch for the configured site
  seoscan crawl

  # First run against a site without a config file
  seoscan crawl https://example.com

  # Crawl a larger batch
  seoscan crawl --max-pages 50

  # Work through the error backlog only
  seoscan crawl --retry-only

  # See what the next run would do
  seoscan crawl --preview

  # Force an immediate re-crawl of one page
  seoscan crawl --url https://example.com/pricing`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCrawlCmd,
	}

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: seoscan.yaml in current or XDG config directory)")
	cmd.Flags().String("db", "",
		"Database directory (default: XDG data directory)")
	cmd.Flags().IntP("max-pages", "n", 0,
		"Number of pages to attempt this run (overrides config)")
	cmd.Flags().Bool("retry-only", false,
		"Process every eligible retry and no new URLs")
	cmd.Flags().Bool("new-only", false,
		"Process new URLs only, skipping eligible retries")
	cmd.Flags().Bool("preview", false,
		"Print the batch the next run would process, without fetching")
	cmd.Flags().Bool("reset", false,
		"Delete all stored crawl state and exit")
	cmd.Flags().StringP("url", "u", "",
		"Crawl one specific URL immediately, bypassing batch selection")

	return cmd
}

// runCrawlCmd executes the crawl command.
func runCrawlCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	// Positional base URL overrides the config file
	if len(args) > 0 {
		cfg.Site.BaseURL = args[0]
	}

	maxPages, err := cmd.Flags().GetInt("max-pages")
	if err != nil {
		return err
	}
	if maxPages > 0 {
		cfg.Crawler.MaxPages = maxPages
	}

	retryOnly, err := cmd.Flags().GetBool("retry-only")
	if err != nil {
		return err
	}
	newOnly, err := cmd.Flags().GetBool("new-only")
	if err != nil {
		return err
	}
	if retryOnly && newOnly {
		return errors.New("--retry-only and --new-only are mutually exclusive")
	}

	preview, err := cmd.Flags().GetBool("preview")
	if err != nil {
		return err
	}
	reset, err := cmd.Flags().GetBool("reset")
	if err != nil {
		return err
	}
	singleURL, err := cmd.Flags().GetString("url")
	if err != nil {
		return err
	}

	// Set up structured logging with header redaction
	logger := log.NewSecureLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	// Reset needs no valid site configuration, just the database
	if reset {
		return runReset(ctx, cfg)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()
	logger.Info("database opened", "path", db.Path())

	engine, err := crawler.NewEngine(cfg, db, crawler.WithLogger(logger))
	if err != nil {
		return err
	}

	mode := crawler.SelectAll
	switch {
	case retryOnly:
		mode = crawler.SelectRetryOnly
	case newOnly:
		mode = crawler.SelectNewOnly
	}

	if singleURL != "" {
		return runSingleURL(ctx, db, engine, cfg, singleURL)
	}
	if preview {
		return runPreview(ctx, engine, cfg, mode)
	}
	return runBatch(ctx, db, engine, cfg, mode)
}

// runReset wipes all stored crawl state.
func runReset(ctx context.Context, cfg *config.Config) error {
	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.ResetAll(ctx); err != nil {
		return fmt.Errorf("failed to reset crawl state: %w", err)
	}

	fmt.Printf("Crawl state cleared (%s).\n", db.Path())
	fmt.Println("The next crawl starts fresh from the configured base URL.")
	return nil
}

// runBatch executes one crawl batch and prints its summary.
func runBatch(ctx context.Context, db *database.CrawlDB, engine *crawler.Engine, cfg *config.Config, mode crawler.SelectionMode) error {
	fmt.Printf("Crawling %s...\n", cfg.Site.BaseURL)

	result, err := engine.Run(ctx, crawler.RunOptions{Mode: mode})
	if err != nil {
		return err
	}

	if result.Interrupted {
		fmt.Printf("\nInterrupted after %d page(s); completed pages are saved.\n", result.Processed)
	} else if result.Processed == 0 {
		fmt.Println("Nothing to crawl: no new URLs and no retries due.")
	} else {
		fmt.Printf("Batch finished in %s: %d crawled, %d failed.\n",
			result.Duration.Round(time.Millisecond), result.Succeeded, result.Failed)
	}

	if err := printFrontierSummary(ctx, db, cfg.Crawler.MaxRetries); err != nil {
		return err
	}

	// The configured sitemap file tracks the crawled set
	if cfg.Site.SitemapPath != "" && result.Succeeded > 0 {
		if err := refreshSitemap(ctx, db, cfg.Site.SitemapPath); err != nil {
			return fmt.Errorf("failed to refresh sitemap: %w", err)
		}
		fmt.Printf("Sitemap refreshed: %s\n", cfg.Site.SitemapPath)
	}

	return nil
}

// runPreview prints the batch the next run would process.
func runPreview(ctx context.Context, engine *crawler.Engine, cfg *config.Config, mode crawler.SelectionMode) error {
	batch, err := engine.Plan(ctx, crawler.RunOptions{Mode: mode})
	if err != nil {
		return err
	}

	if len(batch) == 0 {
		fmt.Println("Nothing to crawl: no new URLs and no retries due.")
		return nil
	}

	fmt.Printf("Next batch (%d URLs):\n", len(batch))
	for i, record := range batch {
		fmt.Printf("  %2d. %s %s\n", i+1, record.URL, describeSelection(&record, cfg.Crawler.MaxRetries))
	}
	return nil
}

// describeSelection renders why a record is in the batch.
func describeSelection(record *model.URLRecord, maxRetries int) string {
	if record.Status == model.StatusError {
		return fmt.Sprintf("(retry %d/%d)", record.RetryCount, maxRetries)
	}
	return "(new)"
}

// runSingleURL force-crawls one URL and prints the result.
func runSingleURL(ctx context.Context, db *database.CrawlDB, engine *crawler.Engine, cfg *config.Config, rawURL string) error {
	record, err := engine.CrawlOne(ctx, rawURL)
	if err != nil {
		return err
	}

	if record.Status == model.StatusCrawled {
		issues, err := db.ListIssues(ctx, record.ID)
		if err != nil {
			return fmt.Errorf("failed to load issues: %w", err)
		}
		fmt.Printf("Crawled %s (HTTP %d): %d issue(s).\n", record.URL, record.HTTPStatus, len(issues))
		for _, issue := range issues {
			fmt.Printf("  [%s] %s: %s\n", issue.Severity, issue.Type.Label(), issue.Details)
		}
		return nil
	}

	if record.IsTerminal(cfg.Crawler.MaxRetries) {
		fmt.Printf("Fetch failed for %s; retry budget exhausted.\n", record.URL)
	} else {
		fmt.Printf("Fetch failed for %s (attempt %d of %d).\n",
			record.URL, record.RetryCount, cfg.Crawler.MaxRetries)
	}
	return nil
}

// printFrontierSummary prints how much of the site remains to crawl.
func printFrontierSummary(ctx context.Context, db *database.CrawlDB, maxRetries int) error {
	counts, err := db.CountByStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to count urls: %w", err)
	}
	terminal, err := db.CountTerminal(ctx, maxRetries)
	if err != nil {
		return fmt.Errorf("failed to count terminal urls: %w", err)
	}

	line := fmt.Sprintf("Frontier: %d new, %d crawled, %d failing", counts.New, counts.Crawled, counts.Error)
	if terminal > 0 {
		line += fmt.Sprintf(" (%d given up)", terminal)
	}
	fmt.Println(line + ".")
	return nil
}

// refreshSitemap rewrites the plain-text sitemap from the crawled set.
func refreshSitemap(ctx context.Context, db *database.CrawlDB, path string) error {
	entries, err := loadSitemapEntries(ctx, db)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create sitemap directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create sitemap file: %w", err)
	}
	defer f.Close()

	return sitemap.WriteText(f, entries)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig loads the configuration shared by the database-backed
// commands: the YAML file, the database directory, and verbosity.
//
// If the user explicitly specified a config file path, a missing file is
// an error. Without an explicit path the defaults apply when no file is
// found in the search locations.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	explicitConfigPath := configPath != ""
	foundPath := config.FindConfigFile(configPath)

	var cfg *config.Config
	switch {
	case foundPath != "":
		cfg, err = config.LoadFile(foundPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", foundPath, err)
		}
	case explicitConfigPath:
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	default:
		cfg = config.NewConfig()
	}

	cfg.DBDir, err = cmd.Flags().GetString("db")
	if err != nil {
		return nil, err
	}
	if cfg.DBDir == "" {
		// Crawl state lives in the XDG data directory by default
		cfg.DBDir = config.XDGDataDir()
	}

	cfg.Verbose = getVerboseFlag(cmd)
	return cfg, nil
}
