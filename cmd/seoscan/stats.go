package main

import (
	"context"
	"fmt"
	"time"

	"github.com/seoscan/seoscan/internal/config"
	"github.com/seoscan/seoscan/internal/crawler"
	"github.com/seoscan/seoscan/internal/database"
	"github.com/seoscan/seoscan/internal/model"
	"github.com/spf13/cobra"
)

// NewStatsCmd creates the stats command.
func NewStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show crawl progress and issue totals",
		Long: `Stats summarizes the state of the crawl database: how many URLs are
waiting, crawled, or failing, how many retries are due right now, and
the stored issue counts by severity.

It reads the database only and never fetches anything.

Examples:
  # Progress of the default database
  seoscan stats

  # Progress of a project-local database
  seoscan stats --db ./crawl-data`,
		RunE: runStatsCmd,
	}

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: seoscan.yaml in current or XDG config directory)")
	cmd.Flags().String("db", "",
		"Database directory (default: XDG data directory)")

	return cmd
}

// runStatsCmd executes the stats command.
func runStatsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	db, err := openExistingDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()

	counts, err := db.CountByStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to count urls: %w", err)
	}

	fmt.Printf("Crawl database: %s\n\n", db.Path())

	if counts.Total() == 0 {
		fmt.Println("No URLs known yet.")
		fmt.Println("\nUse 'seoscan crawl' to seed the frontier from your base URL.")
		return nil
	}

	terminal, err := db.CountTerminal(ctx, cfg.Crawler.MaxRetries)
	if err != nil {
		return fmt.Errorf("failed to count terminal urls: %w", err)
	}
	eligible, err := countEligibleRetries(ctx, db, cfg, time.Now())
	if err != nil {
		return fmt.Errorf("failed to count eligible retries: %w", err)
	}

	fmt.Printf("URL frontier (%d known):\n", counts.Total())
	fmt.Printf("  new:      %4d\n", counts.New)
	fmt.Printf("  crawled:  %4d\n", counts.Crawled)
	fmt.Printf("  failing:  %4d\n", counts.Error)

	if counts.Error > 0 {
		cooling := counts.Error - terminal - eligible
		fmt.Printf("\nRetries: %d due now, %d waiting for backoff, %d given up.\n",
			eligible, cooling, terminal)
	}

	if err := printIssueTotals(ctx, db); err != nil {
		return err
	}

	if remaining := counts.New + eligible; remaining > 0 {
		fmt.Printf("\nNext: 'seoscan crawl' would attempt up to %d of %d pending page(s).\n",
			min(cfg.Crawler.MaxPages, remaining), remaining)
	} else {
		fmt.Println("\nThe frontier is drained; new runs will only pick up newly published pages.")
	}

	return nil
}

// printIssueTotals prints the stored issue counts by severity.
func printIssueTotals(ctx context.Context, db *database.CrawlDB) error {
	issueCounts, err := db.CountIssuesBySeverity(ctx)
	if err != nil {
		return fmt.Errorf("failed to count issues: %w", err)
	}

	total := 0
	for _, n := range issueCounts {
		total += n
	}

	fmt.Printf("\nStored issues (%d total):\n", total)
	for _, severity := range model.Severities() {
		n := issueCounts[severity.Key()]
		if severity == model.SeverityUnclassified && n == 0 {
			continue
		}
		fmt.Printf("  %-13s %4d\n", severity.Key()+":", n)
	}
	return nil
}

// countEligibleRetries counts failing URLs whose backoff has elapsed.
func countEligibleRetries(ctx context.Context, db *database.CrawlDB, cfg *config.Config, now time.Time) (int, error) {
	policy := crawler.RetryPolicy{
		MaxRetries:    cfg.Crawler.MaxRetries,
		BackoffFactor: cfg.Crawler.BackoffFactor,
		MaxBackoff:    cfg.Crawler.MaxBackoff.Duration,
	}

	candidates, err := db.ListRetryCandidates(ctx, policy.MaxRetries)
	if err != nil {
		return 0, err
	}

	eligible := 0
	for i := range candidates {
		if policy.IsEligible(&candidates[i], now) {
			eligible++
		}
	}
	return eligible, nil
}

// openExistingDatabase opens the crawl database without creating it.
// A missing database is reported with a hint to crawl first.
func openExistingDatabase(cfg *config.Config) (*database.CrawlDB, error) {
	db, err := database.Open(cfg.DBDir, database.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		return nil, fmt.Errorf("no crawl data yet (run 'seoscan crawl' first): %w", err)
	}
	return db, nil
}
