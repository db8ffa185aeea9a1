package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/seoscan/seoscan/internal/database"
	"github.com/seoscan/seoscan/internal/sitemap"
	"github.com/spf13/cobra"
)

// NewSitemapCmd creates the sitemap command.
func NewSitemapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Export the crawled pages as a sitemap",
		Long: `Sitemap exports every successfully crawled page as a sitemap file.

Two formats are supported: the plain-text URL list many tools consume,
and the sitemap.org XML format with last-modification dates search
engines expect. Pages whose last fetch failed are left out.

Examples:
  # Write sitemap.txt and sitemap.xml into the current directory
  seoscan sitemap

  # XML only, into a deploy directory
  seoscan sitemap --format xml --dir ./public`,
		RunE: runSitemapCmd,
	}

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: seoscan.yaml in current or XDG config directory)")
	cmd.Flags().String("db", "",
		"Database directory (default: XDG data directory)")
	cmd.Flags().StringP("format", "f", "both",
		"Sitemap format: txt, xml, or both")
	cmd.Flags().StringP("dir", "d", ".",
		"Directory to write the sitemap files into")

	return cmd
}

// runSitemapCmd executes the sitemap command.
func runSitemapCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return err
	}
	switch format {
	case "txt", "xml", "both":
	default:
		return fmt.Errorf("invalid format %q (want txt, xml, or both)", format)
	}

	db, err := openExistingDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	entries, err := loadSitemapEntries(ctx, db)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No crawled pages to export yet.")
		fmt.Println("\nUse 'seoscan crawl' to crawl the site first.")
		return nil
	}

	var paths []string
	switch format {
	case "txt":
		path, err := writeSitemapFile(dir, sitemap.TextFileName, entries, sitemap.WriteText)
		if err != nil {
			return err
		}
		paths = []string{path}
	case "xml":
		path, err := writeSitemapFile(dir, sitemap.XMLFileName, entries, sitemap.WriteXML)
		if err != nil {
			return err
		}
		paths = []string{path}
	case "both":
		paths, err = sitemap.ExportAll(ctx, dir, entries)
		if err != nil {
			return err
		}
	}

	for _, path := range paths {
		fmt.Printf("Sitemap written: %s (%d URLs)\n", path, len(entries))
	}
	return nil
}

// writeSitemapFile renders one sitemap format into dir.
func writeSitemapFile(dir, name string, entries []sitemap.Entry, render func(io.Writer, []sitemap.Entry) error) (string, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create sitemap directory: %w", err)
	}

	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return "", fmt.Errorf("failed to create sitemap file: %w", err)
	}
	defer f.Close()

	if err := render(f, entries); err != nil {
		return "", fmt.Errorf("failed to write sitemap: %w", err)
	}
	return path, nil
}

// loadSitemapEntries builds sitemap entries from every crawled page.
func loadSitemapEntries(ctx context.Context, db *database.CrawlDB) ([]sitemap.Entry, error) {
	records, err := db.ListCrawled(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list crawled urls: %w", err)
	}

	entries := make([]sitemap.Entry, 0, len(records))
	for _, record := range records {
		entries = append(entries, sitemap.Entry{
			Loc:     record.URL,
			LastMod: record.LastCrawled,
		})
	}
	return entries, nil
}
