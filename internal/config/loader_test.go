package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestLoadFile tests configuration loading from YAML files.
func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("file values layer over defaults", func(t *testing.T) {
		t.Parallel()

		content := `site:
  base_url: https://example.com
crawler:
  max_pages: 25
`
		path := writeConfigFile(t, content)

		cfg, err := LoadFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.Site.BaseURL != "https://example.com" {
			t.Errorf("expected base URL from file, got %q", cfg.Site.BaseURL)
		}
		if cfg.Crawler.MaxPages != 25 {
			t.Errorf("expected MaxPages 25 from file, got %d", cfg.Crawler.MaxPages)
		}
		// Keys absent from the file keep their defaults
		if cfg.Crawler.MaxRetries != DefaultMaxRetries {
			t.Errorf("expected default MaxRetries %d, got %d", DefaultMaxRetries, cfg.Crawler.MaxRetries)
		}
		if cfg.SEO.Title.MinLength != DefaultTitleMinLength {
			t.Errorf("expected default title min length %d, got %d", DefaultTitleMinLength, cfg.SEO.Title.MinLength)
		}
	})

	t.Run("string durations are parsed", func(t *testing.T) {
		t.Parallel()

		content := `site:
  base_url: https://example.com
crawler:
  timeout: 2s
  delay: 250ms
`
		path := writeConfigFile(t, content)

		cfg, err := LoadFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.Crawler.Timeout.Duration != 2*time.Second {
			t.Errorf("expected timeout 2s, got %v", cfg.Crawler.Timeout)
		}
		if cfg.Crawler.Delay.Duration != 250*time.Millisecond {
			t.Errorf("expected delay 250ms, got %v", cfg.Crawler.Delay)
		}
	})

	t.Run("numeric durations are seconds", func(t *testing.T) {
		t.Parallel()

		content := `site:
  base_url: https://example.com
crawler:
  timeout: 30
`
		path := writeConfigFile(t, content)

		cfg, err := LoadFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.Crawler.Timeout.Duration != 30*time.Second {
			t.Errorf("expected timeout 30s, got %v", cfg.Crawler.Timeout)
		}
	})

	t.Run("invalid YAML returns error", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, "site: [unclosed")

		if _, err := LoadFile(path); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})

	t.Run("config file path is recorded", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, "site:\n  base_url: https://example.com\n")

		cfg, err := LoadFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.ConfigFilePath != path {
			t.Errorf("expected ConfigFilePath %q, got %q", path, cfg.ConfigFilePath)
		}
	})

	t.Run("null headers map is reinitialized", func(t *testing.T) {
		t.Parallel()

		content := `site:
  base_url: https://example.com
crawler:
  headers:
`
		path := writeConfigFile(t, content)

		cfg, err := LoadFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.Crawler.Headers == nil {
			t.Error("expected Headers map to be reinitialized")
		}
	})

	t.Run("exclude patterns are loaded", func(t *testing.T) {
		t.Parallel()

		content := `site:
  base_url: https://example.com
crawler:
  exclude:
    - "/admin/*"
    - "*.pdf"
`
		path := writeConfigFile(t, content)

		cfg, err := LoadFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(cfg.Crawler.Exclude) != 2 {
			t.Fatalf("expected 2 exclude patterns, got %d", len(cfg.Crawler.Exclude))
		}
		if cfg.Crawler.Exclude[0] != "/admin/*" {
			t.Errorf("unexpected first exclude pattern: %q", cfg.Crawler.Exclude[0])
		}
	})
}

// TestFindConfigFile tests configuration file discovery.
// Not parallel: the t.Chdir subtest below forbids parallel ancestors.
func TestFindConfigFile(t *testing.T) {
	t.Run("explicit path is returned when it exists", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, "site:\n  base_url: https://example.com\n")

		if got := FindConfigFile(path); got != path {
			t.Errorf("expected %q, got %q", path, got)
		}
	})

	t.Run("missing explicit path returns empty string", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "nope.yaml")
		if got := FindConfigFile(missing); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})

	t.Run("current directory is searched", func(t *testing.T) {
		// Uses t.Chdir, so this subtest must not run in parallel.
		dir := t.TempDir()
		path := filepath.Join(dir, DefaultConfigFile)
		if err := os.WriteFile(path, []byte("site:\n  base_url: https://example.com\n"), 0600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}
		t.Chdir(dir)

		got := FindConfigFile("")
		if filepath.Base(got) != DefaultConfigFile {
			t.Errorf("expected %s in current directory, got %q", DefaultConfigFile, got)
		}
	})
}

// writeConfigFile writes content to a temporary YAML file and returns its path.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}
