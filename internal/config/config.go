package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/gobwas/glob"
)

// Default configuration values.
// These values match common SEO auditing practice and the behavior the
// tool has shipped with since the first release.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "seoscan"

	// DefaultTimeout is set to 10 seconds. Pages that take longer rarely
	// rank anyway, and a short timeout keeps incremental runs fast. Slow
	// staging environments can raise it in the config file.
	DefaultTimeout = 10 * time.Second

	// DefaultDelay is the pause between consecutive fetches. 500ms is a
	// politeness setting: it keeps a full crawl gentle on small origin
	// servers while still finishing a default batch in a few seconds.
	DefaultDelay = 500 * time.Millisecond

	// DefaultMaxRetries bounds how often a failing URL is re-attempted
	// before it is marked terminal. Five attempts with exponential
	// backoff covers transient outages of several minutes.
	DefaultMaxRetries = 5

	// DefaultBackoffFactor is the base of the exponential retry backoff.
	// With factor 2 the waits grow 2s, 4s, 8s, ... per stored retry count.
	DefaultBackoffFactor = 2.0

	// DefaultMaxBackoff caps the computed backoff delay. Without a cap a
	// high retry count could push the next attempt out by hours.
	DefaultMaxBackoff = 60 * time.Second

	// DefaultMaxBodySize limits the maximum response body size to read.
	// 5MB is sufficient for most HTML pages while preventing memory
	// exhaustion from unexpectedly large responses.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// DefaultMaxPages is the number of URLs attempted per invocation.
	// Small batches keep the tool incremental: run it from cron and the
	// frontier drains a slice at a time. Override with --max-pages.
	DefaultMaxPages = 10

	// DefaultUserAgent identifies seoscan in HTTP requests.
	// Using a descriptive User-Agent is good practice and allows site
	// operators to identify crawler traffic in their logs.
	DefaultUserAgent = "Mozilla/5.0 (compatible; seoscan/1.0; +https://github.com/seoscan/seoscan)"
)

// Default SEO rule thresholds. The length ranges follow the commonly
// cited display limits of search result snippets.
const (
	DefaultTitleMinLength = 30
	DefaultTitleMaxLength = 60

	DefaultMetaDescriptionMinLength = 120
	DefaultMetaDescriptionMaxLength = 160

	DefaultMinH1Tags = 1
	DefaultMaxH1Tags = 1
)

// Config holds all configuration options for seoscan.
// It is populated from the YAML config file plus CLI flags and passed
// through the application via dependency injection rather than global
// state.
//
// Design decision: unlike a flags-only tool, most of this configuration
// lives in a file the user edits once per site, so we group it into
// yaml-tagged sub-structs (site / crawler / seo / severity) mirroring
// the document layout instead of one flat struct.
type Config struct {
	// Site identifies the crawled site and its export targets.
	Site SiteConfig `yaml:"site"`

	// Crawler controls fetching, retrying, and link discovery.
	Crawler CrawlerConfig `yaml:"crawler"`

	// SEO holds the rule thresholds the issue classifier evaluates.
	SEO SEORules `yaml:"seo"`

	// Severity maps issue types to user-facing priorities.
	Severity SeverityBuckets `yaml:"severity"`

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged. Set from the
	// --verbose flag, never from the config file.
	Verbose bool `yaml:"-"`

	// DBDir is the directory holding the crawl database. Defaults to the
	// XDG data directory; overridden with the --db flag.
	DBDir string `yaml:"-"`

	// ConfigFilePath records where the configuration was loaded from,
	// for log output. Empty when running on pure defaults.
	ConfigFilePath string `yaml:"-"`
}

// SiteConfig identifies the site under audit.
type SiteConfig struct {
	// BaseURL is the root URL of the site, e.g. "https://example.com".
	// It seeds an empty frontier and anchors the same-origin check for
	// link discovery. Required.
	BaseURL string `yaml:"base_url"`

	// SitemapPath, when set, is where `seoscan crawl` refreshes the
	// plain-text sitemap after a batch with at least one success.
	// Leave empty to only export sitemaps explicitly via `seoscan sitemap`.
	SitemapPath string `yaml:"sitemap_path"`
}

// CrawlerConfig controls fetch behavior and the retry policy.
type CrawlerConfig struct {
	// UserAgent is the User-Agent header sent with every request.
	UserAgent string `yaml:"user_agent"`

	// Timeout bounds each HTTP request, connection setup included.
	Timeout Duration `yaml:"timeout"`

	// Delay is the rate-limit pause between consecutive fetches.
	Delay Duration `yaml:"delay"`

	// MaxRetries is the retry budget per URL. Once a URL has failed this
	// many times it is terminal and never attempted again.
	MaxRetries int `yaml:"max_retries"`

	// BackoffFactor is the base of the exponential backoff between
	// retries of the same URL. Must be greater than 1 so consecutive
	// waits strictly grow.
	BackoffFactor float64 `yaml:"backoff_factor"`

	// MaxBackoff caps the computed backoff delay.
	MaxBackoff Duration `yaml:"max_backoff"`

	// MaxBodySize is the maximum response body size in bytes to read.
	// Responses larger than this are truncated to prevent memory
	// exhaustion. Set to 0 to use the default (5MB).
	MaxBodySize int64 `yaml:"max_body_size"`

	// MaxPages is the number of URLs attempted per invocation.
	// A value of 0 means use the default. Overridden by --max-pages.
	MaxPages int `yaml:"max_pages"`

	// Headers are extra request headers, e.g. an Authorization header or
	// session cookie for auditing a staging site behind auth. Values are
	// redacted from log output.
	Headers map[string]string `yaml:"headers"`

	// Exclude lists glob patterns matched against the path of discovered
	// URLs. Matching URLs are never added to the frontier.
	// Examples: "/admin/*", "*.pdf", "/search*".
	Exclude []string `yaml:"exclude"`
}

// SEORules holds the thresholds for all classifier checks.
// A zero threshold disables the corresponding check rather than failing.
type SEORules struct {
	Title           LengthRule    `yaml:"title"`
	MetaDescription LengthRule    `yaml:"meta_description"`
	Headings        HeadingRule   `yaml:"headings"`
	Canonical       CanonicalRule `yaml:"canonical"`
}

// LengthRule is a required-plus-length-range check for a text field.
type LengthRule struct {
	// MinLength is the minimum acceptable length in characters.
	// Zero disables the minimum check.
	MinLength int `yaml:"min_length"`

	// MaxLength is the maximum acceptable length in characters.
	// Zero disables the maximum check.
	MaxLength int `yaml:"max_length"`

	// Required controls whether an absent field is reported at all.
	Required bool `yaml:"required"`
}

// HeadingRule controls the H1 cardinality checks.
type HeadingRule struct {
	// MinH1Tags is the minimum number of H1 headings. Zero disables the
	// missing-H1 check.
	MinH1Tags int `yaml:"min_h1_tags"`

	// MaxH1Tags is the maximum number of H1 headings. Zero disables the
	// multiple-H1 check.
	MaxH1Tags int `yaml:"max_h1_tags"`

	// WarnEmptyHeadings reports H1 tags that contain no text.
	WarnEmptyHeadings bool `yaml:"warn_empty_headings"`
}

// CanonicalRule controls the canonical link check.
type CanonicalRule struct {
	// Required reports pages without a <link rel="canonical">.
	// Off by default: many sites legitimately omit self-referencing
	// canonicals.
	Required bool `yaml:"required"`
}

// SeverityBuckets maps issue types to priorities. Each bucket lists the
// issue type codes it contains. An issue type present in no bucket is
// reported as unclassified; a type listed in several buckets takes the
// most severe one.
type SeverityBuckets struct {
	Critical []string `yaml:"critical"`
	Major    []string `yaml:"major"`
	Minor    []string `yaml:"minor"`
}

// Lookup returns the bucket name for an issue type code: "critical",
// "major", "minor", or "" when the type appears in no bucket.
func (b SeverityBuckets) Lookup(issueType string) string {
	for _, t := range b.Critical {
		if t == issueType {
			return "critical"
		}
	}
	for _, t := range b.Major {
		if t == issueType {
			return "major"
		}
	}
	for _, t := range b.Minor {
		if t == issueType {
			return "minor"
		}
	}
	return ""
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use
// cases; the YAML loader unmarshals the config file over these defaults
// so absent keys keep their default.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (e.g., timeout, rule
// thresholds). This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Crawler: CrawlerConfig{
			UserAgent:     DefaultUserAgent,
			Timeout:       DurationFrom(DefaultTimeout),
			Delay:         DurationFrom(DefaultDelay),
			MaxRetries:    DefaultMaxRetries,
			BackoffFactor: DefaultBackoffFactor,
			MaxBackoff:    DurationFrom(DefaultMaxBackoff),
			MaxBodySize:   DefaultMaxBodySize,
			MaxPages:      DefaultMaxPages,
			Headers:       make(map[string]string),
		},
		SEO: SEORules{
			Title: LengthRule{
				MinLength: DefaultTitleMinLength,
				MaxLength: DefaultTitleMaxLength,
				Required:  true,
			},
			MetaDescription: LengthRule{
				MinLength: DefaultMetaDescriptionMinLength,
				MaxLength: DefaultMetaDescriptionMaxLength,
				Required:  true,
			},
			Headings: HeadingRule{
				MinH1Tags:         DefaultMinH1Tags,
				MaxH1Tags:         DefaultMaxH1Tags,
				WarnEmptyHeadings: true,
			},
		},
		Severity: DefaultSeverityBuckets(),
	}
}

// DefaultSeverityBuckets returns the severity mapping used when the
// config file declares none. Missing structural elements (title, H1)
// are critical; absent descriptions and duplicated H1s are major;
// length problems are minor.
func DefaultSeverityBuckets() SeverityBuckets {
	return SeverityBuckets{
		Critical: []string{"missing_title", "missing_h1"},
		Major:    []string{"missing_meta_description", "multiple_h1"},
		Minor: []string{
			"short_title",
			"long_title",
			"short_meta_description",
			"long_meta_description",
			"empty_heading",
			"missing_canonical",
		},
	}
}

// XDGDataDir returns the XDG data directory for seoscan.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/seoscan
// On macOS: ~/Library/Application Support/seoscan
// On Windows: %LOCALAPPDATA%\seoscan
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for seoscan.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/seoscan
// On macOS: ~/Library/Application Support/seoscan
// On Windows: %APPDATA%\seoscan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before the first fetch.
//
// We chose to return the first error found rather than collecting all
// errors because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if c.Site.BaseURL == "" {
		return ErrMissingBaseURL
	}
	parsed, err := url.Parse(c.Site.BaseURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.Site.BaseURL)
	}

	// Timeout must be positive; zero timeout would cause immediate failures
	if c.Crawler.Timeout.Duration <= 0 {
		return ErrInvalidTimeout
	}

	// Delay must be non-negative; zero means no pause between fetches
	if c.Crawler.Delay.Duration < 0 {
		return ErrInvalidDelay
	}

	// MaxRetries of zero is legal: every retryable failure is then terminal
	if c.Crawler.MaxRetries < 0 {
		return ErrInvalidMaxRetries
	}

	// The backoff base must exceed 1 so consecutive waits strictly grow
	if c.Crawler.BackoffFactor <= 1 {
		return ErrInvalidBackoffFactor
	}

	if c.Crawler.MaxBackoff.Duration <= 0 {
		return ErrInvalidMaxBackoff
	}

	// MaxBodySize must be non-negative; 0 means use the default
	if c.Crawler.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	if c.Crawler.MaxPages < 0 {
		return ErrInvalidMaxPages
	}

	for _, pattern := range c.Crawler.Exclude {
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidExcludePattern, pattern, err)
		}
	}

	// Threshold coherence is only enforced for enabled required checks;
	// disabled rules may carry any leftover values.
	if c.SEO.Title.Required && !validLengthRange(c.SEO.Title) {
		return ErrInvalidTitleRule
	}
	if c.SEO.MetaDescription.Required && !validLengthRange(c.SEO.MetaDescription) {
		return ErrInvalidMetaDescriptionRule
	}
	if c.SEO.Headings.MinH1Tags < 0 || c.SEO.Headings.MaxH1Tags < 0 {
		return ErrInvalidHeadingRule
	}
	if c.SEO.Headings.MaxH1Tags > 0 && c.SEO.Headings.MinH1Tags > c.SEO.Headings.MaxH1Tags {
		return ErrInvalidHeadingRule
	}

	return nil
}

// validLengthRange reports whether a length rule has usable thresholds.
func validLengthRange(r LengthRule) bool {
	if r.MinLength < 0 || r.MaxLength < 0 {
		return false
	}
	if r.MinLength > 0 && r.MaxLength > 0 && r.MinLength > r.MaxLength {
		return false
	}
	return r.MinLength > 0 || r.MaxLength > 0
}
