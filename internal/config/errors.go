package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages. Errors that need dynamic context (the
// offending pattern or URL) are wrapped with fmt.Errorf at the call site.
var (
	// ErrMissingBaseURL is returned when the config declares no site base
	// URL. The base URL seeds the frontier and anchors same-origin link
	// discovery, so nothing can run without it.
	ErrMissingBaseURL = errors.New("missing site.base_url: set it in the config file (run 'seoscan init' to create one)")

	// ErrInvalidBaseURL is returned when the base URL does not parse as an
	// absolute http or https URL.
	ErrInvalidBaseURL = errors.New("invalid site.base_url: must be an absolute http(s) URL")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	// A timeout of zero or negative would cause immediate request failures.
	ErrInvalidTimeout = errors.New("invalid crawler.timeout: must be positive")

	// ErrInvalidDelay is returned when the rate-limit delay is negative.
	// Use 0 for no delay between requests.
	ErrInvalidDelay = errors.New("invalid crawler.delay: must be non-negative")

	// ErrInvalidMaxRetries is returned when the retry budget is negative.
	// Zero is allowed and makes every retryable failure terminal.
	ErrInvalidMaxRetries = errors.New("invalid crawler.max_retries: must be non-negative")

	// ErrInvalidBackoffFactor is returned when the backoff base is not
	// greater than 1. With a base of 1 or less, retry waits would not grow
	// between attempts.
	ErrInvalidBackoffFactor = errors.New("invalid crawler.backoff_factor: must be greater than 1")

	// ErrInvalidMaxBackoff is returned when the backoff cap is not positive.
	ErrInvalidMaxBackoff = errors.New("invalid crawler.max_backoff: must be positive")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	// A negative body size is invalid; use 0 to use the default limit.
	ErrInvalidMaxBodySize = errors.New("invalid crawler.max_body_size: must be non-negative")

	// ErrInvalidMaxPages is returned when the per-run page budget is
	// negative. Use 0 to fall back to the default.
	ErrInvalidMaxPages = errors.New("invalid crawler.max_pages: must be non-negative")

	// ErrInvalidExcludePattern is returned when an exclude glob does not
	// compile.
	ErrInvalidExcludePattern = errors.New("invalid crawler.exclude pattern")

	// ErrInvalidTitleRule is returned when the title check is required but
	// its length thresholds are missing or incoherent (negative values or
	// min above max).
	ErrInvalidTitleRule = errors.New("invalid seo.title rule: required=true needs a coherent min_length/max_length range")

	// ErrInvalidMetaDescriptionRule is returned when the meta description
	// check is required but its length thresholds are missing or incoherent.
	ErrInvalidMetaDescriptionRule = errors.New("invalid seo.meta_description rule: required=true needs a coherent min_length/max_length range")

	// ErrInvalidHeadingRule is returned when the H1 cardinality bounds are
	// negative or min exceeds max.
	ErrInvalidHeadingRule = errors.New("invalid seo.headings rule: H1 bounds must be non-negative with min <= max")
)
