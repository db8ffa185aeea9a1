package crawler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/seoscan/seoscan/internal/config"
	"github.com/seoscan/seoscan/internal/model"
)

// ErrOutsideSite is returned when a single-URL crawl targets a URL on a
// different origin than the configured site.
var ErrOutsideSite = errors.New("url is outside the configured site")

// Engine runs incremental crawl batches: it selects URLs from the
// frontier, fetches them one at a time with a politeness delay, and
// persists each result before moving to the next.
//
// The engine itself is stateless between batches. All progress lives in
// the store, which is what makes interrupted runs resumable.
type Engine struct {
	store      Store
	fetcher    *Fetcher
	extractor  *Extractor
	classifier *Classifier
	policy     RetryPolicy
	frontier   *Frontier

	// base is the normalized crawl origin.
	base    *url.URL
	baseURL string

	maxPages int
	delay    time.Duration

	logger *slog.Logger

	// now is replaceable for tests.
	now func() time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger used for per-page progress output.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClock replaces the time source. Tests use this to pin backoff
// and timestamp arithmetic.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine builds an engine from the configuration and a store.
// The configuration must have passed Validate.
func NewEngine(cfg *config.Config, store Store, opts ...EngineOption) (*Engine, error) {
	baseURL, err := NormalizeURL(cfg.Site.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	extractor, err := NewExtractor(baseURL, cfg.Crawler.Exclude)
	if err != nil {
		return nil, err
	}

	maxBodySize := cfg.Crawler.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = config.DefaultMaxBodySize
	}
	fetcher := NewFetcher(NewHTTPClient(cfg.Crawler.Timeout.Duration),
		WithUserAgent(cfg.Crawler.UserAgent),
		WithHeaders(cfg.Crawler.Headers),
		WithMaxBodySize(maxBodySize),
	)

	policy := RetryPolicy{
		MaxRetries:    cfg.Crawler.MaxRetries,
		BackoffFactor: cfg.Crawler.BackoffFactor,
		MaxBackoff:    cfg.Crawler.MaxBackoff.Duration,
	}

	maxPages := cfg.Crawler.MaxPages
	if maxPages <= 0 {
		maxPages = config.DefaultMaxPages
	}

	e := &Engine{
		store:      store,
		fetcher:    fetcher,
		extractor:  extractor,
		classifier: NewClassifier(cfg.SEO, cfg.Severity),
		policy:     policy,
		frontier:   NewFrontier(store, policy),
		base:       base,
		baseURL:    baseURL,
		maxPages:   maxPages,
		delay:      cfg.Crawler.Delay.Duration,
		logger:     slog.Default(),
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// RunOptions controls one crawl batch.
type RunOptions struct {
	// MaxPages overrides the configured batch size when positive.
	MaxPages int

	// Mode restricts which frontier segments the batch draws from.
	Mode SelectionMode
}

// BatchResult summarizes one crawl batch.
type BatchResult struct {
	// Processed is the number of URLs fetched and persisted.
	Processed int

	// Succeeded counts fetches that ended in a 2xx response.
	Succeeded int

	// Failed counts fetches that ended in an error outcome.
	Failed int

	// Interrupted reports whether the batch stopped early because the
	// context was canceled. Already-persisted URLs stay persisted.
	Interrupted bool

	// Duration is the wall-clock time the batch took.
	Duration time.Duration
}

// Run executes one crawl batch and returns its summary.
//
// URLs are processed strictly one at a time with the configured delay
// between consecutive fetches. Each URL is fully persisted before the
// next fetch starts, so cancellation never loses completed work; the
// in-flight URL is simply not recorded and will be selected again by a
// later run. A storage failure aborts the batch immediately.
func (e *Engine) Run(ctx context.Context, opts RunOptions) (*BatchResult, error) {
	maxPages := opts.MaxPages
	if maxPages <= 0 {
		maxPages = e.maxPages
	}

	batch, err := e.frontier.SelectBatch(ctx, e.baseURL, maxPages, opts.Mode, e.now())
	if err != nil {
		return nil, err
	}

	result := &BatchResult{}
	start := time.Now()
	defer func() { result.Duration = time.Since(start) }()

	e.logger.Info("starting crawl batch",
		"site", e.baseURL,
		"batch_size", len(batch))

	for i := range batch {
		record := &batch[i]

		// Politeness delay between fetches, not before the first one
		if i > 0 && e.delay > 0 {
			select {
			case <-ctx.Done():
				result.Interrupted = true
				return result, nil
			case <-time.After(e.delay):
			}
		}

		outcome := e.fetcher.Fetch(ctx, record.URL)
		if ctx.Err() != nil {
			// The in-flight fetch was canceled; its partial outcome is
			// not trustworthy and is not persisted.
			result.Interrupted = true
			return result, nil
		}

		update := e.applyOutcome(record, outcome)
		if err := e.store.UpdateAfterFetch(ctx, update); err != nil {
			return result, fmt.Errorf("failed to persist crawl result for %s: %w", record.URL, err)
		}

		result.Processed++
		if outcome.Kind == OutcomeSuccess {
			result.Succeeded++
			e.logger.Info("crawled page",
				"url", record.URL,
				"http_status", outcome.StatusCode,
				"links", len(update.Discovered),
				"issues", len(update.Issues))
		} else {
			result.Failed++
			e.logger.Warn("fetch failed",
				"url", record.URL,
				"reason", outcome.Reason,
				"retry_count", record.RetryCount,
				"terminal", e.policy.IsTerminal(record))
		}
	}

	return result, nil
}

// Plan returns the batch a Run with the same options would process,
// without fetching or writing anything. An unseeded base URL shows up
// in the plan as an unsaved record; only a real run inserts it.
func (e *Engine) Plan(ctx context.Context, opts RunOptions) ([]model.URLRecord, error) {
	maxPages := opts.MaxPages
	if maxPages <= 0 {
		maxPages = e.maxPages
	}
	return e.frontier.PreviewBatch(ctx, e.baseURL, maxPages, opts.Mode, e.now())
}

// CrawlOne fetches a single URL immediately, bypassing frontier
// selection, backoff eligibility, and the terminal check. The URL must
// belong to the configured site. Used by the --url flag to force a
// re-crawl of a specific page.
func (e *Engine) CrawlOne(ctx context.Context, rawURL string) (*model.URLRecord, error) {
	normalized, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	parsed, err := url.Parse(normalized)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	if !sameOrigin(e.base, parsed) {
		return nil, fmt.Errorf("%w: %s", ErrOutsideSite, normalized)
	}

	record, err := e.store.GetOrCreateURL(ctx, normalized)
	if err != nil {
		return nil, err
	}

	outcome := e.fetcher.Fetch(ctx, record.URL)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	update := e.applyOutcome(record, outcome)
	if err := e.store.UpdateAfterFetch(ctx, update); err != nil {
		return nil, fmt.Errorf("failed to persist crawl result for %s: %w", record.URL, err)
	}

	return record, nil
}

// applyOutcome turns a fetch outcome into the record's next state plus
// the data to persist alongside it.
//
// Success resets the retry budget: a page that recovers after failures
// starts from a clean slate. Permanent failures burn the whole budget
// at once so the URL turns terminal immediately. Retryable failures
// increment the count, clamped at the maximum.
func (e *Engine) applyOutcome(record *model.URLRecord, outcome *Outcome) *model.CrawlUpdate {
	now := e.now()
	if outcome.StatusCode != 0 {
		// Network errors produce no response; keep the last observed
		// status instead of zeroing it.
		record.HTTPStatus = outcome.StatusCode
	}

	update := &model.CrawlUpdate{Record: record}

	switch outcome.Kind {
	case OutcomeSuccess:
		record.Status = model.StatusCrawled
		record.RetryCount = 0
		record.LastCrawled = now

		fields, links := e.extractPage(outcome)
		update.Fields = fields
		update.Issues = e.classifier.Classify(fields)
		update.Discovered = links

	case OutcomePermanent:
		record.Status = model.StatusError
		record.RetryCount = e.policy.MaxRetries
		record.LastErrorAt = now

	case OutcomeRetryable:
		record.Status = model.StatusError
		record.RetryCount = e.policy.NextRetryCount(record.RetryCount)
		record.LastErrorAt = now
	}

	return update
}

// extractPage parses the fetched body into an SEO snapshot and the
// discovered links. Non-HTML responses and unparseable bodies yield an
// empty snapshot and no links; the page still counts as crawled, and
// the classifier will report the missing fields.
func (e *Engine) extractPage(outcome *Outcome) (*model.SEOFields, []string) {
	if !isHTML(outcome.ContentType) {
		return emptyFields(), nil
	}

	fields, links, err := e.extractor.Extract(bytes.NewReader(outcome.Body), outcome.FinalURL)
	if err != nil {
		e.logger.Warn("failed to parse page",
			"url", outcome.FinalURL,
			"error", err)
		return emptyFields(), nil
	}
	return fields, links
}

// isHTML reports whether a Content-Type header denotes an HTML document.
func isHTML(contentType string) bool {
	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}
