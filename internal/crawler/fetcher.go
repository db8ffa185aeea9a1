package crawler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// OutcomeKind classifies the result of one fetch attempt. The kind
// decides the state transition: success resets the record, retryable
// failures increment the retry count, permanent failures exhaust it.
type OutcomeKind int

const (
	// OutcomeSuccess is a 2xx response, after redirects were followed.
	OutcomeSuccess OutcomeKind = iota

	// OutcomeRetryable covers failures worth trying again: network
	// errors, timeouts, 5xx responses, and 429 rate limiting.
	OutcomeRetryable

	// OutcomePermanent covers 4xx responses other than 429. Retrying a
	// 404 tomorrow does not make the page exist.
	OutcomePermanent
)

// String returns a short name for logging.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeRetryable:
		return "retryable"
	case OutcomePermanent:
		return "permanent"
	default:
		return "unknown"
	}
}

// Outcome is the classified result of fetching one URL.
type Outcome struct {
	// Kind is the classification that drives the state transition.
	Kind OutcomeKind

	// StatusCode is the HTTP status of the final response.
	// Zero when no response was received at all.
	StatusCode int

	// ContentType is the Content-Type header of the final response.
	ContentType string

	// Body is the response body, truncated at the configured limit.
	// Only populated on success.
	Body []byte

	// FinalURL is the URL of the final response after redirects.
	// Relative links on the page resolve against this, not the
	// requested URL.
	FinalURL string

	// Reason is a short human-readable description of the outcome,
	// used for logging and error bookkeeping.
	Reason string
}

// Fetcher performs single-page HTTP fetches and classifies the result.
type Fetcher struct {
	// client is the HTTP client used for all requests.
	client *http.Client

	// userAgent is the User-Agent header to use.
	userAgent string

	// headers are extra request headers, e.g. auth for staging sites.
	headers map[string]string

	// maxBodySize limits the size of response bodies to read.
	maxBodySize int64
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) FetcherOption {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithHeaders sets extra request headers sent with every fetch.
func WithHeaders(headers map[string]string) FetcherOption {
	return func(f *Fetcher) {
		f.headers = headers
	}
}

// WithMaxBodySize sets the maximum response body size in bytes.
func WithMaxBodySize(size int64) FetcherOption {
	return func(f *Fetcher) {
		if size > 0 {
			f.maxBodySize = size
		}
	}
}

// NewFetcher creates a Fetcher using the given HTTP client.
//
// Design decision: We require an external client because:
//  1. The timeout belongs to configuration, not this package
//  2. Tests can point the fetcher at httptest servers with a stock client
func NewFetcher(client *http.Client, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client:      client,
		userAgent:   "seoscan/1.0",
		maxBodySize: 5 * 1024 * 1024, // 5MB
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch performs one GET request and classifies the result.
//
// Fetch never returns an error: network failures are an expected part
// of crawling and come back as a retryable Outcome. Callers must check
// ctx.Err() afterwards to distinguish a failed fetch from a canceled
// run.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) *Outcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		// A URL broken enough to reject here will never get better
		return &Outcome{
			Kind:     OutcomePermanent,
			FinalURL: pageURL,
			Reason:   fmt.Sprintf("invalid request: %v", err),
		}
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	// Configured headers override the defaults
	for key, value := range f.headers {
		req.Header.Set(key, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return &Outcome{
			Kind:     OutcomeRetryable,
			FinalURL: pageURL,
			Reason:   fmt.Sprintf("request failed: %v", err),
		}
	}
	defer resp.Body.Close()

	outcome := &Outcome{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		FinalURL:    resp.Request.URL.String(),
		Reason:      fmt.Sprintf("HTTP %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
	outcome.Kind = classifyStatus(resp.StatusCode)

	if outcome.Kind == OutcomeSuccess {
		// Read body with limit; oversized pages are truncated, not failed
		body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
		if err != nil {
			return &Outcome{
				Kind:     OutcomeRetryable,
				FinalURL: outcome.FinalURL,
				Reason:   fmt.Sprintf("failed to read body: %v", err),
			}
		}
		outcome.Body = body
	}

	return outcome
}

// classifyStatus maps a final HTTP status to an outcome kind.
//
// Redirects are normally consumed by the client; a 3xx that survives
// (e.g. without a Location header) is treated as retryable because it
// usually signals a transient server misconfiguration.
func classifyStatus(status int) OutcomeKind {
	switch {
	case status >= 200 && status < 300:
		return OutcomeSuccess
	case status == http.StatusTooManyRequests:
		return OutcomeRetryable
	case status >= 400 && status < 500:
		return OutcomePermanent
	default:
		return OutcomeRetryable
	}
}

// NewHTTPClient builds the HTTP client the crawl uses: a plain client
// with an overall request timeout. Redirects are followed with the
// default limit of 10.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
