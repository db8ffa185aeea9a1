package model

import "time"

// Status is the crawl state of a URL record.
type Status string

const (
	// StatusNew marks a URL that has been discovered but never fetched.
	StatusNew Status = "new"

	// StatusCrawled marks a URL whose last fetch attempt succeeded.
	StatusCrawled Status = "crawled"

	// StatusError marks a URL whose last fetch attempt failed. The record
	// stays in this status while it waits for a retry and after it has
	// exhausted its retries.
	StatusError Status = "error"
)

// String returns the status as stored in the database.
func (s Status) String() string {
	return string(s)
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusCrawled, StatusError:
		return true
	}
	return false
}

// URLRecord is one discovered URL and its durable crawl bookkeeping.
// The normalized URL is the unique key; re-discovering a URL never
// creates a second record.
//
// State machine: new -> crawled | error; error -> crawled | error.
// retry_count only increments on retryable failures and is clamped at
// the configured maximum, after which the record is terminal: still
// status=error, but permanently excluded from frontier selection.
type URLRecord struct {
	// ID is the database row ID. Zero until persisted.
	ID int64 `json:"id"`

	// URL is the normalized absolute URL (unique key).
	URL string `json:"url"`

	// Status is the current crawl state.
	Status Status `json:"status"`

	// HTTPStatus is the status code of the last completed fetch.
	// Zero means no HTTP response has been observed yet.
	HTTPStatus int `json:"http_status,omitempty"`

	// RetryCount is the number of retryable failures so far.
	// Never negative and never above the configured max_retries.
	RetryCount int `json:"retry_count"`

	// LastCrawled is when the URL was last fetched successfully.
	// Zero if the URL has never been crawled.
	LastCrawled time.Time `json:"last_crawled,omitempty"`

	// LastErrorAt is when the URL last failed. It anchors the backoff
	// deadline for the next retry. Zero if the URL has never failed.
	LastErrorAt time.Time `json:"last_error_at,omitempty"`

	// CreatedAt is when the URL was first discovered. Selection of new
	// URLs preserves this insertion order (first discovered, first crawled).
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when any field of the record last changed.
	UpdatedAt time.Time `json:"updated_at"`
}

// IsTerminal reports whether the record has permanently failed: it is
// in error status and has no retries left. Terminal records remain
// visible for reporting but are never selected again.
func (r *URLRecord) IsTerminal(maxRetries int) bool {
	return r.Status == StatusError && r.RetryCount >= maxRetries
}

// WasCrawled reports whether the URL has ever been fetched successfully.
func (r *URLRecord) WasCrawled() bool {
	return !r.LastCrawled.IsZero()
}

// StatusCounts summarizes how many URL records are in each status.
type StatusCounts struct {
	New     int `json:"new"`
	Crawled int `json:"crawled"`
	Error   int `json:"error"`
}

// Total returns the number of URL records across all statuses.
func (c StatusCounts) Total() int {
	return c.New + c.Crawled + c.Error
}
