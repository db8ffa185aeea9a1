package crawler

import (
	"math"
	"time"

	"github.com/seoscan/seoscan/internal/model"
)

// RetryPolicy computes exponential backoff for failed URLs.
//
// A record that has failed retryCount times must wait
// BackoffFactor^retryCount seconds from its last failure before it is
// selected again, capped at MaxBackoff. The exponent uses the stored
// count after the failure was recorded: the first failure stores
// retry_count=1 and waits BackoffFactor^1 seconds.
type RetryPolicy struct {
	// MaxRetries is how many retryable failures a URL gets before it
	// becomes terminal.
	MaxRetries int

	// BackoffFactor is the base of the exponential delay. Must be > 1.
	BackoffFactor float64

	// MaxBackoff caps the computed delay.
	MaxBackoff time.Duration
}

// Delay returns the wait after the given number of recorded failures.
func (p RetryPolicy) Delay(retryCount int) time.Duration {
	secs := math.Pow(p.BackoffFactor, float64(retryCount))
	// Compare in float space so a huge exponent cannot overflow the
	// duration conversion
	if secs >= p.MaxBackoff.Seconds() {
		return p.MaxBackoff
	}
	return time.Duration(secs * float64(time.Second))
}

// EligibleAt returns the earliest time the record may be retried.
// Records that never failed are eligible immediately.
func (p RetryPolicy) EligibleAt(record *model.URLRecord) time.Time {
	if record.LastErrorAt.IsZero() {
		return time.Time{}
	}
	return record.LastErrorAt.Add(p.Delay(record.RetryCount))
}

// IsEligible reports whether the record's backoff has elapsed at now.
func (p RetryPolicy) IsEligible(record *model.URLRecord, now time.Time) bool {
	return !now.Before(p.EligibleAt(record))
}

// IsTerminal reports whether the record has exhausted its retries.
func (p RetryPolicy) IsTerminal(record *model.URLRecord) bool {
	return record.IsTerminal(p.MaxRetries)
}

// NextRetryCount returns the stored count after one more retryable
// failure, clamped at MaxRetries so repeated failures of a terminal
// record never push the count past the configured maximum.
func (p RetryPolicy) NextRetryCount(current int) int {
	next := current + 1
	if next > p.MaxRetries {
		return p.MaxRetries
	}
	return next
}
