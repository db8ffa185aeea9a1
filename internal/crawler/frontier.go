package crawler

import (
	"context"
	"time"

	"github.com/seoscan/seoscan/internal/model"
)

// SelectionMode restricts which frontier segments a batch draws from.
type SelectionMode int

const (
	// SelectAll builds the batch from eligible retries first, then new
	// URLs in discovery order. This is the default crawl behavior.
	SelectAll SelectionMode = iota

	// SelectRetryOnly drains every eligible retry and ignores new URLs.
	// The page limit does not apply: the point of a retry pass is to
	// clear the error backlog.
	SelectRetryOnly

	// SelectNewOnly ignores retries and selects only new URLs.
	SelectNewOnly
)

// Frontier selects which URLs a crawl batch should process.
//
// Selection is deterministic so that two runs against the same store
// state produce the same batch: eligible retries ordered by retry
// count and then failure time, followed by new URLs in discovery
// order. Terminal records are never selected.
type Frontier struct {
	store  Store
	policy RetryPolicy
}

// NewFrontier creates a frontier over the given store.
func NewFrontier(store Store, policy RetryPolicy) *Frontier {
	return &Frontier{store: store, policy: policy}
}

// SelectBatch assembles the ordered work list for one crawl run.
//
// The base URL is inserted if unknown, so the very first run of a
// fresh database crawls the site root. maxPages truncates the batch
// after selection, which keeps retries ahead of new URLs; a value of
// zero or less means no limit.
func (f *Frontier) SelectBatch(ctx context.Context, baseURL string, maxPages int, mode SelectionMode, now time.Time) ([]model.URLRecord, error) {
	return f.selectBatch(ctx, baseURL, maxPages, mode, now, true)
}

// PreviewBatch returns the batch SelectBatch would assemble without
// writing anything. An unknown base URL appears in the result as an
// unsaved record instead of being inserted, so previewing a fresh
// store leaves it empty.
func (f *Frontier) PreviewBatch(ctx context.Context, baseURL string, maxPages int, mode SelectionMode, now time.Time) ([]model.URLRecord, error) {
	return f.selectBatch(ctx, baseURL, maxPages, mode, now, false)
}

func (f *Frontier) selectBatch(ctx context.Context, baseURL string, maxPages int, mode SelectionMode, now time.Time, seed bool) ([]model.URLRecord, error) {
	var batch []model.URLRecord

	if mode != SelectNewOnly {
		candidates, err := f.store.ListRetryCandidates(ctx, f.policy.MaxRetries)
		if err != nil {
			return nil, err
		}
		for _, record := range candidates {
			if f.policy.IsEligible(&record, now) {
				batch = append(batch, record)
			}
		}
		if mode == SelectRetryOnly {
			return batch, nil
		}
	}

	// Seed the frontier before selecting new work. On an already
	// seeded store this is a no-op. A preview reads instead of
	// seeding and stands in an unsaved record where the insert would
	// have landed, at the tail of the new list.
	var pending *model.URLRecord
	if seed {
		if _, err := f.store.GetOrCreateURL(ctx, baseURL); err != nil {
			return nil, err
		}
	} else {
		existing, err := f.store.GetURLRecord(ctx, baseURL)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			pending = &model.URLRecord{URL: baseURL, Status: model.StatusNew}
		}
	}

	newRecords, err := f.store.ListNew(ctx)
	if err != nil {
		return nil, err
	}
	batch = append(batch, newRecords...)
	if pending != nil {
		batch = append(batch, *pending)
	}

	if maxPages > 0 && len(batch) > maxPages {
		batch = batch[:maxPages]
	}
	return batch, nil
}
