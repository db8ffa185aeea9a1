package crawler

import (
	"context"

	"github.com/seoscan/seoscan/internal/model"
)

// Store is the persistence the crawl engine depends on.
// *database.CrawlDB implements it; tests substitute in-memory fakes.
//
// Design decision: The engine owns this interface rather than the
// database package because the engine is the consumer. It names only
// the operations the crawl loop needs, so fakes stay small and the
// storage layer is free to grow reporting queries without touching
// the crawler.
type Store interface {
	// GetOrCreateURL returns the record for a normalized URL, creating
	// it in status "new" if it is unknown. Must never reset the state
	// of an existing record.
	GetOrCreateURL(ctx context.Context, url string) (*model.URLRecord, error)

	// GetURLRecord returns the record for a normalized URL, or nil
	// without error if the URL is unknown. Never writes; previews
	// depend on that.
	GetURLRecord(ctx context.Context, url string) (*model.URLRecord, error)

	// ListRetryCandidates returns error records with retries left,
	// ordered by retry count and then by failure time.
	ListRetryCandidates(ctx context.Context, maxRetries int) ([]model.URLRecord, error)

	// ListNew returns never-crawled records in discovery order.
	ListNew(ctx context.Context) ([]model.URLRecord, error)

	// UpdateAfterFetch persists the complete result of processing one
	// URL atomically. Any error aborts the rest of the batch: a broken
	// store must not silently swallow crawl results.
	UpdateAfterFetch(ctx context.Context, update *model.CrawlUpdate) error
}
