// Package crawler implements the incremental crawl engine of seoscan.
//
// # Architecture
//
// The package is designed around the Engine type, which coordinates one
// crawl run: it asks the Frontier for an ordered batch of URLs, fetches
// each one with the Fetcher, extracts SEO fields and links with the
// Extractor, classifies issues with the Classifier, and hands the
// complete result to the Store as a single atomic update.
//
// Design decision: We implement our own crawler rather than using a
// third-party crawling framework because:
//  1. The frontier lives in a database, not in memory - crawls must be
//     resumable across process restarts
//  2. We need exact control over selection order and retry backoff
//  3. The crawl is deliberately sequential; a concurrent framework
//     buys nothing and costs determinism
//
// # Components
//
//   - Engine: coordinates one crawl run end to end
//   - Frontier: selects which URLs a batch should process
//   - RetryPolicy: computes exponential backoff for failed URLs
//   - Fetcher: performs single-page HTTP fetches and classifies outcomes
//   - Extractor: pulls SEO fields and same-origin links out of HTML
//   - Classifier: evaluates extracted fields against the configured rules
//
// # Politeness
//
// The crawler is designed to be polite:
//   - Sequential fetching, one request at a time
//   - Configurable delay between requests
//   - Timeouts prevent hanging on slow servers
//   - Body size limits prevent memory exhaustion on large pages
//
// # Usage
//
//	engine, err := crawler.NewEngine(cfg, store)
//	result, err := engine.Run(ctx, crawler.RunOptions{})
package crawler
