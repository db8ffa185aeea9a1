// Package database provides SQLite-based storage for seoscan.
//
// This package implements the CrawlDB, which stores:
//   - URL records forming the persistent crawl frontier
//   - Extracted SEO fields for each crawled page
//   - Classified issues from the most recent crawl of each page
//
// Design decision: We use SQLite (via modernc.org/sqlite) instead of other
// databases because:
// 1. No external dependencies - the database is a single file
// 2. CGO-free implementation allows easy cross-compilation
// 3. Sufficient performance for our use case
// 4. WAL mode provides good concurrent read performance
//
// The database is the only durable state seoscan keeps. Every other
// component can be restarted or recomputed from it, which is what makes
// interrupted crawls resumable.
package database
