package model

// CrawlUpdate is the complete result of processing one URL, handed to
// the storage layer as a single unit. The storage layer persists every
// part inside one transaction so a crash loses at most the in-progress
// URL, never a half-written record.
type CrawlUpdate struct {
	// Record carries the already-applied state transition: status,
	// http_status, retry_count, and the relevant timestamps are set by
	// the crawl loop before the update is handed over.
	Record *URLRecord

	// Fields is the extracted SEO snapshot. Nil on failed fetches.
	Fields *SEOFields

	// Issues is the full classified issue set for the page. It replaces
	// any previously stored issues for the URL. Nil on failed fetches.
	Issues []Issue

	// Discovered lists normalized same-origin URLs found on the page.
	// Each is inserted as a new record unless it already exists.
	// Nil on failed fetches.
	Discovered []string
}
