// Package model defines the core data structures used throughout seoscan.
//
// This package contains the following main types:
//   - URLRecord: A discovered URL and its crawl state machine bookkeeping
//   - SEOFields: On-page SEO signals extracted from a crawled document
//   - Issue: A classified SEO problem with type, details, and severity
//   - CrawlReport: The aggregated report consumed by the output writers
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (crawler, database, report, sitemap) need to
// use these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// database storage.
package model
