// Package sitemap exports crawled URLs as sitemap files.
//
// Two formats are supported:
//   - Plain text: one URL per line, the minimal format search engines accept
//   - XML: the sitemaps.org urlset format with lastmod, changefreq and priority
//
// Only successfully crawled pages belong in a sitemap; the caller is
// responsible for that filtering. Priorities and change frequencies are
// derived from the URL path with a simple heuristic: the site root
// changes most, section indexes like /blog change weekly, everything
// else monthly.
package sitemap
