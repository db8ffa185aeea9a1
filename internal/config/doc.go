// Package config provides configuration structures and utilities for seoscan.
// It defines the crawl parameters (timeouts, retry policy, rate limiting,
// exclude patterns), the SEO rule thresholds the classifier evaluates, and
// the severity bucket mapping that assigns priorities to issue types.
package config
