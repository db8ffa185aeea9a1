// Package main provides the entry point for the seoscan CLI.
//
// seoscan is an incremental SEO auditing crawler. It maintains a durable
// frontier of discovered URLs in a local SQLite database and crawls a
// small batch per invocation, so repeated runs work through a site a
// slice at a time.
//
// Usage:
//
//	seoscan crawl
//	seoscan report --markdown
//
// See --help for all available options.
package main

// main is the entry point for seoscan.
func main() {
	Execute()
}
