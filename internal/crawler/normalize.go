package crawler

import (
	"net/url"
	"strings"
)

// NormalizeURL canonicalizes a URL for storage and deduplication.
//
// Design decision: We normalize URLs because:
//  1. Same page can have different URL representations
//  2. Fragment (#anchor) doesn't change content
//  3. Trailing slashes on non-root paths are almost never significant,
//     and treating /about and /about/ as distinct doubles the crawl
//
// Query strings are kept: on real sites they routinely select
// different content.
func NormalizeURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	normalize(u)
	return u.String(), nil
}

// normalize applies the canonicalization rules in place.
func normalize(u *url.URL) {
	u.Fragment = ""
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)

	// Empty path and "/" are the same page
	if u.Path == "" {
		u.Path = "/"
	} else if u.Path != "/" && strings.HasSuffix(u.Path, "/") {
		u.Path = strings.TrimSuffix(u.Path, "/")
	}
}

// sameOrigin reports whether two URLs share a scheme and host.
// The crawl never leaves the origin of the configured base URL.
func sameOrigin(a, b *url.URL) bool {
	return strings.EqualFold(a.Scheme, b.Scheme) && strings.EqualFold(a.Host, b.Host)
}
