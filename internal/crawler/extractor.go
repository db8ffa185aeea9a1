package crawler

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/gobwas/glob"
	"golang.org/x/net/html"

	"github.com/seoscan/seoscan/internal/model"
)

// Extractor pulls SEO-relevant fields and same-origin links out of HTML.
//
// Design decision: We use golang.org/x/net/html for parsing rather than
// regex because:
//  1. It correctly handles malformed HTML common on the web
//  2. Provides a proper DOM-like structure
//  3. More maintainable than complex regex patterns
//  4. Standard library extension, well-maintained
type Extractor struct {
	// base is the crawl origin. Discovered links must share its scheme
	// and host to be kept.
	base *url.URL

	// excludes are compiled path patterns; matching links are dropped
	// at discovery time.
	excludes []glob.Glob
}

// NewExtractor creates an extractor bound to the crawl origin.
// Exclude patterns use glob syntax and match against URL paths
// (e.g. "/admin/*", "*.pdf").
func NewExtractor(baseURL string, excludePatterns []string) (*Extractor, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	excludes := make([]glob.Glob, 0, len(excludePatterns))
	for _, pattern := range excludePatterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		excludes = append(excludes, g)
	}

	return &Extractor{base: base, excludes: excludes}, nil
}

// emptyFields returns a snapshot with initialized (not nil) slices, for
// pages that yield nothing: non-HTML responses and unparseable bodies.
func emptyFields() *model.SEOFields {
	return &model.SEOFields{
		H1Tags: make([]string, 0),
		H2Tags: make([]string, 0),
	}
}

// Extract parses HTML and returns the SEO snapshot plus the normalized
// same-origin links found on the page, deduplicated in document order.
//
// pageURL is the final URL of the page after redirects; relative links
// resolve against it, not against the crawl origin.
//
// Design decision: We collect fields and links in a single parsing
// pass because:
//  1. Parsing is the expensive part; one pass halves the work
//  2. Related data can be collected together
//  3. Caller can choose what to use
func (e *Extractor) Extract(content io.Reader, pageURL string) (*model.SEOFields, []string, error) {
	page, err := url.Parse(pageURL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid page url: %w", err)
	}

	doc, err := html.Parse(content)
	if err != nil {
		return nil, nil, err
	}

	fields := emptyFields()
	seen := make(map[string]bool)
	links := make([]string, 0)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			e.processElement(n, page, fields, seen, &links)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return fields, links, nil
}

// processElement handles one HTML element node.
func (e *Extractor) processElement(n *html.Node, page *url.URL, fields *model.SEOFields, seen map[string]bool, links *[]string) {
	switch n.Data {
	case "title":
		// Only the first title counts
		if fields.Title == "" {
			fields.Title = nodeText(n)
		}

	case "meta":
		e.processMeta(n, fields)

	case "h1":
		// Empty headings are kept so the classifier can flag them
		fields.H1Tags = append(fields.H1Tags, nodeText(n))

	case "h2":
		fields.H2Tags = append(fields.H2Tags, nodeText(n))

	case "link":
		if strings.EqualFold(getAttr(n, "rel"), "canonical") && fields.CanonicalURL == "" {
			if href := strings.TrimSpace(getAttr(n, "href")); href != "" {
				if resolved, err := url.Parse(href); err == nil {
					fields.CanonicalURL = page.ResolveReference(resolved).String()
				}
			}
		}

	case "a":
		if link, ok := e.resolveLink(n, page); ok && !seen[link] {
			seen[link] = true
			*links = append(*links, link)
		}
	}
}

// processMeta extracts description, robots, and Open Graph metadata.
func (e *Extractor) processMeta(n *html.Node, fields *model.SEOFields) {
	content := getAttr(n, "content")
	if content == "" {
		return
	}

	switch {
	case strings.EqualFold(getAttr(n, "name"), "description"):
		if fields.MetaDescription == "" {
			fields.MetaDescription = strings.TrimSpace(content)
		}
	case strings.EqualFold(getAttr(n, "name"), "robots"):
		if fields.RobotsDirectives == "" {
			fields.RobotsDirectives = strings.TrimSpace(content)
		}
	case strings.EqualFold(getAttr(n, "property"), "og:title"):
		if fields.OGTitle == "" {
			fields.OGTitle = strings.TrimSpace(content)
		}
	case strings.EqualFold(getAttr(n, "property"), "og:description"):
		if fields.OGDescription == "" {
			fields.OGDescription = strings.TrimSpace(content)
		}
	case strings.EqualFold(getAttr(n, "property"), "og:image"):
		if fields.OGImage == "" {
			fields.OGImage = strings.TrimSpace(content)
		}
	}
}

// resolveLink turns an anchor element into a normalized same-origin
// link, or reports false if the link should be dropped.
func (e *Extractor) resolveLink(n *html.Node, page *url.URL) (string, bool) {
	href := strings.TrimSpace(getAttr(n, "href"))
	// Fragment-only links never leave the page
	if href == "" || strings.HasPrefix(href, "#") {
		return "", false
	}

	// Non-navigational schemes
	if strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:") {
		return "", false
	}

	u, err := url.Parse(href)
	if err != nil {
		return "", false
	}

	resolved := page.ResolveReference(u)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return "", false
	}

	// The crawl never leaves the configured origin
	if !sameOrigin(e.base, resolved) {
		return "", false
	}

	normalize(resolved)
	if e.excluded(resolved.Path) {
		return "", false
	}

	return resolved.String(), true
}

// excluded reports whether a URL path matches any exclude pattern.
func (e *Extractor) excluded(path string) bool {
	for _, g := range e.excludes {
		if g.Match(path) {
			return true
		}
	}
	return false
}

// nodeText collects the text content of a node's subtree with
// whitespace collapsed, so "<h1> Hello\n  World </h1>" yields
// "Hello World".
func nodeText(n *html.Node) string {
	var b strings.Builder

	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)

	return strings.Join(strings.Fields(b.String()), " ")
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
