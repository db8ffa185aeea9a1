package crawler

import (
	"reflect"
	"strings"
	"testing"
)

// TestNewExtractor tests extractor construction and exclude pattern
// compilation.
func TestNewExtractor(t *testing.T) {
	t.Parallel()

	t.Run("accepts valid patterns", func(t *testing.T) {
		t.Parallel()

		extractor, err := NewExtractor("https://example.com", []string{"/admin/*", "*.pdf"})
		if err != nil {
			t.Fatalf("failed to create extractor: %v", err)
		}
		if extractor == nil {
			t.Fatal("expected non-nil extractor")
		}
	})

	t.Run("rejects invalid pattern", func(t *testing.T) {
		t.Parallel()

		if _, err := NewExtractor("https://example.com", []string{"[unclosed"}); err == nil {
			t.Error("expected error for invalid glob pattern")
		}
	})
}

// TestExtractorFields tests extraction of the on-page SEO signals.
func TestExtractorFields(t *testing.T) {
	t.Parallel()

	extractor, err := NewExtractor("https://example.com", nil)
	if err != nil {
		t.Fatalf("failed to create extractor: %v", err)
	}

	t.Run("extracts title with collapsed whitespace", func(t *testing.T) {
		t.Parallel()

		html := "<html><head><title>  Widgets \n\t and   Gadgets  </title></head><body></body></html>"
		fields, _, err := extractor.Extract(strings.NewReader(html), "https://example.com/")
		if err != nil {
			t.Fatalf("failed to extract: %v", err)
		}
		if fields.Title != "Widgets and Gadgets" {
			t.Errorf("expected collapsed title, got %q", fields.Title)
		}
	})

	t.Run("first title wins", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>First</title><title>Second</title></head><body></body></html>`
		fields, _, err := extractor.Extract(strings.NewReader(html), "https://example.com/")
		if err != nil {
			t.Fatalf("failed to extract: %v", err)
		}
		if fields.Title != "First" {
			t.Errorf("expected first title, got %q", fields.Title)
		}
	})

	t.Run("extracts meta description and robots", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
			<meta name="Description" content="A fine page about widgets.">
			<meta name="robots" content="noindex, nofollow">
		</head><body></body></html>`

		fields, _, err := extractor.Extract(strings.NewReader(html), "https://example.com/")
		if err != nil {
			t.Fatalf("failed to extract: %v", err)
		}
		if fields.MetaDescription != "A fine page about widgets." {
			t.Errorf("expected meta description, got %q", fields.MetaDescription)
		}
		if fields.RobotsDirectives != "noindex, nofollow" {
			t.Errorf("expected robots directives, got %q", fields.RobotsDirectives)
		}
	})

	t.Run("extracts Open Graph tags", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
			<meta property="og:title" content="OG Widgets">
			<meta property="og:description" content="Widgets for sharing.">
			<meta property="og:image" content="https://example.com/og.png">
		</head><body></body></html>`

		fields, _, err := extractor.Extract(strings.NewReader(html), "https://example.com/")
		if err != nil {
			t.Fatalf("failed to extract: %v", err)
		}
		if fields.OGTitle != "OG Widgets" {
			t.Errorf("expected og:title, got %q", fields.OGTitle)
		}
		if fields.OGDescription != "Widgets for sharing." {
			t.Errorf("expected og:description, got %q", fields.OGDescription)
		}
		if fields.OGImage != "https://example.com/og.png" {
			t.Errorf("expected og:image, got %q", fields.OGImage)
		}
	})

	t.Run("keeps headings in document order with empties", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<h1>Main Heading</h1>
			<h2>Section One</h2>
			<h1></h1>
			<h2>Section Two</h2>
		</body></html>`

		fields, _, err := extractor.Extract(strings.NewReader(html), "https://example.com/")
		if err != nil {
			t.Fatalf("failed to extract: %v", err)
		}

		wantH1 := []string{"Main Heading", ""}
		if !reflect.DeepEqual(fields.H1Tags, wantH1) {
			t.Errorf("expected H1 tags %v, got %v", wantH1, fields.H1Tags)
		}
		wantH2 := []string{"Section One", "Section Two"}
		if !reflect.DeepEqual(fields.H2Tags, wantH2) {
			t.Errorf("expected H2 tags %v, got %v", wantH2, fields.H2Tags)
		}
	})

	t.Run("page without headings yields empty slices", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>no headings here</p></body></html>`
		fields, _, err := extractor.Extract(strings.NewReader(html), "https://example.com/")
		if err != nil {
			t.Fatalf("failed to extract: %v", err)
		}
		if fields.H1Tags == nil || len(fields.H1Tags) != 0 {
			t.Errorf("expected empty non-nil H1 slice, got %v", fields.H1Tags)
		}
		if fields.H2Tags == nil || len(fields.H2Tags) != 0 {
			t.Errorf("expected empty non-nil H2 slice, got %v", fields.H2Tags)
		}
	})

	t.Run("resolves relative canonical against the page URL", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><link rel="canonical" href="/blog/post-1"></head><body></body></html>`
		fields, _, err := extractor.Extract(strings.NewReader(html), "https://example.com/blog/post-1?ref=rss")
		if err != nil {
			t.Fatalf("failed to extract: %v", err)
		}
		if fields.CanonicalURL != "https://example.com/blog/post-1" {
			t.Errorf("expected resolved canonical, got %q", fields.CanonicalURL)
		}
	})
}

// TestExtractorLinks tests same-origin link discovery.
func TestExtractorLinks(t *testing.T) {
	t.Parallel()

	t.Run("keeps same-origin links and drops the rest", func(t *testing.T) {
		t.Parallel()

		extractor, err := NewExtractor("https://example.com", nil)
		if err != nil {
			t.Fatalf("failed to create extractor: %v", err)
		}

		html := `<html><body>
			<a href="/about">About</a>
			<a href="https://example.com/pricing">Pricing</a>
			<a href="https://other.com/external">External</a>
			<a href="https://blog.example.com/post">Subdomain</a>
			<a href="mailto:hi@example.com">Mail</a>
			<a href="tel:+15551234">Call</a>
			<a href="javascript:void(0)">JS</a>
			<a href="data:text/plain,hello">Data</a>
			<a href="#top">Anchor</a>
		</body></html>`

		_, links, err := extractor.Extract(strings.NewReader(html), "https://example.com/")
		if err != nil {
			t.Fatalf("failed to extract: %v", err)
		}

		want := []string{
			"https://example.com/about",
			"https://example.com/pricing",
		}
		if !reflect.DeepEqual(links, want) {
			t.Errorf("expected links %v, got %v", want, links)
		}
	})

	t.Run("resolves relative links against the final page URL", func(t *testing.T) {
		t.Parallel()

		extractor, err := NewExtractor("https://example.com", nil)
		if err != nil {
			t.Fatalf("failed to create extractor: %v", err)
		}

		html := `<html><body><a href="part-2">Next</a></body></html>`
		_, links, err := extractor.Extract(strings.NewReader(html), "https://example.com/guides/part-1")
		if err != nil {
			t.Fatalf("failed to extract: %v", err)
		}

		want := []string{"https://example.com/guides/part-2"}
		if !reflect.DeepEqual(links, want) {
			t.Errorf("expected links %v, got %v", want, links)
		}
	})

	t.Run("normalizes and deduplicates in document order", func(t *testing.T) {
		t.Parallel()

		extractor, err := NewExtractor("https://example.com", nil)
		if err != nil {
			t.Fatalf("failed to create extractor: %v", err)
		}

		html := `<html><body>
			<a href="/b/">B</a>
			<a href="/a#intro">A</a>
			<a href="/b">B again</a>
			<a href="https://EXAMPLE.com/a">A again</a>
		</body></html>`

		_, links, err := extractor.Extract(strings.NewReader(html), "https://example.com/")
		if err != nil {
			t.Fatalf("failed to extract: %v", err)
		}

		want := []string{
			"https://example.com/b",
			"https://example.com/a",
		}
		if !reflect.DeepEqual(links, want) {
			t.Errorf("expected links %v, got %v", want, links)
		}
	})

	t.Run("exclude patterns match URL paths", func(t *testing.T) {
		t.Parallel()

		extractor, err := NewExtractor("https://example.com", []string{"/admin/*", "*.pdf"})
		if err != nil {
			t.Fatalf("failed to create extractor: %v", err)
		}

		html := `<html><body>
			<a href="/admin/users">Admin</a>
			<a href="/docs/manual.pdf">Manual</a>
			<a href="/docs/manual.html">HTML Manual</a>
		</body></html>`

		_, links, err := extractor.Extract(strings.NewReader(html), "https://example.com/")
		if err != nil {
			t.Fatalf("failed to extract: %v", err)
		}

		want := []string{"https://example.com/docs/manual.html"}
		if !reflect.DeepEqual(links, want) {
			t.Errorf("expected links %v, got %v", want, links)
		}
	})
}

// TestExtractorMalformedHTML tests that broken markup still parses
// without an error. The HTML parser is forgiving by design.
func TestExtractorMalformedHTML(t *testing.T) {
	t.Parallel()

	extractor, err := NewExtractor("https://example.com", nil)
	if err != nil {
		t.Fatalf("failed to create extractor: %v", err)
	}

	html := `<title>Broken</title><body><h1>Heading<a href="/x">link`
	fields, links, err := extractor.Extract(strings.NewReader(html), "https://example.com/")
	if err != nil {
		t.Fatalf("expected forgiving parse, got error: %v", err)
	}
	if fields.Title == "" {
		t.Error("expected a title from malformed HTML")
	}
	if len(links) != 1 {
		t.Errorf("expected 1 link, got %d: %v", len(links), links)
	}
}
