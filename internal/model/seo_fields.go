package model

// SEOFields holds the on-page signals extracted from one crawled
// document. Exactly one row exists per URL record and it is overwritten
// on every successful recrawl: latest wins, no history.
type SEOFields struct {
	// URLID references the owning URL record. Zero until persisted.
	URLID int64 `json:"-"`

	// Title is the text of the first <title> element, whitespace-collapsed.
	// Empty if the document has no title.
	Title string `json:"title,omitempty"`

	// MetaDescription is the content of <meta name="description">.
	MetaDescription string `json:"meta_description,omitempty"`

	// H1Tags lists the text of every <h1>, in document order.
	// Empty headings are kept as empty strings so the classifier can
	// flag them.
	H1Tags []string `json:"h1_tags,omitempty"`

	// H2Tags lists the text of every <h2>, in document order.
	H2Tags []string `json:"h2_tags,omitempty"`

	// CanonicalURL is the resolved target of <link rel="canonical">,
	// empty when the page declares none.
	CanonicalURL string `json:"canonical_url,omitempty"`

	// RobotsDirectives is the raw content of <meta name="robots">,
	// e.g. "noindex, nofollow". Recorded for reporting; seoscan does
	// not act on it.
	RobotsDirectives string `json:"robots_directives,omitempty"`

	// Open Graph fields. Extracted for completeness of the stored
	// snapshot; no classification rules reference them yet.
	OGTitle       string `json:"og_title,omitempty"`
	OGDescription string `json:"og_description,omitempty"`
	OGImage       string `json:"og_image,omitempty"`
}

// H1Count returns the number of H1 headings on the page.
func (f *SEOFields) H1Count() int {
	return len(f.H1Tags)
}

// EmptyH1Count returns how many H1 headings have no text.
func (f *SEOFields) EmptyH1Count() int {
	count := 0
	for _, tag := range f.H1Tags {
		if tag == "" {
			count++
		}
	}
	return count
}
