package model

import "time"

// CrawlReport is the aggregated view of a crawl database that the
// report writers render. It joins URL status totals with the per-page
// issue lists so writers never query storage themselves.
//
// Design decision: We build one aggregate rather than streaming rows to
// the writers because the report is bounded by the crawl size (tens to
// thousands of pages), and an in-memory aggregate lets every writer
// share the same severity counting logic.
type CrawlReport struct {
	// BaseURL is the configured site base URL the crawl ran against.
	BaseURL string `json:"base_url"`

	// GeneratedAt is when this report was assembled.
	GeneratedAt time.Time `json:"generated_at"`

	// Status totals over all URL records.
	TotalURLs     int `json:"total_urls"`
	CrawledCount  int `json:"crawled_count"`
	ErrorCount    int `json:"error_count"`
	NewCount      int `json:"new_count"`
	TerminalCount int `json:"terminal_count"`

	// Issue totals by severity, across all pages.
	CriticalCount     int `json:"critical_count"`
	MajorCount        int `json:"major_count"`
	MinorCount        int `json:"minor_count"`
	UnclassifiedCount int `json:"unclassified_count"`

	// Pages lists every crawled page that has at least one issue.
	Pages []PageIssues `json:"pages,omitempty"`
}

// PageIssues groups the issues found on a single page together with
// enough page context to render a useful report line.
type PageIssues struct {
	// URL is the normalized page URL.
	URL string `json:"url"`

	// Title is the extracted page title, empty if the page has none.
	Title string `json:"title,omitempty"`

	// HTTPStatus is the status code of the last successful fetch.
	HTTPStatus int `json:"http_status,omitempty"`

	// LastCrawled is when the page was last fetched.
	LastCrawled time.Time `json:"last_crawled,omitempty"`

	// Issues holds the classified issues in classification order.
	Issues []Issue `json:"issues"`
}

// NewCrawlReport creates an empty report for the given base URL.
func NewCrawlReport(baseURL string) *CrawlReport {
	return &CrawlReport{
		BaseURL:     baseURL,
		GeneratedAt: time.Now(),
		Pages:       make([]PageIssues, 0),
	}
}

// AddPage appends a page's issues to the report and updates the
// severity totals. Pages without issues should not be added.
func (r *CrawlReport) AddPage(page PageIssues) {
	r.Pages = append(r.Pages, page)
	for _, issue := range page.Issues {
		switch issue.Severity {
		case SeverityCritical:
			r.CriticalCount++
		case SeverityMajor:
			r.MajorCount++
		case SeverityMinor:
			r.MinorCount++
		case SeverityUnclassified:
			r.UnclassifiedCount++
		}
	}
}

// TotalIssues returns the number of issues across all pages.
func (r *CrawlReport) TotalIssues() int {
	return r.CriticalCount + r.MajorCount + r.MinorCount + r.UnclassifiedCount
}

// HasIssues reports whether any page has at least one issue.
func (r *CrawlReport) HasIssues() bool {
	return r.TotalIssues() > 0
}

// PagesWithIssues returns how many pages carry at least one issue.
func (r *CrawlReport) PagesWithIssues() int {
	return len(r.Pages)
}

// CountBySeverity returns the issue count for one severity level.
func (r *CrawlReport) CountBySeverity(severity Severity) int {
	switch severity {
	case SeverityCritical:
		return r.CriticalCount
	case SeverityMajor:
		return r.MajorCount
	case SeverityMinor:
		return r.MinorCount
	case SeverityUnclassified:
		return r.UnclassifiedCount
	default:
		return 0
	}
}

// IssuesBySeverity returns all issues of the given severity, each
// paired with the URL of the page it was found on, preserving page
// order then classification order.
func (r *CrawlReport) IssuesBySeverity(severity Severity) []PageIssue {
	var out []PageIssue
	for _, page := range r.Pages {
		for _, issue := range page.Issues {
			if issue.Severity == severity {
				out = append(out, PageIssue{URL: page.URL, Issue: issue})
			}
		}
	}
	return out
}

// PageIssue is one issue annotated with the page it belongs to.
type PageIssue struct {
	URL   string `json:"url"`
	Issue Issue  `json:"issue"`
}
