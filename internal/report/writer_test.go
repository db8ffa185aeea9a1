package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/seoscan/seoscan/internal/model"
)

// createTestReport creates a report with sample data for testing.
func createTestReport() *model.CrawlReport {
	report := model.NewCrawlReport("https://example.com")
	report.TotalURLs = 12
	report.CrawledCount = 9
	report.NewCount = 1
	report.ErrorCount = 2
	report.TerminalCount = 1

	report.AddPage(model.PageIssues{
		URL:        "https://example.com/",
		Title:      "Acme Widgets",
		HTTPStatus: 200,
		Issues: []model.Issue{
			{
				Type:         model.IssueMissingMetaDescription,
				Details:      "page has no meta description",
				Severity:     model.SeverityMajor,
				SeverityText: "major",
			},
			{
				Type:         model.IssueShortTitle,
				Details:      "title is 12 characters, minimum is 30",
				Severity:     model.SeverityMinor,
				SeverityText: "minor",
			},
		},
	})
	report.AddPage(model.PageIssues{
		URL:        "https://example.com/pricing",
		HTTPStatus: 200,
		Issues: []model.Issue{
			{
				Type:         model.IssueMissingTitle,
				Details:      "page has no title",
				Severity:     model.SeverityCritical,
				SeverityText: "critical",
			},
		},
	})

	return report
}

// TestSimpleWriter tests the human-readable report writer.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes report header", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "SEOSCAN REPORT") {
			t.Error("expected output to contain header")
		}
		if !strings.Contains(output, "https://example.com") {
			t.Error("expected output to contain the site URL")
		}
	})

	t.Run("writes severity summary", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "SEVERITY SUMMARY") {
			t.Error("expected output to contain severity summary")
		}
		if !strings.Contains(output, "CRITICAL:") {
			t.Error("expected output to contain CRITICAL count")
		}
		if !strings.Contains(output, "3 issues on 2 pages") {
			t.Error("expected output to contain the issue total")
		}
	})

	t.Run("groups issues by severity", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "Missing Title") {
			t.Error("expected output to contain the missing title issue")
		}
		if !strings.Contains(output, "https://example.com/pricing") {
			t.Error("expected output to contain the affected page URL")
		}
		if !strings.Contains(output, "page has no title") {
			t.Error("expected output to contain issue details")
		}

		// Critical section must come before the minor section
		critical := strings.Index(output, "[!!!] CRITICAL")
		minor := strings.Index(output, "[-] MINOR")
		if critical == -1 || minor == -1 || critical > minor {
			t.Errorf("expected critical issues before minor issues (critical at %d, minor at %d)", critical, minor)
		}
	})

	t.Run("verbose mode includes recommendations", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithVerbose(true))

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "Recommendation:") {
			t.Error("expected verbose output to contain recommendations")
		}
	})

	t.Run("clean report omits the issues section", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.Write(model.NewCrawlReport("https://example.com")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if strings.Contains(buf.String(), "ISSUES") {
			t.Error("expected no issues section for a clean report")
		}
	})

	t.Run("show empty renders empty sections", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithShowEmpty(true))

		if _, err := w.Write(model.NewCrawlReport("https://example.com")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "ISSUES") {
			t.Error("expected the issues section to be rendered")
		}
		if !strings.Contains(output, "No issues") {
			t.Error("expected empty severity sections to be marked")
		}
	})
}

// TestJSONWriter tests the machine-readable report writer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("produces valid JSON", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded model.CrawlReport
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if decoded.BaseURL != "https://example.com" {
			t.Errorf("expected base URL in JSON, got %q", decoded.BaseURL)
		}
		if decoded.CriticalCount != 1 {
			t.Errorf("expected 1 critical issue in JSON, got %d", decoded.CriticalCount)
		}
		if len(decoded.Pages) != 2 {
			t.Errorf("expected 2 pages in JSON, got %d", len(decoded.Pages))
		}
	})

	t.Run("compact by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Compact output is a single line plus the trailing newline
		if got := strings.Count(buf.String(), "\n"); got != 1 {
			t.Errorf("expected single-line output, got %d newlines", got)
		}
	})

	t.Run("pretty print indents", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithPrettyPrint())

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "\n  \"base_url\"") {
			t.Error("expected indented JSON output")
		}
	})

	t.Run("full writer wraps with version metadata", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewFullJSONWriter(&buf, "1.2.3")

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded JSONReport
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if decoded.Version != "1.2.3" {
			t.Errorf("expected version 1.2.3, got %q", decoded.Version)
		}
		if decoded.Report == nil || decoded.Report.BaseURL != "https://example.com" {
			t.Error("expected the wrapped report to carry the crawl data")
		}
	})
}

// TestMarkdownWriter tests the Markdown report writer.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("renders report sections", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "# SEO Audit Report") {
			t.Error("expected the report title")
		}
		if !strings.Contains(output, "Severity Summary") {
			t.Error("expected the severity summary section")
		}
		if !strings.Contains(output, "Missing Title") {
			t.Error("expected the issue label")
		}
		if !strings.Contains(output, "https://example.com/pricing") {
			t.Error("expected the affected page URL")
		}
	})

	t.Run("includes severity chart when issues exist", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "mermaid") {
			t.Error("expected a mermaid severity chart")
		}
	})

	t.Run("clean report shows a tip instead of issues", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.Write(model.NewCrawlReport("https://example.com")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "No SEO issues detected") {
			t.Error("expected the clean-report tip")
		}
		if strings.Contains(output, "mermaid") {
			t.Error("expected no chart for a clean report")
		}
	})
}

// failingWriter always fails, for testing error propagation.
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("sink broken")
}

// TestMultiWriter tests fan-out to multiple report writers.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to all writers", func(t *testing.T) {
		t.Parallel()

		var text, jsonBuf bytes.Buffer
		multi := NewMultiWriter(
			NewSimpleWriter(&text),
			NewJSONWriter(&jsonBuf),
		)

		total, err := multi.Write(createTestReport())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text.Len() == 0 || jsonBuf.Len() == 0 {
			t.Error("expected both writers to receive output")
		}
		if total != text.Len()+jsonBuf.Len() {
			t.Errorf("expected total %d, got %d", text.Len()+jsonBuf.Len(), total)
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		multi := NewMultiWriter(
			NewSimpleWriter(failingWriter{}),
			NewSimpleWriter(&buf),
		)

		if _, err := multi.Write(createTestReport()); err == nil {
			t.Fatal("expected the sink error to propagate")
		}
		if buf.Len() != 0 {
			t.Error("expected later writers to be skipped after an error")
		}
	})
}
