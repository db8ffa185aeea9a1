package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/seoscan/seoscan/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(report *model.CrawlReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writeIssues(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with crawl information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.CrawlReport) {
	md.H1("SEO Audit Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Site", "`" + report.BaseURL + "`"},
			{"Generated", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Known URLs", strconv.Itoa(report.TotalURLs)},
			{"Crawled", strconv.Itoa(report.CrawledCount)},
			{"Pending", strconv.Itoa(report.NewCount)},
			{"Failing", strconv.Itoa(report.ErrorCount)},
			{"Given Up", strconv.Itoa(report.TerminalCount)},
		},
	})
	md.PlainText("")
}

// writeSummary writes the severity summary section.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.CrawlReport) {
	md.H2("Severity Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Severity", "Count"},
		Rows: [][]string{
			{"🔴 Critical", strconv.Itoa(report.CriticalCount)},
			{"🟠 Major", strconv.Itoa(report.MajorCount)},
			{"🟡 Minor", strconv.Itoa(report.MinorCount)},
			{"⚪ Unclassified", strconv.Itoa(report.UnclassifiedCount)},
			{"**Total**", "**" + strconv.Itoa(report.TotalIssues()) + "**"},
		},
	})
	md.PlainText("")

	// Add pie chart if there are issues
	if report.HasIssues() {
		w.writePieChart(md, report)
	}

	// Add alert based on severity
	w.writeAlert(md, report)
}

// writePieChart writes a mermaid pie chart for severity distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.CrawlReport) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Issue Severity Distribution"),
		piechart.WithShowData(true),
	)

	if report.CriticalCount > 0 {
		chart.LabelAndIntValue("Critical", uint64(report.CriticalCount))
	}
	if report.MajorCount > 0 {
		chart.LabelAndIntValue("Major", uint64(report.MajorCount))
	}
	if report.MinorCount > 0 {
		chart.LabelAndIntValue("Minor", uint64(report.MinorCount))
	}
	if report.UnclassifiedCount > 0 {
		chart.LabelAndIntValue("Unclassified", uint64(report.UnclassifiedCount))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on severity counts.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.CrawlReport) {
	switch {
	case report.CriticalCount > 0:
		md.Cautionf(
			"Critical SEO issues detected! %d critical issue(s) should be fixed first.",
			report.CriticalCount,
		)
	case report.MajorCount > 0:
		md.Warningf(
			"Major SEO issues detected. %d issue(s) measurably hurt search performance.",
			report.MajorCount,
		)
	case report.TotalIssues() > 0:
		md.Note("Only minor issues detected.")
	default:
		md.Tip("No SEO issues detected on the crawled pages.")
	}
	md.PlainText("")
}

// writeIssues writes all issues grouped by severity.
func (w *MarkdownWriter) writeIssues(md *markdown.Markdown, report *model.CrawlReport) {
	md.H2("Issues")
	md.PlainText("")

	if !report.HasIssues() {
		md.PlainText("No issues found on the crawled pages.")
		md.PlainText("")
		return
	}

	severities := []struct {
		level  model.Severity
		header string
	}{
		{model.SeverityCritical, "### 🔴 Critical"},
		{model.SeverityMajor, "### 🟠 Major"},
		{model.SeverityMinor, "### 🟡 Minor"},
		{model.SeverityUnclassified, "### ⚪ Unclassified"},
	}

	for _, sev := range severities {
		issues := report.IssuesBySeverity(sev.level)
		if len(issues) == 0 {
			continue
		}

		md.PlainText(sev.header)
		md.PlainText("")
		w.writeIssuesTable(md, issues)
	}
}

// writeIssuesTable writes a table of issues with remediation details.
func (w *MarkdownWriter) writeIssuesTable(md *markdown.Markdown, issues []model.PageIssue) {
	headers := []string{"Page", "Issue", "Details"}

	rows := make([][]string, len(issues))
	seen := make(map[model.IssueType]bool)
	for i, pi := range issues {
		details := pi.Issue.Details
		if details == "" {
			details = "-"
		}

		rows[i] = []string{
			truncateString(pi.URL, 60),
			pi.Issue.Type.Label(),
			truncateString(details, 60),
		}
		seen[pi.Issue.Type] = true
	}

	md.Table(markdown.TableSet{
		Header: headers,
		Rows:   rows,
	})
	md.PlainText("")

	// One remediation block per issue type, not per occurrence
	for _, pi := range issues {
		if !seen[pi.Issue.Type] {
			continue
		}
		seen[pi.Issue.Type] = false

		info := model.GetIssueInfo(pi.Issue.Type)
		md.Details(pi.Issue.Type.Label(), info.Impact+" "+info.Recommendation)
	}
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [seoscan](https://github.com/seoscan/seoscan)*")
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
