package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/seoscan/seoscan/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting and severity grouping.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether severity sections with no issues are shown.
	showEmpty bool

	// verbose enables remediation advice in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// WithVerbose enables verbose output with remediation advice.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		showEmpty:  false,
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the full report in human-readable format.
func (w *SimpleWriter) Write(report *model.CrawlReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeSummary(&sb, report)
	w.writeIssues(&sb, report)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with crawl information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.CrawlReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                          SEOSCAN REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Site:           %s\n", report.BaseURL))
	sb.WriteString(fmt.Sprintf("Generated:      %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Known URLs:     %d\n", report.TotalURLs))
	sb.WriteString(fmt.Sprintf("Crawled:        %d\n", report.CrawledCount))
	sb.WriteString(fmt.Sprintf("Pending:        %d\n", report.NewCount))
	sb.WriteString(fmt.Sprintf("Failing:        %d", report.ErrorCount))
	if report.TerminalCount > 0 {
		sb.WriteString(fmt.Sprintf(" (%d gave up)", report.TerminalCount))
	}
	sb.WriteString("\n\n")
}

// writeSummary writes the severity summary section.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, report *model.CrawlReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SEVERITY SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  CRITICAL:     %d\n", report.CriticalCount))
	sb.WriteString(fmt.Sprintf("  MAJOR:        %d\n", report.MajorCount))
	sb.WriteString(fmt.Sprintf("  MINOR:        %d\n", report.MinorCount))
	if report.UnclassifiedCount > 0 || w.showEmpty {
		sb.WriteString(fmt.Sprintf("  UNCLASSIFIED: %d\n", report.UnclassifiedCount))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("  TOTAL:        %d issues on %d pages\n",
		report.TotalIssues(), report.PagesWithIssues()))
	sb.WriteString("\n")
}

// writeIssues writes all issues grouped by severity.
func (w *SimpleWriter) writeIssues(sb *strings.Builder, report *model.CrawlReport) {
	if !report.HasIssues() && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("ISSUES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, severity := range model.Severities() {
		issues := report.IssuesBySeverity(severity)
		if len(issues) == 0 && !w.showEmpty {
			continue
		}

		w.writeIssuesForSeverity(sb, severity, issues)
	}
}

// writeIssuesForSeverity writes issues of a specific severity level.
func (w *SimpleWriter) writeIssuesForSeverity(sb *strings.Builder, severity model.Severity, issues []model.PageIssue) {
	indicator := w.getSeverityIndicator(severity)
	sb.WriteString(fmt.Sprintf("[%s] %s\n", indicator, severity.String()))

	if len(issues) == 0 {
		sb.WriteString("  No issues\n\n")
		return
	}

	for _, pi := range issues {
		sb.WriteString(fmt.Sprintf("  * %s\n", pi.Issue.Type.Label()))
		sb.WriteString(fmt.Sprintf("    Page: %s\n", pi.URL))
		if pi.Issue.Details != "" {
			sb.WriteString(fmt.Sprintf("    Details: %s\n", pi.Issue.Details))
		}
		if w.verbose {
			info := model.GetIssueInfo(pi.Issue.Type)
			if info.Recommendation != "" {
				sb.WriteString(fmt.Sprintf("    Recommendation: %s\n", info.Recommendation))
			}
		}
	}
	sb.WriteString("\n")
}

// getSeverityIndicator returns a visual indicator for the severity level.
func (w *SimpleWriter) getSeverityIndicator(severity model.Severity) string {
	switch severity {
	case model.SeverityCritical:
		return "!!!"
	case model.SeverityMajor:
		return "!!"
	case model.SeverityMinor:
		return "-"
	case model.SeverityUnclassified:
		return "?"
	default:
		return "?"
	}
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by seoscan\n")
	sb.WriteString("https://github.com/seoscan/seoscan\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
