package model

import "strings"

// Severity represents the user-facing priority of an SEO issue.
// Severity is not hardcoded per issue type: it is assigned at
// classification time from the configured severity buckets, so two
// sites can weigh the same issue type differently.
//
// Design decision: We use iota-based constants rather than string
// constants for efficiency in comparisons and sorting. The String()
// method provides human-readable output when needed.
type Severity int

const (
	// SeverityUnclassified is assigned to issue types that appear in no
	// configured severity bucket. The issue is still recorded and reported;
	// it simply has no user-assigned priority.
	SeverityUnclassified Severity = iota

	// SeverityMinor indicates cosmetic or low-impact findings.
	// Examples: a title slightly outside the recommended length range.
	SeverityMinor

	// SeverityMajor indicates findings that measurably hurt search
	// performance. Examples: missing meta description, multiple H1 tags.
	SeverityMajor

	// SeverityCritical indicates findings that should be fixed first.
	// Examples: missing title, missing H1.
	SeverityCritical
)

// String returns a human-readable representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityUnclassified:
		return "UNCLASSIFIED"
	case SeverityMinor:
		return "MINOR"
	case SeverityMajor:
		return "MAJOR"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Key returns the lowercase identifier used in configuration files and
// database rows ("critical", "major", "minor", "unclassified").
func (s Severity) Key() string {
	return strings.ToLower(s.String())
}

// ParseSeverity converts a stored or configured severity name back to a
// Severity. Matching is case-insensitive. Unknown names map to
// SeverityUnclassified so old databases never fail to load.
func ParseSeverity(name string) Severity {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "critical":
		return SeverityCritical
	case "major":
		return SeverityMajor
	case "minor":
		return SeverityMinor
	default:
		return SeverityUnclassified
	}
}

// Severities lists all severity levels from most to least urgent.
// Report writers iterate this slice so sections always appear in the
// same order.
func Severities() []Severity {
	return []Severity{SeverityCritical, SeverityMajor, SeverityMinor, SeverityUnclassified}
}
