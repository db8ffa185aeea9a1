package model

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IssueType identifies a kind of SEO problem. The set of types is a
// closed enumeration: new checks add a constant here, never free-text
// keys, so downstream consumers can switch exhaustively.
type IssueType string

// All issue types emitted by the classifier, in rule-evaluation order.
const (
	IssueMissingTitle           IssueType = "missing_title"
	IssueShortTitle             IssueType = "short_title"
	IssueLongTitle              IssueType = "long_title"
	IssueMissingMetaDescription IssueType = "missing_meta_description"
	IssueShortMetaDescription   IssueType = "short_meta_description"
	IssueLongMetaDescription    IssueType = "long_meta_description"
	IssueMissingH1              IssueType = "missing_h1"
	IssueMultipleH1             IssueType = "multiple_h1"
	IssueEmptyHeading           IssueType = "empty_heading"
	IssueMissingCanonical       IssueType = "missing_canonical"
)

// Label returns a human-readable name for the issue type, e.g.
// "missing_meta_description" becomes "Missing Meta Description".
func (t IssueType) Label() string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(t), "_", " "))
}

// Issue is one classified SEO problem on one page. Issues are
// regenerated in full on every successful crawl of a URL, so the stored
// set always reflects the most recent classification.
type Issue struct {
	// ID is the database row ID. Zero until persisted.
	ID int64 `json:"-"`

	// URLID references the owning URL record. Zero until persisted.
	URLID int64 `json:"-"`

	// Type is the issue type code.
	Type IssueType `json:"type"`

	// Details is a free-text explanation with the measured values,
	// e.g. "title is 12 characters, minimum is 30".
	Details string `json:"details"`

	// Severity is looked up in the configured severity buckets when the
	// issue is classified, and persisted so later report runs reflect
	// the configuration in force at crawl time.
	Severity Severity `json:"severity"`

	// SeverityText is the string form of Severity for serialized output.
	SeverityText string `json:"severity_text"`
}

// IssueInfo contains static metadata about an issue type: why it
// matters and what to do about it. Severity deliberately does not live
// here because it is configuration-driven.
//
// Design decision: We use a map rather than embedding the texts in each
// issue because:
// 1. It provides a single source of truth for remediation advice
// 2. Report writers can look up advice without carrying it in every row
// 3. It makes it easy to generate documentation for all checks
var issueInfoMapping = map[IssueType]IssueInfo{
	IssueMissingTitle: {
		Impact:         "Pages without a title tag are displayed with a URL or arbitrary text in search results, hurting click-through rates.",
		Recommendation: "Add a unique, descriptive <title> tag to the page.",
	},
	IssueShortTitle: {
		Impact:         "Very short titles waste the most visible line of a search snippet and rarely describe the page well.",
		Recommendation: "Expand the title with descriptive keywords until it reaches the configured minimum length.",
	},
	IssueLongTitle: {
		Impact:         "Titles beyond the configured maximum are truncated in search results, cutting off trailing keywords.",
		Recommendation: "Shorten the title; put the most important keywords first.",
	},
	IssueMissingMetaDescription: {
		Impact:         "Search engines generate an arbitrary snippet when the meta description is missing, often with poor wording.",
		Recommendation: "Add a meta description that summarizes the page content.",
	},
	IssueShortMetaDescription: {
		Impact:         "Short descriptions underuse the snippet space and look thin next to competing results.",
		Recommendation: "Extend the meta description until it reaches the configured minimum length.",
	},
	IssueLongMetaDescription: {
		Impact:         "Descriptions beyond the configured maximum are truncated mid-sentence in search results.",
		Recommendation: "Trim the meta description; keep the core message inside the configured maximum length.",
	},
	IssueMissingH1: {
		Impact:         "Without an H1 the main topic of the page is ambiguous to crawlers and screen readers.",
		Recommendation: "Add exactly one H1 heading describing the page topic.",
	},
	IssueMultipleH1: {
		Impact:         "Multiple H1 tags dilute the topical focus of the page.",
		Recommendation: "Keep a single H1 and demote the others to H2.",
	},
	IssueEmptyHeading: {
		Impact:         "Empty heading tags carry no topical signal and confuse assistive technology.",
		Recommendation: "Remove empty heading tags or fill in their text.",
	},
	IssueMissingCanonical: {
		Impact:         "Without a canonical link, duplicate URLs for the same content compete against each other in rankings.",
		Recommendation: "Add a <link rel=\"canonical\"> pointing at the preferred URL of the page.",
	},
}

// IssueInfo describes the impact and remediation for an issue type.
type IssueInfo struct {
	Impact         string
	Recommendation string
}

// GetIssueInfo returns the metadata for an issue type. Unknown types
// get a generic fallback rather than an error so report rendering never
// fails on data written by a newer version.
func GetIssueInfo(issueType IssueType) IssueInfo {
	if info, ok := issueInfoMapping[issueType]; ok {
		return info
	}
	return IssueInfo{
		Impact:         "Unknown issue type. Review manually.",
		Recommendation: "Investigate the finding and assess impact.",
	}
}
