package crawler

import (
	"fmt"
	"unicode/utf8"

	"github.com/seoscan/seoscan/internal/config"
	"github.com/seoscan/seoscan/internal/model"
)

// Classifier evaluates an extracted SEO snapshot against the configured
// rules and produces the page's issue list.
//
// Classification is deterministic: the same snapshot and the same rules
// always yield the same issues in the same order (title checks, then
// meta description, then headings, then canonical). Reports and tests
// rely on that ordering.
type Classifier struct {
	rules   config.SEORules
	buckets config.SeverityBuckets
}

// NewClassifier creates a classifier from the configured rules and
// severity buckets.
func NewClassifier(rules config.SEORules, buckets config.SeverityBuckets) *Classifier {
	return &Classifier{rules: rules, buckets: buckets}
}

// Classify returns every issue found on the page. The returned slice is
// never nil: a clean page yields an empty slice, which the storage
// layer treats as "crawled, no issues" and distinct from nil
// ("fetch failed, keep previous issues").
//
// Lengths are measured in runes, not bytes, so multibyte titles are not
// penalized.
func (c *Classifier) Classify(fields *model.SEOFields) []model.Issue {
	issues := make([]model.Issue, 0)

	issues = c.checkLength(issues, c.rules.Title, fields.Title,
		model.IssueMissingTitle, model.IssueShortTitle, model.IssueLongTitle, "title")
	issues = c.checkLength(issues, c.rules.MetaDescription, fields.MetaDescription,
		model.IssueMissingMetaDescription, model.IssueShortMetaDescription, model.IssueLongMetaDescription, "meta description")
	issues = c.checkHeadings(issues, fields)
	issues = c.checkCanonical(issues, fields)

	return issues
}

// checkLength applies a required-plus-length-range rule to one field.
// Thresholds set to zero disable the corresponding bound. A field
// carries at most one length issue: the bounds are checked short
// first, so an inverted range on a disabled rule cannot flag the same
// value as both too short and too long.
func (c *Classifier) checkLength(issues []model.Issue, rule config.LengthRule, value string, missing, short, long model.IssueType, label string) []model.Issue {
	if value == "" {
		if rule.Required {
			issues = append(issues, c.newIssue(missing, fmt.Sprintf("page has no %s", label)))
		}
		return issues
	}

	length := utf8.RuneCountInString(value)
	if rule.MinLength > 0 && length < rule.MinLength {
		issues = append(issues, c.newIssue(short,
			fmt.Sprintf("%s is %d characters, minimum is %d", label, length, rule.MinLength)))
	} else if rule.MaxLength > 0 && length > rule.MaxLength {
		issues = append(issues, c.newIssue(long,
			fmt.Sprintf("%s is %d characters, maximum is %d", label, length, rule.MaxLength)))
	}
	return issues
}

// checkHeadings applies the H1 cardinality rules and the empty-heading
// check. At most one cardinality issue fires per page, and empty H1
// tags are reported as a single issue per page, not one issue per tag.
func (c *Classifier) checkHeadings(issues []model.Issue, fields *model.SEOFields) []model.Issue {
	rule := c.rules.Headings
	count := fields.H1Count()

	if rule.MinH1Tags > 0 && count < rule.MinH1Tags {
		detail := fmt.Sprintf("page has %d H1 tags, minimum is %d", count, rule.MinH1Tags)
		if count == 0 {
			detail = "page has no H1 tag"
		}
		issues = append(issues, c.newIssue(model.IssueMissingH1, detail))
	} else if rule.MaxH1Tags > 0 && count > rule.MaxH1Tags {
		issues = append(issues, c.newIssue(model.IssueMultipleH1,
			fmt.Sprintf("page has %d H1 tags, maximum is %d", count, rule.MaxH1Tags)))
	}
	if rule.WarnEmptyHeadings {
		if empty := fields.EmptyH1Count(); empty > 0 {
			issues = append(issues, c.newIssue(model.IssueEmptyHeading,
				fmt.Sprintf("page has %d empty H1 tags", empty)))
		}
	}
	return issues
}

// checkCanonical reports pages without a canonical link when the rule
// is enabled.
func (c *Classifier) checkCanonical(issues []model.Issue, fields *model.SEOFields) []model.Issue {
	if c.rules.Canonical.Required && fields.CanonicalURL == "" {
		issues = append(issues, c.newIssue(model.IssueMissingCanonical,
			"page declares no canonical URL"))
	}
	return issues
}

// newIssue builds an issue with its severity resolved from the
// configured buckets. Severity is fixed at classification time and
// persisted with the issue, so later configuration changes do not
// silently rewrite history.
func (c *Classifier) newIssue(issueType model.IssueType, details string) model.Issue {
	severity := model.ParseSeverity(c.buckets.Lookup(string(issueType)))
	return model.Issue{
		Type:         issueType,
		Details:      details,
		Severity:     severity,
		SeverityText: severity.Key(),
	}
}
