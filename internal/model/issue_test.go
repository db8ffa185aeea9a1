package model

import "testing"

// TestIssueTypeLabel tests the humanized issue type names.
func TestIssueTypeLabel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		issueType IssueType
		expected  string
	}{
		{IssueMissingTitle, "Missing Title"},
		{IssueMissingMetaDescription, "Missing Meta Description"},
		{IssueMultipleH1, "Multiple H1"},
		{IssueEmptyHeading, "Empty Heading"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.issueType), func(t *testing.T) {
			t.Parallel()
			if got := tc.issueType.Label(); got != tc.expected {
				t.Errorf("Label() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

// TestGetIssueInfo tests the GetIssueInfo function.
func TestGetIssueInfo(t *testing.T) {
	t.Parallel()

	t.Run("returns info for known issue type", func(t *testing.T) {
		t.Parallel()

		info := GetIssueInfo(IssueMissingTitle)

		if info.Impact == "" {
			t.Error("expected non-empty Impact")
		}
		if info.Recommendation == "" {
			t.Error("expected non-empty Recommendation")
		}
	})

	t.Run("returns default info for unknown issue type", func(t *testing.T) {
		t.Parallel()

		info := GetIssueInfo(IssueType("completely_unknown_type"))

		if info.Impact == "" {
			t.Error("expected non-empty default Impact")
		}
		if info.Recommendation == "" {
			t.Error("expected non-empty default Recommendation")
		}
	})
}

// TestIssueInfoMappingCompleteness tests that every issue type emitted by
// the classifier has proper metadata.
func TestIssueInfoMappingCompleteness(t *testing.T) {
	t.Parallel()

	issueTypes := []IssueType{
		IssueMissingTitle,
		IssueShortTitle,
		IssueLongTitle,
		IssueMissingMetaDescription,
		IssueShortMetaDescription,
		IssueLongMetaDescription,
		IssueMissingH1,
		IssueMultipleH1,
		IssueEmptyHeading,
		IssueMissingCanonical,
	}

	for _, issueType := range issueTypes {
		t.Run(string(issueType), func(t *testing.T) {
			t.Parallel()

			info := GetIssueInfo(issueType)

			if info.Impact == "" {
				t.Errorf("issue type %q has empty Impact", issueType)
			}
			if info.Recommendation == "" {
				t.Errorf("issue type %q has empty Recommendation", issueType)
			}
			if info.Impact == "Unknown issue type. Review manually." {
				t.Errorf("issue type %q returned default Impact", issueType)
			}
		})
	}
}
