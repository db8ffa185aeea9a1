package model

import "testing"

// TestSeverityString tests the String method of Severity.
func TestSeverityString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		severity Severity
		expected string
	}{
		{SeverityUnclassified, "UNCLASSIFIED"},
		{SeverityMinor, "MINOR"},
		{SeverityMajor, "MAJOR"},
		{SeverityCritical, "CRITICAL"},
		{Severity(999), "UNKNOWN"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			if tc.severity.String() != tc.expected {
				t.Errorf("got %q, expected %q", tc.severity.String(), tc.expected)
			}
		})
	}
}

// TestSeverityKey tests the lowercase configuration/database form.
func TestSeverityKey(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		severity Severity
		expected string
	}{
		{SeverityCritical, "critical"},
		{SeverityMajor, "major"},
		{SeverityMinor, "minor"},
		{SeverityUnclassified, "unclassified"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			if tc.severity.Key() != tc.expected {
				t.Errorf("got %q, expected %q", tc.severity.Key(), tc.expected)
			}
		})
	}
}

// TestParseSeverity tests round-tripping severity names.
func TestParseSeverity(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		expected Severity
	}{
		{"critical", SeverityCritical},
		{"CRITICAL", SeverityCritical},
		{"  Major ", SeverityMajor},
		{"minor", SeverityMinor},
		{"unclassified", SeverityUnclassified},
		{"", SeverityUnclassified},
		{"bogus", SeverityUnclassified},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseSeverity(tc.name); got != tc.expected {
				t.Errorf("ParseSeverity(%q) = %v, expected %v", tc.name, got, tc.expected)
			}
		})
	}
}

// TestSeverityOrdering tests that severity levels are ordered correctly.
// Unclassified < Minor < Major < Critical
func TestSeverityOrdering(t *testing.T) {
	t.Parallel()

	if SeverityUnclassified >= SeverityMinor {
		t.Error("expected SeverityUnclassified < SeverityMinor")
	}
	if SeverityMinor >= SeverityMajor {
		t.Error("expected SeverityMinor < SeverityMajor")
	}
	if SeverityMajor >= SeverityCritical {
		t.Error("expected SeverityMajor < SeverityCritical")
	}
}

// TestSeverities tests that the display order runs from most to least urgent.
func TestSeverities(t *testing.T) {
	t.Parallel()

	order := Severities()
	if len(order) != 4 {
		t.Fatalf("expected 4 severities, got %d", len(order))
	}
	if order[0] != SeverityCritical {
		t.Errorf("expected first severity to be critical, got %v", order[0])
	}
	if order[len(order)-1] != SeverityUnclassified {
		t.Errorf("expected last severity to be unclassified, got %v", order[len(order)-1])
	}
}
