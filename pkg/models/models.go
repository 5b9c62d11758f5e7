// Package models defines data structures shared across the application.
package models

// ItemKind classifies an item by its configured number range.
type ItemKind string

const (
	// KindIssue marks items whose number falls inside the configured issue range.
	KindIssue ItemKind = "Issue"

	// KindPR marks items whose number falls outside the configured issue range.
	KindPR ItemKind = "PR"
)

// ItemResult records the verification outcome for a single item.
type ItemResult struct {
	// Number is the item number in the tracker (e.g., 42)
	Number int

	// Kind is the range-derived classification of the item
	Kind ItemKind

	// Passed reports whether the item's labels matched the expectation
	Passed bool

	// Expected is the label list from the verification config, in
	// configured order
	Expected []string

	// Actual is the label list the tracker reported, in API order.
	// It is nil when the fetch failed.
	Actual []string

	// Reason describes why the fetch failed. It is non-empty exactly
	// when the fetch failed.
	Reason string
}

// Report collects the results of one verification run.
type Report struct {
	// Results holds one entry per configured item, in configured order
	Results []ItemResult

	// AllPassed is true when every result passed. A run with no
	// configured items passes trivially.
	AllPassed bool
}

// FailureCount returns the number of results that did not pass.
func (r *Report) FailureCount() int {
	count := 0
	for _, result := range r.Results {
		if !result.Passed {
			count++
		}
	}
	return count
}
