package verify

import "sort"

// LabelsEqual reports whether two label lists carry the same labels. In
// sorted mode the comparison ignores ordering: both lists are compared as
// lexicographically sorted copies. Duplicates are never collapsed, so a
// label appearing twice on one side only matches when it appears twice on
// the other. In unsorted mode the lists must match position by position.
// Neither input is mutated.
func LabelsEqual(expected, actual []string, sorted bool) bool {
	if len(expected) != len(actual) {
		return false
	}

	if sorted {
		expected = sortedCopy(expected)
		actual = sortedCopy(actual)
	}

	for i := range expected {
		if expected[i] != actual[i] {
			return false
		}
	}
	return true
}

// sortedCopy returns a lexicographically sorted copy of labels.
func sortedCopy(labels []string) []string {
	copied := make([]string, len(labels))
	copy(copied, labels)
	sort.Strings(copied)
	return copied
}
