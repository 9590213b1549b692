// Package normalize holds the text cleanup and pattern heuristics shared by
// every parser in the extraction pipeline.
package normalize

import "strings"

// Clean collapses any run of whitespace (including newlines) to a single
// space and trims the result. Never fails; empty or all-space input yields
// the empty string.
func Clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TokenCount reports the number of whitespace-separated tokens in s.
func TokenCount(s string) int {
	return len(strings.Fields(s))
}
