package models

import "strings"

// Verdict is the presentation classification of a raw model answer. The raw
// text remains the source of truth; the verdict only drives UI coloring and
// alerting.
type Verdict string

const (
	VerdictPositive      Verdict = "positive"
	VerdictNegative      Verdict = "negative"
	VerdictIndeterminate Verdict = "indeterminate"
)

// ClassifyVerdict maps a raw model response to a verdict. A response
// containing "true" or "yes" (case-insensitive) is positive, one containing
// "false" or "no" is negative, anything else is indeterminate. Positive
// markers win when both appear, matching how models phrase affirmations
// ("yes, there is no obstruction" reads as a yes).
func ClassifyVerdict(result string) Verdict {
	s := strings.ToLower(result)
	if s == "" {
		return VerdictIndeterminate
	}
	if strings.Contains(s, "true") || strings.Contains(s, "yes") {
		return VerdictPositive
	}
	if strings.Contains(s, "false") || strings.Contains(s, "no") {
		return VerdictNegative
	}
	return VerdictIndeterminate
}
