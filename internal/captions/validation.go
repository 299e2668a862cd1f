package captions

import "fmt"

// Issue codes reported by ValidateDocument.
const (
	IssueEmptyDocument    = "empty_document"
	IssueIndexGap         = "index_gap"
	IssueNegativeDuration = "negative_duration"
	IssueOverlap          = "overlap"
)

// ValidateDocument checks a parsed caption list for the properties Document
// guarantees: indices 1..N without gaps, non-negative durations and
// non-overlapping spans. Returns a list of issues; empty means it passed.
func ValidateDocument(caps []Caption) []string {
	if len(caps) == 0 {
		return []string{IssueEmptyDocument}
	}
	var issues []string
	for i, c := range caps {
		if c.Index != i+1 {
			issues = append(issues, fmt.Sprintf("%s: caption %d has index %d", IssueIndexGap, i+1, c.Index))
		}
		if c.End < c.Start {
			issues = append(issues, fmt.Sprintf("%s: caption %d ends %s before it starts %s",
				IssueNegativeDuration, c.Index, FormatTimestamp(c.End), FormatTimestamp(c.Start)))
		}
		if i > 0 && c.Start < caps[i-1].End {
			issues = append(issues, fmt.Sprintf("%s: caption %d starts %s before caption %d ends %s",
				IssueOverlap, c.Index, FormatTimestamp(c.Start), caps[i-1].Index, FormatTimestamp(caps[i-1].End)))
		}
	}
	return issues
}

// Span returns the earliest start and latest end across caps.
func Span(caps []Caption) (float64, float64) {
	if len(caps) == 0 {
		return 0, 0
	}
	first, last := caps[0].Start, caps[0].End
	for _, c := range caps[1:] {
		first = min(first, c.Start)
		last = max(last, c.End)
	}
	return first, last
}
