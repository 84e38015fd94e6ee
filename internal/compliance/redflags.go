package compliance

import (
	"sort"
	"strings"

	"github.com/auditkit/mcp-pdf-compliance/internal/document"
)

const (
	redFlagContextBefore = 100
	redFlagContextAfter  = 300
)

// RedFlagSummary counts matches per severity
type RedFlagSummary struct {
	Total    int `json:"total"`
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
}

// DetectComplianceRedFlags scans every page for the red-flag phrase
// dictionary. Every occurrence is reported, including repeats of the same
// phrase on one page; results are ordered by page, then severity, then
// match offset within the page.
func DetectComplianceRedFlags(doc *document.Document) []RedFlagMatch {
	matches := make([]RedFlagMatch, 0)

	for _, page := range doc.Pages {
		lower := strings.ToLower(page.Text)

		for _, rf := range redFlagPhrases {
			offset := 0
			for {
				pos := strings.Index(lower[offset:], rf.Phrase)
				if pos < 0 {
					break
				}
				pos += offset
				matches = append(matches, RedFlagMatch{
					Phrase:   rf.Phrase,
					Severity: rf.Severity,
					Page:     page.Number,
					Offset:   pos,
					Context:  excerptAround(page.Text, pos, redFlagContextBefore, redFlagContextAfter),
				})
				offset = pos + len(rf.Phrase)
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Page != matches[j].Page {
			return matches[i].Page < matches[j].Page
		}
		if matches[i].Severity.Rank() != matches[j].Severity.Rank() {
			return matches[i].Severity.Rank() < matches[j].Severity.Rank()
		}
		return matches[i].Offset < matches[j].Offset
	})

	return matches
}

// SummarizeRedFlags tallies matches per severity
func SummarizeRedFlags(matches []RedFlagMatch) RedFlagSummary {
	summary := RedFlagSummary{Total: len(matches)}
	for _, m := range matches {
		switch m.Severity {
		case SeverityCritical:
			summary.Critical++
		case SeverityHigh:
			summary.High++
		case SeverityMedium:
			summary.Medium++
		}
	}
	return summary
}
