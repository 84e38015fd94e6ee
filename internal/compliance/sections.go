package compliance

import (
	"strings"

	"github.com/auditkit/mcp-pdf-compliance/internal/document"
)

const (
	excerptBefore = 100
	excerptAfter  = 200
)

// FindRegulatorySections matches the required-section rule table for the
// given document type against page text. Matching is exact-substring,
// case-insensitive over whitespace-normalized text; the first matching page
// wins. No fuzzy or semantic matching: behavior stays deterministic.
func FindRegulatorySections(doc *document.Document, docType DocumentType) []SectionFinding {
	requirements := RequiredSections(docType)
	findings := make([]SectionFinding, 0, len(requirements))

	for _, req := range requirements {
		finding := SectionFinding{Requirement: req}

		for _, page := range doc.Pages {
			normalized := NormalizeLabel(page.Text)

			matched := false
			for _, term := range req.SearchTerms {
				pos := strings.Index(normalized, NormalizeLabel(term))
				if pos < 0 {
					continue
				}
				finding.Found = true
				finding.Page = page.Number
				finding.Excerpt = excerptAround(normalized, pos, excerptBefore, excerptAfter)
				matched = true
				break
			}
			if matched {
				break
			}
		}

		findings = append(findings, finding)
	}

	return findings
}

// excerptAround returns a bounded window of text surrounding a match
func excerptAround(text string, pos, before, after int) string {
	start := pos - before
	if start < 0 {
		start = 0
	}
	end := pos + after
	if end > len(text) {
		end = len(text)
	}
	return strings.TrimSpace(text[start:end])
}
