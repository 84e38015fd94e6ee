package compliance

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/auditkit/mcp-pdf-compliance/internal/document"
)

// Text lines introduced by the conformed-signature marker, e.g.
// "/s/ Jane Smith, Chief Financial Officer"
var conformedSignaturePattern = regexp.MustCompile(`(?i)/s/\s*[^\n]*`)

// SignatureStatus summarizes whether all required signatures were found
type SignatureStatus string

const (
	SignatureComplete   SignatureStatus = "COMPLETE"
	SignatureIncomplete SignatureStatus = "INCOMPLETE"
)

// SignatureReport is the full outcome of a signature check
type SignatureReport struct {
	DocType       DocumentType        `json:"doc_type"`
	InvoiceAmount *float64            `json:"invoice_amount,omitempty"`
	Requirements  []SignatureFinding  `json:"requirements"`
	Evidence      []SignatureEvidence `json:"evidence"`
	Status        SignatureStatus     `json:"status"`
}

// CheckRequiredSignatures evaluates the signature evidence in a document
// against the requirement policy for its type. A threshold-conditioned
// requirement (the invoice approver) is only evaluated when the invoice
// amount is known and exceeds the threshold; below or without an amount it
// is omitted from the result entirely, not reported as missing.
func CheckRequiredSignatures(doc *document.Document, docType DocumentType, invoiceAmount *float64) SignatureReport {
	evidence := collectSignatureEvidence(doc)

	report := SignatureReport{
		DocType:       docType,
		InvoiceAmount: invoiceAmount,
		Requirements:  []SignatureFinding{},
		Evidence:      evidence,
		Status:        SignatureComplete,
	}

	for _, req := range RequiredSignatures(docType) {
		if req.AmountThreshold != nil {
			if invoiceAmount == nil || *invoiceAmount <= *req.AmountThreshold {
				continue
			}
		}

		finding := SignatureFinding{Requirement: req}
		for _, ev := range evidence {
			if ev.Role == req.Role {
				finding.Found = true
				finding.Page = ev.Page
				finding.Evidence = ev.Excerpt
				break
			}
		}
		if !finding.Found {
			report.Status = SignatureIncomplete
		}
		report.Requirements = append(report.Requirements, finding)
	}

	return report
}

// collectSignatureEvidence gathers both evidence sources: interactive
// signature form fields and textual signature mentions.
func collectSignatureEvidence(doc *document.Document) []SignatureEvidence {
	evidence := make([]SignatureEvidence, 0)

	for _, field := range doc.Fields {
		if field.Type != document.FormFieldTypeSignature {
			continue
		}
		role := roleForText(field.Name)
		if role == "" {
			role = "Authorized Signer"
		}
		evidence = append(evidence, SignatureEvidence{
			Source:  "form_field",
			Role:    role,
			Page:    field.Page,
			Excerpt: "digital signature field: " + field.Name,
		})
	}

	seen := make(map[string]bool)
	for _, page := range doc.Pages {
		lower := strings.ToLower(page.Text)

		for _, rk := range roleKeywords {
			pos := strings.Index(lower, rk.Keyword)
			if pos < 0 {
				continue
			}
			key := fmt.Sprintf("%s|%d", rk.Role, page.Number)
			if seen[key] {
				continue
			}
			seen[key] = true
			evidence = append(evidence, SignatureEvidence{
				Source:  "text",
				Role:    rk.Role,
				Page:    page.Number,
				Excerpt: excerptAround(page.Text, pos, 50, 100),
			})
		}

		for _, loc := range conformedSignaturePattern.FindAllStringIndex(page.Text, -1) {
			line := page.Text[loc[0]:loc[1]]
			role := roleForText(line)
			if role != "" {
				// The keyword scan above already recorded this role
				continue
			}
			evidence = append(evidence, SignatureEvidence{
				Source:  "text",
				Role:    "Authorized Signer",
				Page:    page.Number,
				Excerpt: strings.TrimSpace(line),
			})
		}
	}

	return evidence
}

// roleForText maps free text to the canonical role it mentions, longest
// keyword first.
func roleForText(s string) string {
	lower := strings.ToLower(s)
	for _, rk := range roleKeywords {
		if strings.Contains(lower, rk.Keyword) {
			return rk.Role
		}
	}
	return ""
}
