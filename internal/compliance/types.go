package compliance

import (
	"fmt"
	"strings"
)

// DocumentType represents the regulatory category of a document.
// It is a closed enumeration: every rule table in this package is keyed by
// one of these four values and unknown values are rejected before any
// document access happens.
type DocumentType string

const (
	DocTypeTenK    DocumentType = "10-K"
	DocTypeSox404  DocumentType = "SOX 404"
	DocTypeEightK  DocumentType = "8-K"
	DocTypeInvoice DocumentType = "Invoice"
)

// ParseDocumentType converts a wire string into a DocumentType
func ParseDocumentType(s string) (DocumentType, error) {
	switch DocumentType(strings.TrimSpace(s)) {
	case DocTypeTenK:
		return DocTypeTenK, nil
	case DocTypeSox404:
		return DocTypeSox404, nil
	case DocTypeEightK:
		return DocTypeEightK, nil
	case DocTypeInvoice:
		return DocTypeInvoice, nil
	default:
		return "", fmt.Errorf("unknown document type %q (expected one of: 10-K, SOX 404, 8-K, Invoice)", s)
	}
}

// StatementType labels a classified financial table
type StatementType string

const (
	StatementBalanceSheet StatementType = "Balance Sheet"
	StatementIncome       StatementType = "Income Statement"
	StatementCashFlow     StatementType = "Cash Flow Statement"
	StatementInvoice      StatementType = "Invoice"
	StatementUnclassified StatementType = "Unclassified"
)

// Severity ranks a red-flag phrase
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
)

// Rank returns the sort rank of a severity, most severe first
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	default:
		return 3
	}
}

// LineItem is one labeled row of a classified statement. Values holds one
// parsed amount per period, in the order of the statement's PeriodLabels.
type LineItem struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

// ClassifiedStatement is a table assigned a statement type with normalized
// line items. Every line item has exactly one value per period label; rows
// with unparseable cells are dropped rather than zero-filled.
type ClassifiedStatement struct {
	Type         StatementType `json:"type"`
	Page         int           `json:"page"`
	PeriodLabels []string      `json:"period_labels"`
	LineItems    []LineItem    `json:"line_items"`
}

// Lookup returns the first line item whose normalized label contains the
// given substring.
func (s *ClassifiedStatement) Lookup(substr string) (LineItem, bool) {
	for _, item := range s.LineItems {
		if strings.Contains(item.Label, substr) {
			return item, true
		}
	}
	return LineItem{}, false
}

// SectionRequirement is one entry of the static per-document-type rule
// table of required sections.
type SectionRequirement struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Critical    bool     `json:"critical"`
	SearchTerms []string `json:"-"`
}

// SectionFinding reports whether a required section was located
type SectionFinding struct {
	Requirement SectionRequirement `json:"requirement"`
	Found       bool               `json:"found"`
	Page        int                `json:"page,omitempty"`
	Excerpt     string             `json:"excerpt,omitempty"`
}

// MathCheckResult is the outcome of one arithmetic identity check for one
// period column. Incomplete results signal missing line items: Expected and
// Actual stay nil and Passed is false, a distinct condition from a failed
// comparison.
type MathCheckResult struct {
	CheckName     string        `json:"check_name"`
	StatementType StatementType `json:"statement_type"`
	Page          int           `json:"page"`
	Period        string        `json:"period,omitempty"`
	Expected      *float64      `json:"expected,omitempty"`
	Actual        *float64      `json:"actual,omitempty"`
	Discrepancy   *float64      `json:"discrepancy,omitempty"`
	Passed        bool          `json:"passed"`
	Incomplete    bool          `json:"incomplete,omitempty"`
	Detail        string        `json:"detail,omitempty"`
}

// SignatureRequirement is one entry of the static signature policy table.
// A nil AmountThreshold means the requirement is unconditional for its
// document type.
type SignatureRequirement struct {
	Role            string   `json:"role"`
	AmountThreshold *float64 `json:"amount_threshold,omitempty"`
}

// SignatureFinding reports whether evidence for a required signature role
// was located.
type SignatureFinding struct {
	Requirement SignatureRequirement `json:"requirement"`
	Found       bool                 `json:"found"`
	Page        int                  `json:"page,omitempty"`
	Evidence    string               `json:"evidence,omitempty"`
}

// SignatureEvidence is one piece of located signature evidence, either a
// digital signature field or a textual mention.
type SignatureEvidence struct {
	Source  string `json:"source"` // "form_field" or "text"
	Role    string `json:"role"`
	Page    int    `json:"page"`
	Excerpt string `json:"excerpt,omitempty"`
}

// RedFlagMatch is one occurrence of a red-flag phrase
type RedFlagMatch struct {
	Phrase   string   `json:"phrase"`
	Severity Severity `json:"severity"`
	Page     int      `json:"page"`
	Offset   int      `json:"offset"`
	Context  string   `json:"context"`
}

// PeriodDelta is the change of one line item between two adjacent periods.
// PercentChange is nil when the earlier value is zero.
type PeriodDelta struct {
	LineItem       string        `json:"line_item"`
	StatementType  StatementType `json:"statement_type"`
	Page           int           `json:"page"`
	PeriodA        string        `json:"period_a"`
	PeriodB        string        `json:"period_b"`
	ValueA         float64       `json:"period_a_value"`
	ValueB         float64       `json:"period_b_value"`
	AbsoluteChange float64       `json:"absolute_change"`
	PercentChange  *float64      `json:"percent_change,omitempty"`
	Material       bool          `json:"material"`
}
