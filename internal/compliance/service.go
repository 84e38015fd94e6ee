package compliance

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/auditkit/mcp-pdf-compliance/internal/document"
)

// Service orchestrates the analysis components behind one request/result
// pair per operation. Every call is stateless: the service holds only the
// loader and a logger, and all per-call entities are scoped to the call,
// so concurrent invocations never share mutable state.
type Service struct {
	loader *document.Loader
	logger zerolog.Logger
}

// NewService creates a new compliance analysis service
func NewService(maxFileSize int64, logger zerolog.Logger) *Service {
	return &Service{
		loader: document.NewLoader(maxFileSize),
		logger: logger,
	}
}

// Request/result types, one pair per tool operation

// FindSectionsRequest asks for required-section findings in one document
type FindSectionsRequest struct {
	Path    string `json:"path"`
	DocType string `json:"doc_type"`
}

// SectionSummary aggregates the findings of one section scan
type SectionSummary struct {
	TotalRequired   int      `json:"total_required"`
	TotalFound      int      `json:"total_found"`
	MissingCritical []string `json:"missing_critical"`
}

// FindSectionsResult reports the section findings for one document
type FindSectionsResult struct {
	Path     string           `json:"path"`
	DocType  DocumentType     `json:"doc_type"`
	Findings []SectionFinding `json:"findings"`
	Summary  SectionSummary   `json:"summary"`
}

// ExtractStatementsRequest asks for classified financial statements
type ExtractStatementsRequest struct {
	Path string `json:"path"`
}

// ExtractStatementsResult reports every classified table in the document
type ExtractStatementsResult struct {
	Path       string                `json:"path"`
	Statements []ClassifiedStatement `json:"statements"`
}

// ValidateMathRequest asks for arithmetic validation of the document's
// financial statements
type ValidateMathRequest struct {
	Path string `json:"path"`
}

// ValidateMathResult reports every arithmetic check outcome
type ValidateMathResult struct {
	Path          string            `json:"path"`
	TablesChecked int               `json:"tables_checked"`
	Checks        []MathCheckResult `json:"checks"`
}

// CheckSignaturesRequest asks for signature compliance evaluation.
// InvoiceAmount is optional and only meaningful for invoices.
type CheckSignaturesRequest struct {
	Path          string   `json:"path"`
	DocType       string   `json:"doc_type"`
	InvoiceAmount *float64 `json:"invoice_amount,omitempty"`
}

// CheckSignaturesResult reports signature requirements and evidence
type CheckSignaturesResult struct {
	Path   string          `json:"path"`
	Report SignatureReport `json:"report"`
}

// DetectRedFlagsRequest asks for a red-flag phrase scan
type DetectRedFlagsRequest struct {
	Path string `json:"path"`
}

// DetectRedFlagsResult reports every red-flag occurrence with a summary
type DetectRedFlagsResult struct {
	Path    string         `json:"path"`
	Matches []RedFlagMatch `json:"matches"`
	Summary RedFlagSummary `json:"summary"`
}

// ExtractPeriodsRequest asks for period-over-period comparative deltas
type ExtractPeriodsRequest struct {
	Path string `json:"path"`
}

// ExtractPeriodsResult reports all computed period deltas
type ExtractPeriodsResult struct {
	Path   string        `json:"path"`
	Deltas []PeriodDelta `json:"deltas"`
}

// FindRegulatorySections locates the required sections for a document type
func (s *Service) FindRegulatorySections(req FindSectionsRequest) (*FindSectionsResult, error) {
	docType, err := ParseDocumentType(req.DocType)
	if err != nil {
		return nil, err
	}

	doc, err := s.loadDocument(req.Path, "find_regulatory_sections")
	if err != nil {
		return nil, err
	}

	findings := FindRegulatorySections(doc, docType)

	summary := SectionSummary{TotalRequired: len(findings), MissingCritical: []string{}}
	for _, f := range findings {
		if f.Found {
			summary.TotalFound++
		} else if f.Requirement.Critical {
			summary.MissingCritical = append(summary.MissingCritical, f.Requirement.Label)
		}
	}

	return &FindSectionsResult{
		Path:     req.Path,
		DocType:  docType,
		Findings: findings,
		Summary:  summary,
	}, nil
}

// ExtractFinancialStatements classifies every detected table
func (s *Service) ExtractFinancialStatements(req ExtractStatementsRequest) (*ExtractStatementsResult, error) {
	doc, err := s.loadDocument(req.Path, "extract_financial_statements")
	if err != nil {
		return nil, err
	}

	return &ExtractStatementsResult{
		Path:       req.Path,
		Statements: ClassifyTables(doc.Tables),
	}, nil
}

// ValidateFinancialMath runs arithmetic checks over classified statements
func (s *Service) ValidateFinancialMath(req ValidateMathRequest) (*ValidateMathResult, error) {
	doc, err := s.loadDocument(req.Path, "validate_financial_math")
	if err != nil {
		return nil, err
	}

	statements := ClassifyTables(doc.Tables)

	return &ValidateMathResult{
		Path:          req.Path,
		TablesChecked: len(statements),
		Checks:        ValidateFinancialMath(statements),
	}, nil
}

// CheckRequiredSignatures evaluates signature evidence against the
// requirement policy. Input is validated before any document access.
func (s *Service) CheckRequiredSignatures(req CheckSignaturesRequest) (*CheckSignaturesResult, error) {
	docType, err := ParseDocumentType(req.DocType)
	if err != nil {
		return nil, err
	}
	if req.InvoiceAmount != nil && *req.InvoiceAmount < 0 {
		return nil, errors.New("invoice_amount cannot be negative")
	}

	doc, err := s.loadDocument(req.Path, "check_required_signatures")
	if err != nil {
		return nil, err
	}

	return &CheckSignaturesResult{
		Path:   req.Path,
		Report: CheckRequiredSignatures(doc, docType, req.InvoiceAmount),
	}, nil
}

// DetectComplianceRedFlags scans for the red-flag phrase dictionary
func (s *Service) DetectComplianceRedFlags(req DetectRedFlagsRequest) (*DetectRedFlagsResult, error) {
	doc, err := s.loadDocument(req.Path, "detect_compliance_red_flags")
	if err != nil {
		return nil, err
	}

	matches := DetectComplianceRedFlags(doc)

	return &DetectRedFlagsResult{
		Path:    req.Path,
		Matches: matches,
		Summary: SummarizeRedFlags(matches),
	}, nil
}

// ExtractComparativePeriods computes period-over-period deltas
func (s *Service) ExtractComparativePeriods(req ExtractPeriodsRequest) (*ExtractPeriodsResult, error) {
	doc, err := s.loadDocument(req.Path, "extract_comparative_periods")
	if err != nil {
		return nil, err
	}

	return &ExtractPeriodsResult{
		Path:   req.Path,
		Deltas: ExtractComparativePeriods(ClassifyTables(doc.Tables)),
	}, nil
}

func (s *Service) loadDocument(path, operation string) (*document.Document, error) {
	doc, err := s.loader.Load(path)
	if err != nil {
		s.logger.Debug().Str("operation", operation).Str("path", path).Err(err).Msg("document load failed")
		return nil, err
	}
	s.logger.Debug().
		Str("operation", operation).
		Str("path", path).
		Int("pages", doc.PageCount()).
		Int("tables", len(doc.Tables)).
		Msg("document loaded")
	return doc, nil
}
