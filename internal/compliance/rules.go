package compliance

// Static rule tables. All of them are read-only package data initialized
// once; nothing in this package mutates them after init.

// Arithmetic checks tolerate discrepancies up to this many currency units
// (inclusive).
const MathTolerance = 0.01

// Materiality thresholds for period-over-period changes
const (
	MaterialAbsoluteThreshold = 100000.0
	MaterialPercentThreshold  = 10.0
)

// sectionRules lists the required sections per document type. SearchTerms
// are matched case-insensitively against whitespace-normalized page text;
// any one term locates the section.
var sectionRules = map[DocumentType][]SectionRequirement{
	DocTypeTenK: {
		{ID: "Item 1", Label: "Item 1: Business", SearchTerms: []string{"item 1", "business"}},
		{ID: "Item 1A", Label: "Item 1A: Risk Factors", Critical: true, SearchTerms: []string{"item 1a", "risk factors"}},
		{ID: "Item 7", Label: "Item 7: MD&A", Critical: true, SearchTerms: []string{"item 7", "management's discussion", "md&a"}},
		{ID: "Item 8", Label: "Item 8: Financial Statements", Critical: true, SearchTerms: []string{"item 8", "financial statements"}},
		{ID: "Item 9A", Label: "Item 9A: Controls and Procedures", Critical: true, SearchTerms: []string{"item 9a", "controls and procedures"}},
	},
	DocTypeSox404: {
		{ID: "ITGC", Label: "IT General Controls", Critical: true, SearchTerms: []string{"it general controls", "itgc", "it controls"}},
		{ID: "Access Controls", Label: "Access Controls", Critical: true, SearchTerms: []string{"access controls", "access management"}},
		{ID: "Change Management", Label: "Change Management", SearchTerms: []string{"change management", "change controls"}},
		{ID: "Management Assessment", Label: "Management Assessment", Critical: true, SearchTerms: []string{"management assessment", "management certification"}},
	},
	DocTypeEightK: {
		{ID: "Item 1.01", Label: "Item 1.01: Material Agreements", Critical: true, SearchTerms: []string{"item 1.01", "material definitive agreement", "material agreement"}},
		{ID: "Item 2.01", Label: "Item 2.01: Acquisition/Disposition", Critical: true, SearchTerms: []string{"item 2.01", "acquisition", "disposition of assets"}},
		{ID: "Item 5.02", Label: "Item 5.02: Officer Changes", SearchTerms: []string{"item 5.02", "departure of directors", "officer changes"}},
		{ID: "Item 9.01", Label: "Item 9.01: Financial Statements/Exhibits", Critical: true, SearchTerms: []string{"item 9.01", "financial statements and exhibits"}},
		{ID: "Filing Timeliness", Label: "Filing Timeliness", Critical: true, SearchTerms: []string{"date of report", "date of earliest event"}},
	},
	DocTypeInvoice: {
		{ID: "Invoice Number", Label: "Invoice Number", Critical: true, SearchTerms: []string{"invoice number", "invoice #", "inv #", "invoice no"}},
		{ID: "Date", Label: "Date", Critical: true, SearchTerms: []string{"date", "invoice date"}},
		{ID: "Line Items", Label: "Line Items", Critical: true, SearchTerms: []string{"description", "line items", "item"}},
		{ID: "Total", Label: "Total", Critical: true, SearchTerms: []string{"total", "amount due", "balance due"}},
		{ID: "Payment Terms", Label: "Payment Terms", SearchTerms: []string{"payment terms", "due date", "net 30", "net 60"}},
	},
}

// invoiceApprovalThreshold is the invoice amount above which an approver
// signature becomes mandatory.
var invoiceApprovalThreshold = 10000.0

// signatureRules lists the required signature roles per document type
var signatureRules = map[DocumentType][]SignatureRequirement{
	DocTypeSox404: {
		{Role: "CFO"},
		{Role: "CEO"},
	},
	DocTypeTenK: {
		{Role: "CEO"},
		{Role: "CFO"},
		{Role: "CAO"},
	},
	DocTypeEightK: {},
	DocTypeInvoice: {
		{Role: "Approver", AmountThreshold: &invoiceApprovalThreshold},
	},
}

// roleKeywords maps textual signature evidence to the canonical role it
// attests. Longer keywords first so "Chief Financial Officer" is matched
// as a title rather than incidentally via "CFO".
var roleKeywords = []struct {
	Keyword string
	Role    string
}{
	{"chief financial officer", "CFO"},
	{"chief executive officer", "CEO"},
	{"chief accounting officer", "CAO"},
	{"cfo", "CFO"},
	{"ceo", "CEO"},
	{"cao", "CAO"},
	{"approved by", "Approver"},
	{"approver", "Approver"},
	{"certified by", "Certifier"},
	{"signed by", "Authorized Signer"},
}

// statementKeywords are the per-type label sets scored by the table
// classifier. Keywords are matched against normalized header and
// first-column tokens.
var statementKeywords = map[StatementType][]string{
	StatementBalanceSheet: {"assets", "liabilities", "equity"},
	StatementIncome:       {"revenue", "expenses", "net income"},
	StatementCashFlow:     {"operating activities", "investing activities", "financing activities"},
	StatementInvoice:      {"invoice", "line item", "total due"},
}

// RedFlagPhrase pairs a warning phrase with its severity
type RedFlagPhrase struct {
	Phrase   string
	Severity Severity
}

// redFlagPhrases is the severity-ranked dictionary scanned over document
// text. Matches are case-insensitive substrings; every occurrence is
// reported.
var redFlagPhrases = []RedFlagPhrase{
	{"going concern", SeverityCritical},
	{"material weakness", SeverityCritical},
	{"restatement", SeverityCritical},
	{"significant deficiency", SeverityHigh},
	{"qualified opinion", SeverityHigh},
	{"adverse opinion", SeverityHigh},
	{"related party", SeverityMedium},
	{"subsequent event", SeverityMedium},
	{"contingent liability", SeverityMedium},
}

// RequiredSections returns the section rule table for a document type
func RequiredSections(docType DocumentType) []SectionRequirement {
	return sectionRules[docType]
}

// RequiredSignatures returns the signature rule table for a document type
func RequiredSignatures(docType DocumentType) []SignatureRequirement {
	return signatureRules[docType]
}
