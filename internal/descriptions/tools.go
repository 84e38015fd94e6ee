package descriptions

// Tool descriptions with practical examples and use cases

const (
	FindRegulatorySectionsDescription = `Find required compliance sections in a PDF based on document type (10-K, SOX 404, 8-K, Invoice).

**When to use:** Need to verify that a regulatory filing or invoice contains every section its document type mandates.

**Why it's useful:** Each document type has a fixed checklist of required sections; this tool reports which are present (with the page they first appear on) and which critical sections are missing.

**Examples:**
• Filing review: "Check annual-report.pdf as a 10-K for Item 1A and Item 9A"
• Controls audit: "Verify sox-assessment.pdf covers ITGC and Access Controls"
• Invoice intake: "Confirm invoice-2024-001.pdf has an invoice number, date, line items, and total"

**Best practices:** Pass the correct doc_type; section checklists differ per type and an unknown type is rejected before the file is read.`

	ExtractFinancialStatementsDescription = `Extract tables from a PDF and classify each as Balance Sheet, Income Statement, Cash Flow Statement, Invoice, or Unclassified.

**When to use:** Need structured financial data (line items and per-period values) out of a filing or invoice.

**Why it's useful:** Returns normalized line items keyed by label with one numeric value per detected period column, ready for downstream validation or comparison. Ambiguous tables are reported as Unclassified rather than guessed.

**Examples:**
• Statement inventory: "List every financial statement in 10k-2024.pdf with its periods"
• Data extraction: "Pull total assets and total liabilities per year from balance-sheet.pdf"`

	ValidateFinancialMathDescription = `Validate arithmetic in financial documents: the balance sheet equation, the income statement equation, and detail-versus-total sums.

**When to use:** Need to confirm that stated totals actually add up, per period column, to the cent.

**Why it's useful:** Reports each check with expected value, stated value, and discrepancy at a 0.01 tolerance. Checks that cannot run because line items are missing are flagged as incomplete rather than silently passing — absent data is itself a finding.

**Examples:**
• Balance check: "Does Assets equal Liabilities plus Equity in annual-report.pdf?"
• Invoice audit: "Do the line items of invoice-118.pdf sum to the stated total?"`

	CheckRequiredSignaturesDescription = `Check for required signatures and certifications based on document type and amount thresholds.

**When to use:** Need to verify certification completeness: CEO/CFO certifications on SOX 404 reports, CEO/CFO/CAO signatures on 10-K filings, or approver sign-off on invoices above $10,000.

**Why it's useful:** Looks at both interactive signature form fields and textual signature conventions ("/s/ Jane Smith, Chief Financial Officer", "CFO Signature:") and reports each required role as found or missing with its evidence.

**Examples:**
• Certification review: "Are the CEO and CFO certifications present in sox-report.pdf?"
• Invoice approval: "invoice-552.pdf is for $12,400 — was it approved?"

**Best practices:** For invoices, pass invoice_amount; the approver requirement only applies above the threshold and is omitted otherwise.`

	DetectComplianceRedFlagsDescription = `Search a PDF for compliance warning phrases such as "going concern", "material weakness", or "related party".

**When to use:** Screening filings for disclosure language that warrants closer review.

**Why it's useful:** Every occurrence is reported with its page, severity (critical/high/medium), and surrounding context, ordered by page then severity, plus a per-severity summary.

**Examples:**
• Audit screening: "Scan annual-report.pdf for going concern or restatement language"
• Portfolio triage: "Count critical red flags in each filing before deep review"`

	ExtractComparativePeriodsDescription = `Extract multi-period financial data and calculate period-over-period changes with materiality flags.

**When to use:** Need year-over-year or quarter-over-quarter movement for every line item that appears in multiple period columns.

**Why it's useful:** Computes absolute and percent change for each adjacent period pair and flags material movements (over $100,000 absolute or over 10 percent). Percent change is omitted when the earlier value is zero.

**Examples:**
• Trend review: "How did revenue and net income move between the periods in 10k-2024.pdf?"
• Materiality screen: "List every material line-item change in balance-sheet.pdf"`
)
