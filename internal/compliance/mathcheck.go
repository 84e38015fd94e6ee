package compliance

import (
	"fmt"
	"math"
	"strings"
)

// ValidateFinancialMath runs the type-specific arithmetic checks over
// classified statements, one result per identity per period column.
// Missing line items surface as Incomplete results rather than false
// passes; absence of data is itself a compliance signal.
func ValidateFinancialMath(statements []ClassifiedStatement) []MathCheckResult {
	results := make([]MathCheckResult, 0)

	for i := range statements {
		stmt := &statements[i]
		switch stmt.Type {
		case StatementBalanceSheet:
			results = append(results, checkBalanceSheet(stmt)...)
		case StatementIncome:
			results = append(results, checkIncomeStatement(stmt)...)
		}
		results = append(results, checkColumnSums(stmt)...)
		results = append(results, checkRowSums(stmt)...)
	}

	return results
}

// checkBalanceSheet validates Assets == Liabilities + Equity per period
func checkBalanceSheet(stmt *ClassifiedStatement) []MathCheckResult {
	assets, okA := lookupAny(stmt, "total assets")
	liabilities, okL := lookupAny(stmt, "total liabilities")
	equity, okE := lookupAny(stmt, "total equity", "total stockholders")

	if !okA || !okL || !okE || len(stmt.PeriodLabels) == 0 {
		return []MathCheckResult{incompleteResult("balance_sheet_equation", stmt,
			"missing total assets, total liabilities, or total equity line items")}
	}

	results := make([]MathCheckResult, 0, len(stmt.PeriodLabels))
	for i, period := range stmt.PeriodLabels {
		expected := liabilities.Values[i] + equity.Values[i]
		actual := assets.Values[i]
		results = append(results, comparisonResult("balance_sheet_equation", stmt, period, expected, actual,
			fmt.Sprintf("Assets (%.2f) vs Liabilities + Equity (%.2f)", actual, expected)))
	}
	return results
}

// checkIncomeStatement validates Revenue - Expenses == Net Income per period
func checkIncomeStatement(stmt *ClassifiedStatement) []MathCheckResult {
	revenue, okR := lookupAny(stmt, "total revenue", "net revenue", "revenue")
	expenses, okE := lookupAny(stmt, "total operating expenses", "total expenses", "expenses")
	netIncome, okN := lookupAny(stmt, "net income", "net loss")

	if !okR || !okE || !okN || len(stmt.PeriodLabels) == 0 {
		return []MathCheckResult{incompleteResult("income_statement_equation", stmt,
			"missing revenue, expenses, or net income line items")}
	}

	results := make([]MathCheckResult, 0, len(stmt.PeriodLabels))
	for i, period := range stmt.PeriodLabels {
		expected := revenue.Values[i] - expenses.Values[i]
		actual := netIncome.Values[i]
		results = append(results, comparisonResult("income_statement_equation", stmt, period, expected, actual,
			fmt.Sprintf("Revenue - Expenses (%.2f) vs Net Income (%.2f)", expected, actual)))
	}
	return results
}

// checkColumnSums validates that detail rows sum to the stated total row.
// The check only fires when the statement has exactly one total-labeled
// item, it is the last one, and real detail rows precede it; statements
// with several total rows (a balance sheet's section totals) keep their
// own identity checks instead.
func checkColumnSums(stmt *ClassifiedStatement) []MathCheckResult {
	if len(stmt.LineItems) < 2 || len(stmt.PeriodLabels) == 0 {
		return nil
	}

	totalCount := 0
	for _, item := range stmt.LineItems {
		if isTotalLabel(item.Label) {
			totalCount++
		}
	}
	last := stmt.LineItems[len(stmt.LineItems)-1]
	if totalCount != 1 || !isTotalLabel(last.Label) {
		return nil
	}

	details := stmt.LineItems[:len(stmt.LineItems)-1]

	results := make([]MathCheckResult, 0, len(stmt.PeriodLabels))
	for i, period := range stmt.PeriodLabels {
		sum := 0.0
		for _, item := range details {
			sum += item.Values[i]
		}
		results = append(results, comparisonResult("column_sum", stmt, period, sum, last.Values[i],
			fmt.Sprintf("detail rows sum (%.2f) vs stated total %q (%.2f)", sum, last.Label, last.Values[i])))
	}
	return results
}

// checkRowSums validates per-row totals when the grid carries a stated
// row-total column (a trailing period column labeled "total").
func checkRowSums(stmt *ClassifiedStatement) []MathCheckResult {
	n := len(stmt.PeriodLabels)
	if n < 2 {
		return nil
	}
	lastLabel := NormalizeLabel(stmt.PeriodLabels[n-1])
	if !strings.Contains(lastLabel, "total") {
		return nil
	}

	var results []MathCheckResult
	for _, item := range stmt.LineItems {
		sum := 0.0
		for i := 0; i < n-1; i++ {
			sum += item.Values[i]
		}
		results = append(results, comparisonResult("row_sum", stmt, item.Label, sum, item.Values[n-1],
			fmt.Sprintf("row values sum (%.2f) vs stated row total (%.2f)", sum, item.Values[n-1])))
	}
	return results
}

func isTotalLabel(label string) bool {
	switch {
	case strings.HasPrefix(label, "total"),
		strings.HasPrefix(label, "amount due"),
		strings.HasPrefix(label, "balance due"):
		return true
	}
	return false
}

// lookupAny returns the first line item matching any of the label
// substrings, in preference order.
func lookupAny(stmt *ClassifiedStatement, substrs ...string) (LineItem, bool) {
	for _, substr := range substrs {
		if item, ok := stmt.Lookup(substr); ok {
			return item, true
		}
	}
	return LineItem{}, false
}

// comparisonResult builds a completed check result. The comparison happens
// at full precision; exactly MathTolerance still passes.
func comparisonResult(name string, stmt *ClassifiedStatement, period string, expected, actual float64, detail string) MathCheckResult {
	discrepancy := actual - expected
	return MathCheckResult{
		CheckName:     name,
		StatementType: stmt.Type,
		Page:          stmt.Page,
		Period:        period,
		Expected:      &expected,
		Actual:        &actual,
		Discrepancy:   &discrepancy,
		Passed:        math.Abs(discrepancy) <= MathTolerance,
		Detail:        detail,
	}
}

func incompleteResult(name string, stmt *ClassifiedStatement, detail string) MathCheckResult {
	return MathCheckResult{
		CheckName:     name,
		StatementType: stmt.Type,
		Page:          stmt.Page,
		Passed:        false,
		Incomplete:    true,
		Detail:        detail,
	}
}
