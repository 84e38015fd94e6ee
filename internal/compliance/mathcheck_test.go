package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statement(stmtType StatementType, periods []string, items ...LineItem) ClassifiedStatement {
	return ClassifiedStatement{
		Type:         stmtType,
		Page:         2,
		PeriodLabels: periods,
		LineItems:    items,
	}
}

func findCheck(t *testing.T, results []MathCheckResult, name, period string) MathCheckResult {
	t.Helper()
	for _, r := range results {
		if r.CheckName == name && r.Period == period {
			return r
		}
	}
	t.Fatalf("no %s result for period %q", name, period)
	return MathCheckResult{}
}

func TestValidateFinancialMath_BalanceSheetPasses(t *testing.T) {
	stmt := statement(StatementBalanceSheet, []string{"2024"},
		LineItem{Label: "total assets", Values: []float64{1000}},
		LineItem{Label: "total liabilities", Values: []float64{600}},
		LineItem{Label: "total equity", Values: []float64{400}},
	)

	results := ValidateFinancialMath([]ClassifiedStatement{stmt})
	check := findCheck(t, results, "balance_sheet_equation", "2024")

	assert.True(t, check.Passed)
	assert.False(t, check.Incomplete)
	require.NotNil(t, check.Discrepancy)
	assert.InDelta(t, 0, *check.Discrepancy, 1e-9)
	assert.Equal(t, 2, check.Page)
}

func TestValidateFinancialMath_BalanceSheetDiscrepancy(t *testing.T) {
	stmt := statement(StatementBalanceSheet, []string{"2024"},
		LineItem{Label: "total assets", Values: []float64{1000}},
		LineItem{Label: "total liabilities", Values: []float64{600}},
		LineItem{Label: "total equity", Values: []float64{399}},
	)

	results := ValidateFinancialMath([]ClassifiedStatement{stmt})
	check := findCheck(t, results, "balance_sheet_equation", "2024")

	assert.False(t, check.Passed)
	require.NotNil(t, check.Expected)
	require.NotNil(t, check.Actual)
	require.NotNil(t, check.Discrepancy)
	assert.InDelta(t, 999, *check.Expected, 1e-9)
	assert.InDelta(t, 1000, *check.Actual, 1e-9)
	assert.InDelta(t, 1.0, *check.Discrepancy, 1e-9)
}

func TestValidateFinancialMath_ToleranceIsInclusive(t *testing.T) {
	cases := []struct {
		name   string
		equity float64
		passed bool
	}{
		{"exactly at tolerance", 400.01, true},
		{"just past tolerance", 400.02, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stmt := statement(StatementBalanceSheet, []string{"2024"},
				LineItem{Label: "total assets", Values: []float64{1000}},
				LineItem{Label: "total liabilities", Values: []float64{600}},
				LineItem{Label: "total equity", Values: []float64{tc.equity}},
			)
			results := ValidateFinancialMath([]ClassifiedStatement{stmt})
			check := findCheck(t, results, "balance_sheet_equation", "2024")
			assert.Equal(t, tc.passed, check.Passed)
		})
	}
}

func TestValidateFinancialMath_BalanceSheetIncomplete(t *testing.T) {
	stmt := statement(StatementBalanceSheet, []string{"2024"},
		LineItem{Label: "total assets", Values: []float64{1000}},
	)

	results := ValidateFinancialMath([]ClassifiedStatement{stmt})
	require.Len(t, results, 1)

	check := results[0]
	assert.Equal(t, "balance_sheet_equation", check.CheckName)
	assert.True(t, check.Incomplete)
	assert.False(t, check.Passed)
	assert.Nil(t, check.Expected)
	assert.Nil(t, check.Actual)
	assert.Nil(t, check.Discrepancy)
}

func TestValidateFinancialMath_IncomeStatement(t *testing.T) {
	stmt := statement(StatementIncome, []string{"FY2024", "FY2023"},
		LineItem{Label: "total revenue", Values: []float64{5000, 4000}},
		LineItem{Label: "total operating expenses", Values: []float64{3000, 2500}},
		LineItem{Label: "net income", Values: []float64{2000, 1400}},
	)

	results := ValidateFinancialMath([]ClassifiedStatement{stmt})

	current := findCheck(t, results, "income_statement_equation", "FY2024")
	assert.True(t, current.Passed)

	prior := findCheck(t, results, "income_statement_equation", "FY2023")
	assert.False(t, prior.Passed)
	require.NotNil(t, prior.Discrepancy)
	assert.InDelta(t, -100, *prior.Discrepancy, 1e-9)
}

func TestValidateFinancialMath_NetLossAccepted(t *testing.T) {
	stmt := statement(StatementIncome, []string{"2024"},
		LineItem{Label: "revenue", Values: []float64{1000}},
		LineItem{Label: "expenses", Values: []float64{1500}},
		LineItem{Label: "net loss", Values: []float64{-500}},
	)

	results := ValidateFinancialMath([]ClassifiedStatement{stmt})
	check := findCheck(t, results, "income_statement_equation", "2024")
	assert.True(t, check.Passed)
}

func TestValidateFinancialMath_ColumnSums(t *testing.T) {
	stmt := statement(StatementInvoice, []string{"Amount"},
		LineItem{Label: "consulting services", Values: []float64{1200}},
		LineItem{Label: "software license", Values: []float64{800}},
		LineItem{Label: "total due", Values: []float64{2000}},
	)

	results := ValidateFinancialMath([]ClassifiedStatement{stmt})
	check := findCheck(t, results, "column_sum", "Amount")
	assert.True(t, check.Passed)
}

func TestValidateFinancialMath_ColumnSumMismatch(t *testing.T) {
	stmt := statement(StatementInvoice, []string{"Amount"},
		LineItem{Label: "consulting services", Values: []float64{1200}},
		LineItem{Label: "software license", Values: []float64{800}},
		LineItem{Label: "amount due", Values: []float64{2100}},
	)

	results := ValidateFinancialMath([]ClassifiedStatement{stmt})
	check := findCheck(t, results, "column_sum", "Amount")
	assert.False(t, check.Passed)
	require.NotNil(t, check.Discrepancy)
	assert.InDelta(t, 100, *check.Discrepancy, 1e-9)
}

func TestValidateFinancialMath_ColumnSumSkippedWithMultipleTotals(t *testing.T) {
	// A balance sheet carries several total rows; summing them all against
	// the last one is meaningless, so only the identity check should run.
	stmt := statement(StatementBalanceSheet, []string{"2024"},
		LineItem{Label: "total assets", Values: []float64{1000}},
		LineItem{Label: "total liabilities", Values: []float64{600}},
		LineItem{Label: "total equity", Values: []float64{400}},
	)

	results := ValidateFinancialMath([]ClassifiedStatement{stmt})
	for _, r := range results {
		assert.NotEqual(t, "column_sum", r.CheckName)
	}
}

func TestValidateFinancialMath_RowSums(t *testing.T) {
	stmt := statement(StatementUnclassified, []string{"Q1", "Q2", "Total"},
		LineItem{Label: "segment revenue", Values: []float64{100, 200, 300}},
		LineItem{Label: "segment costs", Values: []float64{50, 75, 130}},
	)

	results := ValidateFinancialMath([]ClassifiedStatement{stmt})

	revenue := findCheck(t, results, "row_sum", "segment revenue")
	assert.True(t, revenue.Passed)

	costs := findCheck(t, results, "row_sum", "segment costs")
	assert.False(t, costs.Passed)
	require.NotNil(t, costs.Discrepancy)
	assert.InDelta(t, 5, *costs.Discrepancy, 1e-9)
}

func TestValidateFinancialMath_RowSumsRequireTotalColumn(t *testing.T) {
	stmt := statement(StatementUnclassified, []string{"Q1", "Q2"},
		LineItem{Label: "segment revenue", Values: []float64{100, 200}},
	)

	results := ValidateFinancialMath([]ClassifiedStatement{stmt})
	assert.Empty(t, results)
}

func TestValidateFinancialMath_UnclassifiedSkipsIdentityChecks(t *testing.T) {
	stmt := statement(StatementUnclassified, []string{"2024"},
		LineItem{Label: "widgets", Values: []float64{12}},
		LineItem{Label: "gears", Values: []float64{7}},
	)

	results := ValidateFinancialMath([]ClassifiedStatement{stmt})
	for _, r := range results {
		assert.NotEqual(t, "balance_sheet_equation", r.CheckName)
		assert.NotEqual(t, "income_statement_equation", r.CheckName)
	}
}
