package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditkit/mcp-pdf-compliance/internal/document"
)

func balanceSheetTable() document.Table {
	return document.Table{
		Page: 3,
		Rows: [][]string{
			{"", "2024", "2023"},
			{"Total Assets", "$1,000.00", "$900.00"},
			{"Total Liabilities", "$600.00", "$550.00"},
			{"Total Equity", "$400.00", "$350.00"},
		},
	}
}

func TestClassifyTables_BalanceSheet(t *testing.T) {
	statements := ClassifyTables([]document.Table{balanceSheetTable()})
	require.Len(t, statements, 1)

	stmt := statements[0]
	assert.Equal(t, StatementBalanceSheet, stmt.Type)
	assert.Equal(t, 3, stmt.Page)
	assert.Equal(t, []string{"2024", "2023"}, stmt.PeriodLabels)
	require.Len(t, stmt.LineItems, 3)

	assets, ok := stmt.Lookup("total assets")
	require.True(t, ok)
	assert.Equal(t, []float64{1000, 900}, assets.Values)
}

func TestClassifyTables_RobustToCaseAndWhitespace(t *testing.T) {
	table := document.Table{
		Page: 1,
		Rows: [][]string{
			{"  TOTAL   Assets ", "  Total LIABILITIES", "Total   Equity  "},
			{"Cash", "100", "200"},
		},
	}

	statements := ClassifyTables([]document.Table{table})
	require.Len(t, statements, 1)
	assert.Equal(t, StatementBalanceSheet, statements[0].Type)
}

func TestClassifyTables_UnclassifiedBelowThreshold(t *testing.T) {
	table := document.Table{
		Page: 2,
		Rows: [][]string{
			{"Component", "Count"},
			{"Widgets", "12"},
			{"Gears", "7"},
		},
	}

	statements := ClassifyTables([]document.Table{table})
	require.Len(t, statements, 1)
	assert.Equal(t, StatementUnclassified, statements[0].Type)
}

func TestClassifyTables_IncomeStatementKeywords(t *testing.T) {
	table := document.Table{
		Page: 5,
		Rows: [][]string{
			{"", "FY2024"},
			{"Revenue", "5,000"},
			{"Expenses", "3,000"},
			{"Net Income", "2,000"},
		},
	}

	statements := ClassifyTables([]document.Table{table})
	require.Len(t, statements, 1)
	assert.Equal(t, StatementIncome, statements[0].Type)
}

func TestClassifyTables_UnparseableRowsDropped(t *testing.T) {
	table := document.Table{
		Page: 1,
		Rows: [][]string{
			{"", "2024", "2023"},
			{"Total Assets", "1,000", "pending"},
			{"Total Liabilities", "600", "550"},
		},
	}

	statements := ClassifyTables([]document.Table{table})
	require.Len(t, statements, 1)

	stmt := statements[0]
	// The assets row has an unparseable 2023 cell: the whole row is dropped
	// rather than zero-filled, preserving one value per period.
	_, ok := stmt.Lookup("total assets")
	assert.False(t, ok)

	liabilities, ok := stmt.Lookup("total liabilities")
	require.True(t, ok)
	assert.Len(t, liabilities.Values, len(stmt.PeriodLabels))
}

func TestClassifyTables_ShortRowsDropped(t *testing.T) {
	table := document.Table{
		Page: 1,
		Rows: [][]string{
			{"", "2024", "2023"},
			{"Total Assets", "1,000"},
		},
	}

	statements := ClassifyTables([]document.Table{table})
	require.Len(t, statements, 1)
	assert.Empty(t, statements[0].LineItems)
}

func TestClassifyTables_DashParsesAsZero(t *testing.T) {
	table := document.Table{
		Page: 1,
		Rows: [][]string{
			{"", "2024", "2023"},
			{"Operating Activities", "500", "-"},
			{"Investing Activities", "(200)", "100"},
			{"Financing Activities", "50", "25"},
		},
	}

	statements := ClassifyTables([]document.Table{table})
	require.Len(t, statements, 1)

	stmt := statements[0]
	assert.Equal(t, StatementCashFlow, stmt.Type)

	operating, ok := stmt.Lookup("operating activities")
	require.True(t, ok)
	assert.Equal(t, []float64{500, 0}, operating.Values)

	investing, ok := stmt.Lookup("investing activities")
	require.True(t, ok)
	assert.Equal(t, []float64{-200, 100}, investing.Values)
}

func TestClassifyTables_EmptyTable(t *testing.T) {
	statements := ClassifyTables([]document.Table{{Page: 1}})
	require.Len(t, statements, 1)
	assert.Equal(t, StatementUnclassified, statements[0].Type)
	assert.Empty(t, statements[0].LineItems)
}
