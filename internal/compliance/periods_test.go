package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractComparativePeriods_MaterialByBoth(t *testing.T) {
	stmt := statement(StatementIncome, []string{"2023", "2024"},
		LineItem{Label: "total revenue", Values: []float64{1000000, 1150000}},
	)

	deltas := ExtractComparativePeriods([]ClassifiedStatement{stmt})
	require.Len(t, deltas, 1)

	d := deltas[0]
	assert.Equal(t, "total revenue", d.LineItem)
	assert.Equal(t, "2023", d.PeriodA)
	assert.Equal(t, "2024", d.PeriodB)
	assert.InDelta(t, 150000, d.AbsoluteChange, 1e-9)
	require.NotNil(t, d.PercentChange)
	assert.InDelta(t, 15, *d.PercentChange, 1e-9)
	assert.True(t, d.Material)
}

func TestExtractComparativePeriods_SmallChangeNotMaterial(t *testing.T) {
	stmt := statement(StatementIncome, []string{"2023", "2024"},
		LineItem{Label: "net income", Values: []float64{500, 520}},
	)

	deltas := ExtractComparativePeriods([]ClassifiedStatement{stmt})
	require.Len(t, deltas, 1)

	d := deltas[0]
	assert.InDelta(t, 20, d.AbsoluteChange, 1e-9)
	require.NotNil(t, d.PercentChange)
	assert.InDelta(t, 4, *d.PercentChange, 1e-9)
	assert.False(t, d.Material)
}

func TestExtractComparativePeriods_PercentDrivesMateriality(t *testing.T) {
	// Absolute change is small but the relative move is over 10 percent.
	stmt := statement(StatementBalanceSheet, []string{"2023", "2024"},
		LineItem{Label: "deferred revenue", Values: []float64{100, 120}},
	)

	deltas := ExtractComparativePeriods([]ClassifiedStatement{stmt})
	require.Len(t, deltas, 1)
	assert.True(t, deltas[0].Material)
}

func TestExtractComparativePeriods_ZeroBaseOmitsPercent(t *testing.T) {
	stmt := statement(StatementBalanceSheet, []string{"2023", "2024"},
		LineItem{Label: "new credit facility", Values: []float64{0, 50000}},
	)

	deltas := ExtractComparativePeriods([]ClassifiedStatement{stmt})
	require.Len(t, deltas, 1)

	d := deltas[0]
	assert.Nil(t, d.PercentChange)
	assert.InDelta(t, 50000, d.AbsoluteChange, 1e-9)
	assert.False(t, d.Material)
}

func TestExtractComparativePeriods_AdjacentPairsOnly(t *testing.T) {
	stmt := statement(StatementIncome, []string{"Q1", "Q2", "Q3"},
		LineItem{Label: "revenue", Values: []float64{100, 200, 300}},
	)

	deltas := ExtractComparativePeriods([]ClassifiedStatement{stmt})
	require.Len(t, deltas, 2)
	assert.Equal(t, "Q1", deltas[0].PeriodA)
	assert.Equal(t, "Q2", deltas[0].PeriodB)
	assert.Equal(t, "Q2", deltas[1].PeriodA)
	assert.Equal(t, "Q3", deltas[1].PeriodB)
}

func TestExtractComparativePeriods_SinglePeriodSkipped(t *testing.T) {
	stmt := statement(StatementIncome, []string{"2024"},
		LineItem{Label: "revenue", Values: []float64{100}},
	)

	deltas := ExtractComparativePeriods([]ClassifiedStatement{stmt})
	assert.Empty(t, deltas)
}

func TestExtractComparativePeriods_NegativeSwing(t *testing.T) {
	stmt := statement(StatementIncome, []string{"2023", "2024"},
		LineItem{Label: "net income", Values: []float64{200000, -50000}},
	)

	deltas := ExtractComparativePeriods([]ClassifiedStatement{stmt})
	require.Len(t, deltas, 1)

	d := deltas[0]
	assert.InDelta(t, -250000, d.AbsoluteChange, 1e-9)
	require.NotNil(t, d.PercentChange)
	assert.InDelta(t, -125, *d.PercentChange, 1e-9)
	assert.True(t, d.Material)
}
