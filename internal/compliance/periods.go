package compliance

import "math"

// ExtractComparativePeriods computes period-over-period deltas for every
// statement with at least two period columns. Only adjacent period pairs
// are compared, in the order the table presents them; a line item is only
// comparable when it carries a value in both periods, which the statement
// invariant already guarantees for retained items. The percent change is
// absent when the earlier value is zero rather than reported as infinite.
func ExtractComparativePeriods(statements []ClassifiedStatement) []PeriodDelta {
	deltas := make([]PeriodDelta, 0)

	for _, stmt := range statements {
		if len(stmt.PeriodLabels) < 2 {
			continue
		}

		for _, item := range stmt.LineItems {
			for i := 0; i+1 < len(item.Values); i++ {
				deltas = append(deltas, newPeriodDelta(&stmt, item, i))
			}
		}
	}

	return deltas
}

func newPeriodDelta(stmt *ClassifiedStatement, item LineItem, i int) PeriodDelta {
	valueA := item.Values[i]
	valueB := item.Values[i+1]
	change := valueB - valueA

	var percent *float64
	if valueA != 0 {
		p := change / valueA * 100
		percent = &p
	}

	return PeriodDelta{
		LineItem:       item.Label,
		StatementType:  stmt.Type,
		Page:           stmt.Page,
		PeriodA:        stmt.PeriodLabels[i],
		PeriodB:        stmt.PeriodLabels[i+1],
		ValueA:         valueA,
		ValueB:         valueB,
		AbsoluteChange: change,
		PercentChange:  percent,
		Material:       isMaterial(change, percent),
	}
}

func isMaterial(change float64, percent *float64) bool {
	if math.Abs(change) > MaterialAbsoluteThreshold {
		return true
	}
	return percent != nil && math.Abs(*percent) > MaterialPercentThreshold
}
