package compliance

import (
	"strings"

	"github.com/auditkit/mcp-pdf-compliance/internal/document"
)

// minKeywordOverlap is the minimum keyword-set overlap a table must score
// before it is assigned a statement type. Anything below, or any tie
// between two types, stays Unclassified: downstream math checks are
// type-specific, and a wrong type would silently validate the wrong
// equation.
const minKeywordOverlap = 1

// ClassifyTables assigns a statement type to each extracted table by
// keyword overlap between the table's header/label tokens and the per-type
// label sets, then extracts normalized line items with one parsed value
// per period column.
func ClassifyTables(tables []document.Table) []ClassifiedStatement {
	statements := make([]ClassifiedStatement, 0, len(tables))
	for _, table := range tables {
		statements = append(statements, classifyTable(table))
	}
	return statements
}

func classifyTable(table document.Table) ClassifiedStatement {
	stmt := ClassifiedStatement{
		Type:      classifyTokens(tableTokens(table)),
		Page:      table.Page,
		LineItems: []LineItem{},
	}

	if len(table.Rows) == 0 {
		return stmt
	}

	header := table.Rows[0]

	// Period labels are the non-empty header cells after the label column.
	// periodCols remembers which grid column each period maps to.
	var periodCols []int
	for col := 1; col < len(header); col++ {
		if strings.TrimSpace(header[col]) != "" {
			stmt.PeriodLabels = append(stmt.PeriodLabels, strings.TrimSpace(header[col]))
			periodCols = append(periodCols, col)
		}
	}

	for _, row := range table.Rows[1:] {
		if len(row) == 0 {
			continue
		}
		label := NormalizeLabel(row[0])
		if label == "" {
			continue
		}

		// A line item must parse in every period column; rows with
		// unparseable or missing cells are dropped, never zero-filled.
		values := make([]float64, 0, len(periodCols))
		complete := true
		for _, col := range periodCols {
			if col >= len(row) {
				complete = false
				break
			}
			value, ok := ParseAmount(row[col])
			if !ok {
				complete = false
				break
			}
			values = append(values, value)
		}
		if !complete {
			continue
		}

		stmt.LineItems = append(stmt.LineItems, LineItem{Label: label, Values: values})
	}

	return stmt
}

// tableTokens collects the normalized header row and first-column labels,
// the cells the keyword-overlap score inspects.
func tableTokens(table document.Table) string {
	var b strings.Builder
	for i, row := range table.Rows {
		if len(row) == 0 {
			continue
		}
		if i == 0 {
			for _, cell := range row {
				b.WriteString(NormalizeLabel(cell))
				b.WriteByte(' ')
			}
			continue
		}
		b.WriteString(NormalizeLabel(row[0]))
		b.WriteByte(' ')
	}
	return b.String()
}

// classifyTokens scores the token text against each statement type's
// keyword set and returns the unique highest scorer above the minimum
// threshold, else Unclassified.
func classifyTokens(tokens string) StatementType {
	best := StatementUnclassified
	bestScore := 0
	tied := false

	for _, stmtType := range []StatementType{
		StatementBalanceSheet,
		StatementIncome,
		StatementCashFlow,
		StatementInvoice,
	} {
		score := 0
		for _, keyword := range statementKeywords[stmtType] {
			if strings.Contains(tokens, keyword) {
				score++
			}
		}
		switch {
		case score > bestScore:
			best = stmtType
			bestScore = score
			tied = false
		case score == bestScore && score > 0:
			tied = true
		}
	}

	if bestScore < minKeywordOverlap || tied {
		return StatementUnclassified
	}
	return best
}
