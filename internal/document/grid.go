package document

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	// Text runs whose baselines differ by less than this are on the same line
	lineTolerance = 2.0
	// Horizontal gap (in points) that separates two cells on a line
	cellGapThreshold = 12.0
	// A table needs at least this many consecutive multi-cell lines
	minTableRows = 2
)

// textRun is a positioned fragment of page text
type textRun struct {
	x, y, w float64
	s       string
}

// detectTables reconstructs table grids from the positioned text runs of a
// page. Runs are clustered into lines by baseline, lines are split into
// cells at large horizontal gaps, and consecutive multi-cell lines are
// grouped into one table.
func detectTables(pageNum int, content pdf.Content) []Table {
	runs := make([]textRun, 0, len(content.Text))
	for _, t := range content.Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		runs = append(runs, textRun{x: t.X, y: t.Y, w: t.W, s: t.S})
	}
	if len(runs) == 0 {
		return nil
	}

	lines := clusterLines(runs)

	var tables []Table
	var current [][]string
	flush := func() {
		if len(current) >= minTableRows {
			tables = append(tables, Table{Page: pageNum, Rows: current})
		}
		current = nil
	}

	for _, line := range lines {
		cells := splitCells(line)
		if len(cells) >= 2 {
			current = append(current, cells)
		} else {
			flush()
		}
	}
	flush()

	return tables
}

// clusterLines groups runs by baseline and orders them top-down, left-right.
// PDF coordinates grow upward, so a larger Y means an earlier line.
func clusterLines(runs []textRun) [][]textRun {
	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].y != runs[j].y {
			return runs[i].y > runs[j].y
		}
		return runs[i].x < runs[j].x
	})

	var lines [][]textRun
	for _, run := range runs {
		if len(lines) > 0 {
			last := lines[len(lines)-1]
			if last[0].y-run.y < lineTolerance {
				lines[len(lines)-1] = append(last, run)
				continue
			}
		}
		lines = append(lines, []textRun{run})
	}

	for _, line := range lines {
		sort.SliceStable(line, func(i, j int) bool { return line[i].x < line[j].x })
	}

	return lines
}

// splitCells merges adjacent runs into cells, starting a new cell whenever
// the horizontal gap to the previous run exceeds the cell threshold.
func splitCells(line []textRun) []string {
	var cells []string
	var cell strings.Builder
	prevEnd := 0.0

	for i, run := range line {
		if i > 0 && run.x-prevEnd > cellGapThreshold {
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
		}
		cell.WriteString(run.s)
		width := run.w
		if width == 0 {
			width = approxWidth(run.s)
		}
		prevEnd = run.x + width
	}
	if cell.Len() > 0 {
		cells = append(cells, strings.TrimSpace(cell.String()))
	}

	out := cells[:0]
	for _, c := range cells {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// approxWidth estimates the rendered width of a run when the extractor
// reports none. 5pt per character is close enough for gap detection.
func approxWidth(s string) float64 {
	return float64(len(s)) * 5.0
}
