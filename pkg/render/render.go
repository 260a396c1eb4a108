// Package render formats record sequences for display: indented JSON
// matching the generated snippets' output, and a width-aware text
// table for terminal viewing.
package render

import (
	"encoding/json"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/tpt/pkg/record"
)

// maxCellWidth caps a single table cell before truncation.
const maxCellWidth = 40

// JSON renders records as an indented JSON array, field order
// preserved. An empty sequence renders as [].
func JSON(records []*record.Record) string {
	if len(records) == 0 {
		return "[]"
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(data)
}

// Table renders records as an aligned text table. All records share a
// field set, so the first record supplies the columns. Cells wider
// than the cap are truncated with an ellipsis; widths are measured in
// terminal cells, not bytes.
func Table(records []*record.Record) string {
	if len(records) == 0 {
		return "(no records)"
	}

	cols := records[0].Fields()
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = runewidth.StringWidth(c)
	}

	cells := make([][]string, len(records))
	for ri, rec := range records {
		row := make([]string, len(cols))
		for ci, c := range cols {
			cell := clip(rec.String(c))
			row[ci] = cell
			if w := runewidth.StringWidth(cell); w > widths[ci] {
				widths[ci] = w
			}
		}
		cells[ri] = row
	}

	var b strings.Builder
	writeRow := func(row []string) {
		for ci, cell := range row {
			if ci > 0 {
				b.WriteString("  ")
			}
			b.WriteString(runewidth.FillRight(cell, widths[ci]))
		}
		b.WriteByte('\n')
	}

	writeRow(cols)
	rule := make([]string, len(cols))
	for i := range cols {
		rule[i] = strings.Repeat("-", widths[i])
	}
	writeRow(rule)
	for _, row := range cells {
		writeRow(row)
	}
	return strings.TrimRight(b.String(), "\n")
}

func clip(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return runewidth.Truncate(s, maxCellWidth, "…")
}
