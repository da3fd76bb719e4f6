package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders aligned columns. Cell widths are measured with
// lipgloss.Width so styled cells line up with plain ones.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		padding: 2,
	}
}

// AddRow adds a row, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	newRow := make([]string, len(t.headers))
	copy(newRow, row)
	t.rows = append(t.rows, newRow)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	colWidths := make([]int, len(t.headers))
	for i, h := range t.headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	sep := strings.Repeat(" ", t.padding)
	var result strings.Builder

	writeLine := func(cells []string) {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = padRight(c, colWidths[i])
		}
		result.WriteString(strings.TrimRight(strings.Join(parts, sep), " "))
		result.WriteString("\n")
	}

	writeLine(t.headers)

	dashes := make([]string, len(colWidths))
	for i, w := range colWidths {
		dashes[i] = strings.Repeat("-", w)
	}
	writeLine(dashes)

	for _, row := range t.rows {
		writeLine(row)
	}

	return result.String()
}

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
