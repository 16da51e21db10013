package cli

import "strings"

// table is a simple column formatter with dynamic widths, used by the
// palette command. Swatch cells carry ANSI escapes, so width
// accounting uses the caller-supplied display width rather than the
// raw string length.
type table struct {
	headers []string
	rows    [][]cell
	padding int
}

// cell is one table entry. displayWidth overrides len(text) when the
// text contains escape sequences; zero means use len(text).
type cell struct {
	text         string
	displayWidth int
}

func plainCell(text string) cell {
	return cell{text: text}
}

func (c cell) width() int {
	if c.displayWidth > 0 {
		return c.displayWidth
	}
	return len(c.text)
}

// newTable creates a table with the given headers.
func newTable(headers []string) *table {
	return &table{
		headers: headers,
		padding: 2,
	}
}

// addRow appends a row; short rows are padded with empty cells.
func (t *table) addRow(row []cell) {
	for len(row) < len(t.headers) {
		row = append(row, plainCell(""))
	}
	t.rows = append(t.rows, row[:len(t.headers)])
}

// render formats the table with a header line and dashed separator.
func (t *table) render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, c := range row {
			if c.width() > widths[i] {
				widths[i] = c.width()
			}
		}
	}

	gap := strings.Repeat(" ", t.padding)
	var b strings.Builder

	parts := make([]string, len(t.headers))
	for i, h := range t.headers {
		parts[i] = padCell(plainCell(h), widths[i])
	}
	b.WriteString(strings.Join(parts, gap))
	b.WriteString("\n")

	for i, w := range widths {
		parts[i] = strings.Repeat("-", w)
	}
	b.WriteString(strings.Join(parts, gap))
	b.WriteString("\n")

	for _, row := range t.rows {
		for i, c := range row {
			parts[i] = padCell(c, widths[i])
		}
		b.WriteString(strings.Join(parts, gap))
		b.WriteString("\n")
	}
	return b.String()
}

// padCell pads a cell with spaces on the right to the column width.
func padCell(c cell, width int) string {
	if c.width() >= width {
		return c.text
	}
	return c.text + strings.Repeat(" ", width-c.width())
}
