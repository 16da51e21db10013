package cli

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	tbl := newTable([]string{"NAME", "CODE", "HEX"})
	tbl.addRow([]cell{plainCell("alert"), plainCell("r"), plainCell("#f00")})
	tbl.addRow([]cell{plainCell("surface"), plainCell("asss"), plainCell("#111")})

	out := tbl.render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (header, separator, 2 rows), got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "NAME") {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "---") {
		t.Errorf("separator line = %q", lines[1])
	}
	// Columns align: CODE starts at the same offset in every row.
	headerIdx := strings.Index(lines[0], "CODE")
	rowIdx := strings.Index(lines[2], "r ")
	if headerIdx != rowIdx {
		t.Errorf("column misaligned: header at %d, row at %d:\n%s", headerIdx, rowIdx, out)
	}
}

func TestTablePadsShortRows(t *testing.T) {
	tbl := newTable([]string{"A", "B"})
	tbl.addRow([]cell{plainCell("only")})
	if got := len(tbl.rows[0]); got != 2 {
		t.Errorf("row padded to %d cells, want 2", got)
	}
}

func TestTableEscapeAwareWidth(t *testing.T) {
	// A swatch cell's escape sequences must not inflate its column.
	tbl := newTable([]string{"X", "Y"})
	sw := "\033[48;2;255;0;0m    \033[0m"
	tbl.addRow([]cell{{text: sw, displayWidth: 4}, plainCell("end")})

	out := tbl.render()
	lines := strings.Split(out, "\n")
	// Header columns are sized from display widths: "X" pads to 4.
	if !strings.HasPrefix(lines[0], "X   ") {
		t.Errorf("header line = %q, want swatch-width first column", lines[0])
	}
}
