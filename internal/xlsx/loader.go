package xlsx

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

// placeholderHeader matches the auto-generated names spreadsheet tools
// assign to blank or merged header cells ("Unnamed: 0", "Unnamed: 1", ...).
// Columns with such headers carry no schema meaning and are discarded
// together with their data.
var placeholderHeader = regexp.MustCompile(`^Unnamed: \d+`)

// Parse reads workbook bytes into a Workbook. It is a pure function of its
// input: the same bytes always produce the same Workbook, so callers may
// memoize on input identity.
//
// For each sheet, the first row is the header. Header cells are
// whitespace-trimmed; blank and placeholder headers are dropped along with
// their column data. When two headers collide after trimming, the leftmost
// column wins. Cell values are kept verbatim (no trimming).
func Parse(data []byte) (*Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	defer f.Close()

	wb := NewWorkbook()
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, &LoadError{Err: fmt.Errorf("sheet %q: %w", name, err)}
		}
		wb.Add(buildTable(name, rows))
	}
	return wb, nil
}

// headerColumn ties a surviving column name to its cell position in the
// raw sheet rows.
type headerColumn struct {
	name string
	pos  int
}

func buildTable(name string, raw [][]string) *Table {
	t := &Table{Name: name}
	if len(raw) == 0 {
		return t
	}

	var cols []headerColumn
	seen := make(map[string]bool)
	for pos, h := range raw[0] {
		h = strings.TrimSpace(h)
		if h == "" || placeholderHeader.MatchString(h) {
			continue
		}
		if seen[h] {
			continue
		}
		seen[h] = true
		cols = append(cols, headerColumn{name: h, pos: pos})
		t.Columns = append(t.Columns, h)
	}

	for i, rawRow := range raw[1:] {
		cells := make(map[string]string, len(cols))
		for _, c := range cols {
			if c.pos < len(rawRow) {
				cells[c.name] = rawRow[c.pos]
			} else {
				// Trailing empty cells are elided by the xlsx reader.
				cells[c.name] = ""
			}
		}
		t.Rows = append(t.Rows, Row{Index: i + 2, Cells: cells})
	}
	return t
}
