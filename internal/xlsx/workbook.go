// Package xlsx parses uploaded Excel workbooks into plain in-memory tables.
// It knows nothing about the validation rules; it only normalizes headers
// and preserves row positions so downstream checks can report spreadsheet
// row numbers.
package xlsx

// Row is a single data row of a sheet.
type Row struct {
	// Index is the 1-based spreadsheet row number as the operator sees it
	// in Excel: the header occupies row 1, so the first data row is 2.
	// Assigned once at load time and never recomputed.
	Index int

	// Cells maps column name to the raw cell value. Empty cells are "".
	Cells map[string]string
}

// Cell returns the value for a column, or "" if the column is unknown.
func (r Row) Cell(column string) string {
	return r.Cells[column]
}

// Table is one named sheet: an ordered collection of rows with unique,
// normalized column names. Immutable after loading.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the table has a column with the exact name.
func (t *Table) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Empty reports whether the table has no data rows.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// Workbook maps sheet names to tables, preserving the order the sheets
// appear in the source file. Sheet names are taken verbatim.
type Workbook struct {
	order  []string
	sheets map[string]*Table
}

// NewWorkbook returns an empty workbook.
func NewWorkbook() *Workbook {
	return &Workbook{sheets: make(map[string]*Table)}
}

// Add appends a table under its own name. A second table with the same
// name replaces the first without changing sheet order.
func (w *Workbook) Add(t *Table) {
	if _, exists := w.sheets[t.Name]; !exists {
		w.order = append(w.order, t.Name)
	}
	w.sheets[t.Name] = t
}

// Sheet returns the table for a sheet name.
func (w *Workbook) Sheet(name string) (*Table, bool) {
	t, ok := w.sheets[name]
	return t, ok
}

// SheetNames returns sheet names in source order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, len(w.order))
	copy(names, w.order)
	return names
}

// MissingSheets returns the names from required that are absent from the
// workbook, in the order given.
func (w *Workbook) MissingSheets(required []string) []string {
	var missing []string
	for _, name := range required {
		if _, ok := w.sheets[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
