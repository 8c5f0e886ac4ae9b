package rules

import (
	"encoding/csv"
	"io"
	"strconv"
)

// ReportHeader is the column order of the error summary CSV.
var ReportHeader = []string{"sheet", "row_index", "error_type", "entity", "message"}

// WriteCSV writes the error summary as UTF-8 CSV. The header row is always
// written, so a clean run produces a header-only document. encoding/csv
// handles quoting of embedded commas and quotes.
func WriteCSV(w io.Writer, records []ErrorRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ReportHeader); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.Sheet,
			strconv.Itoa(rec.RowIndex),
			rec.ErrorType,
			rec.Entity,
			rec.Message,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
