package rules

import (
	"fmt"

	"github.com/washimkgp/JPW-File-Validator-New-V1/internal/xlsx"
)

// FindDuplicates reports every row whose value in one of the given columns
// is shared with at least one other row, including the first occurrence of
// each duplicated value: a group of k equal values yields k records.
//
// Empty values never participate in duplicate groups. Records follow the
// table's original row order; when several columns are checked, each
// column's records form a contiguous block in the order the columns were
// passed. Unresolved columns (empty name or absent from the table)
// contribute nothing.
func FindDuplicates(t *xlsx.Table, columns []string, sheetLabel, entityLabel string) []ErrorRecord {
	var records []ErrorRecord
	for _, col := range columns {
		if col == "" || !t.HasColumn(col) {
			continue
		}

		counts := make(map[string]int, len(t.Rows))
		for _, row := range t.Rows {
			if v := row.Cell(col); v != "" {
				counts[v]++
			}
		}

		for _, row := range t.Rows {
			v := row.Cell(col)
			if v == "" || counts[v] < 2 {
				continue
			}
			records = append(records, ErrorRecord{
				Sheet:     sheetLabel,
				RowIndex:  row.Index,
				ErrorType: "Duplicate " + col,
				Entity:    entityLabel,
				Message:   fmt.Sprintf("Value '%s' in column '%s' appears more than once", v, col),
			})
		}
	}
	return records
}
