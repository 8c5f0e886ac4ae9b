package rules

import "github.com/washimkgp/JPW-File-Validator-New-V1/internal/xlsx"

// FindUnreferenced reports every child row whose non-empty key value does
// not appear anywhere in the parent column. Membership is set-based, so
// neither row order nor multiplicity in the parent matters. Rows with an
// empty key are skipped; an empty child table is vacuously clean.
//
// The caller is responsible for the precondition that both columns
// resolved: an unresolved column must skip the check entirely rather than
// reach this function.
func FindUnreferenced(child *xlsx.Table, childCol string, parent *xlsx.Table, parentCol string, errorType, entityLabel string, message func(value string) string) []ErrorRecord {
	if child == nil {
		return nil
	}

	known := make(map[string]struct{})
	if parent != nil {
		for _, row := range parent.Rows {
			if v := row.Cell(parentCol); v != "" {
				known[v] = struct{}{}
			}
		}
	}

	var records []ErrorRecord
	for _, row := range child.Rows {
		v := row.Cell(childCol)
		if v == "" {
			continue
		}
		if _, ok := known[v]; ok {
			continue
		}
		records = append(records, ErrorRecord{
			Sheet:     child.Name,
			RowIndex:  row.Index,
			ErrorType: errorType,
			Entity:    entityLabel,
			Message:   message(v),
		})
	}
	return records
}
