package rules

import "github.com/washimkgp/JPW-File-Validator-New-V1/internal/xlsx"

// Resolve returns the first candidate that names an actual column of the
// table. Matching is case-sensitive and exact; the loader has already done
// all the normalization there is. When no candidate matches, ok is false
// and checks depending on the role are skipped; that is policy, not an
// error.
func Resolve(t *xlsx.Table, candidates []string) (string, bool) {
	for _, c := range candidates {
		if t.HasColumn(c) {
			return c, true
		}
	}
	return "", false
}

// resolveRole resolves a configured role against a sheet of the workbook.
func resolveRole(wb *xlsx.Workbook, sheet string, role Role) (string, bool) {
	t, ok := wb.Sheet(sheet)
	if !ok {
		return "", false
	}
	return Resolve(t, Candidates(sheet, role))
}
