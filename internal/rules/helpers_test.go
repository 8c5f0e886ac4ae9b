package rules

import (
	"github.com/washimkgp/JPW-File-Validator-New-V1/internal/xlsx"
)

// makeTable builds a table from a header and data rows, assigning
// spreadsheet row numbers the way the loader does.
func makeTable(name string, columns []string, rows [][]string) *xlsx.Table {
	t := &xlsx.Table{Name: name, Columns: columns}
	for i, r := range rows {
		cells := make(map[string]string, len(columns))
		for j, col := range columns {
			if j < len(r) {
				cells[col] = r[j]
			} else {
				cells[col] = ""
			}
		}
		t.Rows = append(t.Rows, xlsx.Row{Index: i + 2, Cells: cells})
	}
	return t
}

// makeWorkbook assembles tables into a workbook.
func makeWorkbook(tables ...*xlsx.Table) *xlsx.Workbook {
	wb := xlsx.NewWorkbook()
	for _, t := range tables {
		wb.Add(t)
	}
	return wb
}

// consistentWorkbook returns a five-sheet workbook with no duplicates and
// fully satisfied references.
func consistentWorkbook() *xlsx.Workbook {
	return makeWorkbook(
		makeTable(SheetMerchants, []string{"MerchantID", "UserID", "MobileNumber"}, [][]string{
			{"M1", "U10", "7000000001"},
			{"M2", "U11", "7000000002"},
		}),
		makeTable(SheetPartners, []string{"PartnerID", "UserID", "MobileNumber"}, [][]string{
			{"P1", "U20", "8000000001"},
			{"P2", "U21", "8000000002"},
		}),
		makeTable(SheetPartnerMerchantMapping, []string{"PartnerID", "MerchantID"}, [][]string{
			{"P1", "M1"},
			{"P2", "M2"},
		}),
		makeTable(SheetLead, []string{"LeadID", "UserID", "MobileNumber"}, [][]string{
			{"L1", "U30", "9000000001"},
			{"L2", "U31", "9000000002"},
		}),
		makeTable(SheetLeadPartnerMapping, []string{"LeadID", "PartnerID"}, [][]string{
			{"L1", "P1"},
			{"L2", "P2"},
		}),
	)
}
