package xlsx

import (
	"errors"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

// sheetSpec describes one sheet of a test workbook: a header row followed
// by data rows.
type sheetSpec struct {
	name string
	rows [][]interface{}
}

// buildWorkbook writes the sheets to an in-memory xlsx file and returns
// its bytes.
func buildWorkbook(t *testing.T, sheets []sheetSpec) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for _, s := range sheets {
		if _, err := f.NewSheet(s.name); err != nil {
			t.Fatalf("NewSheet(%q): %v", s.name, err)
		}
		for i, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName: %v", err)
			}
			if err := f.SetSheetRow(s.name, cell, &row); err != nil {
				t.Fatalf("SetSheetRow(%q, %s): %v", s.name, cell, err)
			}
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		t.Fatalf("DeleteSheet: %v", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	return buf.Bytes()
}

func TestParse_HeaderNormalization(t *testing.T) {
	data := buildWorkbook(t, []sheetSpec{
		{
			name: "Lead",
			rows: [][]interface{}{
				{"  LeadID  ", "Unnamed: 1", "MobileNumber", ""},
				{"L1", "junk", "9999999999", "more junk"},
			},
		},
	})

	wb, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	table, ok := wb.Sheet("Lead")
	if !ok {
		t.Fatal("sheet Lead not found")
	}

	want := []string{"LeadID", "MobileNumber"}
	if !reflect.DeepEqual(table.Columns, want) {
		t.Errorf("Columns = %v, want %v", table.Columns, want)
	}

	// Dropped columns lose their data, not just their header
	if len(table.Rows) != 1 {
		t.Fatalf("len(Rows) = %d, want 1", len(table.Rows))
	}
	row := table.Rows[0]
	if got := row.Cell("LeadID"); got != "L1" {
		t.Errorf("LeadID = %q, want %q", got, "L1")
	}
	if got := row.Cell("Unnamed: 1"); got != "" {
		t.Errorf("dropped column still readable: %q", got)
	}
}

func TestParse_DuplicateHeaderFirstWins(t *testing.T) {
	data := buildWorkbook(t, []sheetSpec{
		{
			name: "Partners",
			rows: [][]interface{}{
				{"PartnerID", " PartnerID "},
				{"first", "second"},
			},
		},
	})

	wb, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	table, _ := wb.Sheet("Partners")
	if len(table.Columns) != 1 {
		t.Fatalf("Columns = %v, want single PartnerID", table.Columns)
	}
	if got := table.Rows[0].Cell("PartnerID"); got != "first" {
		t.Errorf("PartnerID = %q, want %q (leftmost column wins)", got, "first")
	}
}

func TestParse_RowIndexStartsAtTwo(t *testing.T) {
	data := buildWorkbook(t, []sheetSpec{
		{
			name: "Merchants",
			rows: [][]interface{}{
				{"MerchantID"},
				{"M1"},
				{"M2"},
				{"M3"},
			},
		},
	})

	wb, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	table, _ := wb.Sheet("Merchants")
	for i, row := range table.Rows {
		if want := i + 2; row.Index != want {
			t.Errorf("Rows[%d].Index = %d, want %d", i, row.Index, want)
		}
	}
}

func TestParse_ShortRowsReadAsEmpty(t *testing.T) {
	data := buildWorkbook(t, []sheetSpec{
		{
			name: "Lead",
			rows: [][]interface{}{
				{"LeadID", "UserID", "MobileNumber"},
				{"L1"},
			},
		},
	})

	wb, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	table, _ := wb.Sheet("Lead")
	row := table.Rows[0]
	if got := row.Cell("UserID"); got != "" {
		t.Errorf("UserID = %q, want empty", got)
	}
	if got := row.Cell("MobileNumber"); got != "" {
		t.Errorf("MobileNumber = %q, want empty", got)
	}
}

func TestParse_SheetOrderAndVerbatimNames(t *testing.T) {
	data := buildWorkbook(t, []sheetSpec{
		{name: "Zeta", rows: [][]interface{}{{"A"}}},
		{name: "alpha sheet", rows: [][]interface{}{{"B"}}},
		{name: "Leadpartnermapping", rows: [][]interface{}{{"LeadID"}}},
	})

	wb, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{"Zeta", "alpha sheet", "Leadpartnermapping"}
	if got := wb.SheetNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("SheetNames() = %v, want %v", got, want)
	}
}

func TestParse_HeaderOnlySheetIsEmpty(t *testing.T) {
	data := buildWorkbook(t, []sheetSpec{
		{name: "Lead", rows: [][]interface{}{{"LeadID", "MobileNumber"}}},
	})

	wb, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	table, _ := wb.Sheet("Lead")
	if !table.Empty() {
		t.Errorf("Empty() = false, want true")
	}
	if len(table.Columns) != 2 {
		t.Errorf("Columns = %v, want 2 entries", table.Columns)
	}
}

func TestParse_InvalidBytes(t *testing.T) {
	_, err := Parse([]byte("this is not a workbook"))
	if err == nil {
		t.Fatal("Parse() expected error for invalid bytes")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Errorf("error type = %T, want *LoadError", err)
	}
}

func TestParse_Deterministic(t *testing.T) {
	data := buildWorkbook(t, []sheetSpec{
		{
			name: "Partners",
			rows: [][]interface{}{
				{"PartnerID", "MobileNumber"},
				{"P1", "111"},
				{"P2", "222"},
			},
		},
	})

	first, err := Parse(data)
	if err != nil {
		t.Fatalf("first Parse() error = %v", err)
	}
	second, err := Parse(data)
	if err != nil {
		t.Fatalf("second Parse() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("Parse() is not deterministic for identical input")
	}
}

func TestCheckRequiredSheets(t *testing.T) {
	wb := NewWorkbook()
	wb.Add(&Table{Name: "Merchants"})
	wb.Add(&Table{Name: "Partners"})
	wb.Add(&Table{Name: "Lead"})

	required := []string{"Merchants", "Partners", "PartnerMerchantMapping", "Lead", "Leadpartnermapping"}

	err := CheckRequiredSheets(wb, required)
	if err == nil {
		t.Fatal("CheckRequiredSheets() expected error")
	}

	var missingErr *MissingSheetsError
	if !errors.As(err, &missingErr) {
		t.Fatalf("error type = %T, want *MissingSheetsError", err)
	}

	want := []string{"PartnerMerchantMapping", "Leadpartnermapping"}
	if !reflect.DeepEqual(missingErr.Missing, want) {
		t.Errorf("Missing = %v, want %v", missingErr.Missing, want)
	}
	if got := err.Error(); got != "Missing required sheets: PartnerMerchantMapping, Leadpartnermapping" {
		t.Errorf("Error() = %q", got)
	}
}

func TestCheckRequiredSheets_AllPresent(t *testing.T) {
	wb := NewWorkbook()
	for _, name := range []string{"Merchants", "Partners", "PartnerMerchantMapping", "Lead", "Leadpartnermapping"} {
		wb.Add(&Table{Name: name})
	}

	if err := CheckRequiredSheets(wb, []string{"Merchants", "Partners", "PartnerMerchantMapping", "Lead", "Leadpartnermapping"}); err != nil {
		t.Errorf("CheckRequiredSheets() error = %v, want nil", err)
	}
}
