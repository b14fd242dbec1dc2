package sheetread

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// testLayout keeps fixtures small: foods start right after the named
// columns instead of at the production offset.
var testLayout = Layout{
	TestTime:    1,
	Project:     2,
	PatientID:   3,
	PatientName: 4,
	Gender:      5,
	Age:         6,
	Inspector:   7,
	Reviewer:    8,
	FoodStart:   9,
}

func writeCSV(t *testing.T, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "results.csv")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestReadFile_CSV(t *testing.T) {
	path := writeCSV(t, []string{
		"Time,Project,ID,Name,Gender,Age,Inspector,Reviewer,Chicken,Beef",
		"2026-08-10,IgG-F2-1,P001,Ann,F,30,Alice,Brian,12.5,60",
		",,,,,,,,,", // fully empty row, dropped
		"2026-08-11,IgG-F2-1,P002,Ben,M,41,Alice,Brian,210,",
	})

	rows, err := ReadFile(path, testLayout)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	first := rows[0]
	if first.SourceRow != 2 {
		t.Errorf("first row source = %d, want 2", first.SourceRow)
	}
	if first.PatientName != "Ann" || first.ProjectCode != "IgG-F2-1" {
		t.Errorf("unexpected first row: %+v", first)
	}
	if len(first.Concentrations) != 2 || first.Concentrations[0] != "12.5" {
		t.Errorf("unexpected concentrations: %v", first.Concentrations)
	}

	// The empty line was dropped but row numbering follows the workbook.
	if rows[1].SourceRow != 4 {
		t.Errorf("second row source = %d, want 4", rows[1].SourceRow)
	}
}

func TestReadFile_Excel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	header := []interface{}{"Time", "Project", "ID", "Name", "Gender", "Age", "Inspector", "Reviewer", "Chicken", "Beef"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatalf("set header: %v", err)
	}
	row := []interface{}{"2026-08-10", "IgG-F2-1", "P001", "Ann", "F", 30, "Alice", "Brian", 12.5, 60}
	if err := f.SetSheetRow(sheet, "A2", &row); err != nil {
		t.Fatalf("set row: %v", err)
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	f.Close()

	rows, err := ReadFile(path, testLayout)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].PatientName != "Ann" || rows[0].Age != "30" {
		t.Errorf("unexpected row: %+v", rows[0])
	}
	if len(rows[0].Concentrations) != 2 {
		t.Errorf("concentrations: %v", rows[0].Concentrations)
	}
}

func TestReadFile_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.parquet")
	os.WriteFile(path, []byte("x"), 0o644)
	if _, err := ReadFile(path, testLayout); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestReadFile_TooNarrow(t *testing.T) {
	path := writeCSV(t, []string{
		"Time,Project,ID",
		"2026-08-10,IgG-F2-1,P001",
	})
	_, err := ReadFile(path, testLayout)
	if err == nil || !strings.Contains(err.Error(), "columns") {
		t.Fatalf("expected column-width error, got %v", err)
	}
}

func TestLayout_Validate(t *testing.T) {
	if err := DefaultLayout.Validate(); err != nil {
		t.Errorf("DefaultLayout invalid: %v", err)
	}

	bad := testLayout
	bad.Reviewer = 12 // inside the food region
	if err := bad.Validate(); err == nil {
		t.Error("expected error for field overlapping food region")
	}

	bad = testLayout
	bad.Project = 0
	if err := bad.Validate(); err == nil {
		t.Error("expected error for non-positive column")
	}
}

func TestRowFromLine_ShortLine(t *testing.T) {
	// A line ending before the food region yields no concentrations and
	// empty named fields, left for the extractor to report.
	row := rowFromLine([]string{"2026-08-10", "IgG-F2-1"}, testLayout, 5)
	if row.PatientName != "" {
		t.Errorf("patient name = %q, want empty", row.PatientName)
	}
	if len(row.Concentrations) != 0 {
		t.Errorf("concentrations = %v, want none", row.Concentrations)
	}
	if row.SourceRow != 5 {
		t.Errorf("source row = %d", row.SourceRow)
	}
}
