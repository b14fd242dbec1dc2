package sheetread

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/gyeh/igreport/internal/model"
)

// ReadFile reads a results workbook into RawRows, dispatching on file
// extension: .xlsx/.xlsm via excelize, .csv via encoding/csv. The first
// row is the header region and is skipped; fully empty rows are dropped.
// Rows are returned in workbook order.
func ReadFile(path string, layout Layout) ([]model.RawRow, error) {
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readExcel(path, layout)
	case ".csv":
		return readCSV(path, layout)
	default:
		return nil, fmt.Errorf("unsupported input format %q (want .xlsx, .xlsm or .csv)", filepath.Ext(path))
	}
}

func readExcel(path string, layout Layout) ([]model.RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", filepath.Base(path))
	}

	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	return rowsFromCells(cells, layout)
}

func readCSV(path string, layout Layout) ([]model.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // rows may have ragged trailing food columns

	cells, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return rowsFromCells(cells, layout)
}

func rowsFromCells(cells [][]string, layout Layout) ([]model.RawRow, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("input has no rows")
	}
	if err := checkWidth(cells, layout); err != nil {
		return nil, err
	}

	rows := make([]model.RawRow, 0, len(cells)-1)
	for i, line := range cells[1:] {
		if emptyLine(line) {
			continue
		}
		rows = append(rows, rowFromLine(line, layout, i+2))
	}
	return rows, nil
}

// rowFromLine maps one cell line to a RawRow. sourceRow is the 1-based
// workbook row number.
func rowFromLine(line []string, layout Layout, sourceRow int) model.RawRow {
	cell := func(col int) string {
		if col >= 1 && col <= len(line) {
			return line[col-1]
		}
		return ""
	}

	var concentrations []string
	if len(line) >= layout.FoodStart {
		concentrations = line[layout.FoodStart-1:]
	}

	return model.RawRow{
		SourceRow:      sourceRow,
		TestTime:       cell(layout.TestTime),
		ProjectCode:    cell(layout.Project),
		PatientID:      cell(layout.PatientID),
		PatientName:    cell(layout.PatientName),
		Gender:         cell(layout.Gender),
		Age:            cell(layout.Age),
		Inspector:      cell(layout.Inspector),
		Reviewer:       cell(layout.Reviewer),
		Concentrations: concentrations,
	}
}

// checkWidth rejects inputs whose header region is narrower than the
// named columns, which almost always means the wrong file was supplied.
func checkWidth(cells [][]string, layout Layout) error {
	widest := 0
	for _, line := range cells {
		if len(line) > widest {
			widest = len(line)
		}
	}
	if widest < layout.FoodStart {
		return fmt.Errorf("input has %d columns, need at least %d (food data starts at column %d)",
			widest, layout.FoodStart, layout.FoodStart)
	}
	return nil
}

func emptyLine(line []string) bool {
	for _, c := range line {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
