// mkfixture writes a small sample results workbook for manual runs and
// testdata. Rows cycle through the supported panels with weighted random
// concentrations; --bad appends malformed rows that exercise the skip paths.
// Usage: go run ./cmd/mkfixture --out TestResult.xlsx --rows 9 --bad
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/gyeh/igreport/internal/schema"
	"github.com/gyeh/igreport/internal/sheetread"
)

func main() {
	out := flag.String("out", "TestResult.xlsx", "output workbook path")
	rows := flag.Int("rows", 9, "number of valid patient rows")
	bad := flag.Bool("bad", false, "append malformed rows (unknown project, negative value, missing name)")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	registry, err := schema.NewRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "registry: %v\n", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))
	layout := sheetread.DefaultLayout
	schemas := registry.Schemas()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	// Header region: named columns up to the food region, then the food
	// names of the widest panel.
	header := make([]interface{}, layout.FoodStart-1)
	set := func(col int, name string) { header[col-1] = name }
	set(1, "No.")
	set(layout.TestTime, "Test Time")
	set(layout.Project, "Project")
	set(layout.PatientID, "Patient ID")
	set(layout.PatientName, "Patient Name")
	set(layout.Gender, "Gender")
	set(layout.Age, "Age")
	set(layout.Inspector, "Inspector")
	set(layout.Reviewer, "Reviewer")
	for i := range header {
		if header[i] == nil {
			header[i] = fmt.Sprintf("Col%d", i+1)
		}
	}
	widest := schemas[0]
	for _, s := range schemas {
		if s.ItemCount > widest.ItemCount {
			widest = s
		}
	}
	for _, item := range widest.Items {
		header = append(header, item.Name)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		fmt.Fprintf(os.Stderr, "write header: %v\n", err)
		os.Exit(1)
	}

	sheetRow := 2
	writeRow := func(line []interface{}) {
		cell, _ := excelize.CoordinatesToCellName(1, sheetRow)
		if err := f.SetSheetRow(sheet, cell, &line); err != nil {
			fmt.Fprintf(os.Stderr, "write row %d: %v\n", sheetRow, err)
			os.Exit(1)
		}
		sheetRow++
	}

	for i := 0; i < *rows; i++ {
		ps := schemas[i%len(schemas)]
		writeRow(patientLine(layout, rng, i, ps.Code, ps.ItemCount))
	}

	if *bad {
		// Unknown project code
		line := patientLine(layout, rng, *rows, "IgG-F999-1", 32)
		writeRow(line)
		// Negative concentration on the first food column
		line = patientLine(layout, rng, *rows+1, schemas[len(schemas)-1].Code, schemas[len(schemas)-1].ItemCount)
		line[layout.FoodStart-1] = -12.5
		writeRow(line)
		// Missing patient name
		line = patientLine(layout, rng, *rows+2, schemas[len(schemas)-1].Code, schemas[len(schemas)-1].ItemCount)
		line[layout.PatientName-1] = ""
		writeRow(line)
	}

	if err := f.SaveAs(*out); err != nil {
		fmt.Fprintf(os.Stderr, "save workbook: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d data rows to %s\n", sheetRow-2, *out)
}

// patientLine builds one data row: named fields plus itemCount weighted
// random concentrations.
func patientLine(layout sheetread.Layout, rng *rand.Rand, n int, code string, itemCount int) []interface{} {
	line := make([]interface{}, layout.FoodStart-1, layout.FoodStart-1+itemCount)
	gender := "F"
	if n%2 == 0 {
		gender = "M"
	}
	line[0] = n + 1
	line[layout.TestTime-1] = fmt.Sprintf("2026-08-%02d 09:30:00", n%28+1)
	line[layout.Project-1] = code
	line[layout.PatientID-1] = fmt.Sprintf("P2026-%03d", n+1)
	line[layout.PatientName-1] = fmt.Sprintf("Patient %02d", n+1)
	line[layout.Gender-1] = gender
	line[layout.Age-1] = 20 + rng.Intn(50)
	line[layout.Inspector-1] = "Alice Wu"
	line[layout.Reviewer-1] = "Brian Keller"
	for i := range line {
		if line[i] == nil {
			line[i] = ""
		}
	}

	for j := 0; j < itemCount; j++ {
		line = append(line, concentration(rng))
	}
	return line
}

// concentration draws a value weighted toward the normal tier:
// 70% [0,50), 15% [50,100), 10% [100,200), 5% [200,400).
func concentration(rng *rand.Rand) float64 {
	p := rng.Float64()
	switch {
	case p < 0.70:
		return round2(rng.Float64() * 50)
	case p < 0.85:
		return round2(50 + rng.Float64()*50)
	case p < 0.95:
		return round2(100 + rng.Float64()*100)
	default:
		return round2(200 + rng.Float64()*200)
	}
}

func round2(v float64) float64 {
	return float64(int(v*100)) / 100
}
