// Package sheetread reads results workbooks (xlsx or csv) into RawRows.
// Column semantics come from an explicit Layout rather than bare indexes
// at call sites.
package sheetread

import "fmt"

// Layout gives the 1-based column position of every field in a results
// workbook. Food-item concentrations occupy FoodStart and everything to
// its right; how many of those columns are consumed is decided per row by
// the project schema, not by the reader.
type Layout struct {
	TestTime    int
	Project     int
	PatientID   int
	PatientName int
	Gender      int
	Age         int
	Inspector   int
	Reviewer    int
	FoodStart   int
}

// DefaultLayout is the lab's export contract.
var DefaultLayout = Layout{
	TestTime:    2,
	Project:     3,
	PatientID:   4,
	PatientName: 5,
	Gender:      6,
	Age:         7,
	Inspector:   15,
	Reviewer:    16,
	FoodStart:   17,
}

// Validate checks the layout is internally consistent: all positions
// positive and FoodStart to the right of every named field.
func (l Layout) Validate() error {
	named := map[string]int{
		"test_time":    l.TestTime,
		"project":      l.Project,
		"patient_id":   l.PatientID,
		"patient_name": l.PatientName,
		"gender":       l.Gender,
		"age":          l.Age,
		"inspector":    l.Inspector,
		"reviewer":     l.Reviewer,
	}
	for name, col := range named {
		if col < 1 {
			return fmt.Errorf("layout column %s must be positive, got %d", name, col)
		}
		if col >= l.FoodStart {
			return fmt.Errorf("layout column %s (%d) overlaps the food region starting at %d", name, col, l.FoodStart)
		}
	}
	if l.FoodStart < 2 {
		return fmt.Errorf("layout food start must be at least 2, got %d", l.FoodStart)
	}
	return nil
}
