package model

// RawRow is one patient test line as read from the results workbook,
// before any validation. All fields are raw cell text; concentrations are
// parsed during extraction so a bad cell can be reported by food name.
// A RawRow is consumed into exactly one PatientRecord or rejected.
type RawRow struct {
	// SourceRow is the 1-based row number in the workbook, used for
	// error attribution in the batch summary.
	SourceRow int

	TestTime    string
	ProjectCode string
	PatientID   string
	PatientName string
	Gender      string
	Age         string
	Inspector   string
	Reviewer    string

	// Concentrations holds the food-item cells in column order, starting
	// at the layout's food-start column. The slice may be shorter than
	// the schema's item count when trailing cells are empty.
	Concentrations []string
}
