// Package extract turns raw workbook rows into validated patient records,
// classifying every panel item against the severity thresholds.
package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gyeh/igreport/internal/model"
	"github.com/gyeh/igreport/internal/schema"
)

// SignatureResolver resolves a person's name to a signature asset path.
// A miss is not an error; the record carries an empty reference.
type SignatureResolver interface {
	Lookup(name string) (string, bool)
}

// Extractor converts RawRows to PatientRecords using the immutable
// project registry. It performs no I/O; the signature resolver is the
// only collaborator and may be nil.
type Extractor struct {
	registry   *schema.Registry
	signatures SignatureResolver
}

func NewExtractor(registry *schema.Registry, signatures SignatureResolver) *Extractor {
	return &Extractor{registry: registry, signatures: signatures}
}

// requiredField pairs a field name with its accessor, in the order the
// presence check reports them.
type requiredField struct {
	name string
	get  func(*model.RawRow) string
}

var requiredFields = []requiredField{
	{"patient_id", func(r *model.RawRow) string { return r.PatientID }},
	{"patient_name", func(r *model.RawRow) string { return r.PatientName }},
	{"gender", func(r *model.RawRow) string { return r.Gender }},
	{"age", func(r *model.RawRow) string { return r.Age }},
	{"inspector", func(r *model.RawRow) string { return r.Inspector }},
	{"reviewer", func(r *model.RawRow) string { return r.Reviewer }},
	{"test_time", func(r *model.RawRow) string { return r.TestTime }},
}

// Extract validates one row and builds its PatientRecord. The returned
// error is always a *RowError carrying the failure kind; extraction is a
// pure function of the row and the registry state.
func (x *Extractor) Extract(row *model.RawRow) (*model.PatientRecord, error) {
	ps, err := x.registry.Resolve(row.ProjectCode)
	if err != nil {
		return nil, &RowError{Row: row.SourceRow, Kind: model.KindUnsupportedProjectType, Err: err}
	}

	for _, f := range requiredFields {
		if strings.TrimSpace(f.get(row)) == "" {
			return nil, &RowError{
				Row:   row.SourceRow,
				Kind:  model.KindMissingField,
				Field: f.name,
				Err:   fmt.Errorf("required field is blank"),
			}
		}
	}

	results := make([]model.FoodResult, 0, ps.ItemCount)
	for i, item := range ps.Items {
		cell := ""
		if i < len(row.Concentrations) {
			cell = strings.TrimSpace(row.Concentrations[i])
		}
		if cell == "" {
			return nil, &RowError{
				Row:   row.SourceRow,
				Kind:  model.KindInvalidConcentration,
				Field: item.Name,
				Err:   fmt.Errorf("column %d has no concentration value", i+1),
			}
		}

		concentration, parseErr := strconv.ParseFloat(cell, 64)
		if parseErr != nil {
			return nil, &RowError{
				Row:   row.SourceRow,
				Kind:  model.KindInvalidConcentration,
				Field: item.Name,
				Err:   fmt.Errorf("non-numeric concentration %q", cell),
			}
		}

		level, classifyErr := Classify(concentration)
		if classifyErr != nil {
			return nil, &RowError{
				Row:   row.SourceRow,
				Kind:  model.KindInvalidConcentration,
				Field: item.Name,
				Err:   classifyErr,
			}
		}

		results = append(results, model.FoodResult{
			Name:          item.Name,
			Category:      item.Category,
			Concentration: concentration,
			Level:         level,
		})
	}

	rec := &model.PatientRecord{
		PatientID:   strings.TrimSpace(row.PatientID),
		PatientName: strings.TrimSpace(row.PatientName),
		Gender:      strings.TrimSpace(row.Gender),
		Age:         strings.TrimSpace(row.Age),
		ProjectCode: ps.Code,
		TemplateID:  ps.TemplateID,
		TestTime:    FormatTestTime(row.TestTime),
		Inspector:   strings.TrimSpace(row.Inspector),
		Reviewer:    strings.TrimSpace(row.Reviewer),
		Results:     results,
	}

	if x.signatures != nil {
		if path, ok := x.signatures.Lookup(rec.Inspector); ok {
			rec.InspectorSignature = path
		}
		if path, ok := x.signatures.Lookup(rec.Reviewer); ok {
			rec.ReviewerSignature = path
		}
	}

	return rec, nil
}
