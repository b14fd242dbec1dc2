package render

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/gyeh/igreport/internal/model"
)

// foodItemsPerPage is the fixed pagination the report layouts assume.
const foodItemsPerPage = 32

// reportContext is the data a report template receives.
type reportContext struct {
	Patient    *model.PatientRecord
	ReportDate string
	Groups     []model.CategoryGroup
	Summary    model.LevelSummary
	Pages      [][]model.FoodResult
}

// templateSet holds the parsed report templates keyed by template ID.
type templateSet map[string]*template.Template

// loadTemplates parses one template file per ID from dir. Template files
// are named <id>.html.tmpl. Any missing or unparseable file is a
// TemplateNotFoundError, checked before a batch touches its first row.
func loadTemplates(dir string, ids []string) (templateSet, error) {
	set := make(templateSet, len(ids))
	for _, id := range ids {
		path := filepath.Join(dir, id+".html.tmpl")
		if _, err := os.Stat(path); err != nil {
			return nil, &TemplateNotFoundError{TemplateID: id, Path: path, Err: err}
		}
		t, err := template.ParseFiles(path)
		if err != nil {
			return nil, &TemplateNotFoundError{TemplateID: id, Path: path, Err: err}
		}
		set[id] = t
	}
	return set, nil
}

// CheckTemplates verifies every template ID parses from dir, without
// building a Renderer. Used by the dry-run command.
func CheckTemplates(dir string, ids []string) error {
	_, err := loadTemplates(dir, ids)
	return err
}

// renderHTML executes the record's template into markup. The report date
// is the only render-time input; everything else comes from the record.
func (s templateSet) renderHTML(rec *model.PatientRecord, reportDate time.Time) ([]byte, error) {
	t, ok := s[rec.TemplateID]
	if !ok {
		return nil, &TemplateNotFoundError{
			TemplateID: rec.TemplateID,
			Path:       "",
			Err:        fmt.Errorf("template not loaded"),
		}
	}

	ctx := reportContext{
		Patient:    rec,
		ReportDate: reportDate.Format("2006-01-02"),
		Groups:     rec.GroupByCategory(),
		Summary:    rec.SummarizeLevels(),
		Pages:      rec.Pages(foodItemsPerPage),
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", rec.TemplateID, err)
	}
	return buf.Bytes(), nil
}
