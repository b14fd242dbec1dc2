package render

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gyeh/igreport/internal/model"
)

const probeTemplate = `{{.Patient.PatientName}}|{{.ReportDate}}|` +
	`{{range .Groups}}{{.Category.Label}}:{{range .Results}}{{.Name}}={{.Level}};{{end}}{{end}}|` +
	`severe:{{range .Summary.Severe}}{{.}},{{end}}|pages:{{len .Pages}}`

func writeTemplate(t *testing.T, dir, id, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, id+".html.tmpl"), []byte(content), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
}

func sampleRecord() *model.PatientRecord {
	return &model.PatientRecord{
		PatientID:   "P001",
		PatientName: "Jordan Blake",
		Gender:      "F",
		Age:         "34",
		ProjectCode: "IgG-F32-1",
		TemplateID:  "probe",
		TestTime:    "2026-08-10",
		Inspector:   "Alice Wu",
		Reviewer:    "Brian Keller",
		Results: []model.FoodResult{
			{Name: "Chicken", Category: model.CategoryMeat, Concentration: 12.5, Level: model.LevelNormal},
			{Name: "Cow Milk", Category: model.CategoryEggsDairy, Concentration: 250, Level: model.LevelSevere},
			{Name: "Shrimp", Category: model.CategorySeafood, Concentration: 80, Level: model.LevelMild},
		},
	}
}

func TestLoadTemplates_Missing(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "present", probeTemplate)

	_, err := loadTemplates(dir, []string{"present", "absent"})
	var notFound *TemplateNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected TemplateNotFoundError, got %v", err)
	}
	if notFound.TemplateID != "absent" {
		t.Errorf("error template id = %q", notFound.TemplateID)
	}
}

func TestRenderHTML_Content(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "probe", probeTemplate)

	set, err := loadTemplates(dir, []string{"probe"})
	if err != nil {
		t.Fatalf("loadTemplates: %v", err)
	}

	now := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	html, err := set.renderHTML(sampleRecord(), now)
	if err != nil {
		t.Fatalf("renderHTML: %v", err)
	}

	for _, want := range []string{
		"Jordan Blake",
		"2026-08-23",
		"Meat:Chicken=normal;",
		"Eggs & Dairy:Cow Milk=severe;",
		"severe:Cow Milk,",
		"pages:1",
	} {
		if !bytes.Contains(html, []byte(want)) {
			t.Errorf("output missing %q:\n%s", want, html)
		}
	}
}

func TestRenderHTML_Deterministic(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "probe", probeTemplate)

	set, err := loadTemplates(dir, []string{"probe"})
	if err != nil {
		t.Fatalf("loadTemplates: %v", err)
	}

	now := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	rec := sampleRecord()
	first, err := set.renderHTML(rec, now)
	if err != nil {
		t.Fatalf("renderHTML: %v", err)
	}
	second, err := set.renderHTML(rec, now)
	if err != nil {
		t.Fatalf("renderHTML: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("rendering the same record twice produced different output")
	}
}

func TestRenderHTML_UnknownTemplateID(t *testing.T) {
	set := templateSet{}
	_, err := set.renderHTML(sampleRecord(), time.Now())
	var notFound *TemplateNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected TemplateNotFoundError, got %v", err)
	}
}

// TestShippedTemplates guards the real template assets: they must parse
// and execute against a populated record.
func TestShippedTemplates(t *testing.T) {
	ids := []string{"igg-32", "igg-64", "igg-96"}
	set, err := loadTemplates("../../templates", ids)
	if err != nil {
		t.Fatalf("loadTemplates: %v", err)
	}
	for _, id := range ids {
		rec := sampleRecord()
		rec.TemplateID = id
		html, err := set.renderHTML(rec, time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("render %s: %v", id, err)
		}
		if !bytes.Contains(html, []byte("Jordan Blake")) {
			t.Errorf("%s output missing patient name", id)
		}
	}
}

func TestOutputPath(t *testing.T) {
	r := &Renderer{opts: Options{OutputDir: "/out"}}
	rec := sampleRecord()
	if got := r.OutputPath(rec); got != "/out/Jordan Blake_IgG-F32-1_Report.pdf" {
		t.Errorf("OutputPath = %q", got)
	}

	r.opts.IDSuffix = true
	if got := r.OutputPath(rec); got != "/out/Jordan Blake_P001_IgG-F32-1_Report.pdf" {
		t.Errorf("OutputPath with id suffix = %q", got)
	}
}

func TestSanitizeFilename(t *testing.T) {
	if got := sanitizeFilename("A/B\\C:D"); got != "A-B-C-D" {
		t.Errorf("sanitizeFilename = %q", got)
	}
}
