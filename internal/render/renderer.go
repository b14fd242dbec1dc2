// Package render turns validated patient records into PDF files: template
// execution, external WeasyPrint invocation with a bounded timeout, and a
// post-render readability check on the produced PDF.
package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/rs/zerolog"

	"github.com/gyeh/igreport/internal/model"
)

const defaultTimeout = 120 * time.Second

// Options configures a Renderer.
type Options struct {
	TemplateDir string
	OutputDir   string
	Binary      string        // WeasyPrint executable, name or path
	Timeout     time.Duration // per-invocation bound; 0 means the default
	IDSuffix    bool          // include the patient ID in output filenames
	Now         func() time.Time
}

// Renderer renders records to PDFs in the output directory. One render is
// one blocking invocation of the external binary; renders are independent
// across records.
type Renderer struct {
	templates templateSet
	opts      Options
	log       zerolog.Logger
}

// New parses all templates and prepares the output directory. Template
// problems surface here, before any row is processed.
func New(opts Options, templateIDs []string, log zerolog.Logger) (*Renderer, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Binary == "" {
		opts.Binary = "weasyprint"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	templates, err := loadTemplates(opts.TemplateDir, templateIDs)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	return &Renderer{templates: templates, opts: opts, log: log}, nil
}

// CheckBinary verifies the external renderer responds to --version.
func (r *Renderer) CheckBinary(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.opts.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.opts.Binary, "--version")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return &RenderInvocationError{
			Stderr: strings.TrimSpace(string(out)),
			Err:    fmt.Errorf("renderer %q unavailable: %w", r.opts.Binary, err),
		}
	}
	r.log.Debug().Str("renderer", strings.TrimSpace(string(out))).Msg("renderer available")
	return nil
}

// OutputPath returns the deterministic PDF path for a record. Duplicate
// (name, project) pairs overwrite unless IDSuffix is on.
func (r *Renderer) OutputPath(rec *model.PatientRecord) string {
	name := sanitizeFilename(rec.PatientName)
	if r.opts.IDSuffix {
		return filepath.Join(r.opts.OutputDir,
			fmt.Sprintf("%s_%s_%s_Report.pdf", name, sanitizeFilename(rec.PatientID), rec.ProjectCode))
	}
	return filepath.Join(r.opts.OutputDir, fmt.Sprintf("%s_%s_Report.pdf", name, rec.ProjectCode))
}

// Export renders one record: template → temp HTML → WeasyPrint → verify.
// Returns the output PDF path.
func (r *Renderer) Export(ctx context.Context, rec *model.PatientRecord) (string, error) {
	html, err := r.templates.renderHTML(rec, r.opts.Now())
	if err != nil {
		return "", err
	}

	outPath := r.OutputPath(rec)

	tmp, err := os.CreateTemp("", "igreport-*.html")
	if err != nil {
		return "", &RenderInvocationError{Output: outPath, Err: fmt.Errorf("create temp html: %w", err)}
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(html); err != nil {
		tmp.Close()
		return "", &RenderInvocationError{Output: outPath, Err: fmt.Errorf("write temp html: %w", err)}
	}
	if err := tmp.Close(); err != nil {
		return "", &RenderInvocationError{Output: outPath, Err: fmt.Errorf("close temp html: %w", err)}
	}

	ctx, cancel := context.WithTimeout(ctx, r.opts.Timeout)
	defer cancel()

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.opts.Binary, tmpPath, outPath)
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Run(); err != nil {
		return "", &RenderInvocationError{
			Output: outPath,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}

	// The renderer exiting zero is not proof of a usable file; make sure
	// the PDF opens and has at least one page.
	pages, err := api.PageCountFile(outPath)
	if err != nil {
		return "", &RenderInvocationError{Output: outPath, Err: fmt.Errorf("verify pdf: %w", err)}
	}
	if pages < 1 {
		return "", &RenderInvocationError{Output: outPath, Err: fmt.Errorf("verify pdf: zero pages")}
	}

	r.log.Debug().
		Str("patient", rec.PatientName).
		Str("output", filepath.Base(outPath)).
		Int("pages", pages).
		Dur("duration", time.Since(start)).
		Msg("pdf rendered")

	return outPath, nil
}

// sanitizeFilename strips path separators and control characters from a
// name that becomes part of an output filename.
func sanitizeFilename(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		if r < 0x20 {
			return -1
		}
		return r
	}, strings.TrimSpace(s))
}
