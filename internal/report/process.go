package report

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/gyeh/igreport/internal/extract"
	"github.com/gyeh/igreport/internal/model"
	"github.com/gyeh/igreport/internal/render"
)

// process extracts and renders every row in input order. A failure in one
// row is recorded against that row and never aborts the loop. Returns the
// flattened analytics rows for every rendered record.
func process(ctx context.Context, log zerolog.Logger, deps *Deps, rows []model.RawRow, summary *model.BatchSummary) []model.ResultExportRow {
	var exportRows []model.ResultExportRow

	for i := range rows {
		row := &rows[i]

		rec, err := deps.Extractor.Extract(row)
		if err != nil {
			failure := rowFailure(row, err)
			summary.Skipped++
			summary.Failures = append(summary.Failures, failure)
			log.Warn().
				Int("row", failure.Row).
				Str("patient", failure.Patient).
				Str("kind", string(failure.Kind)).
				Str("detail", failure.Detail).
				Msg("row skipped")
			continue
		}

		out, err := deps.Exporter.Export(ctx, rec)
		if err != nil {
			failure := renderFailure(row, rec, err)
			summary.Skipped++
			summary.Failures = append(summary.Failures, failure)
			log.Warn().
				Int("row", failure.Row).
				Str("patient", failure.Patient).
				Str("kind", string(failure.Kind)).
				Str("detail", failure.Detail).
				Msg("render failed")
			continue
		}

		summary.Rendered++
		exportRows = append(exportRows, model.ExportRows(rec, summary.BatchID, row.SourceRow)...)
		log.Info().
			Str("patient", rec.PatientName).
			Str("project", rec.ProjectCode).
			Str("output", filepath.Base(out)).
			Msg("report rendered")
	}

	return exportRows
}

func rowFailure(row *model.RawRow, err error) model.RowFailure {
	var re *extract.RowError
	if errors.As(err, &re) {
		return model.RowFailure{
			Row:     re.Row,
			Patient: row.PatientName,
			Kind:    re.Kind,
			Detail:  re.Error(),
		}
	}
	return model.RowFailure{
		Row:     row.SourceRow,
		Patient: row.PatientName,
		Kind:    model.KindMissingField,
		Detail:  err.Error(),
	}
}

func renderFailure(row *model.RawRow, rec *model.PatientRecord, err error) model.RowFailure {
	kind := model.KindRenderInvocation
	var tmplErr *render.TemplateNotFoundError
	if errors.As(err, &tmplErr) {
		kind = model.KindTemplateNotFound
	}
	return model.RowFailure{
		Row:     row.SourceRow,
		Patient: rec.PatientName,
		Kind:    kind,
		Detail:  err.Error(),
	}
}
