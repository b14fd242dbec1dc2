// Package report runs the batch: preflight the configuration, read the
// workbook, extract and render every row with per-row failure isolation,
// and produce a run summary.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/igreport/internal/config"
	"github.com/gyeh/igreport/internal/model"
	"github.com/gyeh/igreport/internal/sheetread"
)

// PipelineError wraps an error with the phase where it occurred. Only
// phase-level failures (configuration integrity, unreadable input) are
// fatal; row and record failures land in the summary instead.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full pipeline: preflight, read, process, export.
func Run(ctx context.Context, log zerolog.Logger, cfg *config.Config) (*model.BatchSummary, error) {
	totalStart := time.Now()

	summary := &model.BatchSummary{
		BatchID:  uuid.New().String(),
		FilePath: cfg.FilePath,
	}
	log = log.With().Str("batch_id", summary.BatchID).Logger()

	// Phase 1: Preflight. Registry integrity, templates, signature assets
	// and the external renderer are all checked before the first row.
	log.Info().Str("file", cfg.FilePath).Msg("starting preflight")
	deps, err := preflight(ctx, log, cfg)
	if err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}

	// Phase 2: Read
	readStart := time.Now()
	rows, err := sheetread.ReadFile(cfg.FilePath, deps.Layout)
	if err != nil {
		return nil, &PipelineError{Phase: "read", Err: err}
	}
	summary.RowsRead = len(rows)
	summary.DurationRead = time.Since(readStart)
	log.Info().Int("rows", len(rows)).Dur("duration", summary.DurationRead).Msg("workbook read")

	// Phase 3: Process rows one at a time, in input order.
	processStart := time.Now()
	exportRows := process(ctx, log, deps, rows, summary)
	summary.DurationProcess = time.Since(processStart)

	// Phase 4: Optional analytics export
	if cfg.ExportParquet != "" {
		if err := writeParquetExport(cfg.ExportParquet, exportRows); err != nil {
			return nil, &PipelineError{Phase: "export", Err: err}
		}
		log.Info().Str("path", cfg.ExportParquet).Int("rows", len(exportRows)).Msg("analytics export written")
	}

	summary.DurationTotal = time.Since(totalStart)

	log.Info().
		Int("rows_read", summary.RowsRead).
		Int("rendered", summary.Rendered).
		Int("skipped", summary.Skipped).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("report pipeline complete")

	return summary, nil
}
