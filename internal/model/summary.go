package model

import "time"

// ErrorKind names the failure classes a row or record can hit. Row-level
// kinds skip the row; render-level kinds lose that record's PDF; the
// config kinds abort the whole run before any row is processed.
type ErrorKind string

const (
	KindUnsupportedProjectType ErrorKind = "unsupported_project_type"
	KindMissingField           ErrorKind = "missing_field"
	KindInvalidConcentration   ErrorKind = "invalid_concentration"
	KindUnknownFoodItem        ErrorKind = "unknown_food_item"
	KindTemplateNotFound       ErrorKind = "template_not_found"
	KindRenderInvocation       ErrorKind = "render_invocation"
)

// RowFailure records one skipped row or failed render in the batch summary.
type RowFailure struct {
	Row     int
	Patient string
	Kind    ErrorKind
	Detail  string
}

// BatchSummary captures metrics from a single generate run.
type BatchSummary struct {
	BatchID  string
	FilePath string

	RowsRead int
	Rendered int
	Skipped  int

	Failures []RowFailure

	DurationRead    time.Duration
	DurationProcess time.Duration
	DurationTotal   time.Duration
}
