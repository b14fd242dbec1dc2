package extract

import (
	"fmt"

	"github.com/gyeh/igreport/internal/model"
)

// RowError is the typed outcome of a rejected row. The orchestrator
// records it against the row's index and moves on; a RowError is never
// fatal to the batch.
type RowError struct {
	Row   int
	Kind  model.ErrorKind
	Field string // offending field or food name, when known
	Err   error
}

func (e *RowError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("row %d: %s (%s): %s", e.Row, e.Kind, e.Field, e.Err)
	}
	return fmt.Sprintf("row %d: %s: %s", e.Row, e.Kind, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
