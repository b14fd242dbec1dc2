package render

import "fmt"

// TemplateNotFoundError reports a template asset missing or unparseable
// for a resolved schema. At startup it aborts the run; mid-batch it is
// attributed to the record like a render failure.
type TemplateNotFoundError struct {
	TemplateID string
	Path       string
	Err        error
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template %s not available at %s: %s", e.TemplateID, e.Path, e.Err)
}

func (e *TemplateNotFoundError) Unwrap() error {
	return e.Err
}

// RenderInvocationError reports the external renderer missing, exiting
// non-zero, timing out, or producing an unreadable PDF. The affected
// record loses its PDF; the batch continues.
type RenderInvocationError struct {
	Output string // target PDF path
	Stderr string // renderer stderr, trimmed
	Err    error
}

func (e *RenderInvocationError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("render %s: %s: %s", e.Output, e.Err, e.Stderr)
	}
	return fmt.Sprintf("render %s: %s", e.Output, e.Err)
}

func (e *RenderInvocationError) Unwrap() error {
	return e.Err
}
