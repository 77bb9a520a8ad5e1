package advisor

import "fmt"

// ShapeError reports that a parsed value does not match the shape expected
// for the requested prompt kind. It names the offending field so the failure
// is diagnosable; the pipeline never substitutes defaults for required
// fields, to avoid presenting fabricated data as generated content.
type ShapeError struct {
	Kind  PromptKind
	Field string
	Want  string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("advisor: %s response field %q is missing or not a %s", e.Kind, e.Field, e.Want)
}
