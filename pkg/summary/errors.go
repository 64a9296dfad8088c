package summary

import (
	"fmt"
	"strings"
)

// InputNotFoundError reports a required input file that does not exist
// or cannot be opened.
type InputNotFoundError struct {
	Path string
	Err  error
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("input file %s: %v", e.Path, e.Err)
}

func (e *InputNotFoundError) Unwrap() error { return e.Err }

// SchemaError reports required columns that are entirely absent from a
// table header. Individual malformed rows never raise it; those are
// skipped and tallied instead.
type SchemaError struct {
	Path    string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing required column(s): %s", e.Path, strings.Join(e.Missing, ", "))
}
