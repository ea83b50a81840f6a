package report

import (
	"errors"
	"fmt"
)

// Export operations reported in ExportError.
const (
	OpBuild = "build"
	OpMkdir = "mkdir"
	OpSave  = "save"
	OpOpen  = "open"
	OpRead  = "read"
)

// ExportError is a filesystem or workbook failure while writing or reading a report.
type ExportError struct {
	// Op names the step that failed
	Op string

	// Path is the directory or file involved
	Path string

	// Err is the underlying cause
	Err error
}

// Error returns the error message
func (e *ExportError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("report %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("report %s failed for %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *ExportError) Unwrap() error {
	return e.Err
}

// IsExportError reports whether err is, or wraps, an ExportError.
func IsExportError(err error) bool {
	var exportErr *ExportError
	return errors.As(err, &exportErr)
}
