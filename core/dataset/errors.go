package dataset

import (
	"errors"
	"fmt"
)

// ErrSheetNotFound reports that a declared worksheet is absent from the
// workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrColumnMissing reports that a declared column is absent from the header
// row.
var ErrColumnMissing = errors.New("column missing")

// LoadError reports that a tabular source could not be turned into a table.
// It carries the source name and, when known, the sheet being parsed, and
// unwraps to the underlying cause.
type LoadError struct {
	Source string
	Sheet  string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("load sheet %q from %s: %v", e.Sheet, e.Source, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
