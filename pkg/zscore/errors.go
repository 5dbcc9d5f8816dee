package zscore

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrSheetNotFound indicates the requested sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrFieldNotFound indicates the requested field is not a table header.
var ErrFieldNotFound = errors.New("field not found")

// ErrNonNumeric indicates a record whose field value is not a finite number.
var ErrNonNumeric = errors.New("value is not numeric")

// ErrInvalidColor indicates a color option that cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// ErrInvalidDeviation indicates an unknown standard deviation variant.
var ErrInvalidDeviation = errors.New("invalid deviation")

// ErrInvalidFormat indicates an unknown report format.
var ErrInvalidFormat = errors.New("invalid format")

// FieldError represents an error reading a field from a sheet.
type FieldError struct {
	SheetName string
	Field     string
	Row       int // 1-based, 0 if not row specific
	Err       error
}

func (e *FieldError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("field %q in sheet %q (row %d): %v", e.Field, e.SheetName, e.Row, e.Err)
	}
	return fmt.Sprintf("field %q in sheet %q: %v", e.Field, e.SheetName, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// NewFieldError creates a new FieldError.
func NewFieldError(sheetName, field string, row int, err error) *FieldError {
	return &FieldError{
		SheetName: sheetName,
		Field:     field,
		Row:       row,
		Err:       err,
	}
}
