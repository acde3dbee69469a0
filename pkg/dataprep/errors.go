package dataprep

import (
	"errors"
	"fmt"
)

// Error kinds reported while preparing passenger data. A *DataError always
// wraps exactly one of these, so callers can branch with errors.Is.
var (
	ErrMissingCategory   = errors.New("value has no categorical code")
	ErrMalformedName     = errors.New("name is not of the form \"surname, title. rest\"")
	ErrUnrecognizedTitle = errors.New("title has no normalization entry")
	ErrMissingValue      = errors.New("required value is missing")
	ErrInvalidMap        = errors.New("invalid lookup table")
	ErrMissingColumn     = errors.New("required column is missing")
)

// NoRow marks a DataError that is not tied to a single row.
const NoRow = -1

// DataError reports a data-quality problem together with where it was found.
type DataError struct {
	Err    error
	Column string
	Row    int
	Value  string
}

// Error implements the error interface
func (e *DataError) Error() string {
	switch {
	case e.Row == NoRow && e.Value == "":
		return fmt.Sprintf("%v: column %q", e.Err, e.Column)
	case e.Row == NoRow:
		return fmt.Sprintf("%v: column %q value %q", e.Err, e.Column, e.Value)
	default:
		return fmt.Sprintf("%v: column %q row %d value %q", e.Err, e.Column, e.Row, e.Value)
	}
}

// Unwrap allows errors.Is and errors.As to see the error kind
func (e *DataError) Unwrap() error {
	return e.Err
}

func newDataError(kind error, column string, row int, value string) *DataError {
	return &DataError{Err: kind, Column: column, Row: row, Value: value}
}
