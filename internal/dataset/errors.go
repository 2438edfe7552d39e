package dataset

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset indicates a dataset with no data rows. Validation
// needs at least one row to establish the reference field count.
var ErrEmptyDataset = errors.New("dataset has no data rows")

// MalformedNumberError indicates a numeric field that failed to parse
// after any schema-required normalization. It aborts the run: a value
// we cannot parse means the schema assumption is wrong.
type MalformedNumberError struct {
	Field string
	Value string
	Row   int
}

func (e *MalformedNumberError) Error() string {
	return fmt.Sprintf("malformed number in %s at row %d: %q", e.Field, e.Row, e.Value)
}

// SchemaMismatchError indicates a row whose field count disagrees with
// the reference shape. It is recovered by exclusion inside validation
// and reported, never propagated as a hard failure.
type SchemaMismatchError struct {
	Row  int
	Got  int
	Want int
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("row %d has %d fields, want %d", e.Row, e.Got, e.Want)
}
