// Package clean implements the dataset cleaning stages: structural row
// validation, duplicate resolution, and the language and price filters.
// Every stage consumes a Dataset and returns a new one, preserving the
// original row order among survivors.
package clean

import (
	"fmt"
	"os"

	"github.com/Yannari/app-market-analysis/internal/dataset"
)

// Reporter receives diagnostics about rows excluded during cleaning.
type Reporter interface {
	RemovedRow(index int, reason error)
}

type stderrReporter struct{}

func (stderrReporter) RemovedRow(index int, reason error) {
	fmt.Fprintf(os.Stderr, "⚠ Warning: dropping row %d: %v\n", index, reason)
}

// StderrReporter writes removal diagnostics to standard error.
var StderrReporter Reporter = stderrReporter{}

// ValidateRows returns a dataset containing only the rows whose field
// count matches the first data row. Survivors keep their relative
// order; each removed row's original index is reported. A dataset with
// no rows has no reference shape and fails with ErrEmptyDataset.
func ValidateRows(ds *dataset.Dataset, rep Reporter) (*dataset.Dataset, error) {
	if len(ds.Rows) == 0 {
		return nil, fmt.Errorf("%s: %w", ds.Name, dataset.ErrEmptyDataset)
	}
	want := len(ds.Rows[0])
	kept := make([]dataset.Row, 0, len(ds.Rows))
	for i, row := range ds.Rows {
		if len(row) != want {
			if rep != nil {
				rep.RemovedRow(i, &dataset.SchemaMismatchError{Row: i, Got: len(row), Want: want})
			}
			continue
		}
		kept = append(kept, row)
	}
	return &dataset.Dataset{Name: ds.Name, Header: ds.Header, Rows: kept}, nil
}
