package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Row is a single record of a store export. Fields are positional per
// Schema and are never mutated after parsing.
type Row []string

// Dataset holds the header and data rows of one store export. Cleaning
// stages consume a Dataset and produce a new one; rows are shared, not
// copied.
type Dataset struct {
	Name   string
	Header Row
	Rows   []Row
}

// Load reads a CSV file and separates the first record as the header.
// Ragged rows are kept as-is so structural validation can report them
// later instead of the reader failing mid-file.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrEmptyDataset)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	ds := &Dataset{Name: filepath.Base(path), Header: Row(header)}
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(ds.Rows)+1, err)
		}
		row := make(Row, len(rec))
		copy(row, rec)
		ds.Rows = append(ds.Rows, row)
	}
	return ds, nil
}

// At returns the field at position i, or a positional placeholder when
// the row is shorter. Used for naming columns in diagnostics.
func (r Row) At(i int) string {
	if i < 0 || i >= len(r) {
		return fmt.Sprintf("col%d", i)
	}
	return r[i]
}

// Len returns the number of data rows (the header is not counted).
func (d *Dataset) Len() int { return len(d.Rows) }

// Slice returns rows in [start, end), clamped to the dataset bounds.
func (d *Dataset) Slice(start, end int) []Row {
	if start < 0 {
		start = 0
	}
	if end > len(d.Rows) {
		end = len(d.Rows)
	}
	if start >= end {
		return nil
	}
	return d.Rows[start:end]
}
