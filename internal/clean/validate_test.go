package clean

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Yannari/app-market-analysis/internal/dataset"
)

type recordingReporter struct {
	indices []int
}

func (r *recordingReporter) RemovedRow(index int, reason error) {
	r.indices = append(r.indices, index)
}

func TestValidateRowsDropsWrongLength(t *testing.T) {
	ds := &dataset.Dataset{
		Name:   "test.csv",
		Header: dataset.Row{"App", "Category", "Rating"},
		Rows: []dataset.Row{
			{"A", "TOOLS", "4.0"},
			{"B", "4.1"}, // short
			{"C", "GAME", "4.2"},
			{"D", "GAME", "4.3", "extra"}, // long
			{"E", "TOOLS", "4.4"},
		},
	}
	rep := &recordingReporter{}
	out, err := ValidateRows(ds, rep)
	if err != nil {
		t.Fatalf("ValidateRows: %v", err)
	}
	if out.Len() != 3 {
		t.Fatalf("got %d rows, want 3", out.Len())
	}
	// Survivors keep original relative order.
	names := []string{out.Rows[0][0], out.Rows[1][0], out.Rows[2][0]}
	if !reflect.DeepEqual(names, []string{"A", "C", "E"}) {
		t.Fatalf("surviving rows = %v, want [A C E]", names)
	}
	if !reflect.DeepEqual(rep.indices, []int{1, 3}) {
		t.Fatalf("reported indices = %v, want [1 3]", rep.indices)
	}
}

func TestValidateRowsReportsSchemaMismatch(t *testing.T) {
	ds := &dataset.Dataset{Rows: []dataset.Row{{"a", "b"}, {"c"}}}
	var reasons []error
	rep := reporterFunc(func(i int, reason error) { reasons = append(reasons, reason) })
	if _, err := ValidateRows(ds, rep); err != nil {
		t.Fatalf("ValidateRows: %v", err)
	}
	if len(reasons) != 1 {
		t.Fatalf("got %d reasons, want 1", len(reasons))
	}
	var mismatch *dataset.SchemaMismatchError
	if !errors.As(reasons[0], &mismatch) {
		t.Fatalf("reason = %T, want *SchemaMismatchError", reasons[0])
	}
	if mismatch.Got != 1 || mismatch.Want != 2 {
		t.Fatalf("mismatch = %+v, want Got=1 Want=2", mismatch)
	}
}

func TestValidateRowsEmptyDataset(t *testing.T) {
	ds := &dataset.Dataset{Name: "empty.csv"}
	_, err := ValidateRows(ds, nil)
	if !errors.Is(err, dataset.ErrEmptyDataset) {
		t.Fatalf("got %v, want ErrEmptyDataset", err)
	}
}

func TestValidateRowsIdempotent(t *testing.T) {
	ds := &dataset.Dataset{Rows: []dataset.Row{
		{"A", "1"},
		{"B"},
		{"C", "3"},
	}}
	once, err := ValidateRows(ds, nil)
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}
	twice, err := ValidateRows(once, nil)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if !reflect.DeepEqual(once.Rows, twice.Rows) {
		t.Fatalf("second pass changed rows: %v vs %v", once.Rows, twice.Rows)
	}
}

type reporterFunc func(int, error)

func (f reporterFunc) RemovedRow(index int, reason error) { f(index, reason) }
