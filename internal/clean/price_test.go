package clean

import (
	"testing"

	"github.com/Yannari/app-market-analysis/internal/dataset"
)

// appleRow builds a minimal Apple Store row: name col 1, price col 4.
func appleRow(name, price string) dataset.Row {
	return dataset.Row{"1", name, "100", "USD", price, "500", "20", "4.5", "4.0", "1.0", "4+", "Games"}
}

func TestFilterFreeApple(t *testing.T) {
	ds := &dataset.Dataset{Rows: []dataset.Row{
		appleRow("Free App", "0.0"),
		appleRow("Also Free", "0"),
		appleRow("Paid App", "1.99"),
		appleRow("Sneaky Zero", "0.00"), // not in the accepted set, dropped
	}}
	out := FilterFree(ds, dataset.AppleStore)
	if out.Len() != 2 {
		t.Fatalf("got %d rows, want 2", out.Len())
	}
	if out.Rows[0][1] != "Free App" || out.Rows[1][1] != "Also Free" {
		t.Fatalf("kept = [%s, %s]", out.Rows[0][1], out.Rows[1][1])
	}
}

func TestFilterFreeGoogle(t *testing.T) {
	free := googleRow("Free App", "1")
	paid := googleRow("Paid App", "2")
	paid[7] = "$4.99"
	out := FilterFree(googleDataset(free, paid), dataset.GooglePlay)
	if out.Len() != 1 || out.Rows[0][0] != "Free App" {
		t.Fatalf("kept = %v, want only Free App", out.Rows)
	}
}
