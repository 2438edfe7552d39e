package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/Yannari/app-market-analysis/internal/dataset"
)

func installsDataset(rows ...[2]string) *dataset.Dataset {
	ds := &dataset.Dataset{Header: dataset.Row{"Category", "Installs"}}
	for _, r := range rows {
		ds.Rows = append(ds.Rows, dataset.Row{r[0], r[1]})
	}
	return ds
}

func TestGroupMeansNormalizesInstalls(t *testing.T) {
	ds := installsDataset(
		[2]string{"GAME", "10,000+"},
		[2]string{"GAME", "20,000+"},
		[2]string{"TOOLS", "500+"},
	)
	means, err := GroupMeans(ds, 0, 1, dataset.GooglePlay.NormalizeValue)
	if err != nil {
		t.Fatalf("GroupMeans: %v", err)
	}
	if got := means["GAME"]; math.Abs(got-15000) > 1e-9 {
		t.Fatalf("GAME mean = %v, want 15000", got)
	}
	if got := means["TOOLS"]; math.Abs(got-500) > 1e-9 {
		t.Fatalf("TOOLS mean = %v, want 500", got)
	}
}

func TestGroupMeansPlainNumbers(t *testing.T) {
	ds := installsDataset(
		[2]string{"Games", "100"},
		[2]string{"Games", "200"},
		[2]string{"Games", "300"},
	)
	means, err := GroupMeans(ds, 0, 1, nil)
	if err != nil {
		t.Fatalf("GroupMeans: %v", err)
	}
	if means["Games"] != 200 {
		t.Fatalf("Games mean = %v, want 200", means["Games"])
	}
}

func TestGroupMeansMalformedNumber(t *testing.T) {
	ds := installsDataset(
		[2]string{"GAME", "10,000+"},
		[2]string{"GAME", "Varies with device"},
	)
	_, err := GroupMeans(ds, 0, 1, dataset.GooglePlay.NormalizeValue)
	var malformed *dataset.MalformedNumberError
	if !errors.As(err, &malformed) {
		t.Fatalf("got %v, want *MalformedNumberError", err)
	}
	if malformed.Row != 1 || malformed.Value != "Varies with device" {
		t.Fatalf("error = %+v, want Row=1 with original value", malformed)
	}
}

func TestMeanEntriesOrder(t *testing.T) {
	entries := MeanEntries(map[string]float64{"A": 5, "B": 10, "C": 5})
	want := []Entry{{"B", 10}, {"C", 5}, {"A", 5}}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Fatalf("entries[%d] = %+v, want %+v", i, entries[i], want[i])
		}
	}
}
