package stats

import (
	"strconv"

	"github.com/Yannari/app-market-analysis/internal/dataset"
)

// GroupMeans computes the arithmetic mean of the value column for each
// distinct value of the group column. normalize, when non-nil, rewrites
// the raw value string before parsing (installs like "10,000+" need
// their "+" and "," stripped). Only observed groups appear in the
// result, so every group has at least one row.
func GroupMeans(ds *dataset.Dataset, groupCol, valueCol int, normalize func(string) string) (map[string]float64, error) {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for i, row := range ds.Rows {
		raw := row[valueCol]
		if normalize != nil {
			raw = normalize(raw)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &dataset.MalformedNumberError{Field: ds.Header.At(valueCol), Value: row[valueCol], Row: i}
		}
		group := row[groupCol]
		sums[group] += v
		counts[group]++
	}
	means := make(map[string]float64, len(sums))
	for g, sum := range sums {
		means[g] = sum / float64(counts[g])
	}
	return means, nil
}

// MeanEntries sorts grouped means for display, mean descending with
// ties broken by key descending, same rule as frequency tables.
func MeanEntries(means map[string]float64) []Entry {
	return sortedEntries(means)
}
