// Package stats computes the per-category reductions over a cleaned
// dataset: value frequency tables and grouped arithmetic means.
package stats

import (
	"sort"

	"github.com/Yannari/app-market-analysis/internal/dataset"
)

// FrequencyTable maps each distinct value of a column to its share of
// rows, in percent. Shares sum to ~100 across keys.
type FrequencyTable map[string]float64

// Frequencies tallies the values at the given column position.
func Frequencies(ds *dataset.Dataset, col int) FrequencyTable {
	counts := make(map[string]int)
	total := 0
	for _, row := range ds.Rows {
		counts[row[col]]++
		total++
	}
	table := make(FrequencyTable, len(counts))
	for k, c := range counts {
		table[k] = float64(c) / float64(total) * 100
	}
	return table
}

// Entry pairs a key with its numeric value, for display.
type Entry struct {
	Key   string
	Value float64
}

// Entries returns the table sorted for display: value descending, ties
// broken by key descending. The tie direction is reverse-lexicographic
// so two runs over the same data always print identically.
func (t FrequencyTable) Entries() []Entry {
	return sortedEntries(t)
}

func sortedEntries(m map[string]float64) []Entry {
	entries := make([]Entry, 0, len(m))
	for k, v := range m {
		entries = append(entries, Entry{Key: k, Value: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value == entries[j].Value {
			return entries[i].Key > entries[j].Key
		}
		return entries[i].Value > entries[j].Value
	})
	return entries
}
