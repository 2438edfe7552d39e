package clean

import (
	"strconv"

	"github.com/Yannari/app-market-analysis/internal/dataset"
)

// sampleNames caps how many duplicated names DedupeStats keeps as
// evidence.
const sampleNames = 15

// ReviewIndex maps an app name to the highest review count observed
// across all rows sharing that name. Built once, read-only afterward.
type ReviewIndex map[string]float64

// BuildReviewIndex scans the dataset once and records the maximum
// review count per name.
func BuildReviewIndex(ds *dataset.Dataset, sc dataset.Schema) (ReviewIndex, error) {
	idx := make(ReviewIndex, len(ds.Rows))
	for i, row := range ds.Rows {
		name := row[sc.NameCol]
		raw := row[sc.ReviewsCol]
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &dataset.MalformedNumberError{Field: "reviews", Value: raw, Row: i}
		}
		if cur, ok := idx[name]; !ok || n > cur {
			idx[name] = n
		}
	}
	return idx, nil
}

// DedupeStats summarizes what duplicate resolution found and removed.
type DedupeStats struct {
	UniqueNames      int
	DuplicateEntries int
	RowsRemoved      int
	// Sample holds up to sampleNames duplicated names in first-seen order.
	Sample []string
}

// ResolveDuplicates collapses the dataset to exactly one row per
// distinct name: the row whose review count equals the maximum for
// that name. When several rows tie at the maximum, the first one in
// original order is kept, so the result is reproducible.
func ResolveDuplicates(ds *dataset.Dataset, sc dataset.Schema) (*dataset.Dataset, DedupeStats, error) {
	idx, err := BuildReviewIndex(ds, sc)
	if err != nil {
		return nil, DedupeStats{}, err
	}

	stats := DedupeStats{UniqueNames: len(idx)}
	seen := make(map[string]bool, len(idx))
	for _, row := range ds.Rows {
		name := row[sc.NameCol]
		if seen[name] {
			stats.DuplicateEntries++
			if len(stats.Sample) < sampleNames {
				stats.Sample = append(stats.Sample, name)
			}
		}
		seen[name] = true
	}

	kept := make([]dataset.Row, 0, len(idx))
	added := make(map[string]bool, len(idx))
	for _, row := range ds.Rows {
		name := row[sc.NameCol]
		// Already validated by BuildReviewIndex.
		n, _ := strconv.ParseFloat(row[sc.ReviewsCol], 64)
		if !added[name] && idx[name] == n {
			kept = append(kept, row)
			added[name] = true
		}
	}
	stats.RowsRemoved = len(ds.Rows) - len(kept)

	return &dataset.Dataset{Name: ds.Name, Header: ds.Header, Rows: kept}, stats, nil
}
