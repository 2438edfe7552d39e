package clean

import "github.com/Yannari/app-market-analysis/internal/dataset"

// DefaultNonASCIILimit is how many code points above 127 a name may
// carry and still count as English. A small allowance keeps names with
// emoji or trademark glyphs ("Instachat 😜", "Docs To Go™") from being
// misclassified.
const DefaultNonASCIILimit = 3

// IsEnglish reports whether a name looks English: at most limit code
// points above 127. The scan stops as soon as the limit is exceeded.
// This is a heuristic, not a language detector.
func IsEnglish(name string, limit int) bool {
	nonASCII := 0
	for _, r := range name {
		if r > 127 {
			nonASCII++
			if nonASCII > limit {
				return false
			}
		}
	}
	return true
}

// FilterEnglish keeps the rows whose name column passes IsEnglish.
func FilterEnglish(ds *dataset.Dataset, sc dataset.Schema, limit int) *dataset.Dataset {
	kept := make([]dataset.Row, 0, len(ds.Rows))
	for _, row := range ds.Rows {
		if IsEnglish(row[sc.NameCol], limit) {
			kept = append(kept, row)
		}
	}
	return &dataset.Dataset{Name: ds.Name, Header: ds.Header, Rows: kept}
}
