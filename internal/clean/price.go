package clean

import "github.com/Yannari/app-market-analysis/internal/dataset"

// FilterFree keeps the rows whose price column is one of the schema's
// free-price strings.
func FilterFree(ds *dataset.Dataset, sc dataset.Schema) *dataset.Dataset {
	kept := make([]dataset.Row, 0, len(ds.Rows))
	for _, row := range ds.Rows {
		if sc.IsFree(row[sc.PriceCol]) {
			kept = append(kept, row)
		}
	}
	return &dataset.Dataset{Name: ds.Name, Header: ds.Header, Rows: kept}
}
