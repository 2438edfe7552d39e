package dataset

import "strings"

// Schema describes the column layout of one store's export: where the
// app name, price, review count and the analysis columns live, plus the
// literal strings the store uses for a free app.
//
// Free prices are matched by exact string equality on purpose. The
// source data encodes "free" as "0" (Google) or "0.0" (Apple); parsing
// the field numerically would also admit forms like "0.00" that never
// occur and would silently change results if they ever did.
type Schema struct {
	Store      string
	NameCol    int
	PriceCol   int
	ReviewsCol int
	// GroupCol is the column averages are grouped by (genre or category),
	// ValueCol the numeric column being averaged.
	GroupCol int
	ValueCol int

	FreePrices []string

	// NormalizeValue rewrites a raw value-column string before numeric
	// parsing. Nil means the field parses as-is.
	NormalizeValue func(string) string
}

// IsFree reports whether a price field matches one of the schema's
// known free-price representations.
func (s Schema) IsFree(price string) bool {
	for _, p := range s.FreePrices {
		if price == p {
			return true
		}
	}
	return false
}

var installsReplacer = strings.NewReplacer("+", "", ",", "")

// AppleStore is the column layout of the Apple Store export. The value
// column is the total rating count, grouped by prime genre.
var AppleStore = Schema{
	Store:      "apple",
	NameCol:    1,
	PriceCol:   4,
	ReviewsCol: 5,
	GroupCol:   11,
	ValueCol:   5,
	FreePrices: []string{"0.0", "0"},
}

// GooglePlay is the column layout of the Google Play export. The value
// column is the installs count, which carries "+" and "," decorations
// ("10,000+") that must be stripped before parsing.
var GooglePlay = Schema{
	Store:          "google",
	NameCol:        0,
	PriceCol:       7,
	ReviewsCol:     3,
	GroupCol:       1,
	ValueCol:       5,
	FreePrices:     []string{"0"},
	NormalizeValue: installsReplacer.Replace,
}
