package pipeline

import (
	"fmt"
	"strings"
)

// Render produces the printable run summary: per-store cleaning counts,
// duplicate-resolution evidence, and the sorted genre/category tables.
func (r *Report) Render() string {
	var b strings.Builder
	b.WriteString("[APP MARKET ANALYSIS]\n")
	b.WriteString(fmt.Sprintf("Run: %s\n", r.RunID))
	b.WriteString(fmt.Sprintf("Generated: %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05 UTC")))

	renderStore(&b, &r.Apple)
	renderStore(&b, &r.Google)
	return b.String()
}

func renderStore(b *strings.Builder, s *StoreResult) {
	b.WriteString(fmt.Sprintf("\n[%s]\n", strings.ToUpper(s.Store)))
	b.WriteString(fmt.Sprintf("Rows: %d loaded, %d valid", s.Counts.Loaded, s.Counts.Validated))
	if s.Dedupe != nil {
		b.WriteString(fmt.Sprintf(", %d after dedupe", s.Counts.Deduped))
	}
	b.WriteString(fmt.Sprintf(", %d english, %d free\n", s.Counts.English, s.Counts.Free))

	if d := s.Dedupe; d != nil {
		b.WriteString(fmt.Sprintf("Duplicates: %d entries across %d unique names, %d rows removed\n",
			d.DuplicateEntries, d.UniqueNames, d.RowsRemoved))
		if len(d.Sample) > 0 {
			b.WriteString(fmt.Sprintf("Examples: %s\n", strings.Join(d.Sample, ", ")))
		}
	}

	if len(s.Frequencies) > 0 {
		b.WriteString(fmt.Sprintf("\n%s share of free english apps:\n", s.GroupLabel))
		for _, e := range s.Frequencies {
			b.WriteString(fmt.Sprintf("- %s: %.2f%%\n", e.Key, e.Value))
		}
	}
	if len(s.Averages) > 0 {
		b.WriteString(fmt.Sprintf("\n%s by %s:\n", s.MetricLabel, s.GroupLabel))
		for _, e := range s.Averages {
			b.WriteString(fmt.Sprintf("- %s: %.1f\n", e.Key, e.Value))
		}
	}
}
