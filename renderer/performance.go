package renderer

import (
	"bytes"
	"fmt"

	"github.com/marcosgh/findash"
	md "github.com/nao1215/markdown"
)

// PerformanceMarkdown renders one reconciled result per period as a
// multi-period comparison table. Results whose baseline leg degraded render
// as "n/a" rows.
func PerformanceMarkdown(scope findash.Scope, results []*findash.ReconciledResult, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Performance", title(scope)))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Period", "Baseline", "Current", "Change"},
		Rows:   [][]string{},
	}
	for _, r := range results {
		if r.Baseline == nil {
			table.Rows = append(table.Rows, []string{r.Period.Name(), "n/a", Amount(r.CurrentValue, currency), "n/a"})
			continue
		}
		table.Rows = append(table.Rows, []string{
			r.Period.Name(),
			Amount(r.Baseline.PreviousValue, currency),
			Amount(r.CurrentValue, currency),
			Change(r.ChangeAbsolute, r.ChangePercent, currency),
		})
	}
	doc.Table(table)

	return doc.String()
}
