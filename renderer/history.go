package renderer

import (
	"bytes"
	"fmt"

	"github.com/marcosgh/findash"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders the full series of a reconciled result as a table.
func HistoryMarkdown(r *findash.ReconciledResult, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("History for %s over %s", title(r.Scope), r.Period.Name()))

	if r.Series.Len() == 0 {
		doc.PlainText("No history available.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Value"},
		Rows:   [][]string{},
	}
	for on, v := range r.Series.Values() {
		table.Rows = append(table.Rows, []string{
			on.String(),
			Amount(v, currency),
		})
	}
	doc.Table(table)

	return doc.String()
}
