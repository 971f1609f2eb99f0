package renderer

import (
	"bytes"
	"fmt"

	"github.com/marcosgh/findash"
	md "github.com/nao1215/markdown"
)

// DashboardMarkdown renders the headline card for one reconciled result:
// current value, period change, the 24h sub-figure, and a sparkline of the
// series.
func DashboardMarkdown(r *findash.ReconciledResult, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s over %s", title(r.Scope), r.Period.Name()))
	doc.PlainText(fmt.Sprintf("Current Value: %s", Amount(r.CurrentValue, currency)))

	rows := [][]string{}
	if r.Baseline != nil {
		rows = append(rows, []string{r.Period.Name(), Change(r.ChangeAbsolute, r.ChangePercent, currency)})
	} else {
		rows = append(rows, []string{r.Period.Name(), "n/a"})
	}
	if r.Day != nil {
		rows = append(rows, []string{"24 hours", Change(r.Day.ChangeAbsolute, r.Day.ChangePercent, currency)})
	} else {
		rows = append(rows, []string{"24 hours", "n/a"})
	}
	doc.Table(md.TableSet{
		Header: []string{"Period", "Change"},
		Rows:   rows,
	})

	if r.Series.Len() == 0 {
		doc.PlainText("No history available.")
	} else {
		first, _ := r.Series.First()
		last, _ := r.Series.Latest()
		doc.PlainText(fmt.Sprintf("%s  (%s to %s, %d points)", Sparkline(&r.Series), first, last, r.Series.Len()))
	}

	return doc.String()
}

func title(s findash.Scope) string {
	if s.IsGlobal() {
		return "Portfolio"
	}
	return s.String()
}
