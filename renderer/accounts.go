package renderer

import (
	"bytes"
	"fmt"

	"github.com/marcosgh/findash"
	md "github.com/nao1215/markdown"
)

// AccountsMarkdown renders the managed accounts summary.
func AccountsMarkdown(sum *findash.AccountsSummary, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Managed Accounts")

	if len(sum.Accounts) == 0 {
		doc.PlainText("No accounts available.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Account", "Name", "Risk", "Value", "Variation"},
		Rows:   [][]string{},
	}
	for _, a := range sum.Accounts {
		table.Rows = append(table.Rows, []string{
			a.AccountNumber,
			a.Name,
			a.RiskProfile,
			Amount(a.MarketValue, currency),
			a.VariationPct.SignedString(),
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Total: %s", Amount(sum.TotalValue, currency)))
	return doc.String()
}
