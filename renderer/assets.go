package renderer

import (
	"bytes"
	"fmt"

	"github.com/marcosgh/findash"
	md "github.com/nao1215/markdown"
)

// AssetsMarkdown renders the assets in scope with their live valuation.
func AssetsMarkdown(scope findash.Scope, assets []findash.Asset, total float64, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Assets", title(scope)))

	if len(assets) == 0 {
		doc.PlainText("No assets in scope.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Asset", "Category", "Quantity", "Unit Price", "Value", "24h"},
		Rows:   [][]string{},
	}
	for _, a := range assets {
		table.Rows = append(table.Rows, []string{
			a.Name,
			string(a.Category),
			fmt.Sprintf("%g", a.Quantity),
			Amount(a.UnitPrice, currency),
			Amount(a.Value(), currency),
			a.Change24hPct.SignedString(),
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Total: %s", Amount(total, currency)))
	return doc.String()
}

// MoversMarkdown renders the assets with the largest 24h swings.
func MoversMarkdown(movers []findash.Asset) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Top Movers (24h)")
	if len(movers) == 0 {
		doc.PlainText("No movers to report.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Asset", "24h"},
		Rows:   [][]string{},
	}
	for _, a := range movers {
		table.Rows = append(table.Rows, []string{a.Name, a.Change24hPct.SignedString()})
	}
	doc.Table(table)

	return doc.String()
}
