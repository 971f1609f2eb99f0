package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/marcosgh/findash"
	"github.com/marcosgh/findash/renderer"
)

type historyCmd struct {
	scope    scopeFlags
	currency currencyFlag
	period   string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the historical value series" }
func (*historyCmd) Usage() string {
	return `findash history [-p <period>] [-category <name> | -asset <id>] [-currency EUR|USD]

  Displays the value series for the selected scope and period, ending at the
  live reconciled value.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	c.scope.SetFlags(f)
	c.currency.SetFlags(f)
	f.StringVar(&c.period, "p", "1m", "Period for the series (24h, 7d, 1m, 3m, 6m, 1y, 3y)")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	period, err := findash.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	scope, err := c.scope.Scope()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := c.currency.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	client := Backend()
	store := LoadStore(ctx, client)
	engine := &findash.Engine{Backend: client, Store: store}
	r := engine.Reconcile(ctx, scope, period)
	r = r.Converted(func(v float64) float64 { return store.Convert(v, c.currency.currency) })

	printMarkdown(renderer.HistoryMarkdown(r, c.currency.currency))
	return subcommands.ExitSuccess
}
