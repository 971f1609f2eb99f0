package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/marcosgh/findash"
	"github.com/marcosgh/findash/renderer"
)

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct {
	scope    scopeFlags
	currency currencyFlag
	period   string
	movers   int
	watch    int
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the reconciled portfolio dashboard" }
func (*dashboardCmd) Usage() string {
	return `findash dashboard [-p <period>] [-category <name> | -asset <id>] [-currency EUR|USD] [-w n]

  Displays the current value, period and 24h change, chart sparkline, and top
  movers for the selected scope, reconciled against live market prices.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	c.scope.SetFlags(f)
	c.currency.SetFlags(f)
	f.StringVar(&c.period, "p", "24h", "Period for the report (24h, 7d, 1m, 3m, 6m, 1y, 3y)")
	f.IntVar(&c.movers, "movers", 5, "Number of top movers to show, 0 to hide")
	f.IntVar(&c.watch, "w", 0, "run every n seconds")
}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
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
	for {
		store := LoadStore(ctx, client)
		engine := &findash.Engine{Backend: client, Store: store}
		r := engine.Reconcile(ctx, scope, period)
		r = r.Converted(func(v float64) float64 { return store.Convert(v, c.currency.currency) })

		md := renderer.DashboardMarkdown(r, c.currency.currency)
		if c.movers > 0 {
			md += "\n" + renderer.MoversMarkdown(store.TopMovers(scope, c.movers))
		}
		if c.watch > 0 {
			fmt.Println("\033[2J")
		}
		printMarkdown(md)

		if c.watch > 0 {
			time.Sleep(time.Duration(c.watch) * time.Second)
		} else {
			break
		}
	}
	return subcommands.ExitSuccess
}
