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

type performanceCmd struct {
	scope    scopeFlags
	currency currencyFlag
}

func (*performanceCmd) Name() string     { return "performance" }
func (*performanceCmd) Synopsis() string { return "display performance over all periods" }
func (*performanceCmd) Usage() string {
	return `findash performance [-category <name> | -asset <id>] [-currency EUR|USD]

  Displays the reconciled change over every supported period for the selected
  scope, all against the same live value snapshot per period.
`
}

func (c *performanceCmd) SetFlags(f *flag.FlagSet) {
	c.scope.SetFlags(f)
	c.currency.SetFlags(f)
}

func (c *performanceCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
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

	var results []*findash.ReconciledResult
	for _, period := range findash.Periods {
		r := engine.Reconcile(ctx, scope, period)
		r = r.Converted(func(v float64) float64 { return store.Convert(v, c.currency.currency) })
		results = append(results, r)
	}

	printMarkdown(renderer.PerformanceMarkdown(scope, results, c.currency.currency))
	return subcommands.ExitSuccess
}
