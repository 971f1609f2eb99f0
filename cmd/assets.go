package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/marcosgh/findash/renderer"
)

type assetsCmd struct {
	scope    scopeFlags
	currency currencyFlag
}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list the assets with their live valuation" }
func (*assetsCmd) Usage() string {
	return `findash assets [-category <name> | -asset <id>] [-currency EUR|USD]

  Lists the assets in scope with quantity, live unit price, value, and 24h
  change.
`
}

func (c *assetsCmd) SetFlags(f *flag.FlagSet) {
	c.scope.SetFlags(f)
	c.currency.SetFlags(f)
}

func (c *assetsCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
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
	if !store.Ready() {
		fmt.Fprintln(os.Stderr, "Error: asset list unavailable")
		return subcommands.ExitFailure
	}

	assets := store.Get(scope)
	for i := range assets {
		assets[i].UnitPrice = store.Convert(assets[i].UnitPrice, c.currency.currency)
	}
	total := store.Convert(store.TotalValue(scope), c.currency.currency)

	printMarkdown(renderer.AssetsMarkdown(scope, assets, total, c.currency.currency))
	return subcommands.ExitSuccess
}
