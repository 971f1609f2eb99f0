package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/marcosgh/findash"
	"github.com/marcosgh/findash/indexa"
)

type updateCmd struct {
	remote bool
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "refresh live market prices" }
func (*updateCmd) Usage() string {
	return `findash update [-remote]

  Fetches live market prices (exchange rate, equities, crypto, managed
  accounts) and reports the refreshed valuation. With -remote the backend is
  asked to refresh its own prices too.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.remote, "remote", false, "also trigger the backend's own market update")
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	client := Backend()

	if c.remote {
		if err := client.TriggerMarketUpdate(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	store := findash.NewStore()
	if err := store.Load(ctx, client); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	updater := &findash.Updater{Store: store}
	if token := indexa.Token(*indexaToken); token != "" {
		updater.Indexa = indexa.NewClient(token)
	}
	status := subcommands.ExitSuccess
	if err := updater.Refresh(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: refresh degraded: %v\n", err)
		status = subcommands.ExitFailure
	}

	fmt.Printf("Refreshed %d assets, portfolio value %.2f EUR", len(store.Get(findash.Global)), store.TotalValue(findash.Global))
	if rate := store.Rate(); rate > 0 {
		fmt.Printf(" (1 USD = %.4f EUR)", rate)
	}
	fmt.Println()
	return status
}
