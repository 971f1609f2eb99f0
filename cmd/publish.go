package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/marcosgh/findash"
)

type publishCmd struct {
	period string
}

func (*publishCmd) Name() string { return "publish" }

func (*publishCmd) Synopsis() string { return "publish a status snapshot to the backend" }

func (*publishCmd) Usage() string {
	return `findash publish [-p <period>]

  Reconciles the whole portfolio and persists the resulting status snapshot
  (current value, change, history) on the backend for other applications to
  consume.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "24h", "Period for the published change figure")
}

func (c *publishCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	period, err := findash.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	client := Backend()
	store := LoadStore(ctx, client)
	engine := &findash.Engine{Backend: client, Store: store}
	r := engine.Reconcile(ctx, findash.Global, period)

	status := findash.NewStatus(r)
	if err := client.PublishStatus(ctx, status); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Published status: value %.2f EUR, change %s, %d history points\n",
		status.CurrentValue, status.ChangePercent, len(status.History))
	return subcommands.ExitSuccess
}
