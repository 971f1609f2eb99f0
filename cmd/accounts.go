package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/marcosgh/findash/renderer"
)

type accountsCmd struct {
	currency currencyFlag
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "display the managed accounts summary" }
func (*accountsCmd) Usage() string {
	return `findash accounts [-currency EUR|USD]

  Displays the managed accounts with their market value, risk profile, and
  variation, as reported through the backend.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {
	c.currency.SetFlags(f)
}

func (c *accountsCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if err := c.currency.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	sum, err := Backend().IndexaAccounts(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.AccountsMarkdown(sum, c.currency.currency))
	return subcommands.ExitSuccess
}
