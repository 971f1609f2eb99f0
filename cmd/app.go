// Package cmd implements the CLI application to browse the dashboard.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/marcosgh/findash"
	"github.com/marcosgh/findash/indexa"
)

// Commands lists the subcommands to register.
// A main package ranges over Commands and Execute()s the user-selected one.
var Commands = []subcommands.Command{
	&dashboardCmd{},
	&historyCmd{},
	&performanceCmd{},
	&assetsCmd{},
	&accountsCmd{},
	&updateCmd{},
	&publishCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var backendURL = flag.String("backend-url", "", "Base URL of the dashboard backend (defaults to $FINDASH_BACKEND_URL, then "+findash.DefaultBackendURL+")")
var indexaToken = flag.String("indexa-token", "", "Indexa Capital API token (defaults to $INDEXA_TOKEN)")

// Backend returns the backend client for the configured URL.
func Backend() *findash.Client {
	return findash.NewClient(findash.BackendURL(*backendURL))
}

// LoadStore loads the live store from the backend and refreshes it with live
// market prices. A degraded refresh is reported but not fatal; a failed load
// leaves the store unready, which downstream treats as "no live figure".
func LoadStore(ctx context.Context, client *findash.Client) *findash.Store {
	store := findash.NewStore()
	if err := store.Load(ctx, client); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (showing backend figures only)\n", err)
		return store
	}
	updater := &findash.Updater{Store: store}
	if token := indexa.Token(*indexaToken); token != "" {
		updater.Indexa = indexa.NewClient(token)
	}
	if err := updater.Refresh(ctx); err != nil {
		log.Printf("refresh degraded: %v", err)
	}
	return store
}

// scopeFlags holds the flags shared by every scoped command.
type scopeFlags struct {
	category string
	asset    string
}

func (s *scopeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.category, "category", "", "Restrict to one category (Stocks, Crypto, Funds, Cash)")
	f.StringVar(&s.asset, "asset", "", "Restrict to one asset id")
}

func (s *scopeFlags) Scope() (findash.Scope, error) {
	if s.asset != "" {
		return findash.ByAsset(s.asset), nil
	}
	if s.category != "" {
		c, err := findash.ParseCategory(s.category)
		if err != nil {
			return findash.Global, err
		}
		return findash.ByCategory(c), nil
	}
	return findash.Global, nil
}

// currencyFlag holds the display currency flag.
type currencyFlag struct {
	currency string
}

func (c *currencyFlag) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "EUR", "Display currency (EUR or USD)")
}

func (c *currencyFlag) Validate() error {
	if c.currency != "EUR" && c.currency != "USD" {
		return fmt.Errorf("unsupported display currency %q", c.currency)
	}
	return nil
}
