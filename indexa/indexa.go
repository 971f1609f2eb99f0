// Package indexa fetches managed-account valuations from the Indexa Capital
// API. Accounts map to dashboard assets by the id "idx_<account_number>"; the
// aggregate asset "idx_1" carries the sum over all accounts.
package indexa

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/shopspring/decimal"
)

// AggregateAssetID is the dashboard asset that tracks the total over all
// managed accounts.
const AggregateAssetID = "idx_1"

// Token resolves the API token: the flag value if set, then the INDEXA_TOKEN
// environment variable.
func Token(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("INDEXA_TOKEN")
}

// AssetID returns the dashboard asset id for an account number.
func AssetID(accountNumber string) string { return "idx_" + accountNumber }

// Account is one managed account with its current valuation.
type Account struct {
	Number       string
	Description  string
	RiskProfile  string
	MarketValue  decimal.Decimal
	VariationPct decimal.Decimal
}

// Accounts fetches all accounts of the token's user with their current
// market value. Accounts whose portfolio leg fails are skipped; the joined
// error reports every skipped account while the remaining ones are still
// returned.
func (c *Client) Accounts(ctx context.Context) ([]Account, error) {
	user, err := c.me(ctx)
	if err != nil {
		return nil, fmt.Errorf("error querying indexa user: %w", err)
	}

	var accounts []Account
	var errs []error
	for _, ua := range user.Accounts {
		p, err := c.portfolio(ctx, ua.AccountNumber)
		if err != nil {
			log.Printf("skipping account %s: %v", ua.AccountNumber, err)
			errs = append(errs, fmt.Errorf("account %s: %w", ua.AccountNumber, err))
			continue
		}
		accounts = append(accounts, Account{
			Number:       ua.AccountNumber,
			Description:  ua.Description,
			RiskProfile:  fmt.Sprintf("%d/10", ua.Risk),
			MarketValue:  p.TotalAmount,
			VariationPct: p.ReturnPct,
		})
	}
	return accounts, errors.Join(errs...)
}

// Total sums the market value over the given accounts.
func Total(accounts []Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.MarketValue)
	}
	return total
}
