package findash

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/marcosgh/findash/indexa"
)

// Updater runs one live-price refresh cycle against the store.
type Updater struct {
	Store  *Store
	Indexa *indexa.Client // nil when no token is configured
}

// Refresh runs one refresh cycle.
//
// The exchange rate is fetched first, so every USD conversion of the cycle
// uses the same rate. Then the three fetcher legs (equities, crypto, managed
// accounts) run concurrently, each landing its prices through
// ApplyPriceUpdate; since that call is idempotent and updates for different
// assets commute, the legs may finish in any order. Refresh returns only
// after all legs settled, so a subsequent Reconcile reads a stable store.
//
// Per-leg failures degrade: healthy legs still land, and the joined error
// reports what did not.
func (u *Updater) Refresh(ctx context.Context) error {
	if rate, err := yahooEURPerUSD(ctx); err != nil {
		log.Printf("exchange rate degraded, keeping previous: %v", err)
	} else {
		u.Store.SetExchangeRate(rate)
	}

	var mu sync.Mutex
	var errs []error
	fail := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		u.refreshEquities(ctx, fail)
	}()
	go func() {
		defer wg.Done()
		u.refreshCrypto(ctx, fail)
	}()
	go func() {
		defer wg.Done()
		u.refreshManaged(ctx, fail)
	}()
	wg.Wait()

	return errors.Join(errs...)
}

// refreshEquities fetches one Yahoo spot per equity asset. USD quotes are
// converted to EUR with the cycle's rate before landing in the store.
func (u *Updater) refreshEquities(ctx context.Context, fail func(error)) {
	for _, a := range u.Store.Get(Global) {
		if a.PricingKind != EquityAPI || a.YahooSymbol == "" {
			continue
		}
		price, currency, err := yahooSpot(ctx, a.YahooSymbol)
		if err != nil {
			fail(fmt.Errorf("equity %s (%s): %w", a.ID, a.YahooSymbol, err))
			continue
		}
		if currency == "USD" {
			rate := u.Store.Rate()
			if rate <= 0 {
				fail(fmt.Errorf("equity %s (%s): USD quote with no exchange rate", a.ID, a.YahooSymbol))
				continue
			}
			price *= rate
		}
		u.Store.ApplyPriceUpdate(a.ID, price)
	}
}

// refreshCrypto fetches all crypto prices in one CoinGecko batch.
func (u *Updater) refreshCrypto(ctx context.Context, fail func(error)) {
	byCoin := map[string][]string{} // coingecko id -> asset ids
	var ids []string
	for _, a := range u.Store.Get(Global) {
		if a.PricingKind != CryptoAPI || a.CoingeckoID == "" {
			continue
		}
		if _, seen := byCoin[a.CoingeckoID]; !seen {
			ids = append(ids, a.CoingeckoID)
		}
		byCoin[a.CoingeckoID] = append(byCoin[a.CoingeckoID], a.ID)
	}
	if len(ids) == 0 {
		return
	}
	prices, err := coingeckoPrices(ctx, ids)
	if err != nil {
		fail(fmt.Errorf("crypto: %w", err))
		return
	}
	for coin, assetIDs := range byCoin {
		eur, ok := prices[coin]
		if !ok {
			fail(fmt.Errorf("crypto: no price for %q", coin))
			continue
		}
		for _, id := range assetIDs {
			u.Store.ApplyPriceUpdate(id, eur)
		}
	}
}

// refreshManaged fetches the managed accounts and lands one price per
// account asset, plus the aggregate asset carrying the total. Managed assets
// hold quantity 1, so the account value is the unit price.
func (u *Updater) refreshManaged(ctx context.Context, fail func(error)) {
	if u.Indexa == nil {
		return
	}
	accounts, err := u.Indexa.Accounts(ctx)
	if err != nil {
		fail(fmt.Errorf("managed accounts: %w", err))
	}
	for _, a := range accounts {
		value, _ := a.MarketValue.Float64()
		u.Store.ApplyPriceUpdate(indexa.AssetID(a.Number), value)
	}
	// a partial account list would understate the aggregate
	if err == nil && len(accounts) > 0 {
		total, _ := indexa.Total(accounts).Float64()
		u.Store.ApplyPriceUpdate(indexa.AggregateAssetID, total)
	}
}
