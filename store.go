package findash

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Store is the single source of truth for the live half of every valuation:
// the current asset list and the exchange rate of the running refresh cycle.
//
// The price fetchers write into it concurrently through ApplyPriceUpdate, so
// every access goes through the mutex. All other mutation happens in Load and
// SetExchangeRate.
type Store struct {
	mu     sync.RWMutex
	assets []Asset
	rate   float64 // EUR per 1 USD, zero until a rate was fetched
	ready  bool
}

// NewStore returns an empty, not yet loaded store.
func NewStore() *Store { return &Store{} }

// Load replaces the store content with the asset list fetched from the
// backend and marks the store ready. On failure the store is left not ready
// and empty: callers must treat that as "no live figure available", never as
// "the portfolio is worth zero".
func (s *Store) Load(ctx context.Context, client *Client) error {
	assets, err := client.Assets(ctx)
	if err != nil {
		s.mu.Lock()
		s.assets, s.ready = nil, false
		s.mu.Unlock()
		return fmt.Errorf("loading assets: %w", err)
	}
	s.mu.Lock()
	s.assets, s.ready = assets, true
	s.mu.Unlock()
	return nil
}

// Ready reports whether the store holds a loaded asset list.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Get returns the assets in scope, in load order.
func (s *Store) Get(scope Scope) []Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Asset
	for _, a := range s.assets {
		if scope.Matches(a) {
			out = append(out, a)
		}
	}
	return out
}

// Find returns the asset with the given id.
func (s *Store) Find(id string) (Asset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.assets {
		if a.ID == id {
			return a, true
		}
	}
	return Asset{}, false
}

// TotalValue returns the summed value of the assets in scope, in EUR.
// It is a pure function of the current store state, no I/O. An unready store
// or an unresolvable scope yields zero, which callers must read as "no live
// figure", not as a real valuation.
func (s *Store) TotalValue(scope Scope) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for _, a := range s.assets {
		if scope.Matches(a) {
			total += a.Value()
		}
	}
	return total
}

// ApplyPriceUpdate overwrites the unit price of the asset with the given id.
// It is a no-op when the asset is missing or pinned by a manual override.
// Applying the same update twice leaves the same state, and updates for
// different ids commute, so concurrent fetchers may land in any order.
func (s *Store) ApplyPriceUpdate(id string, price float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.assets {
		if s.assets[i].ID == id {
			if s.assets[i].ManualOverride {
				return
			}
			s.assets[i].UnitPrice = price
			return
		}
	}
}

// SetExchangeRate stores the EUR-per-USD rate for the current refresh cycle.
// Non-positive rates are ignored, keeping the previous rate (or none).
func (s *Store) SetExchangeRate(rate float64) {
	if rate <= 0 {
		return
	}
	s.mu.Lock()
	s.rate = rate
	s.mu.Unlock()
}

// Rate returns the stored EUR-per-USD rate, zero when unavailable.
func (s *Store) Rate() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rate
}

// Convert converts an EUR amount to the display currency. "EUR" is the
// identity. "USD" divides by the stored EUR-per-USD rate; with no usable rate
// the conversion degrades to the identity rather than inventing a number.
func (s *Store) Convert(amountEUR float64, currency string) float64 {
	if currency != "USD" {
		return amountEUR
	}
	rate := s.Rate()
	if rate <= 0 {
		return amountEUR
	}
	return amountEUR / rate
}

// TopMovers returns the n assets in scope with the largest absolute 24h
// change, biggest first.
func (s *Store) TopMovers(scope Scope, n int) []Asset {
	movers := s.Get(scope)
	sort.SliceStable(movers, func(i, j int) bool {
		return abs(movers[i].Change24hPct) > abs(movers[j].Change24hPct)
	})
	if n < len(movers) {
		movers = movers[:n]
	}
	return movers
}

func abs(p Percent) Percent {
	if p < 0 {
		return -p
	}
	return p
}
