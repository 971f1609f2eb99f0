// Package findash is the core of a personal-finance dashboard: it merges a
// backend's periodic portfolio snapshots with freshly fetched live market
// prices into one internally consistent view of current value, change, and
// chart series, for any scope (whole portfolio, one category, one asset) and
// any period (24 hours to 3 years).
//
// The moving parts are the Store (live half of every valuation), the backend
// Client (historical half), the market price fetchers (Yahoo, CoinGecko,
// Indexa) that refresh the Store, and the Engine that reconciles both halves.
package findash
