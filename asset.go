package findash

import (
	"fmt"
	"strings"
)

// Category classifies a holding within the portfolio.
type Category string

const (
	Stocks Category = "Stocks"
	Crypto Category = "Crypto"
	Funds  Category = "Funds"
	Cash   Category = "Cash"
)

// Categories lists all portfolio categories.
var Categories = []Category{Stocks, Crypto, Funds, Cash}

// ParseCategory parses a category name. The backend historically labels
// categories in Spanish, so those aliases are accepted too. Managed accounts
// ("Indexa Capital") classify as Funds.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stocks", "acciones":
		return Stocks, nil
	case "crypto", "cripto":
		return Crypto, nil
	case "funds", "fondos", "indexa capital":
		return Funds, nil
	case "cash", "efectivo":
		return Cash, nil
	default:
		return "", fmt.Errorf("unknown category %q", s)
	}
}

// PricingKind tells which fetcher, if any, refreshes an asset's unit price.
type PricingKind int

const (
	Manual PricingKind = iota // never touched by a fetcher
	EquityAPI
	CryptoAPI
	ManagedAccount
)

func (k PricingKind) String() string {
	switch k {
	case EquityAPI:
		return "equity"
	case CryptoAPI:
		return "crypto"
	case ManagedAccount:
		return "managed"
	default:
		return "manual"
	}
}

// Asset is one portfolio holding. UnitPrice is always EUR, the canonical
// currency; Value is derived, never stored.
type Asset struct {
	ID             string
	Name           string
	Category       Category
	Platform       string
	Quantity       float64
	UnitPrice      float64 // EUR
	SourceCurrency string  // "EUR" or "USD", currency of the raw quote
	PricingKind    PricingKind
	ManualOverride bool
	Change24hPct   Percent
	ImageURL       string

	// Provider handles, straight from the backend record.
	YahooSymbol string
	CoingeckoID string
	IndexaAPI   bool
}

// Value returns the asset's current worth in EUR.
func (a Asset) Value() float64 { return a.UnitPrice * a.Quantity }
