package findash

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/marcosgh/findash/date"
)

// DefaultBackendURL is where the dashboard backend usually listens.
const DefaultBackendURL = "http://localhost:8000"

// BackendURL resolves the backend base URL: the flag value if set, then the
// FINDASH_BACKEND_URL environment variable, then the default.
func BackendURL(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("FINDASH_BACKEND_URL"); env != "" {
		return env
	}
	return DefaultBackendURL
}

// Client talks to the dashboard backend: the source of the historical half of
// every valuation (snapshots and baselines) and of the asset list itself.
type Client struct {
	BaseURL string
	client  *http.Client
	cached  *http.Client
}

// NewClient returns a backend client. Live figures (assets, baselines) go
// through an uncached client; historical snapshots are immutable once taken,
// so the history endpoint uses the daily disk cache.
func NewClient(baseURL string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), client: new(http.Client), cached: daily()}
}

// assetRecord is the backend's wire shape for one asset.
type assetRecord struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Platform     string  `json:"platform"`
	Quantity     float64 `json:"quantity"`
	PriceEUR     float64 `json:"price_eur"`
	Currency     string  `json:"currency"`
	YahooSymbol  string  `json:"yahoo_symbol"`
	CoingeckoID  string  `json:"coingecko_id"`
	IndexaAPI    bool    `json:"indexa_api"`
	Manual       bool    `json:"manual"`
	ImageURL     string  `json:"image_url"`
	Change24hPct float64 `json:"change_24h_pct"`
}

// asset maps a backend record to the internal shape.
func (r assetRecord) asset() Asset {
	a := Asset{
		ID:             r.ID,
		Name:           r.Name,
		Platform:       r.Platform,
		Quantity:       r.Quantity,
		UnitPrice:      r.PriceEUR,
		SourceCurrency: r.Currency,
		ManualOverride: r.Manual,
		Change24hPct:   Percent(r.Change24hPct),
		ImageURL:       r.ImageURL,
		YahooSymbol:    r.YahooSymbol,
		CoingeckoID:    r.CoingeckoID,
		IndexaAPI:      r.IndexaAPI,
	}
	if a.SourceCurrency == "" {
		a.SourceCurrency = "EUR"
	}
	if c, err := ParseCategory(r.Category); err == nil {
		a.Category = c
	} else {
		// keep the raw label rather than dropping the asset
		a.Category = Category(strings.TrimSpace(r.Category))
	}
	switch {
	case r.Manual:
		a.PricingKind = Manual
	case r.IndexaAPI:
		a.PricingKind = ManagedAccount
	case r.CoingeckoID != "":
		a.PricingKind = CryptoAPI
	case r.YahooSymbol != "":
		a.PricingKind = EquityAPI
	default:
		a.PricingKind = Manual
	}
	return a
}

// Assets fetches the full asset list.
func (c *Client) Assets(ctx context.Context) ([]Asset, error) {
	var records []assetRecord
	if err := jwget(ctx, c.client, c.BaseURL+"/api/assets", &records); err != nil {
		return nil, fmt.Errorf("backend assets: %w", err)
	}
	assets := make([]Asset, 0, len(records))
	for _, r := range records {
		assets = append(assets, r.asset())
	}
	return assets, nil
}

// scopeQuery encodes a scope as the backend's query parameters.
func scopeQuery(q url.Values, scope Scope) {
	if scope.AssetID != "" {
		q.Set("asset_id", scope.AssetID)
	} else if scope.Category != "" {
		q.Set("category", string(scope.Category))
	}
}

// History fetches the historical value series for a scope and period,
// ascending by date.
func (c *Client) History(ctx context.Context, period Period, scope Scope) (*date.History[float64], error) {
	q := url.Values{}
	q.Set("period", period.String())
	scopeQuery(q, scope)

	var points []struct {
		Date  date.Date `json:"date"`
		Value float64   `json:"value"`
	}
	addr := c.BaseURL + "/api/portfolio/history?" + q.Encode()
	if err := jwget(ctx, c.cached, addr, &points); err != nil {
		return nil, fmt.Errorf("backend history %v %v: %w", scope, period, err)
	}
	h := new(date.History[float64])
	for _, p := range points {
		h.Append(p.Date, p.Value)
	}
	return h, nil
}

// Performance fetches the baseline comparison for a scope and period, as
// computed by the backend at last-known prices. It is only ever a baseline;
// reconciliation replaces its current figure with the live one.
func (c *Client) Performance(ctx context.Context, period Period, scope Scope) (*Performance, error) {
	q := url.Values{}
	q.Set("period", period.String())
	scopeQuery(q, scope)

	var perf Performance
	addr := c.BaseURL + "/api/portfolio/performance?" + q.Encode()
	if err := jwget(ctx, c.client, addr, &perf); err != nil {
		return nil, fmt.Errorf("backend performance %v %v: %w", scope, period, err)
	}
	return &perf, nil
}

// TriggerMarketUpdate asks the backend to refresh its own market prices.
// Fire-and-forget: the response carries nothing this engine needs.
func (c *Client) TriggerMarketUpdate(ctx context.Context) error {
	if err := jwpost(ctx, c.client, c.BaseURL+"/api/markets/update", nil, nil); err != nil {
		return fmt.Errorf("backend market update: %w", err)
	}
	return nil
}

// Status is the snapshot published for cross-application consumption.
type Status struct {
	CurrentValue  float64   `json:"current_value"`
	ChangePercent Percent   `json:"change_percent"`
	History       []float64 `json:"history"`
	Timestamp     string    `json:"timestamp"`
}

// NewStatus builds a publishable snapshot from a reconciled result.
func NewStatus(r *ReconciledResult) Status {
	s := Status{
		CurrentValue:  r.CurrentValue,
		ChangePercent: r.ChangePercent,
		History:       []float64{},
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	for _, v := range r.Series.Values() {
		s.History = append(s.History, v)
	}
	return s
}

// PublishStatus persists a status snapshot on the backend.
func (c *Client) PublishStatus(ctx context.Context, s Status) error {
	if err := jwpost(ctx, c.client, c.BaseURL+"/api/portfolio/status", s, nil); err != nil {
		return fmt.Errorf("backend publish status: %w", err)
	}
	return nil
}

// AccountSummary is one managed account as reported by the backend proxy.
type AccountSummary struct {
	AccountNumber string  `json:"account_number"`
	Name          string  `json:"name"`
	MarketValue   float64 `json:"market_value"`
	RiskProfile   string  `json:"risk_profile"`
	VariationPct  Percent `json:"variation_pct"`
}

// AccountsSummary is the backend's view of the managed accounts.
type AccountsSummary struct {
	Success    bool             `json:"success"`
	Error      string           `json:"error"`
	Accounts   []AccountSummary `json:"accounts"`
	TotalValue float64          `json:"total_value"`
}

// IndexaAccounts fetches the managed accounts summary through the backend.
func (c *Client) IndexaAccounts(ctx context.Context) (*AccountsSummary, error) {
	var sum AccountsSummary
	if err := jwget(ctx, c.client, c.BaseURL+"/api/indexa/accounts", &sum); err != nil {
		return nil, fmt.Errorf("backend indexa accounts: %w", err)
	}
	if !sum.Success {
		return nil, fmt.Errorf("backend indexa accounts: %s", sum.Error)
	}
	return &sum, nil
}
