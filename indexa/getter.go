package indexa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/shopspring/decimal"
)

// baseURI is the Indexa Capital API root, a package variable so tests can
// point it at a local server.
var baseURI = "https://api.indexacapital.com"

// Client is an authenticated Indexa Capital API client.
type Client struct {
	token  string
	client *http.Client
}

// NewClient returns a client authenticating with the given X-AUTH-TOKEN.
func NewClient(token string) *Client {
	return &Client{token: token, client: new(http.Client)}
}

// wget retrieves an authenticated payload from the API.
func (c *Client) wget(ctx context.Context, path string) ([]byte, error) {
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURI+path, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot create http request %q: %w", path, err)
	}
	r.Header.Set("X-AUTH-TOKEN", c.token)

	resp, err := c.client.Do(r)
	if err != nil {
		return nil, fmt.Errorf("cannot execute http request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v: %v", path, resp.Status)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, fmt.Errorf("cannot read receiving http body: %w", err)
	}
	return buf.Bytes(), nil
}

// user is the /users/me excerpt this package needs.
type user struct {
	Accounts []struct {
		AccountNumber string `json:"account_number"`
		Description   string `json:"description"`
		Risk          int    `json:"risk"`
	} `json:"accounts"`
}

func (c *Client) me(ctx context.Context) (*user, error) {
	data, err := c.wget(ctx, "/users/me")
	if err != nil {
		return nil, err
	}
	return parseUser(data)
}

func parseUser(data []byte) (*user, error) {
	var u user
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("could not decode indexa user json: %w", err)
	}
	return &u, nil
}

// portfolio is the /accounts/{n}/portfolio excerpt this package needs.
// Monetary fields arrive as arbitrary-precision decimals.
type portfolio struct {
	TotalAmount decimal.Decimal `json:"total_amount"`
	ReturnPct   decimal.Decimal `json:"time_return_pct"`
}

func (c *Client) portfolio(ctx context.Context, accountNumber string) (*portfolio, error) {
	data, err := c.wget(ctx, "/accounts/"+accountNumber+"/portfolio")
	if err != nil {
		return nil, err
	}
	return parsePortfolio(data)
}

func parsePortfolio(data []byte) (*portfolio, error) {
	// the interesting fields live under "portfolio"
	var payload struct {
		Portfolio portfolio `json:"portfolio"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("could not decode indexa portfolio json: %w", err)
	}
	return &payload.Portfolio, nil
}
