package findash

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// coingeckoPriceURI is the CoinGecko simple-price endpoint, a package variable
// so tests can point it at a local server.
var coingeckoPriceURI = "https://api.coingecko.com/api/v3/simple/price"

// coingeckoPrices fetches EUR spot prices for a batch of coin ids in one call.
//
// Response shape: {"bitcoin":{"eur":60123.5},"ethereum":{"eur":2345.1}}.
// Ids missing from the response (unknown coins) are simply absent from the
// returned map.
func coingeckoPrices(ctx context.Context, ids []string) (map[string]float64, error) {
	if len(ids) == 0 {
		return map[string]float64{}, nil
	}
	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	q.Set("vs_currencies", "eur")
	addr := coingeckoPriceURI + "?" + q.Encode()

	var payload map[string]map[string]float64
	if err := jwget(ctx, new(http.Client), addr, &payload); err != nil {
		return nil, fmt.Errorf("error fetching coingecko prices: %w", err)
	}

	prices := make(map[string]float64, len(payload))
	for id, quotes := range payload {
		if eur, ok := quotes["eur"]; ok && eur > 0 {
			prices[id] = eur
		}
	}
	return prices, nil
}
