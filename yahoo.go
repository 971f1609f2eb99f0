package findash

import (
	"context"
	"fmt"
	"math"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

// yahooChartURI is the Yahoo finance v8 chart endpoint, a package variable so
// tests can point it at a local server.
var yahooChartURI = "https://query1.finance.yahoo.com/v8/finance/chart/"

// eurUSDSymbol is Yahoo's quote for 1 USD expressed in EUR.
const eurUSDSymbol = "EUR=X"

/*
	{
	    "chart": {
	        "result": [
	            {
	                "meta": {
	                    "currency": "USD",
	                    "symbol": "AAPL",
	                    "regularMarketPrice": 229.35,
	                    ...
*/
func yahooSpot(ctx context.Context, symbol string) (price float64, currency string, err error) {
	addr := yahooChartURI + symbol
	var jobj any
	if err := jwget(ctx, new(http.Client), addr, &jobj); err != nil {
		return math.NaN(), "", fmt.Errorf("error in wget %q: %w", symbol, err)
	}

	price, err = yahooPath(jobj, symbol, "$.chart.result[0].meta.regularMarketPrice")
	if err != nil {
		return math.NaN(), "", err
	}

	// the currency leg is best effort, a missing field defaults to EUR
	currency = "EUR"
	if jval, err := jsonpath.Get("$.chart.result[0].meta.currency", jobj); err == nil {
		if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
			jval = jlist[0]
		}
		if s, ok := jval.(string); ok && s != "" {
			currency = s
		}
	}
	return price, currency, nil
}

// yahooPath extracts a float from the chart payload at the given path.
func yahooPath(jobj any, symbol, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", symbol, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %s %v", symbol, path, "not a float", jval)
	}
	return val, nil
}

// yahooEURPerUSD returns how many EUR one USD is worth right now.
func yahooEURPerUSD(ctx context.Context) (float64, error) {
	rate, _, err := yahooSpot(ctx, eurUSDSymbol)
	if err != nil {
		return math.NaN(), fmt.Errorf("error fetching %q: %w", "EUR/USD", err)
	}
	if rate <= 0 {
		return math.NaN(), fmt.Errorf("unusable EUR/USD rate %v", rate)
	}
	return rate, nil
}
