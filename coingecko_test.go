package findash

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCoingeckoPrices(t *testing.T) {
	var gotIDs, gotCurrencies string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotIDs = r.URL.Query().Get("ids")
		gotCurrencies = r.URL.Query().Get("vs_currencies")
		w.Write([]byte(`{"bitcoin":{"eur":60123.5},"ethereum":{"eur":2345.1},"weirdcoin":{"eur":0}}`))
	}))
	defer srv.Close()
	old := coingeckoPriceURI
	coingeckoPriceURI = srv.URL
	defer func() { coingeckoPriceURI = old }()

	prices, err := coingeckoPrices(context.Background(), []string{"bitcoin", "ethereum", "weirdcoin", "unknowncoin"})
	if err != nil {
		t.Fatalf("coingeckoPrices() failed: %v", err)
	}
	if gotIDs != "bitcoin,ethereum,weirdcoin,unknowncoin" {
		t.Errorf("ids param = %q", gotIDs)
	}
	if gotCurrencies != "eur" {
		t.Errorf("vs_currencies param = %q, want eur", gotCurrencies)
	}
	if len(prices) != 2 {
		t.Fatalf("got %d prices, want 2 (zero and unknown dropped)", len(prices))
	}
	if prices["bitcoin"] != 60123.5 || prices["ethereum"] != 2345.1 {
		t.Errorf("prices = %v", prices)
	}
}

func TestCoingeckoPricesEmptyBatch(t *testing.T) {
	prices, err := coingeckoPrices(context.Background(), nil)
	if err != nil {
		t.Fatalf("coingeckoPrices(nil) failed: %v", err)
	}
	if len(prices) != 0 {
		t.Errorf("prices = %v, want empty", prices)
	}
}

func TestCoingeckoPricesLive(t *testing.T) {
	// This is an integration test that hits the live CoinGecko server.
	if testing.Short() {
		t.Skip("skipping integration test in short mode.")
	}
	prices, err := coingeckoPrices(context.Background(), []string{"bitcoin"})
	if err != nil {
		t.Fatalf("coingeckoPrices() failed: %v", err)
	}
	if prices["bitcoin"] <= 0 {
		t.Errorf("bitcoin price = %v, want positive", prices["bitcoin"])
	}
}
