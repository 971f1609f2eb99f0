package findash

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/marcosgh/findash/date"
)

// fakeBackend serves the three reconciliation legs. A nil body makes the
// matching endpoint fail with a 500.
type fakeBackend struct {
	history     string            // /api/portfolio/history body
	performance map[string]string // period label -> /api/portfolio/performance body
}

func (f *fakeBackend) serve(t *testing.T) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/portfolio/history":
			if f.history == "" {
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			}
			fmt.Fprint(w, f.history)
		case "/api/portfolio/performance":
			body, ok := f.performance[r.URL.Query().Get("period")]
			if !ok {
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			}
			fmt.Fprint(w, body)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL)
}

func liveStore(assets ...Asset) *Store {
	s := NewStore()
	s.assets, s.ready = assets, true
	return s
}

func TestReconcileOverridesBaselineWithLiveValue(t *testing.T) {
	// one crypto asset, quantity 2, live unit price 120 -> live total 240
	store := liveStore(Asset{ID: "a1", Category: Crypto, Quantity: 2, UnitPrice: 100})
	store.ApplyPriceUpdate("a1", 120)

	backend := &fakeBackend{
		history: `[{"date":"2024-01-01","value":150}]`,
		performance: map[string]string{
			"7d":  `{"current_value":200,"previous_value":150,"change_absolute":50,"change_percent":33.33,"period":"7d"}`,
			"24h": `{"current_value":200,"previous_value":230,"change_absolute":-30,"change_percent":-13.04,"period":"24h"}`,
		},
	}

	e := &Engine{Backend: backend.serve(t), Store: store}
	r := e.Reconcile(context.Background(), Global, Week)

	if r.CurrentValue != 240 {
		t.Errorf("CurrentValue = %v, want live 240", r.CurrentValue)
	}
	if math.Abs(r.ChangeAbsolute-90) > 1e-9 {
		t.Errorf("ChangeAbsolute = %v, want 90", r.ChangeAbsolute)
	}
	if math.Abs(float64(r.ChangePercent)-60.0) > 1e-9 {
		t.Errorf("ChangePercent = %v, want 60.0", r.ChangePercent)
	}
	if !r.IsPositive {
		t.Error("IsPositive = false, want true")
	}

	// the 24h sub-figure is rebased against the same live value
	if r.Day == nil {
		t.Fatal("Day leg is nil")
	}
	if math.Abs(r.Day.ChangeAbsolute-10) > 1e-9 {
		t.Errorf("Day.ChangeAbsolute = %v, want 240-230=10", r.Day.ChangeAbsolute)
	}

	// series got the synthetic point, chronologically last
	if r.Series.Len() != 2 {
		t.Fatalf("series has %d points, want 2", r.Series.Len())
	}
	if on, v := r.Series.Latest(); on != date.Today() || v != 240 {
		t.Errorf("synthetic point = (%v, %v), want (%v, 240)", on, v, date.Today())
	}
	if on, v := r.Series.First(); on != date.MustParse("2024-01-01") || v != 150 {
		t.Errorf("first point = (%v, %v), want (2024-01-01, 150)", on, v)
	}
}

func TestReconcile24hHeadlineMatchesSubFigure(t *testing.T) {
	store := liveStore(Asset{ID: "a1", Category: Crypto, Quantity: 1, UnitPrice: 500})
	backend := &fakeBackend{
		history: `[{"date":"2024-01-01","value":450}]`,
		performance: map[string]string{
			"24h": `{"current_value":460,"previous_value":450,"change_absolute":10,"change_percent":2.22,"period":"24h"}`,
		},
	}

	e := &Engine{Backend: backend.serve(t), Store: store}
	r := e.Reconcile(context.Background(), Global, Day)

	if r.Baseline == nil || r.Day == nil {
		t.Fatal("expected both legs present")
	}
	if *r.Baseline != *r.Day {
		t.Errorf("headline %+v differs from 24h sub-figure %+v", r.Baseline, r.Day)
	}
	if r.CurrentValue != 500 || math.Abs(r.ChangeAbsolute-50) > 1e-9 {
		t.Errorf("headline = (%v, %v), want (500, 50)", r.CurrentValue, r.ChangeAbsolute)
	}
}

func TestReconcileZeroPreviousValuePassesThrough(t *testing.T) {
	store := liveStore(Asset{ID: "a1", Category: Crypto, Quantity: 1, UnitPrice: 500})
	backend := &fakeBackend{
		history: `[{"date":"2024-01-01","value":450}]`,
		performance: map[string]string{
			"1m":  `{"current_value":450,"previous_value":0,"change_absolute":0,"change_percent":7.5,"period":"1m"}`,
			"24h": `{"current_value":450,"previous_value":0,"change_absolute":0,"change_percent":1.5,"period":"24h"}`,
		},
	}

	e := &Engine{Backend: backend.serve(t), Store: store}
	r := e.Reconcile(context.Background(), Global, Month)

	// the backend's raw percentage survives, and no NaN/Inf is produced
	if !r.ChangePercent.Equal(7.5) {
		t.Errorf("ChangePercent = %v, want backend's 7.5", r.ChangePercent)
	}
	if math.IsNaN(float64(r.ChangePercent)) || math.IsInf(float64(r.ChangePercent), 0) {
		t.Errorf("ChangePercent = %v, want a finite number", r.ChangePercent)
	}
	if r.Baseline.PreviousValue != 0 || r.Baseline.CurrentValue != 450 {
		t.Errorf("baseline modified: %+v", r.Baseline)
	}
	// the headline current value is still the live one
	if r.CurrentValue != 500 {
		t.Errorf("CurrentValue = %v, want live 500", r.CurrentValue)
	}
}

func TestReconcileFailedHistoryLeg(t *testing.T) {
	store := liveStore(Asset{ID: "a1", Category: Crypto, Quantity: 1, UnitPrice: 500})
	backend := &fakeBackend{
		history: "", // history endpoint fails
		performance: map[string]string{
			"7d":  `{"current_value":460,"previous_value":400,"change_absolute":60,"change_percent":15,"period":"7d"}`,
			"24h": `{"current_value":460,"previous_value":450,"change_absolute":10,"change_percent":2.22,"period":"24h"}`,
		},
	}

	e := &Engine{Backend: backend.serve(t), Store: store}
	r := e.Reconcile(context.Background(), Global, Week)

	// empty series stays empty: no synthetic point to float alone
	if r.Series.Len() != 0 {
		t.Errorf("series has %d points, want 0", r.Series.Len())
	}
	// the baseline legs still reconcile
	if math.Abs(float64(r.ChangePercent)-25) > 1e-9 {
		t.Errorf("ChangePercent = %v, want (500-400)/400 = 25%%", r.ChangePercent)
	}
}

func TestReconcileFailedBaselineLeg(t *testing.T) {
	store := liveStore(Asset{ID: "a1", Category: Crypto, Quantity: 1, UnitPrice: 500})
	backend := &fakeBackend{
		history: `[{"date":"2024-01-01","value":450}]`,
		performance: map[string]string{
			"24h": `{"current_value":460,"previous_value":450,"change_absolute":10,"change_percent":2.22,"period":"24h"}`,
		},
	}

	e := &Engine{Backend: backend.serve(t), Store: store}
	r := e.Reconcile(context.Background(), Global, Week)

	if r.Baseline != nil {
		t.Errorf("Baseline = %+v, want nil for the failed leg", r.Baseline)
	}
	// headline falls back to the 24h leg
	if r.Day == nil {
		t.Fatal("Day leg is nil")
	}
	if math.Abs(r.ChangeAbsolute-50) > 1e-9 {
		t.Errorf("ChangeAbsolute = %v, want 500-450=50", r.ChangeAbsolute)
	}
	// synthetic point still lands, the series leg succeeded
	if on, v := r.Series.Latest(); on != date.Today() || v != 500 {
		t.Errorf("Latest() = (%v, %v), want (%v, 500)", on, v, date.Today())
	}
}

func TestConverted(t *testing.T) {
	r := &ReconciledResult{
		CurrentValue:   240,
		ChangeAbsolute: 90,
		ChangePercent:  60,
		Baseline:       &Performance{CurrentValue: 240, PreviousValue: 150, ChangeAbsolute: 90, ChangePercent: 60},
	}
	r.Series.Append(date.MustParse("2024-01-01"), 150)

	toUSD := func(v float64) float64 { return v / 0.92 }
	c := r.Converted(toUSD)

	if math.Abs(c.CurrentValue-240/0.92) > 1e-9 {
		t.Errorf("CurrentValue = %v", c.CurrentValue)
	}
	// percentages are dimensionless and survive conversion untouched
	if c.ChangePercent != 60 || c.Baseline.ChangePercent != 60 {
		t.Errorf("percent changed: %v, %v", c.ChangePercent, c.Baseline.ChangePercent)
	}
	if v, _ := c.Series.Get(date.MustParse("2024-01-01")); math.Abs(v-150/0.92) > 1e-9 {
		t.Errorf("series value = %v", v)
	}
	// the original is untouched
	if r.CurrentValue != 240 || r.Baseline.CurrentValue != 240 {
		t.Errorf("original mutated: %+v", r)
	}
	if v, _ := r.Series.Get(date.MustParse("2024-01-01")); v != 150 {
		t.Errorf("original series mutated: %v", v)
	}
}

func TestReconcileSkipsWithoutLiveValue(t *testing.T) {
	testCases := []struct {
		name  string
		store *Store
		scope Scope
	}{
		{name: "unready store", store: NewStore(), scope: Global},
		{name: "unknown asset", store: liveStore(Asset{ID: "a1", Quantity: 1, UnitPrice: 100}), scope: ByAsset("nope")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			backend := &fakeBackend{
				history: `[{"date":"2024-01-01","value":450},{"date":"2024-01-02","value":460}]`,
				performance: map[string]string{
					"7d":  `{"current_value":460,"previous_value":400,"change_absolute":60,"change_percent":15,"period":"7d"}`,
					"24h": `{"current_value":460,"previous_value":450,"change_absolute":10,"change_percent":2.22,"period":"24h"}`,
				},
			}

			e := &Engine{Backend: backend.serve(t), Store: tc.store}
			r := e.Reconcile(context.Background(), tc.scope, Week)

			// raw backend figures pass through unmodified
			if r.CurrentValue != 460 {
				t.Errorf("CurrentValue = %v, want backend's 460", r.CurrentValue)
			}
			if !r.ChangePercent.Equal(15) {
				t.Errorf("ChangePercent = %v, want backend's 15", r.ChangePercent)
			}
			// no synthetic point without a live value
			if r.Series.Len() != 2 {
				t.Errorf("series has %d points, want the backend's 2", r.Series.Len())
			}
			if on, _ := r.Series.Latest(); on != date.MustParse("2024-01-02") {
				t.Errorf("Latest() date = %v, want 2024-01-02", on)
			}
		})
	}
}
