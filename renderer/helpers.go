// Package renderer turns reconciled valuation results into markdown. It only
// ever reads the values it is handed; every empty or degraded leg renders as
// an explicit "n/a" or empty state, never as a made-up number.
package renderer

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/marcosgh/findash"
	"github.com/marcosgh/findash/date"
)

// Amount formats an amount in the given display currency ("EUR" or "USD"),
// with the currency's own symbol and decimals.
func Amount(v float64, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		cur = money.GetCurrency(money.EUR)
	}
	units := math.Pow10(cur.Fraction)
	return money.New(int64(math.Round(v*units)), cur.Code).Display()
}

// Change formats a signed change figure, e.g. "+90.00 € (+60.00%)".
func Change(abs float64, pct findash.Percent, currency string) string {
	sign := "+"
	if abs < 0 {
		sign, abs = "-", -abs
	}
	return sign + Amount(abs, currency) + " (" + pct.SignedString() + ")"
}

var sparks = []rune("▁▂▃▄▅▆▇█")

// Sparkline draws the series as a one-line block-rune chart. An empty series
// yields an empty string.
func Sparkline(h *date.History[float64]) string {
	if h.Len() == 0 {
		return ""
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range h.Values() {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	var sb strings.Builder
	for _, v := range h.Values() {
		i := 0
		if hi > lo {
			i = int((v - lo) / (hi - lo) * float64(len(sparks)-1))
		}
		sb.WriteRune(sparks[i])
	}
	return sb.String()
}
