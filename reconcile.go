package findash

import (
	"context"
	"log"
	"sync"

	"github.com/marcosgh/findash/date"
)

// ReconciledResult is the self-consistent valuation view for one scope and
// period: the chart series ends at the same value the headline displays, and
// every percentage is computed against the same baseline. It is recomputed on
// every call and never cached; a stale result would break that consistency.
type ReconciledResult struct {
	Scope  Scope
	Period Period

	// Series is the historical value series, with a synthetic last point at
	// today's live value when both exist. Empty when the history leg failed
	// or the backend has no snapshots: callers render an explicit empty
	// state, never a single floating point.
	Series date.History[float64]

	// Headline figures. CurrentValue is the live store total when available,
	// otherwise the backend's figure.
	CurrentValue   float64
	ChangeAbsolute float64
	ChangePercent  Percent
	IsPositive     bool

	// Baseline is the period leg, Day the always-fetched 24h leg. Either is
	// nil when its backend fetch failed; for a 24h period both point to the
	// same figure.
	Baseline *Performance
	Day      *Performance
}

// Converted returns a copy of the result with every monetary figure run
// through conv; percentages are dimensionless and stay as they are. The
// same conversion applied everywhere keeps the header, the table cells, and
// the chart in agreement on displayed numbers.
func (r *ReconciledResult) Converted(conv func(amountEUR float64) float64) *ReconciledResult {
	out := *r
	out.CurrentValue = conv(r.CurrentValue)
	out.ChangeAbsolute = conv(r.ChangeAbsolute)
	convPerf := func(p *Performance) *Performance {
		if p == nil {
			return nil
		}
		q := *p
		q.CurrentValue = conv(p.CurrentValue)
		q.PreviousValue = conv(p.PreviousValue)
		q.ChangeAbsolute = conv(p.ChangeAbsolute)
		return &q
	}
	out.Baseline = convPerf(r.Baseline)
	out.Day = convPerf(r.Day)
	out.Series = date.History[float64]{}
	for on, v := range r.Series.Values() {
		out.Series.Append(on, conv(v))
	}
	return &out
}

// Engine merges the backend's historical snapshots with the store's live
// valuation. It owns no state of its own.
type Engine struct {
	Backend *Client
	Store   *Store
}

// Reconcile produces the valuation view for one scope and period.
//
// The three backend legs (history, period baseline, 24h baseline) are fetched
// concurrently and joined before anything is computed; the live total is read
// from the store exactly once, after the join, so the headline, the 24h
// sub-figure, and the synthetic chart point all see the same snapshot.
//
// There is no error return: each leg degrades independently to its empty
// value, and with no positive live total the backend figures pass through
// unmodified.
func (e *Engine) Reconcile(ctx context.Context, scope Scope, period Period) *ReconciledResult {
	var (
		history *date.History[float64]
		perf    *Performance
		day     *Performance
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		h, err := e.Backend.History(ctx, period, scope)
		if err != nil {
			log.Printf("history leg degraded: %v", err)
			return
		}
		history = h
	}()
	go func() {
		defer wg.Done()
		p, err := e.Backend.Performance(ctx, period, scope)
		if err != nil {
			log.Printf("baseline leg degraded: %v", err)
			return
		}
		perf = p
	}()
	go func() {
		defer wg.Done()
		// daily granularity cannot represent a genuine 24h delta, so the
		// 24h baseline is always fetched fresh, whatever the period.
		p, err := e.Backend.Performance(ctx, Day, scope)
		if err != nil {
			log.Printf("24h baseline leg degraded: %v", err)
			return
		}
		day = p
	}()
	wg.Wait()

	live := e.Store.TotalValue(scope)

	r := &ReconciledResult{Scope: scope, Period: period}
	if history != nil {
		r.Series = *history
	}

	if live > 0 {
		// Override the current figure of each usable baseline with the live
		// total. A baseline with no positive previous value is kept exactly
		// as the backend returned it.
		if perf != nil && perf.PreviousValue > 0 {
			rebased := perf.Rebase(live)
			perf = &rebased
		}
		if day != nil && day.PreviousValue > 0 {
			rebased := day.Rebase(live)
			day = &rebased
		}
		if r.Series.Len() > 0 {
			r.Series.Append(date.Today(), live)
		}
	}

	if period == Day {
		// headline and 24h sub-figure read the same number
		perf = day
	}
	r.Baseline, r.Day = perf, day

	headline := perf
	if headline == nil {
		headline = day
	}
	switch {
	case headline != nil:
		r.CurrentValue = headline.CurrentValue
		r.ChangeAbsolute = headline.ChangeAbsolute
		r.ChangePercent = headline.ChangePercent
	case live > 0:
		r.CurrentValue = live
	default:
		_, r.CurrentValue = r.Series.Latest()
	}
	if live > 0 {
		r.CurrentValue = live
	}
	r.IsPositive = r.ChangePercent.Positive()
	return r
}
