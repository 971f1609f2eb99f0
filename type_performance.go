package findash

// Performance is a baseline comparison over one period: the portfolio value
// now versus its value one period ago, as reported by the backend.
type Performance struct {
	CurrentValue   float64 `json:"current_value"`
	PreviousValue  float64 `json:"previous_value"`
	ChangePercent  Percent `json:"change_percent"`
	ChangeAbsolute float64 `json:"change_absolute"`
	Period         string  `json:"period"`
}

// NewPerformance computes a Performance from a previous and a current value.
// A previous value of zero or less yields a zero change, never NaN or Inf.
func NewPerformance(period Period, previous, current float64) Performance {
	p := Performance{
		CurrentValue:  current,
		PreviousValue: previous,
		Period:        period.String(),
	}
	if previous > 0 {
		p.ChangeAbsolute = current - previous
		p.ChangePercent = Percent(100 * (current - previous) / previous)
	}
	return p
}

// Rebase recomputes the change figures against a new current value, keeping
// the previous value as the fixed point. Rebasing to the same current value
// is a no-op, so it is safe to apply more than once.
func (p Performance) Rebase(current float64) Performance {
	p.CurrentValue = current
	if p.PreviousValue > 0 {
		p.ChangeAbsolute = current - p.PreviousValue
		p.ChangePercent = Percent(100 * (current - p.PreviousValue) / p.PreviousValue)
	}
	return p
}

// Positive reports whether the period reads as a gain.
func (p Performance) Positive() bool { return p.ChangePercent.Positive() }
