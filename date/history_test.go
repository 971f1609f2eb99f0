package date

import "testing"

func TestHistoryAppendSortsAndDedupes(t *testing.T) {
	var h History[float64]
	h.Append(MustParse("2025-07-03"), 3)
	h.Append(MustParse("2025-07-01"), 1)
	h.Append(MustParse("2025-07-02"), 2)
	h.Append(MustParse("2025-07-01"), 10) // overwrite, last write wins

	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}

	wantDays := []string{"2025-07-01", "2025-07-02", "2025-07-03"}
	wantVals := []float64{10, 2, 3}
	i := 0
	for on, v := range h.Values() {
		if on.String() != wantDays[i] || v != wantVals[i] {
			t.Errorf("point %d = (%v, %v), want (%s, %v)", i, on, v, wantDays[i], wantVals[i])
		}
		i++
	}
	if i != 3 {
		t.Errorf("iterated %d points, want 3", i)
	}
}

func TestHistoryLatestAndFirst(t *testing.T) {
	var h History[float64]
	if on, v := h.Latest(); !on.IsZero() || v != 0 {
		t.Errorf("empty Latest() = (%v, %v), want zero values", on, v)
	}
	h.Append(MustParse("2025-07-02"), 2)
	h.Append(MustParse("2025-07-01"), 1)

	if on, v := h.First(); on != MustParse("2025-07-01") || v != 1 {
		t.Errorf("First() = (%v, %v), want (2025-07-01, 1)", on, v)
	}
	if on, v := h.Latest(); on != MustParse("2025-07-02") || v != 2 {
		t.Errorf("Latest() = (%v, %v), want (2025-07-02, 2)", on, v)
	}
}

func TestHistoryGet(t *testing.T) {
	var h History[float64]
	h.Append(MustParse("2025-07-01"), 1)
	if v, ok := h.Get(MustParse("2025-07-01")); !ok || v != 1 {
		t.Errorf("Get(existing) = (%v, %v), want (1, true)", v, ok)
	}
	if _, ok := h.Get(MustParse("2025-07-02")); ok {
		t.Errorf("Get(missing) reported ok")
	}
}

func TestHistoryValueAsOf(t *testing.T) {
	var h History[float64]
	h.Append(MustParse("2025-07-01"), 1)
	h.Append(MustParse("2025-07-05"), 5)

	if v, ok := h.ValueAsOf(MustParse("2025-07-03")); !ok || v != 1 {
		t.Errorf("ValueAsOf(between) = (%v, %v), want (1, true)", v, ok)
	}
	if v, ok := h.ValueAsOf(MustParse("2025-07-05")); !ok || v != 5 {
		t.Errorf("ValueAsOf(exact) = (%v, %v), want (5, true)", v, ok)
	}
	if _, ok := h.ValueAsOf(MustParse("2025-06-30")); ok {
		t.Errorf("ValueAsOf(before first) reported ok")
	}
}
