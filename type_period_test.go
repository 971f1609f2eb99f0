package findash

import "testing"

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{in: "24h", want: Day},
		{in: "7d", want: Week},
		{in: "1m", want: Month},
		{in: "3m", want: Quarter},
		{in: "6m", want: HalfYear},
		{in: "1y", want: Year},
		{in: "3y", want: ThreeYears},
		{in: " Month ", want: Month},
		{in: "week", want: Week},
		{in: "2w", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePeriod(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParsePeriod(%q) expected an error, got none", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePeriod(%q) failed: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParsePeriod(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestPeriodDays(t *testing.T) {
	want := map[Period]int{
		Day: 1, Week: 7, Month: 30, Quarter: 90,
		HalfYear: 180, Year: 365, ThreeYears: 1095,
	}
	for _, p := range Periods {
		if got := p.Days(); got != want[p] {
			t.Errorf("%v.Days() = %d, want %d", p, got, want[p])
		}
	}
}

func TestPeriodRoundTrip(t *testing.T) {
	for _, p := range Periods {
		back, err := ParsePeriod(p.String())
		if err != nil {
			t.Errorf("ParsePeriod(%q) failed: %v", p.String(), err)
			continue
		}
		if back != p {
			t.Errorf("ParsePeriod(%q) = %v, want %v", p.String(), back, p)
		}
	}
}
