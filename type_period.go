package findash

import (
	"fmt"
	"strings"
)

// Period is a lookback window over the portfolio history.
type Period int

const (
	Day Period = iota // 24 hours
	Week
	Month
	Quarter
	HalfYear
	Year
	ThreeYears
)

// Periods lists all supported periods, shortest first.
var Periods = []Period{Day, Week, Month, Quarter, HalfYear, Year, ThreeYears}

// String returns the wire label for the period, as the backend expects it.
func (p Period) String() string {
	switch p {
	case Day:
		return "24h"
	case Week:
		return "7d"
	case Month:
		return "1m"
	case Quarter:
		return "3m"
	case HalfYear:
		return "6m"
	case Year:
		return "1y"
	case ThreeYears:
		return "3y"
	default:
		return "24h"
	}
}

// Days returns the length of the lookback window in days.
func (p Period) Days() int {
	switch p {
	case Day:
		return 1
	case Week:
		return 7
	case Month:
		return 30
	case Quarter:
		return 90
	case HalfYear:
		return 180
	case Year:
		return 365
	case ThreeYears:
		return 1095
	default:
		return 1
	}
}

// Name returns a human label for the period (e.g. "24 hours", "1 year").
func (p Period) Name() string {
	switch p {
	case Day:
		return "24 hours"
	case Week:
		return "7 days"
	case Month:
		return "1 month"
	case Quarter:
		return "3 months"
	case HalfYear:
		return "6 months"
	case Year:
		return "1 year"
	case ThreeYears:
		return "3 years"
	default:
		return "24 hours"
	}
}

// ParsePeriod parses a period label. It accepts the wire labels ("24h", "7d")
// and a few spelled-out aliases.
func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "24h", "1d", "day", "daily":
		return Day, nil
	case "7d", "1w", "week", "weekly":
		return Week, nil
	case "1m", "30d", "month", "monthly":
		return Month, nil
	case "3m", "90d", "quarter", "quarterly":
		return Quarter, nil
	case "6m", "180d":
		return HalfYear, nil
	case "1y", "365d", "year", "yearly":
		return Year, nil
	case "3y":
		return ThreeYears, nil
	default:
		return Day, fmt.Errorf("unknown period %q", p)
	}
}
