package pricing

import (
	"fmt"
	"time"
)

// DayCountPolicy selects how a pickup/dropoff span turns into billable days.
// The legacy calculators disagreed on this, so it is an explicit setting
// rather than a baked-in rule.
type DayCountPolicy string

const (
	// DayCountCeil bills ceil(elapsed/24h), minimum one day. Default.
	DayCountCeil DayCountPolicy = "ceil"
	// DayCountInclusive bills floor(elapsed/24h)+1: a trip from day N to
	// day N+1 counts as two days.
	DayCountInclusive DayCountPolicy = "inclusive"
)

func ParseDayCountPolicy(s string) DayCountPolicy {
	if DayCountPolicy(s) == DayCountInclusive {
		return DayCountInclusive
	}
	return DayCountCeil
}

const day = 24 * time.Hour

// Days converts a timestamp pair into a billable day count. Zero-length
// spans are valid and bill as one day; a dropoff before the pickup is not.
func Days(pickupAt, dropoffAt time.Time, policy DayCountPolicy) (int, error) {
	if pickupAt.IsZero() || dropoffAt.IsZero() {
		return 0, fmt.Errorf("%w: pickup and dropoff times are required", ErrInvalidDateRange)
	}
	if dropoffAt.Before(pickupAt) {
		return 0, fmt.Errorf("%w: dropoff %s precedes pickup %s",
			ErrInvalidDateRange, dropoffAt.Format(time.RFC3339), pickupAt.Format(time.RFC3339))
	}

	elapsed := dropoffAt.Sub(pickupAt)

	var days int
	switch policy {
	case DayCountInclusive:
		days = int(elapsed/day) + 1
	default:
		days = int((elapsed + day - 1) / day)
	}
	if days < 1 {
		days = 1
	}
	return days, nil
}
