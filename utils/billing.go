package utils

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComputeBilling derives the billed hours and total cost for a booking
// interval at the given hourly rate: hours = (end-start) seconds / 3600
// rounded to 2 decimal places, cost = hours * rate rounded the same way.
func ComputeBilling(start, end time.Time, pricePerHour decimal.Decimal) (hoursUsed, totalCost decimal.Decimal) {
	seconds := decimal.NewFromFloat(end.Sub(start).Seconds())
	hoursUsed = seconds.Div(decimal.NewFromInt(3600)).Round(2)
	totalCost = hoursUsed.Mul(pricePerHour).Round(2)
	return hoursUsed, totalCost
}

// IntervalsOverlap reports whether the half-open intervals [s1,e1) and
// [s2,e2) share any instant. Touching endpoints (one booking ending exactly
// when the next starts) do not overlap.
func IntervalsOverlap(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}
