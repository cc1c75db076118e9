package models

import "time"

// rainy months in central Cameroon: March to June and September to November
var rainyMonths = map[time.Month]bool{
	time.March:     true,
	time.April:     true,
	time.May:       true,
	time.June:      true,
	time.September: true,
	time.October:   true,
	time.November:  true,
}

// SeasonForDate returns the season a delivery date falls into.
func SeasonForDate(t time.Time) Season {
	if rainyMonths[t.Month()] {
		return SeasonRainy
	}
	return SeasonDry
}
