package models

import (
	"fmt"
	"strings"
)

// Zone is the urban/rural classification of a point relative to the city centre.
type Zone string

// Season selects the weather regime used for initial-state sampling.
type Season string

// Period is the peak/off-peak classification of a departure hour.
type Period string

const (
	ZoneUrban Zone = "urban"
	ZoneRural Zone = "rural"

	SeasonDry   Season = "dry"
	SeasonRainy Season = "rainy"

	PeriodPeak    Period = "peak"
	PeriodOffPeak Period = "offpeak"
)

var (
	Seasons = []Season{SeasonDry, SeasonRainy}
	Periods = []Period{PeriodPeak, PeriodOffPeak}
)

const (
	TopicTripEstimates = "trip_estimates"

	OutputFormatConsole = "console"
	OutputFormatJSON    = "json"
	OutputFormatCSV     = "csv"
	OutputFormatParquet = "parquet"
)

func (s Season) Valid() bool {
	return s == SeasonDry || s == SeasonRainy
}

// ParseSeason accepts "dry" or "rainy", case-insensitively.
func ParseSeason(value string) (Season, error) {
	season := Season(strings.ToLower(strings.TrimSpace(value)))
	if !season.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSeason, value)
	}
	return season, nil
}
