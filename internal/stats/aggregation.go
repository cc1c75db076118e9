// Package stats reduces simulated trip times into summary statistics.
package stats

import (
	"errors"
	"math"
)

// z-score of the two-sided 95% normal interval
const z95 = 1.96

var ErrEmptySample = errors.New("stats: empty sample")

// Summary holds unrounded statistics of a sample.
type Summary struct {
	Count    int
	Mean     float64
	StdDev   float64 // population standard deviation
	Min      float64
	Max      float64
	CI95Low  float64
	CI95High float64
	Median   float64
	P90      float64
}

// Summarize computes the statistics of values without modifying them.
// The 95% interval is mean ± 1.96·stddev, not a percentile interval.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrEmptySample
	}

	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}

	// summation drift can push the mean of identical values past min or max
	mean := math.Max(minVal, math.Min(maxVal, Mean(values)))
	std := StdDev(values, mean)

	return Summary{
		Count:    len(values),
		Mean:     mean,
		StdDev:   std,
		Min:      minVal,
		Max:      maxVal,
		CI95Low:  mean - z95*std,
		CI95High: mean + z95*std,
		Median:   Percentile(values, 50),
		P90:      Percentile(values, 90),
	}, nil
}

// Mean returns the arithmetic mean, or 0 for no values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the population standard deviation around mean.
func StdDev(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sumSq := 0.0
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)))
}
