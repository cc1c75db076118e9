package simulator

import "github.com/chrisdamba/transitsim/internal/models"

// RandomSource yields uniform draws in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// sampleCumulative returns the first index whose cumulative bound exceeds r.
// ok is false when rounding leaves every bound at or below r.
func sampleCumulative(r float64, bounds []float64) (index int, ok bool) {
	for i, bound := range bounds {
		if r < bound {
			return i, true
		}
	}
	return 0, false
}

// chance of rain on a given trip, per season
var rainProbability = map[models.Season]float64{
	models.SeasonDry:   0.1,
	models.SeasonRainy: 0.7,
}

type trafficCondition struct {
	period  models.Period
	weather models.Weather
}

// Cumulative bounds over fluid, dense and jammed traffic at departure.
var initialTrafficBounds = map[trafficCondition][]float64{
	{models.PeriodPeak, models.WeatherDry}:     {0.4, 0.8, 1},
	{models.PeriodPeak, models.WeatherRain}:    {0.3, 0.8, 1},
	{models.PeriodOffPeak, models.WeatherDry}:  {0.8, 0.95, 1},
	{models.PeriodOffPeak, models.WeatherRain}: {0.6, 0.9, 1},
}

// SampleInitialState draws the weather from the season's rain probability and
// then the traffic level for the departure period. It consumes two draws.
func SampleInitialState(rng RandomSource, hour int, season models.Season) models.TrafficWeatherState {
	weather := models.WeatherDry
	if idx, _ := sampleCumulative(rng.Float64(), []float64{rainProbability[season], 1}); idx == 0 {
		weather = models.WeatherRain
	}

	bounds := initialTrafficBounds[trafficCondition{ClassifyPeriod(hour), weather}]
	traffic := models.TrafficJammed
	if idx, ok := sampleCumulative(rng.Float64(), bounds); ok {
		traffic = models.TrafficLevel(idx)
	}
	return models.StateFor(traffic, weather)
}

// NextState advances one segment. If rounding leaves the row's cumulative sum
// below the draw, the current state is kept.
func NextState(rng RandomSource, current models.TrafficWeatherState, matrix *TransitionMatrix) models.TrafficWeatherState {
	idx, ok := sampleCumulative(rng.Float64(), matrix.cumulative[current][:])
	if !ok {
		return current
	}
	return models.States[idx]
}
