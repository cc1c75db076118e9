package models

// TrafficLevel is the congestion component of a TrafficWeatherState.
type TrafficLevel int

const (
	TrafficFluid TrafficLevel = iota
	TrafficDense
	TrafficJammed
)

// Weather is the weather component of a TrafficWeatherState.
type Weather int

const (
	WeatherDry Weather = iota
	WeatherRain
)

// TrafficWeatherState is one of the six Markov states. Its integer value is
// the canonical index used by every transition matrix row.
type TrafficWeatherState int

const (
	FluidDry TrafficWeatherState = iota
	DenseDry
	JammedDry
	FluidRain
	DenseRain
	JammedRain
)

const NumStates = 6

// States lists every state in canonical index order.
var States = [NumStates]TrafficWeatherState{FluidDry, DenseDry, JammedDry, FluidRain, DenseRain, JammedRain}

// average speeds in km/h
var stateSpeeds = [NumStates]float64{45, 30, 15, 35, 20, 10}

var stateNames = [NumStates]string{"fluid_dry", "dense_dry", "jammed_dry", "fluid_rain", "dense_rain", "jammed_rain"}

// StateFor combines a traffic level and weather into a state.
func StateFor(traffic TrafficLevel, weather Weather) TrafficWeatherState {
	return TrafficWeatherState(int(weather)*3 + int(traffic))
}

func (s TrafficWeatherState) Valid() bool {
	return s >= FluidDry && s <= JammedRain
}

// Speed returns the average travel speed in km/h.
func (s TrafficWeatherState) Speed() float64 {
	return stateSpeeds[s]
}

func (s TrafficWeatherState) Traffic() TrafficLevel {
	return TrafficLevel(int(s) % 3)
}

func (s TrafficWeatherState) Weather() Weather {
	return Weather(int(s) / 3)
}

func (s TrafficWeatherState) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return stateNames[s]
}
