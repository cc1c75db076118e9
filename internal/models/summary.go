package models

// ConfidenceInterval is a normal-approximation interval in minutes.
type ConfidenceInterval struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// SimulationSummary is the result of one estimate. Times are whole minutes,
// distance is kilometres rounded to one decimal.
type SimulationSummary struct {
	AverageTime       int                `json:"averageTime"`
	MinTime           int                `json:"minTime"`
	MaxTime           int                `json:"maxTime"`
	StandardDeviation int                `json:"standardDeviation"`
	Confidence95      ConfidenceInterval `json:"confidence95"`
	MedianTime        int                `json:"medianTime"`
	P90Time           int                `json:"p90Time"`
	Distance          float64            `json:"distance"`
	Simulations       int                `json:"simulations"`
	Matrix            string             `json:"matrix"`
	Bearing           float64            `json:"bearing"`
	Midpoint          Location           `json:"midpoint"`
}
