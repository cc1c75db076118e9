package models

// DeliveryWindow is the estimate for one departure hour.
type DeliveryWindow struct {
	DepartureHour int `json:"departureHour"`
	ArrivalHour   int `json:"arrivalHour"`
	SimulationSummary
}

// DeliveryWindowPlan ranks departure hours by average trip time.
type DeliveryWindowPlan struct {
	Optimal         DeliveryWindow   `json:"optimal"`
	Windows         []DeliveryWindow `json:"allWindows"`
	Recommendations []string         `json:"recommendations"`
}
