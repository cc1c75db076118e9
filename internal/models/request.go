package models

import "fmt"

const (
	DefaultHour   = 8
	DefaultSeason = SeasonDry
	DefaultTrials = 100
)

// EstimateRequest describes one trip configuration to simulate.
type EstimateRequest struct {
	Supplier    Location `json:"supplier"`
	Destination Location `json:"destination"`
	Hour        int      `json:"hour"`
	Season      Season   `json:"season"`
	Trials      int      `json:"trials"`
}

// NewEstimateRequest returns a request with the default hour, season and trial count.
func NewEstimateRequest(supplier, destination Location) EstimateRequest {
	return EstimateRequest{
		Supplier:    supplier,
		Destination: destination,
		Hour:        DefaultHour,
		Season:      DefaultSeason,
		Trials:      DefaultTrials,
	}
}

// Validate checks coordinates, season, hour and trial count in that order.
func (r EstimateRequest) Validate() error {
	if err := r.Supplier.Validate(); err != nil {
		return fmt.Errorf("supplier: %w", err)
	}
	if err := r.Destination.Validate(); err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	if !r.Season.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSeason, r.Season)
	}
	if r.Hour < 0 || r.Hour > 23 {
		return fmt.Errorf("%w: got %d", ErrInvalidHour, r.Hour)
	}
	if r.Trials <= 0 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveTrialCount, r.Trials)
	}
	return nil
}
