package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCoordinate       = errors.New("invalid coordinate")
	ErrUnknownSeason           = errors.New("unknown season")
	ErrInvalidHour             = errors.New("hour must be between 0 and 23")
	ErrNonPositiveTrialCount   = errors.New("trial count must be positive")
	ErrMissingTransitionMatrix = errors.New("missing transition matrix")
	ErrInvalidMatrix           = errors.New("invalid transition matrix")
)

// MissingTransitionMatrixError identifies the (zone, season, period) combination
// for which no transition matrix is configured.
type MissingTransitionMatrixError struct {
	Zone   Zone
	Season Season
	Period Period
}

func (e *MissingTransitionMatrixError) Error() string {
	return fmt.Sprintf("%s: no matrix for zone=%s season=%s period=%s",
		ErrMissingTransitionMatrix, e.Zone, e.Season, e.Period)
}

func (e *MissingTransitionMatrixError) Is(target error) bool {
	return target == ErrMissingTransitionMatrix
}
