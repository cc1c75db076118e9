package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSuppliers(t *testing.T) {
	require.Len(t, DefaultSuppliers, 4)
	for _, s := range DefaultSuppliers {
		assert.NoError(t, s.Coordinates.Validate(), s.ID)
		assert.NotEmpty(t, s.TruckSizes, s.ID)
	}
}

func TestFindSupplier(t *testing.T) {
	s, ok := FindSupplier(DefaultSuppliers, "F3")
	require.True(t, ok)
	assert.Equal(t, "SAINTE HELENE", s.Name)
	assert.Equal(t, Location{Lat: 3.828, Lon: 11.4821}, s.Coordinates)

	_, ok = FindSupplier(DefaultSuppliers, "F9")
	assert.False(t, ok)
}

func TestNewEstimateRecord(t *testing.T) {
	req := DeliveryRequest{
		ID:       "req-1",
		Supplier: DefaultSuppliers[0],
		SiteName: "Rue de Nachtigal",
		Site:     Location{Lat: 3.86, Lon: 11.52},
		Hour:     17,
		Season:   SeasonRainy,
	}
	at := time.Date(2024, time.May, 2, 17, 30, 0, 0, time.UTC)
	summary := SimulationSummary{
		AverageTime:  12,
		Confidence95: ConfidenceInterval{Min: 4, Max: 20},
		Distance:     4.1,
		Simulations:  100,
		Matrix:       "urban_rainy_peak",
	}

	rec := NewEstimateRecord(req, summary, nil, at)
	assert.Equal(t, at.Unix(), rec.Timestamp)
	assert.Equal(t, "F1", rec.SupplierID)
	assert.Equal(t, int32(17), rec.Hour)
	assert.Equal(t, "rainy", rec.Season)
	assert.Equal(t, int64(12), rec.AverageTime)
	assert.Equal(t, int64(20), rec.Confidence95Max)
	assert.Equal(t, "urban_rainy_peak", rec.Matrix)
	assert.Empty(t, rec.Error)

	rec = NewEstimateRecord(req, SimulationSummary{}, ErrMissingTransitionMatrix, at)
	assert.Equal(t, ErrMissingTransitionMatrix.Error(), rec.Error)
	assert.Zero(t, rec.AverageTime)
	assert.Empty(t, rec.Matrix)
}
