package simulator

import (
	"context"
	"testing"

	"github.com/chrisdamba/transitsim/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareSuppliers(t *testing.T) {
	est := newTestEstimator(t, 6)
	site := models.Location{Lat: 3.858, Lon: 11.512}

	ranked, err := est.CompareSuppliers(context.Background(), models.DefaultSuppliers, site, 12, models.SeasonDry, 200)
	require.NoError(t, err)
	require.Len(t, ranked, len(models.DefaultSuppliers))

	ids := make(map[string]bool)
	for i, e := range ranked {
		ids[e.Supplier.ID] = true
		assert.Equal(t, 200, e.Summary.Simulations)
		assert.Equal(t, "urban_dry_offpeak", e.Summary.Matrix)
		if i > 0 {
			assert.LessOrEqual(t, ranked[i-1].Summary.AverageTime, e.Summary.AverageTime)
		}
	}
	assert.Len(t, ids, 4)
}

func TestCompareSuppliersMissingMatrix(t *testing.T) {
	est := newTestEstimator(t, 6)

	_, err := est.CompareSuppliers(context.Background(), models.DefaultSuppliers, olembe, 8, models.SeasonRainy, 10)
	assert.ErrorIs(t, err, models.ErrMissingTransitionMatrix)
	assert.Contains(t, err.Error(), "supplier F1")
}
