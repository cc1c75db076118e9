package simulator

import (
	"context"
	"fmt"
	"sort"

	"github.com/chrisdamba/transitsim/internal/models"
)

// CompareSuppliers estimates the trip from each supplier to site and returns
// the results ordered by average time, fastest first.
func (e *Estimator) CompareSuppliers(ctx context.Context, suppliers []models.Supplier, site models.Location, hour int, season models.Season, trials int) ([]models.SupplierEstimate, error) {
	estimates := make([]models.SupplierEstimate, 0, len(suppliers))
	for _, supplier := range suppliers {
		summary, err := e.Estimate(ctx, models.EstimateRequest{
			Supplier:    supplier.Coordinates,
			Destination: site,
			Hour:        hour,
			Season:      season,
			Trials:      trials,
		})
		if err != nil {
			return nil, fmt.Errorf("supplier %s: %w", supplier.ID, err)
		}
		estimates = append(estimates, models.SupplierEstimate{Supplier: supplier, Summary: summary})
	}

	sort.SliceStable(estimates, func(i, j int) bool {
		return estimates[i].Summary.AverageTime < estimates[j].Summary.AverageTime
	})
	return estimates, nil
}
