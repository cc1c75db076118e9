package simulator

import (
	"context"
	"fmt"
	"sort"

	"github.com/chrisdamba/transitsim/internal/models"
)

// FindDeliveryWindows estimates every departure hour in the configured window
// and ranks them by average trip time, fastest first.
func (e *Estimator) FindDeliveryWindows(ctx context.Context, supplier, destination models.Location, season models.Season) (models.DeliveryWindowPlan, error) {
	var windows []models.DeliveryWindow
	for hour := e.Config.WindowStartHour; hour <= e.Config.WindowEndHour; hour++ {
		summary, err := e.Estimate(ctx, models.EstimateRequest{
			Supplier:    supplier,
			Destination: destination,
			Hour:        hour,
			Season:      season,
			Trials:      e.Config.WindowTrials,
		})
		if err != nil {
			return models.DeliveryWindowPlan{}, fmt.Errorf("departure at %02d:00: %w", hour, err)
		}
		windows = append(windows, models.DeliveryWindow{
			DepartureHour:     hour,
			ArrivalHour:       hour + ceilHours(summary.AverageTime),
			SimulationSummary: summary,
		})
	}

	sort.SliceStable(windows, func(i, j int) bool {
		return windows[i].AverageTime < windows[j].AverageTime
	})

	return models.DeliveryWindowPlan{
		Optimal:         windows[0],
		Windows:         windows,
		Recommendations: recommendDepartures(windows),
	}, nil
}

func ceilHours(minutes int) int {
	if minutes <= 0 {
		return 0
	}
	return (minutes + 59) / 60
}

// recommendDepartures expects windows sorted fastest first.
func recommendDepartures(windows []models.DeliveryWindow) []string {
	if len(windows) == 0 {
		return nil
	}
	best := windows[0]
	worst := windows[len(windows)-1]

	var recommendations []string
	if best.DepartureHour <= 7 {
		recommendations = append(recommendations, "Leave early in the morning to avoid congestion")
	}
	if best.DepartureHour >= 10 && best.DepartureHour <= 14 {
		recommendations = append(recommendations, "A midday departure is optimal")
	}
	if saved := worst.AverageTime - best.AverageTime; saved > 30 {
		recommendations = append(recommendations,
			fmt.Sprintf("Choosing the optimal departure hour can save up to %d minutes", saved))
	}
	return recommendations
}
