package simulator

import (
	"context"
	"testing"

	"github.com/chrisdamba/transitsim/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDeliveryWindows(t *testing.T) {
	est := newTestEstimator(t, 4)

	plan, err := est.FindDeliveryWindows(context.Background(), etoaMeki, ruralSite, models.SeasonDry)
	require.NoError(t, err)

	require.Len(t, plan.Windows, 13)
	assert.Equal(t, plan.Windows[0], plan.Optimal)

	seen := make(map[int]bool)
	for i, w := range plan.Windows {
		seen[w.DepartureHour] = true
		assert.Equal(t, 50, w.Simulations)
		assert.Equal(t, w.DepartureHour+ceilHours(w.AverageTime), w.ArrivalHour)
		if i > 0 {
			assert.LessOrEqual(t, plan.Windows[i-1].AverageTime, w.AverageTime)
		}
	}
	for hour := 6; hour <= 18; hour++ {
		assert.True(t, seen[hour], "missing departure hour %d", hour)
	}
}

func TestFindDeliveryWindowsUsesConfiguredRange(t *testing.T) {
	est := newTestEstimator(t, 4, func(c *models.Config) {
		c.WindowStartHour, c.WindowEndHour = 10, 12
		c.WindowTrials = 20
	})

	plan, err := est.FindDeliveryWindows(context.Background(), etoaMeki, olembe, models.SeasonDry)
	require.NoError(t, err)
	require.Len(t, plan.Windows, 3)
	assert.Equal(t, 20, plan.Optimal.Simulations)
}

func TestFindDeliveryWindowsMissingMatrix(t *testing.T) {
	est := newTestEstimator(t, 4)

	_, err := est.FindDeliveryWindows(context.Background(), etoaMeki, olembe, models.SeasonRainy)
	assert.ErrorIs(t, err, models.ErrMissingTransitionMatrix)
	assert.Contains(t, err.Error(), "departure at 06:00")
}

func TestCeilHours(t *testing.T) {
	for minutes, want := range map[int]int{0: 0, 1: 1, 59: 1, 60: 1, 61: 2, 180: 3} {
		assert.Equal(t, want, ceilHours(minutes), "%d minutes", minutes)
	}
}

func window(hour, average int) models.DeliveryWindow {
	return models.DeliveryWindow{
		DepartureHour:     hour,
		SimulationSummary: models.SimulationSummary{AverageTime: average},
	}
}

func TestRecommendDepartures(t *testing.T) {
	tests := []struct {
		name    string
		windows []models.DeliveryWindow
		want    []string
	}{
		{
			"early departure with large saving",
			[]models.DeliveryWindow{window(6, 20), window(12, 35), window(17, 60)},
			[]string{
				"Leave early in the morning to avoid congestion",
				"Choosing the optimal departure hour can save up to 40 minutes",
			},
		},
		{
			"midday departure",
			[]models.DeliveryWindow{window(12, 20), window(8, 25)},
			[]string{"A midday departure is optimal"},
		},
		{
			"saving of exactly thirty minutes",
			[]models.DeliveryWindow{window(8, 20), window(17, 50)},
			nil,
		},
		{"no windows", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recommendDepartures(tt.windows))
		})
	}
}
