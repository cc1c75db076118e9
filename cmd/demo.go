package cmd

import (
	"fmt"

	"github.com/chrisdamba/transitsim/internal/models"
	"github.com/spf13/cobra"
)

var demoHours = []int{7, 8, 12, 17}

const demoTrials = 200

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Estimate a sample urban trip at several departure hours",
	RunE: func(cmd *cobra.Command, args []string) error {
		est, err := newEstimator()
		if err != nil {
			return err
		}

		supplier := models.DefaultSuppliers[0]
		site := models.DefaultSuppliers[1]
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s -> %s (%s season, %d trials)\n", supplier.Name, site.Name, models.SeasonDry, demoTrials)

		for _, hour := range demoHours {
			summary, err := est.Estimate(cmd.Context(), models.EstimateRequest{
				Supplier:    supplier.Coordinates,
				Destination: site.Coordinates,
				Hour:        hour,
				Season:      models.SeasonDry,
				Trials:      demoTrials,
			})
			if err != nil {
				return fmt.Errorf("departure at %02d:00: %w", hour, err)
			}
			fmt.Fprintf(out, "%02d:00  avg %3d min  [%d-%d]  sd %d  95%% CI %d-%d  %.1f km  %s\n",
				hour, summary.AverageTime, summary.MinTime, summary.MaxTime, summary.StandardDeviation,
				summary.Confidence95.Min, summary.Confidence95.Max, summary.Distance, summary.Matrix)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
