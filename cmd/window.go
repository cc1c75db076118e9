package cmd

import (
	"fmt"
	"time"

	"github.com/chrisdamba/transitsim/internal/models"
	"github.com/spf13/cobra"
)

var (
	windowFrom string
	windowTo   string
	windowDate string
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Rank departure hours by expected transport time",
	Long: `window estimates every departure hour between window_start_hour and window_end_hour
and ranks them fastest first. With --date the season is derived from the delivery date,
otherwise the configured season is used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := models.ParseLocation(windowFrom)
		if err != nil {
			return fmt.Errorf("--from: %w", err)
		}
		to, err := models.ParseLocation(windowTo)
		if err != nil {
			return fmt.Errorf("--to: %w", err)
		}

		season := config.Season
		if windowDate != "" {
			date, err := time.Parse(time.DateOnly, windowDate)
			if err != nil {
				return fmt.Errorf("--date: %w", err)
			}
			season = models.SeasonForDate(date)
		}

		est, err := newEstimator()
		if err != nil {
			return err
		}
		plan, err := est.FindDeliveryWindows(cmd.Context(), from, to, season)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), plan)
	},
}

func init() {
	windowCmd.Flags().StringVar(&windowFrom, "from", "3.848,11.5021", "Supplier coordinates as lat,lon")
	windowCmd.Flags().StringVar(&windowTo, "to", "3.868,11.5221", "Destination coordinates as lat,lon")
	windowCmd.Flags().StringVar(&windowDate, "date", "", "Delivery date (YYYY-MM-DD) used to pick the season")
	rootCmd.AddCommand(windowCmd)
}
