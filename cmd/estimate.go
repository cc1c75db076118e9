package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/chrisdamba/transitsim/internal/models"
	"github.com/spf13/cobra"
)

var (
	estimateFrom string
	estimateTo   string
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the transport time between two points",
	Example: `  transitsim estimate --from 3.848,11.5021 --to 3.868,11.5221 --hour 17 --season rainy
  transitsim estimate --from 3.848,11.502 --to 4.2,11.9 --trials 1000 --workers 4`,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := models.ParseLocation(estimateFrom)
		if err != nil {
			return fmt.Errorf("--from: %w", err)
		}
		to, err := models.ParseLocation(estimateTo)
		if err != nil {
			return fmt.Errorf("--to: %w", err)
		}

		est, err := newEstimator()
		if err != nil {
			return err
		}
		summary, err := est.Estimate(cmd.Context(), models.EstimateRequest{
			Supplier:    from,
			Destination: to,
			Hour:        config.Hour,
			Season:      config.Season,
			Trials:      config.Trials,
		})
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), summary)
	},
}

func init() {
	estimateCmd.Flags().StringVar(&estimateFrom, "from", "3.848,11.5021", "Supplier coordinates as lat,lon")
	estimateCmd.Flags().StringVar(&estimateTo, "to", "3.868,11.5221", "Destination coordinates as lat,lon")
	rootCmd.AddCommand(estimateCmd)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
