package cmd

import (
	"fmt"

	"github.com/chrisdamba/transitsim/internal/models"
	"github.com/spf13/cobra"
)

var suppliersSite string

var suppliersCmd = &cobra.Command{
	Use:   "suppliers",
	Short: "Rank the supplier catalog by transport time to a site",
	RunE: func(cmd *cobra.Command, args []string) error {
		site, err := models.ParseLocation(suppliersSite)
		if err != nil {
			return fmt.Errorf("--site: %w", err)
		}

		est, err := newEstimator()
		if err != nil {
			return err
		}
		ranked, err := est.CompareSuppliers(cmd.Context(), models.DefaultSuppliers, site, config.Hour, config.Season, config.Trials)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, e := range ranked {
			fmt.Fprintf(out, "%d. %s %-40s %3d min  (%.1f km, 95%% CI %d-%d)\n",
				i+1, e.Supplier.ID, e.Supplier.Name, e.Summary.AverageTime, e.Summary.Distance,
				e.Summary.Confidence95.Min, e.Summary.Confidence95.Max)
		}
		return nil
	},
}

func init() {
	suppliersCmd.Flags().StringVar(&suppliersSite, "site", "3.858,11.512", "Delivery site coordinates as lat,lon")
	rootCmd.AddCommand(suppliersCmd)
}
