package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/chrisdamba/transitsim/internal/factories"
	"github.com/chrisdamba/transitsim/internal/models"
	"github.com/chrisdamba/transitsim/internal/output"
	"github.com/chrisdamba/transitsim/internal/simulator"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Estimate a batch of synthetic deliveries and write them to the configured output",
	Long: `batch generates batch_size delivery requests from the supplier catalog to random sites
around the city centre, estimates each one and writes a record per request to the
configured output (console, json, csv or parquet). Requests that cannot be estimated,
such as urban trips without a rainy-season matrix, are written with their error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		est, err := newEstimator()
		if err != nil {
			return err
		}
		out, err := output.New(config)
		if err != nil {
			return err
		}

		factory := factories.NewDeliveryRequestFactory(config.Seed, models.DefaultSuppliers)
		requests := factory.CreateDeliveryRequests(config, config.BatchSize)

		failed, err := runBatch(cmd, est, out, requests)
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing output: %w", closeErr)
		}
		if err != nil {
			return err
		}
		log.Info().
			Int("requests", len(requests)).
			Int("failed", failed).
			Str("format", config.OutputFormat).
			Msg("batch complete")
		return nil
	},
}

func init() {
	batchCmd.Flags().Int("batch-size", 100, "Number of synthetic delivery requests")
	cobra.CheckErr(viper.BindPFlag("batch_size", batchCmd.Flags().Lookup("batch-size")))
	rootCmd.AddCommand(batchCmd)
}

// runBatch estimates each request and writes its record. It returns the
// number of requests whose estimate failed.
func runBatch(cmd *cobra.Command, est *simulator.Estimator, out output.OutputDestination, requests []models.DeliveryRequest) (int, error) {
	bar := progressbar.NewOptions(len(requests),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("estimating"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	failed := 0
	for _, req := range requests {
		summary, estimateErr := est.Estimate(cmd.Context(), models.EstimateRequest{
			Supplier:    req.Supplier.Coordinates,
			Destination: req.Site,
			Hour:        req.Hour,
			Season:      req.Season,
			Trials:      config.Trials,
		})
		if estimateErr != nil {
			if err := cmd.Context().Err(); err != nil {
				return failed, err
			}
			failed++
			log.Debug().Err(estimateErr).Str("request", req.ID).Msg("estimate failed")
		}

		rec := models.NewEstimateRecord(req, summary, estimateErr, time.Now())
		if err := output.WriteRecord(out, rec); err != nil {
			return failed, fmt.Errorf("writing record %s: %w", req.ID, err)
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	return failed, nil
}
