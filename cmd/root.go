package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/chrisdamba/transitsim/internal/models"
	"github.com/chrisdamba/transitsim/internal/simulator"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	config  *models.Config
)

var rootCmd = &cobra.Command{
	Use:   "transitsim",
	Short: "Estimates delivery transport times with a Markov-chain Monte Carlo simulation",
	Long: `transitsim estimates how long a truck takes to drive from a supplier to a delivery site.
Each trip is simulated segment by segment through traffic and weather states, and many trips
are summarized into an average, a spread and a 95% confidence interval.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if err := setupLogger(cfg.LogLevel); err != nil {
			return err
		}
		config = cfg
		if used := viper.ConfigFileUsed(); used != "" {
			log.Debug().Str("file", used).Msg("using config file")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./transitsim.yaml)")

	flags := rootCmd.PersistentFlags()
	flags.Int64("seed", 42, "Random seed for simulation (0 seeds from the clock)")
	flags.Int("trials", models.DefaultTrials, "Number of simulated trips per estimate")
	flags.Int("hour", models.DefaultHour, "Departure hour (0-23)")
	flags.String("season", string(models.DefaultSeason), "Season: dry or rainy")
	flags.Int("workers", 1, "Number of trial chunks simulated concurrently")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("output-format", models.OutputFormatConsole, "Output format: console, json, csv or parquet")
	flags.String("output-path", "", "Output directory for json, csv and parquet formats")

	for key, name := range map[string]string{
		"seed":          "seed",
		"trials":        "trials",
		"hour":          "hour",
		"season":        "season",
		"workers":       "workers",
		"log_level":     "log-level",
		"output_format": "output-format",
		"output_path":   "output-path",
	} {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(name)))
	}
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "Error loading .env file:", err)
	}
}

func setupLogger(level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger()
	return nil
}

func newEstimator() (*simulator.Estimator, error) {
	return simulator.NewEstimator(config, simulator.WithLogger(log.Logger))
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
