package models

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	Seed    int64  `mapstructure:"seed"`
	Trials  int    `mapstructure:"trials"`
	Hour    int    `mapstructure:"hour"`
	Season  Season `mapstructure:"season"`
	Workers int    `mapstructure:"workers"`

	CityLat         float64 `mapstructure:"city_latitude"`
	CityLon         float64 `mapstructure:"city_longitude"`
	UrbanRadius     float64 `mapstructure:"urban_radius"`      // km
	DetourFactor    float64 `mapstructure:"detour_factor"`     // road distance / great-circle distance
	SegmentLengthKm float64 `mapstructure:"segment_length_km"` // distance over which a state is held

	WindowTrials    int `mapstructure:"window_trials"`
	WindowStartHour int `mapstructure:"window_start_hour"`
	WindowEndHour   int `mapstructure:"window_end_hour"`

	// TransitionMatrices adds or replaces matrices by name, e.g. "rural" or
	// "urban_rainy_peak". Each value is a 6x6 row-stochastic matrix.
	TransitionMatrices map[string][][]float64 `mapstructure:"transition_matrices"`
	StrictMatrices     bool                   `mapstructure:"strict_matrices"`

	LogLevel     string `mapstructure:"log_level"`
	OutputFormat string `mapstructure:"output_format"`
	OutputPath   string `mapstructure:"output_path"`
	OutputFolder string `mapstructure:"output_folder"`
	BatchSize    int    `mapstructure:"batch_size"`
}

var defaults = map[string]interface{}{
	"seed":              42,
	"trials":            DefaultTrials,
	"hour":              DefaultHour,
	"season":            string(DefaultSeason),
	"workers":           1,
	"city_latitude":     3.848,
	"city_longitude":    11.502,
	"urban_radius":      25.0,
	"detour_factor":     1.3,
	"segment_length_km": 5.0,
	"window_trials":     50,
	"window_start_hour": 6,
	"window_end_hour":   18,
	"strict_matrices":   false,
	"log_level":         "info",
	"output_format":     OutputFormatConsole,
	"output_path":       "",
	"output_folder":     "estimates",
	"batch_size":        100,
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

// DefaultConfig returns the configuration used when no file or flags are given.
func DefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)
	var config Config
	// defaults always decode
	_ = v.Unmarshal(&config)
	return &config
}

// LoadConfig initializes and reads the configuration using the global Viper
// instance, so values bound from command flags take part.
func LoadConfig(cfgFile string) (*Config, error) {
	return loadConfig(viper.GetViper(), cfgFile)
}

func loadConfig(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("examples")
		v.SetConfigName("transitsim")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("TRANSITSIM")
	v.AutomaticEnv()
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			stringToSeasonHookFunc(),
		)
	})
	if err := v.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// stringToSeasonHookFunc normalizes season values such as "Rainy". Unknown
// values pass through and are rejected by Validate.
func stringToSeasonHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(Season("")) {
			return data, nil
		}
		if season, err := ParseSeason(data.(string)); err == nil {
			return season, nil
		}
		return data, nil
	}
}

// Validate checks the values the estimator relies on.
func (cfg *Config) Validate() error {
	if !cfg.Season.Valid() {
		return fmt.Errorf("config: %w: %q", ErrUnknownSeason, cfg.Season)
	}
	if cfg.Hour < 0 || cfg.Hour > 23 {
		return fmt.Errorf("config: %w: got %d", ErrInvalidHour, cfg.Hour)
	}
	if cfg.Trials <= 0 || cfg.WindowTrials <= 0 {
		return fmt.Errorf("config: %w", ErrNonPositiveTrialCount)
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", cfg.Workers)
	}
	center := Location{Lat: cfg.CityLat, Lon: cfg.CityLon}
	if err := center.Validate(); err != nil {
		return fmt.Errorf("config: city centre: %w", err)
	}
	if cfg.UrbanRadius <= 0 {
		return fmt.Errorf("config: urban_radius must be positive, got %v", cfg.UrbanRadius)
	}
	if cfg.DetourFactor <= 0 {
		return fmt.Errorf("config: detour_factor must be positive, got %v", cfg.DetourFactor)
	}
	if cfg.SegmentLengthKm <= 0 {
		return fmt.Errorf("config: segment_length_km must be positive, got %v", cfg.SegmentLengthKm)
	}
	if cfg.WindowStartHour < 0 || cfg.WindowEndHour > 23 || cfg.WindowStartHour > cfg.WindowEndHour {
		return fmt.Errorf("config: invalid delivery window hours %d-%d", cfg.WindowStartHour, cfg.WindowEndHour)
	}
	switch cfg.OutputFormat {
	case OutputFormatConsole, OutputFormatJSON, OutputFormatCSV, OutputFormatParquet:
	default:
		return fmt.Errorf("config: unsupported output format: %s", cfg.OutputFormat)
	}
	return nil
}

// CityCenter returns the reference point used for zone classification.
func (cfg *Config) CityCenter() Location {
	return Location{Lat: cfg.CityLat, Lon: cfg.CityLon}
}
