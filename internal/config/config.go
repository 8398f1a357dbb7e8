package config

import (
	"math"
	"os"
	"runtime"
	"strconv"
	"strings"

	"boxstat/domain/stats/boxplot"
	"boxstat/internal"
	"boxstat/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Stats  StatsConfig
	Report ReportConfig
	Log    LogConfig
}

// StatsConfig holds box plot computation settings
type StatsConfig struct {
	WhiskerCoef float64
	Workers     int
}

// ReportConfig holds report output settings
type ReportConfig struct {
	Format    string
	Precision int
	Title     string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level internal.LogLevel
}

// Report formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

const (
	DefaultTitle     = "Box Plot of Sample Data"
	DefaultPrecision = 2
	MaxPrecision     = 10
)

// Load reads configuration from environment variables on top of Default and validates it
func Load() (*Config, error) {
	config := Default()

	if err := loadStatsConfig(&config.Stats); err != nil {
		return nil, errors.Wrap(err, "failed to load stats configuration")
	}

	if err := loadReportConfig(&config.Report); err != nil {
		return nil, errors.Wrap(err, "failed to load report configuration")
	}

	if err := loadLogConfig(&config.Log); err != nil {
		return nil, errors.Wrap(err, "failed to load log configuration")
	}

	if err := Validate(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// Default returns the configuration used when no environment is set
func Default() *Config {
	return &Config{
		Stats: StatsConfig{
			WhiskerCoef: boxplot.DefaultWhiskerCoef,
			Workers:     runtime.NumCPU(),
		},
		Report: ReportConfig{
			Format:    FormatText,
			Precision: DefaultPrecision,
			Title:     DefaultTitle,
		},
		Log: LogConfig{Level: internal.LogLevelInfo},
	}
}

func loadStatsConfig(stats *StatsConfig) error {
	coef, err := getEnvFloatOrDefault("BOXSTAT_WHISKER_COEF", stats.WhiskerCoef)
	if err != nil {
		return err
	}
	workers, err := getEnvIntOrDefault("BOXSTAT_WORKERS", stats.Workers)
	if err != nil {
		return err
	}
	stats.WhiskerCoef, stats.Workers = coef, workers
	return nil
}

func loadReportConfig(report *ReportConfig) error {
	precision, err := getEnvIntOrDefault("BOXSTAT_PRECISION", report.Precision)
	if err != nil {
		return err
	}
	report.Precision = precision
	report.Format = strings.ToLower(getEnvOrDefault("BOXSTAT_FORMAT", report.Format))
	report.Title = getEnvOrDefault("BOXSTAT_TITLE", report.Title)
	return nil
}

func loadLogConfig(logConfig *LogConfig) error {
	raw := os.Getenv("LOG_LEVEL")
	if raw == "" {
		return nil
	}
	level, ok := internal.ParseLogLevel(raw)
	if !ok {
		return errors.ConfigInvalid("LOG_LEVEL must be one of ERROR, WARN, INFO, DEBUG, TRACE; got " + raw)
	}
	logConfig.Level = level
	return nil
}

// Validate checks every field; CLI flag overrides are validated again through it.
func Validate(config *Config) error {
	k := config.Stats.WhiskerCoef
	if k <= 0 || math.IsNaN(k) || math.IsInf(k, 0) {
		return errors.ConfigInvalid("whisker coefficient must be a positive finite number")
	}
	if config.Stats.Workers < 1 {
		return errors.ConfigInvalid("workers must be at least 1")
	}
	switch config.Report.Format {
	case FormatText, FormatJSON:
	default:
		return errors.ConfigInvalid("report format must be text or json, got " + config.Report.Format)
	}
	if config.Report.Precision < 0 || config.Report.Precision > MaxPrecision {
		return errors.ConfigInvalid("precision must be between 0 and " + strconv.Itoa(MaxPrecision))
	}
	return nil
}

// Helper functions for environment variable parsing. Unlike a silent
// fallback, a set but malformed value is a configuration error.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, errors.ConfigInvalid(key + " must be an integer, got " + value)
	}
	return intValue, nil
}

func getEnvFloatOrDefault(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	floatValue, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, errors.ConfigInvalid(key + " must be a number, got " + value)
	}
	return floatValue, nil
}
