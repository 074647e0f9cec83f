package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Data   DataConfig   `yaml:"data"`
	Rental RentalConfig `yaml:"rental"`
	Report ReportConfig `yaml:"report"`
	Log    LogConfig    `yaml:"log"`
}

// DataConfig contains the CSV data file locations
type DataConfig struct {
	CarsFile      string `yaml:"cars_file"`
	CustomersFile string `yaml:"customers_file"`
	RentalsFile   string `yaml:"rentals_file"`
}

// RentalConfig contains rental defaults
type RentalConfig struct {
	PeriodDays            int   `yaml:"period_days"`
	DefaultDailyRateCents int64 `yaml:"default_daily_rate_cents"`
}

// ReportConfig contains report export settings
type ReportConfig struct {
	OutputFile string `yaml:"output_file"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			CarsFile:      "cars.csv",
			CustomersFile: "customers.csv",
			RentalsFile:   "rentals.csv",
		},
		Rental: RentalConfig{
			PeriodDays:            7,
			DefaultDailyRateCents: 3500,
		},
		Report: ReportConfig{
			OutputFile: "fleet-report.pdf",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from a YAML file. A missing file is not an
// error; defaults apply, then environment overrides.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Data files
	if val := os.Getenv("FLEET_CARS_FILE"); val != "" {
		c.Data.CarsFile = val
	}
	if val := os.Getenv("FLEET_CUSTOMERS_FILE"); val != "" {
		c.Data.CustomersFile = val
	}
	if val := os.Getenv("FLEET_RENTALS_FILE"); val != "" {
		c.Data.RentalsFile = val
	}

	// Rental defaults
	if val := os.Getenv("FLEET_RENTAL_PERIOD_DAYS"); val != "" {
		fmt.Sscanf(val, "%d", &c.Rental.PeriodDays)
	}

	// Report
	if val := os.Getenv("FLEET_REPORT_FILE"); val != "" {
		c.Report.OutputFile = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Data.CarsFile == "" {
		return fmt.Errorf("cars file path is required")
	}
	if c.Data.CustomersFile == "" {
		return fmt.Errorf("customers file path is required")
	}
	if c.Data.RentalsFile == "" {
		return fmt.Errorf("rentals file path is required")
	}
	if c.Rental.PeriodDays < 1 {
		return fmt.Errorf("rental period must be at least one day: %d", c.Rental.PeriodDays)
	}
	if c.Rental.DefaultDailyRateCents < 0 {
		return fmt.Errorf("default daily rate must not be negative")
	}
	if c.Report.OutputFile == "" {
		return fmt.Errorf("report output file path is required")
	}
	return nil
}
