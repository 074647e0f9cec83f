package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "cars.csv", cfg.Data.CarsFile)
	assert.Equal(t, 7, cfg.Rental.PeriodDays)
	assert.Equal(t, int64(3500), cfg.Rental.DefaultDailyRateCents)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data:
  cars_file: /data/fleet.csv
rental:
  period_days: 14
log:
  level: debug
  format: json
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/fleet.csv", cfg.Data.CarsFile)
	// Unset keys keep their defaults.
	assert.Equal(t, "customers.csv", cfg.Data.CustomersFile)
	assert.Equal(t, 14, cfg.Rental.PeriodDays)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FLEET_CARS_FILE", "/tmp/override.csv")
	t.Setenv("FLEET_RENTAL_PERIOD_DAYS", "3")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/override.csv", cfg.Data.CarsFile)
	assert.Equal(t, 3, cfg.Rental.PeriodDays)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	t.Run("Rental period must be positive", func(t *testing.T) {
		cfg := Default()
		cfg.Rental.PeriodDays = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("Paths required", func(t *testing.T) {
		cfg := Default()
		cfg.Data.RentalsFile = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("Malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("data: [broken"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})
}
