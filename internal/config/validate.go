package config

import (
	"fmt"
	"math"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Fermentation.validate(); err != nil {
		return fmt.Errorf("fermentation: %w", err)
	}

	if strings.TrimSpace(c.Uploads.Dir) == "" {
		return fmt.Errorf("uploads.dir must not be empty")
	}

	return nil
}

func (f *FermentationConfig) validate() error {
	if math.IsNaN(f.MinTemperatureF) || math.IsNaN(f.MaxTemperatureF) ||
		math.IsInf(f.MinTemperatureF, 0) || math.IsInf(f.MaxTemperatureF, 0) {
		return fmt.Errorf("temperature bounds must be finite numbers")
	}
	if f.MinTemperatureF < 0 {
		return fmt.Errorf("min_temperature_f must be >= 0 (got %v)", f.MinTemperatureF)
	}
	if f.MinTemperatureF >= f.MaxTemperatureF {
		return fmt.Errorf("min_temperature_f (%v) must be below max_temperature_f (%v)", f.MinTemperatureF, f.MaxTemperatureF)
	}

	switch strings.ToLower(strings.TrimSpace(f.DefaultTempUnit)) {
	case "fahrenheit", "f", "celsius", "c":
	default:
		return fmt.Errorf("default_temp_unit must be fahrenheit or celsius (got %q)", f.DefaultTempUnit)
	}

	if f.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must be >= 0 (got %d)", f.HistoryLimit)
	}
	return nil
}
