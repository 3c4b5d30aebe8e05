package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database     DatabaseConfig     `yaml:"database"`
	Log          LogConfig          `yaml:"log"`
	Fermentation FermentationConfig `yaml:"fermentation"`
	Uploads      UploadsConfig      `yaml:"uploads"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN              string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns         int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns         int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime  time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime  time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	StatementTimeout time.Duration `yaml:"statement_timeout"  env:"DATABASE_STATEMENT_TIMEOUT"  env-default:"30s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// FermentationConfig holds batch tracking rules.
type FermentationConfig struct {
	// Plausible range for a stored reading, in Fahrenheit.
	MinTemperatureF float64 `yaml:"min_temperature_f" env:"FERMENT_MIN_TEMPERATURE_F" env-default:"0"`
	MaxTemperatureF float64 `yaml:"max_temperature_f" env:"FERMENT_MAX_TEMPERATURE_F" env-default:"212"`
	// Unit for new users and for readings entered without one.
	DefaultTempUnit string `yaml:"default_temp_unit" env:"FERMENT_DEFAULT_TEMP_UNIT" env-default:"fahrenheit"`
	// Number of temperature readings and history entries shown with a batch.
	HistoryLimit int `yaml:"history_limit" env:"FERMENT_HISTORY_LIMIT" env-default:"20"`
}

// UploadsConfig holds photo storage settings.
type UploadsConfig struct {
	Dir string `yaml:"dir" env:"UPLOADS_DIR" env-default:"./uploads"`
}
