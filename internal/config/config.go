package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/couchcryptid/aircooler-perf/internal/domain"
)

// Config holds all tool settings. Environment variables carry the
// AIRCOOLER_ prefix; CLI flags override them. Read-only after Load.
type Config struct {
	RatedPower float64 `envconfig:"RATED_POWER"` // kW
	DesignDuty float64 `envconfig:"DESIGN_DUTY"` // kcal/hr
	DesignUA   float64 `envconfig:"DESIGN_UA"`   // kcal/hr.m².°C

	OutDir    string `envconfig:"OUT_DIR" default:"."`
	Sheet     string `envconfig:"SHEET"`   // explicit worksheet name, optional
	AliasFile string `envconfig:"ALIASES"` // YAML alias-table override, optional
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads configuration from the environment, applying defaults where
// unset. Threshold validation is separate so flag overrides can apply
// first.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("aircooler", &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	return &cfg, nil
}

// Validate rejects unusable configuration before any chart is produced.
// All three design constants must be positive.
func (c *Config) Validate() error {
	if !(c.RatedPower > 0) {
		return errors.New("rated power must be a positive number")
	}
	if !(c.DesignDuty > 0) {
		return errors.New("design duty must be a positive number")
	}
	if !(c.DesignUA > 0) {
		return errors.New("design UA must be a positive number")
	}
	if c.OutDir == "" {
		return errors.New("output directory must not be empty")
	}
	return nil
}

// Thresholds returns the immutable design constants every curve is
// compared against.
func (c *Config) Thresholds() domain.ThresholdSet {
	return domain.ThresholdSet{
		RatedPower: c.RatedPower,
		DesignDuty: c.DesignDuty,
		DesignUA:   c.DesignUA,
	}
}

// AliasTable returns the header-reconciliation table: the built-in
// default, or the validated contents of the configured YAML override.
func (c *Config) AliasTable() (domain.AliasTable, error) {
	if c.AliasFile == "" {
		return domain.DefaultAliasTable(), nil
	}

	data, err := os.ReadFile(c.AliasFile)
	if err != nil {
		return nil, fmt.Errorf("read alias table: %w", err)
	}
	var table domain.AliasTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse alias table %s: %w", c.AliasFile, err)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("alias table %s: %w", c.AliasFile, err)
	}
	return table, nil
}
