// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Default values applied by MergeWithDefaults when neither the config file nor a flag sets them.
const (
	DefaultConcurrency = 4
	DefaultOutput      = "scores.json"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Profile  string `json:"profile,omitempty"`  // Path to profile JSON/YAML file
	Jobs     string `json:"jobs,omitempty"`     // Path to job results JSON file
	Output   string `json:"output,omitempty"`   // Path to write scored results
	Variants string `json:"variants,omitempty"` // Optional YAML file of extra skill variants

	// Scoring run
	Concurrency      int     `json:"concurrency,omitempty" validate:"gte=0,lte=256"` // Parallel scoring workers
	MinScore         float64 `json:"min_score,omitempty" validate:"gte=0,lte=5"`     // Drop results scoring below this
	Limit            int     `json:"limit,omitempty" validate:"gte=0"`               // Keep at most this many results (0 = all)
	SkipCompFloor    bool    `json:"skip_comp_floor,omitempty"`                      // Do not filter by the profile's comp_floor
	KeepDealbreakers bool    `json:"keep_dealbreakers,omitempty"`                    // Keep dealbreaker hits in the output

	// Behavior
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed score breakdowns
	LogJSON     bool   `json:"log_json,omitempty"`     // Emit JSON logs instead of console logs
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

var configValidator = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required paths are checked by CLI flag validation after merging, not here.
func (c *Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("'%s' failed %s=%s", jsonFieldName(fe.StructField()), fe.Tag(), fe.Param()))
			}
			return fmt.Errorf("config error: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("config error: %w", err)
	}

	// Input files must exist when given
	for _, f := range []struct{ name, path string }{
		{"profile", c.Profile},
		{"jobs", c.Jobs},
		{"variants", c.Variants},
	} {
		if f.path == "" {
			continue
		}
		if _, err := os.Stat(f.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", f.name, f.path)
		}
	}

	return nil
}

func jsonFieldName(structField string) string {
	switch structField {
	case "MinScore":
		return "min_score"
	default:
		return strings.ToLower(structField)
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.Jobs == "" {
		result.Jobs = defaults.Jobs
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Variants == "" {
		result.Variants = defaults.Variants
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Numeric fields: use default if zero
	if result.Concurrency == 0 {
		if defaults.Concurrency > 0 {
			result.Concurrency = defaults.Concurrency
		} else {
			result.Concurrency = DefaultConcurrency
		}
	}
	if result.MinScore == 0 {
		result.MinScore = defaults.MinScore
	}
	if result.Limit == 0 {
		result.Limit = defaults.Limit
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
