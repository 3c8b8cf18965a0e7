// Package config loads lvclique settings from TOML or YAML, applies
// defaults and environment overrides, and validates the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvMinSize overrides Search.MinSize when set.
const EnvMinSize = "LVCLIQUE_MIN_SIZE"

var (
	// ErrUnsupportedFormat is returned for a config file that is neither TOML nor YAML.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid configuration")
)

// Config is the complete configuration of a run.
type Config struct {
	Input   InputConfig   `toml:"input" yaml:"input"`
	Search  SearchConfig  `toml:"search" yaml:"search"`
	Charts  ChartsConfig  `toml:"charts" yaml:"charts"`
	Store   StoreConfig   `toml:"store" yaml:"store"`
	Log     LogConfig     `toml:"log" yaml:"log"`
	Metrics MetricsConfig `toml:"metrics" yaml:"metrics"`
	Tracing TracingConfig `toml:"tracing" yaml:"tracing"`
}

// InputConfig locates the CSV inputs.
type InputConfig struct {
	Edges   string `toml:"edges" yaml:"edges"`
	Targets string `toml:"targets" yaml:"targets"`
	Header  bool   `toml:"header" yaml:"header"`
	Comma   string `toml:"comma" yaml:"comma" validate:"len=1"`
}

// SearchConfig tunes the clique search.
type SearchConfig struct {
	MinSize         int  `toml:"min_size" yaml:"min_size" validate:"gte=0"`
	DegeneracyOrder bool `toml:"degeneracy_order" yaml:"degeneracy_order"`
	TimeoutSeconds  int  `toml:"timeout_seconds" yaml:"timeout_seconds" validate:"gte=0"`
}

// ChartsConfig controls PNG output.
type ChartsConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	Dir     string `toml:"dir" yaml:"dir" validate:"required_if=Enabled true"`
	Prefix  string `toml:"prefix" yaml:"prefix" validate:"required"`
	PerPage int    `toml:"per_page" yaml:"per_page" validate:"min=1,max=16"`
	Width   int    `toml:"width" yaml:"width" validate:"gt=0"`
	Height  int    `toml:"height" yaml:"height" validate:"gt=0"`
}

// StoreConfig selects the run store.
type StoreConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	Driver  string `toml:"driver" yaml:"driver" validate:"oneof=sqlite badger"`
	Path    string `toml:"path" yaml:"path" validate:"required"`
}

// LogConfig selects the zap logger.
type LogConfig struct {
	Level       string `toml:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `toml:"development" yaml:"development"`
}

// MetricsConfig controls the Prometheus text dump.
type MetricsConfig struct {
	// TextfilePath, when set, receives the registry in text exposition format.
	TextfilePath string `toml:"textfile_path" yaml:"textfile_path"`
}

// TracingConfig toggles span export to stdout.
type TracingConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input: InputConfig{
			Header: true,
			Comma:  ",",
		},
		Search: SearchConfig{
			MinSize: 10,
		},
		Charts: ChartsConfig{
			Enabled: true,
			Dir:     "charts",
			Prefix:  "viewership_distribution",
			PerPage: 16,
			Width:   1024,
			Height:  768,
		},
		Store: StoreConfig{
			Enabled: true,
			Driver:  "sqlite",
			Path:    filepath.Join("data", "lvclique.db"),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path on top of Default, applies environment overrides and
// validates. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := decode(path, data, &cfg); err != nil {
			return nil, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	return nil
}

func applyEnv(cfg *Config) error {
	raw, ok := os.LookupEnv(EnvMinSize)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, EnvMinSize, raw)
	}
	cfg.Search.MinSize = n

	return nil
}

var validate = validator.New()

// Validate checks every struct tag and joins the failures into one error.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// CommaRune returns the input delimiter as a rune. Validate guarantees one.
func (c InputConfig) CommaRune() rune {
	return []rune(c.Comma)[0]
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Namespace())
	switch e.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s is required", field)
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "len":
		return fmt.Sprintf("%s must have length %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
