package config

// Configuration loading and validation for csvtrim

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/csvtrim/csvtrim/internal/errors"
	"github.com/csvtrim/csvtrim/internal/profile"
)

// DefaultConfigFile is the file Load looks for when no --config flag is given.
const DefaultConfigFile = "csvtrim.yaml"

// envPrefix namespaces the environment overrides, e.g. CSVTRIM_LOG_LEVEL.
const envPrefix = "csvtrim"

// Config represents the csvtrim configuration
type Config struct {
	// ProfileStore is the JSON file holding the named trimming profiles.
	ProfileStore string `yaml:"profile_store" envconfig:"PROFILE_STORE"`

	// OutputDir receives trimmed files. Empty keeps each output next to
	// its input.
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`

	// OutputPrefix is prepended to the input's base name when no explicit
	// output path is given.
	OutputPrefix string `yaml:"output_prefix" envconfig:"OUTPUT_PREFIX"`

	// PreviewRows is how many rows previews show.
	PreviewRows int `yaml:"preview_rows" envconfig:"PREVIEW_ROWS"`

	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL"`
	LogFile  string `yaml:"log_file" envconfig:"LOG_FILE"`

	// DatetimeLayouts replaces the built-in input layouts of the datetime
	// step when non-empty, in Go reference-time form.
	DatetimeLayouts []string `yaml:"datetime_layouts" envconfig:"DATETIME_LAYOUTS"`
}

// CreateDefault returns the configuration used when no file exists yet
func CreateDefault() *Config {
	return &Config{
		ProfileStore: profile.DefaultStoreFile,
		OutputPrefix: "trimmed_",
		PreviewRows:  5,
		LogLevel:     "info",
	}
}

// WriteDefault writes the default configuration to path
func WriteDefault(path string) error {
	cfg := CreateDefault()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Load loads the configuration from a YAML file and applies CSVTRIM_*
// environment overrides on top. If the file doesn't exist and autoCreate is
// true, a default config file is created first.
func Load(path string, autoCreate bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if autoCreate {
				if err := WriteDefault(path); err != nil {
					return nil, fmt.Errorf("create default config: %w", err)
				}
				data, err = os.ReadFile(path)
				if err != nil {
					return nil, errors.WrapConfigError(
						fmt.Errorf("read created config file: %w", err),
						path,
					)
				}
			} else {
				return nil, errors.WrapConfigError(
					fmt.Errorf("config file not found: %s", path),
					path,
				)
			}
		} else {
			return nil, errors.WrapConfigError(
				fmt.Errorf("read config file: %w", err),
				path,
			)
		}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	// Environment wins over the file; unset variables leave file values
	// alone.
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("process environment overrides: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.ProfileStore == "" {
		cfg.ProfileStore = profile.DefaultStoreFile
	}
	if cfg.OutputPrefix == "" {
		cfg.OutputPrefix = "trimmed_"
	}
	if cfg.PreviewRows == 0 {
		cfg.PreviewRows = 5
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// Validate validates a configuration
func Validate(cfg *Config) error {
	if cfg.PreviewRows < 1 {
		return fmt.Errorf("preview_rows must be >= 1")
	}
	switch cfg.LogLevel {
	case "silent", "error", "info", "verbose", "debug":
	default:
		return fmt.Errorf("log_level must be one of silent, error, info, verbose, debug")
	}
	for i, layout := range cfg.DatetimeLayouts {
		if strings.TrimSpace(layout) == "" {
			return fmt.Errorf("datetime_layouts[%d] is empty", i)
		}
	}
	return nil
}
