package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/userpage/internal/i18n"
	"github.com/rshade/userpage/internal/pagination"
)

// Defaults applied before the config file, .env and environment are read.
const (
	DefaultSourceURL     = "http://localhost:3000/users"
	DefaultSourceTimeout = 10 * time.Second
	DefaultOutputFormat  = "table"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultServerAddr    = ":8080"
	configFileName       = "config.yaml"
	dotEnvFileName       = ".env"
)

// Config is the complete userpage configuration.
type Config struct {
	Source     SourceConfig     `yaml:"source"     json:"source"`
	Pagination PaginationConfig `yaml:"pagination" json:"pagination"`
	Output     OutputConfig     `yaml:"output"     json:"output"`
	Logging    LoggingConfig    `yaml:"logging"    json:"logging"`
	Server     ServerConfig     `yaml:"server"     json:"server"`

	// Warnings collects non-fatal problems found while loading.
	Warnings []string `yaml:"-" json:"-"`
}

// SourceConfig describes the upstream user endpoint.
type SourceConfig struct {
	URL     string        `yaml:"url"     json:"url"     validate:"required,url"`
	Timeout time.Duration `yaml:"timeout" json:"timeout"`
}

// PaginationConfig holds the default page size and control window.
type PaginationConfig struct {
	PageSize int `yaml:"page_size" json:"page_size" validate:"min=1,max=1000"`
	Window   int `yaml:"window"    json:"window"    validate:"min=1,max=50"`
}

// OutputConfig controls non-interactive rendering and localisation.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format" validate:"oneof=table json ndjson yaml"`
	Locale        string `yaml:"locale"         json:"locale"         validate:"locale"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level  string `yaml:"level"  json:"level"  validate:"omitempty,oneof=trace debug info warn error disabled"`
	Format string `yaml:"format" json:"format" validate:"omitempty,oneof=console json"`
	File   string `yaml:"file"   json:"file"`
}

// ServerConfig controls the HTML server.
type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr" validate:"required,hostname_port"`
}

// Default returns a Config populated with built-in defaults only.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			URL:     DefaultSourceURL,
			Timeout: DefaultSourceTimeout,
		},
		Pagination: PaginationConfig{
			PageSize: pagination.DefaultPageSize,
			Window:   pagination.DefaultWindowLimit,
		},
		Output: OutputConfig{
			DefaultFormat: DefaultOutputFormat,
			Locale:        i18n.DefaultLocale,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Server: ServerConfig{
			Addr: DefaultServerAddr,
		},
	}
}

// New loads the configuration from the default locations: the config file in
// the userpage home directory, a .env file in the working directory and the
// process environment. Problems are recorded in Warnings. A config file that
// cannot be read or parsed is replaced by the defaults.
func New() *Config {
	path, err := ConfigFilePath()
	if err != nil {
		cfg := Default()
		cfg.Warnings = append(cfg.Warnings, err.Error())
		return cfg
	}

	cfg, err := Load(path, dotEnvFileName, os.LookupEnv)
	if err != nil {
		fallback := Default()
		fallback.Warnings = append(fallback.Warnings, err.Error())
		return fallback
	}
	return cfg
}

// Load builds a Config from defaults, then the YAML file at path, then the
// dotenv file, then lookupEnv. Missing files are not an error. An unreadable
// dotenv file or a malformed environment value is recorded in Warnings and
// skipped; only a broken config file fails the load.
func Load(path, dotEnvPath string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	lookup, err := withDotEnv(dotEnvPath, lookupEnv)
	if err != nil {
		cfg.Warnings = append(cfg.Warnings, err.Error())
		lookup = lookupEnv
	}

	for _, err := range cfg.applyEnv(lookup) {
		cfg.Warnings = append(cfg.Warnings, err.Error())
	}
	return cfg, nil
}

// mergeFile overlays the YAML file at path onto cfg.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// Save writes cfg as YAML to path, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := c.YAML()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// YAML returns the configuration encoded as YAML.
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}
