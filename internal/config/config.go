package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/userdir/internal/users"
)

// Defaults for a fresh configuration.
const (
	DefaultPageSize      = 5
	MaxPageSize          = 1000
	DefaultMatch         = MatchPrefix
	DefaultOutputFormat  = "table"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	configFileName       = "config.yaml"
	configFilePermission = 0600
)

// Search match modes.
const (
	MatchPrefix   = "prefix"
	MatchContains = "contains"
)

// Environment variable overrides.
const (
	EnvHome         = "USERDIR_HOME"
	EnvSourceURL    = "USERDIR_SOURCE_URL"
	EnvPageSize     = "USERDIR_PAGE_SIZE"
	EnvLogLevel     = "USERDIR_LOG_LEVEL"
	EnvOutputFormat = "USERDIR_OUTPUT_FORMAT"
)

// Validation errors.
var (
	ErrInvalidPageSize     = fmt.Errorf("list.page_size must be between 1 and %d", MaxPageSize)
	ErrInvalidResults      = errors.New("source.results must be positive")
	ErrInvalidMatch        = errors.New("list.match must be 'prefix' or 'contains'")
	ErrInvalidOutputFormat = errors.New("output.default_format must be one of table, json, ndjson, yaml")
	ErrInvalidTimeout      = errors.New("source.timeout must not be negative")
)

// OutputFormats lists the supported output formats.
//
//nolint:gochecknoglobals // Read-only lookup table.
var OutputFormats = []string{"table", "json", "ndjson", "yaml"}

// SourceConfig selects where users are fetched from.
type SourceConfig struct {
	URL         string        `yaml:"url"`
	Results     int           `yaml:"results"`
	Nationality string        `yaml:"nationality"`
	Timeout     time.Duration `yaml:"timeout"`
	// File, when set, replaces the HTTP request with a saved response.
	File string `yaml:"file,omitempty"`
}

// ListConfig controls pagination and search.
type ListConfig struct {
	PageSize int    `yaml:"page_size"`
	Match    string `yaml:"match"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// Config is the userdir configuration file.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	List    ListConfig    `yaml:"list"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`

	// path is the file the config was loaded from, if any.
	path string
}

// Default returns a configuration with built-in defaults only.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			URL:         users.DefaultURL,
			Results:     users.DefaultResults,
			Nationality: users.DefaultNationality,
			Timeout:     users.DefaultTimeout,
		},
		List: ListConfig{
			PageSize: DefaultPageSize,
			Match:    DefaultMatch,
		},
		Output: OutputConfig{
			DefaultFormat: DefaultOutputFormat,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// New loads the default config file when present, then applies environment
// overrides. Problems with the file fall back to defaults.
func New() *Config {
	path, err := DefaultPath()
	if err != nil {
		cfg := Default()
		cfg.ApplyEnv()
		return cfg
	}
	cfg, err := Load(path)
	if err != nil {
		cfg = Default()
		cfg.ApplyEnv()
	}
	return cfg
}

// Load reads path on top of the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.path = path

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.ApplyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}

	if err := ShallowMergeYAML(cfg, path); err != nil {
		return nil, err
	}

	cfg.ApplyEnv()
	return cfg, nil
}

// Path returns the file the config was loaded from, or "".
func (c *Config) Path() string {
	return c.path
}

// ApplyEnv overrides fields from USERDIR_* environment variables.
// Unparseable numeric values are ignored.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvSourceURL); v != "" {
		c.Source.URL = v
	}
	if v := os.Getenv(EnvPageSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.List.PageSize = n
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.DefaultFormat = strings.ToLower(v)
	}
}

// Validate checks the configuration for values the application cannot use.
func (c *Config) Validate() error {
	if c.List.PageSize < 1 || c.List.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, c.List.PageSize)
	}
	if c.Source.File == "" && c.Source.Results <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidResults, c.Source.Results)
	}
	if c.Source.Timeout < 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidTimeout, c.Source.Timeout)
	}
	if c.List.Match != MatchPrefix && c.List.Match != MatchContains {
		return fmt.Errorf("%w: got %q", ErrInvalidMatch, c.List.Match)
	}
	if !IsValidOutputFormat(c.Output.DefaultFormat) {
		return fmt.Errorf("%w: got %q", ErrInvalidOutputFormat, c.Output.DefaultFormat)
	}
	return nil
}

// IsValidOutputFormat reports whether format is supported.
func IsValidOutputFormat(format string) bool {
	for _, f := range OutputFormats {
		if f == format {
			return true
		}
	}
	return false
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, configFilePermission); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	c.path = path
	return nil
}

// NewSource builds the users source the configuration describes.
func (c *Config) NewSource() users.Source {
	if c.Source.File != "" {
		return &users.FileSource{Path: c.Source.File}
	}
	src := users.NewHTTPSource()
	src.BaseURL = c.Source.URL
	src.Results = c.Source.Results
	src.Nationality = c.Source.Nationality
	src.Timeout = c.Source.Timeout
	return src
}
