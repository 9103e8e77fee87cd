package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/twiced-technology-gmbh/ttd/internal/filter"
)

const (
	fileMode = 0o600
	dirMode  = 0o750
)

// ErrInvalid marks settings that fail validation.
var ErrInvalid = errors.New("invalid config")

// Config represents the user settings.
type Config struct {
	Version       int    `yaml:"version"`
	DataFile      string `yaml:"data_file,omitempty"`
	Output        string `yaml:"output"`
	Greeting      *bool  `yaml:"greeting,omitempty"`
	DefaultFilter string `yaml:"default_filter"`
	StrictExit    bool   `yaml:"strict_exit,omitempty"`

	// dir is the absolute path to the settings directory (not serialized).
	dir string `yaml:"-"`
}

// NewDefault creates a Config with default values.
func NewDefault() *Config {
	return &Config{
		Version:       CurrentVersion,
		Output:        DefaultOutput,
		DefaultFilter: DefaultFilter,
	}
}

// Dir returns the absolute path to the settings directory.
func (c *Config) Dir() string {
	return c.dir
}

// SetDir sets the settings directory.
func (c *Config) SetDir(dir string) {
	c.dir = dir
}

// ConfigPath returns the absolute path to the settings file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.dir, ConfigFileName)
}

// ShowGreeting reports whether today prints a greeting. Defaults to true.
func (c *Config) ShowGreeting() bool {
	if c.Greeting == nil {
		return true
	}
	return *c.Greeting
}

// SetGreeting stores the greeting preference.
func (c *Config) SetGreeting(v bool) {
	c.Greeting = boolPtr(v)
}

// Validate checks the config for errors.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("%w: unsupported version %d (expected %d)", ErrInvalid, c.Version, CurrentVersion)
	}
	if !slices.Contains(OutputFormats, c.Output) {
		return fmt.Errorf("%w: output %q must be one of %s",
			ErrInvalid, c.Output, strings.Join(OutputFormats, ", "))
	}
	if _, ok := filter.LookupSelector(c.DefaultFilter); !ok {
		return fmt.Errorf("%w: unknown default_filter %q", ErrInvalid, c.DefaultFilter)
	}
	if strings.TrimSpace(c.DataFile) != c.DataFile {
		return fmt.Errorf("%w: data_file has surrounding whitespace", ErrInvalid)
	}
	return nil
}

// Save writes the config to its settings file, creating the directory.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(c.dir, dirMode); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(c.ConfigPath(), data, fileMode)
}

// Load reads and validates the settings in dir. A missing file yields the
// defaults. Environment overrides are not applied; see ApplyEnv.
func Load(dir string) (*Config, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg := NewDefault()
	path := filepath.Join(absDir, ConfigFileName)
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted source
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		cfg = &Config{}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: parsing %s: %w", ErrInvalid, path, err)
		}
		if err := migrate(cfg); err != nil {
			return nil, err
		}
	}
	cfg.dir = absDir

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overlays environment overrides for the current process. Invalid
// values are ignored. A config with overrides applied should not be saved.
func (c *Config) ApplyEnv() {
	if v := strings.ToLower(os.Getenv(EnvOutput)); slices.Contains(OutputFormats, v) {
		c.Output = v
	}
}

// DefaultDir returns the settings directory: $TTD_CONFIG_DIR, or
// ~/.config/ttd.
func DefaultDir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, ".config", DefaultDirName), nil
}
