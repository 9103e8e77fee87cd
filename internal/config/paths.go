package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DataPath resolves the task file location. It implements
// store.PathProvider.
type DataPath struct {
	cfg *Config
}

// DataPathOf returns the task file resolver for cfg.
func DataPathOf(cfg *Config) DataPath {
	return DataPath{cfg: cfg}
}

// Path returns $TTD_FILE, the configured data_file, or ~/.ttd.json, in
// that order. A leading "~/" is expanded.
func (p DataPath) Path() (string, error) {
	if v := os.Getenv(EnvDataFile); v != "" {
		return expandHome(v)
	}
	if p.cfg != nil && p.cfg.DataFile != "" {
		return expandHome(p.cfg.DataFile)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, DefaultDataFile), nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return filepath.Clean(path), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
