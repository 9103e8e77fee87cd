package config

import "fmt"

// migrate upgrades a settings file from its version to CurrentVersion.
// Each migration function moves the config one version forward.
// Returns an error if the file is newer than what this binary supports.
func migrate(cfg *Config) error {
	if cfg.Version == CurrentVersion {
		return nil
	}
	if cfg.Version > CurrentVersion {
		return fmt.Errorf(
			"%w: config version %d is newer than supported version %d (upgrade ttd)",
			ErrInvalid, cfg.Version, CurrentVersion,
		)
	}
	if cfg.Version < 0 {
		return fmt.Errorf("%w: config version %d is invalid", ErrInvalid, cfg.Version)
	}

	for cfg.Version < CurrentVersion {
		fn, ok := migrations[cfg.Version]
		if !ok {
			return fmt.Errorf("%w: no migration path from version %d", ErrInvalid, cfg.Version)
		}
		if err := fn(cfg); err != nil {
			return fmt.Errorf("migrating config from v%d: %w", cfg.Version, err)
		}
	}
	return nil
}

// migrations maps each version to the function that migrates it to the next.
// The function must increment cfg.Version.
var migrations = map[int]func(*Config) error{
	0: migrateUnversioned,
}

// migrateUnversioned handles hand-written files without a version key: empty
// values take their defaults.
func migrateUnversioned(cfg *Config) error { //nolint:unparam // signature must match migrations map type
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if cfg.DefaultFilter == "" {
		cfg.DefaultFilter = DefaultFilter
	}
	cfg.Version = 1
	return nil
}
