// Package config handles the ttd settings file and resolves where the task
// list lives.
package config

const (
	// DefaultDirName is the settings directory below ~/.config.
	DefaultDirName = "ttd"
	// ConfigFileName is the name of the settings file within the settings directory.
	ConfigFileName = "config.yml"
	// DefaultDataFile is the task file name in the home directory.
	DefaultDataFile = ".ttd.json"
	// DefaultOutput is the default output format.
	DefaultOutput = "table"
	// DefaultFilter is the selector used by list when none is given.
	DefaultFilter = "all"

	// CurrentVersion is the current settings schema version.
	CurrentVersion = 1
)

// Environment variables recognized by the config layer.
const (
	EnvConfigDir = "TTD_CONFIG_DIR"
	EnvDataFile  = "TTD_FILE"
	EnvOutput    = "TTD_OUTPUT"
)

// OutputFormats lists the accepted values of the output key.
var OutputFormats = []string{"table", "compact", "json"}

// boolPtr returns a pointer to the given bool value.
func boolPtr(v bool) *bool { return &v }
