// Package output handles formatting CLI output as table, JSON, or compact.
package output

// Format represents an output format.
type Format int

const (
	// FormatAuto uses the configured format.
	FormatAuto Format = iota
	// FormatJSON outputs JSON.
	FormatJSON
	// FormatTable outputs a human-readable table.
	FormatTable
	// FormatCompact outputs one-line-per-record compact format.
	FormatCompact
)

// Messages shared by the renderers.
const (
	EmptyList = "Task list is empty!"
	NoMatches = "no matching tasks"
)

// Detect returns the format selected by flags, falling back to the
// configured name ("table", "compact" or "json"). Default is table.
func Detect(jsonFlag, compactFlag bool, configured string) Format {
	if jsonFlag {
		return FormatJSON
	}
	if compactFlag {
		return FormatCompact
	}

	switch configured {
	case "json":
		return FormatJSON
	case "compact":
		return FormatCompact
	}
	return FormatTable
}
