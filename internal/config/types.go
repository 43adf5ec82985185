package config

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	// OutputFormatText represents the plain text output format
	OutputFormatText OutputFormat = "text"

	// OutputFormatJSON represents the JSON output format
	OutputFormatJSON OutputFormat = "json"

	// OutputFormatYAML represents the YAML output format
	OutputFormatYAML OutputFormat = "yaml"
)

// Constants for configuration limits and defaults
const (
	// MinBufferSize is the minimum allowed buffer size in bytes
	MinBufferSize = 64

	// DefaultBufferSize is the default buffer size in bytes
	DefaultBufferSize = 4096

	// UnlimitedFileSize disables the max-file-size guard
	UnlimitedFileSize = 0
)
