/*
Package config provides configuration management for the Linegrep application.
It handles environment variables, positional arguments, and validation of all
configuration parameters.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	cfg, err = cfg.WithArgs(args)

Environment Variables:

	IGNORE_CASE               Case-insensitive search when present (any value)
	LINEGREP_IGNORE_CASE      Case-insensitive search (true/false)
	LINEGREP_OUTPUT           Output format: text|json|yaml
	LINEGREP_OUTPUT_FILE      Output file path
	LINEGREP_LINE_NUMBERS     Prefix matches with line numbers
	LINEGREP_COUNT            Print only the match count
	LINEGREP_INVERT_MATCH     Select non-matching lines
	LINEGREP_STATS            Append search statistics
	LINEGREP_BUFFER_SIZE      Buffer size for file reading
	LINEGREP_MAX_FILE_SIZE    Reject files larger than this (bytes)
	LINEGREP_NO_COLOR         Disable colored output
	LINEGREP_VERBOSE          Verbosity level (number of 'v's)

Default Values:

	Output:       "text"
	BufferSize:   4096 bytes
	MaxFileSize:  0 (unlimited)
*/
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration parameters for the application
type Config struct {
	// Query is the substring being searched for
	Query string

	// FilePath is the path of the file to search
	FilePath string

	// IgnoreCase lowers both query and line before comparison
	IgnoreCase bool

	// Output specifies the output format (text, json, or yaml)
	Output string

	// OutputFile is the path to write the output (empty for stdout)
	OutputFile string

	// LineNumbers prefixes each match with its 1-based line number
	LineNumbers bool

	// CountOnly prints only the number of matching lines
	CountOnly bool

	// InvertMatch selects the lines that do not contain the query
	InvertMatch bool

	// ShowStats appends search statistics to the output
	ShowStats bool

	// BufferSize is the size of the buffer for file reading
	BufferSize int

	// MaxFileSize rejects files larger than this many bytes (0 for unlimited)
	MaxFileSize int64

	// NoColor disables colored output
	NoColor bool

	// Verbose sets the verbosity level
	Verbose int
}

// validOutputFormats contains the list of supported output formats
var validOutputFormats = map[string]bool{
	"text": true,
	"json": true,
	"yaml": true,
}

// UsageError indicates missing or invalid positional arguments
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return e.Reason
}

// Load reads configuration from environment variables and validates it
func Load() (Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("output", "text")
	v.SetDefault("buffer_size", DefaultBufferSize)
	v.SetDefault("max_file_size", 0)
	v.SetDefault("ignore_case", false)
	v.SetDefault("line_numbers", false)
	v.SetDefault("count", false)
	v.SetDefault("invert_match", false)
	v.SetDefault("stats", false)
	v.SetDefault("no_color", false)
	v.SetDefault("verbose", 0)

	// Configure environment variables
	v.SetEnvPrefix("LINEGREP")
	v.AutomaticEnv()

	v.BindEnv("ignore_case")
	v.BindEnv("output")
	v.BindEnv("output_file")
	v.BindEnv("line_numbers")
	v.BindEnv("count")
	v.BindEnv("invert_match")
	v.BindEnv("stats")
	v.BindEnv("buffer_size")
	v.BindEnv("max_file_size")
	v.BindEnv("no_color")
	v.BindEnv("verbose")

	// Process verbosity level from string of 'v's
	if verboseStr := v.GetString("verbose"); verboseStr != "" {
		v.Set("verbose", strings.Count(verboseStr, "v"))
	}

	cfg := Config{
		IgnoreCase:  v.GetBool("ignore_case"),
		Output:      v.GetString("output"),
		OutputFile:  v.GetString("output_file"),
		LineNumbers: v.GetBool("line_numbers"),
		CountOnly:   v.GetBool("count"),
		InvertMatch: v.GetBool("invert_match"),
		ShowStats:   v.GetBool("stats"),
		BufferSize:  v.GetInt("buffer_size"),
		MaxFileSize: v.GetInt64("max_file_size"),
		NoColor:     v.GetBool("no_color"),
		Verbose:     v.GetInt("verbose"),
	}

	// IGNORE_CASE keeps the original tool's semantics: the variable being
	// present enables the mode, no matter what it is set to.
	if _, present := os.LookupEnv("IGNORE_CASE"); present {
		cfg.IgnoreCase = true
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// WithArgs fills Query and FilePath from the positional argument list.
// It returns a UsageError when fewer than two arguments are supplied.
func (c Config) WithArgs(args []string) (Config, error) {
	if len(args) < 1 {
		return Config{}, &UsageError{Reason: "didn't get a query string"}
	}
	if len(args) < 2 {
		return Config{}, &UsageError{Reason: "didn't get a file path"}
	}

	c.Query = args[0]
	c.FilePath = args[1]

	return c, nil
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if !validOutputFormats[c.Output] {
		return fmt.Errorf("invalid output format: must be one of [text json yaml]")
	}

	if c.BufferSize < 0 {
		return fmt.Errorf("buffer size must be positive")
	}
	if c.BufferSize > 0 && c.BufferSize < MinBufferSize {
		return fmt.Errorf("buffer size must be at least %d bytes", MinBufferSize)
	}

	if c.MaxFileSize < 0 {
		return fmt.Errorf("max file size must be non-negative")
	}

	if c.Verbose < 0 {
		return fmt.Errorf("verbosity must be non-negative")
	}

	return nil
}

// String returns a string representation of the configuration
func (c Config) String() string {
	return fmt.Sprintf(
		"Config{Query: %q, FilePath: %q, IgnoreCase: %v, Output: %s, "+
			"OutputFile: %s, LineNumbers: %v, CountOnly: %v, InvertMatch: %v, "+
			"ShowStats: %v, BufferSize: %d, MaxFileSize: %d, NoColor: %v, Verbose: %d}",
		c.Query, c.FilePath, c.IgnoreCase, c.Output,
		c.OutputFile, c.LineNumbers, c.CountOnly, c.InvertMatch,
		c.ShowStats, c.BufferSize, c.MaxFileSize, c.NoColor, c.Verbose,
	)
}
