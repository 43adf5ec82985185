// Package config provides configuration management for the Linegrep
// application. It handles environment variables, positional arguments, and
// validation of all configuration parameters.
//
// # Configuration Loading
//
// To load the configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg, err = cfg.WithArgs([]string{"duct", "poem.txt"})
//
// # Environment Variables
//
// The following environment variables are supported:
//
//	IGNORE_CASE             Case-insensitive search when present (any value)
//	LINEGREP_IGNORE_CASE    Case-insensitive search (true/false)
//	LINEGREP_OUTPUT         Output format: text|json|yaml
//	LINEGREP_OUTPUT_FILE    Output file path (empty for stdout)
//	LINEGREP_LINE_NUMBERS   Prefix matches with their line numbers
//	LINEGREP_COUNT          Print only the match count
//	LINEGREP_INVERT_MATCH   Select lines that do not contain the query
//	LINEGREP_STATS          Append search statistics to output
//	LINEGREP_BUFFER_SIZE    Buffer size for file reading (default: 4096)
//	LINEGREP_MAX_FILE_SIZE  Reject files larger than this, in bytes (0: off)
//	LINEGREP_NO_COLOR       Disable colored output (true/false)
//	LINEGREP_VERBOSE        Verbosity level (number of 'v's)
//
// IGNORE_CASE intentionally differs from the LINEGREP_* family: its mere
// presence enables case-insensitive search, regardless of value. This keeps
// compatibility with the classic invocation:
//
//	IGNORE_CASE=1 linegrep to poem.txt
//
// # Positional Arguments
//
// WithArgs binds the two required positional arguments and returns a
// *UsageError naming the first missing one:
//
//	cfg, err := cfg.WithArgs(args)
//	// "didn't get a query string" or "didn't get a file path"
//
// # Configuration Validation
//
// The package performs validation on all configuration values:
//   - Output format must be one of: text, json, yaml
//   - BufferSize must be at least 64 bytes
//   - MaxFileSize must be non-negative
//
// # Thread Safety
//
// The configuration is immutable after loading and is safe for concurrent
// access across multiple goroutines.
package config
