package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sonemaro/linegrep/cmd/linegrep/app"
	"github.com/sonemaro/linegrep/internal/config"
	"github.com/sonemaro/linegrep/internal/version"
	"github.com/sonemaro/linegrep/pkg/logger"
)

var (
	// Global flags
	verbosity   int
	noColor     bool
	showVersion bool

	// Search flags
	ignoreCase  bool
	lineNumbers bool
	countOnly   bool
	invertMatch bool
	showStats   bool
	outputType  string
	outputFile  string
	bufferSize  int
	maxFileSize int64

	// Global logger instance
	log logger.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "linegrep [flags] <query> <file_path>",
	Short: "A line-oriented substring search tool",
	Long: `linegrep v` + version.Version + `
========================================

Searches a file for lines containing a query string and prints them in file
order. Case-insensitive matching is controlled by the IGNORE_CASE environment
variable or the --ignore-case flag.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize logger
		log = logger.NewLogger(logger.Config{
			Verbosity: verbosity,
			Output:    os.Stderr,
		})

		// Handle version flag
		if showVersion {
			fmt.Println(version.Version)
			os.Exit(0)
		}
	},
	RunE: runSearch,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flag("full").Value.String() == "true" {
			fmt.Println(version.FullVersion())
		} else {
			fmt.Println(version.Version)
		}
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "verbose output (can be used multiple times)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&showVersion, "version", false, "print version information")

	// Search flags
	rootCmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "case-insensitive search")
	rootCmd.Flags().BoolVarP(&lineNumbers, "line-numbers", "n", false, "prefix each match with its line number")
	rootCmd.Flags().BoolVarP(&countOnly, "count", "c", false, "print only the number of matching lines")
	rootCmd.Flags().BoolVar(&invertMatch, "invert-match", false, "select lines that do not contain the query")
	rootCmd.Flags().BoolVar(&showStats, "stats", false, "append search statistics to the output")
	rootCmd.Flags().StringVarP(&outputType, "output", "o", "text", "output format: text|json|yaml")
	rootCmd.Flags().StringVarP(&outputFile, "output-file", "f", "", "write output to file instead of stdout")
	rootCmd.Flags().IntVarP(&bufferSize, "buffer-size", "b", config.DefaultBufferSize, "buffer size for file reading")
	rootCmd.Flags().Int64Var(&maxFileSize, "max-file-size", 0, "reject files larger than this many bytes (0 for unlimited)")

	// Version command flags
	versionCmd.Flags().BoolP("full", "f", false, "show full version information")

	rootCmd.AddCommand(versionCmd)

	rootCmd.SetHelpTemplate(getCustomHelpTemplate())
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Flags override environment settings when supplied explicitly
	if ignoreCase {
		cfg.IgnoreCase = true
	}
	if lineNumbers {
		cfg.LineNumbers = true
	}
	if countOnly {
		cfg.CountOnly = true
	}
	if invertMatch {
		cfg.InvertMatch = true
	}
	if showStats {
		cfg.ShowStats = true
	}
	if noColor {
		cfg.NoColor = true
	}
	if verbosity > 0 {
		cfg.Verbose = verbosity
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = outputType
	}
	if cmd.Flags().Changed("output-file") {
		cfg.OutputFile = outputFile
	}
	if cmd.Flags().Changed("buffer-size") {
		cfg.BufferSize = bufferSize
	}
	if cmd.Flags().Changed("max-file-size") {
		cfg.MaxFileSize = maxFileSize
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg, err = cfg.WithArgs(args)
	if err != nil {
		return err
	}

	log.WithFields(logger.Fields{
		"query":      cfg.Query,
		"file":       cfg.FilePath,
		"ignoreCase": cfg.IgnoreCase,
		"output":     cfg.Output,
	}).Debug("Starting search")

	application := app.New(&cfg)
	defer application.Shutdown()

	return application.Run()
}

func getCustomHelpTemplate() string {
	return `{{.Long}}

Usage:
  {{.Use}}

Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}

Environment Variables:
  IGNORE_CASE              Case-insensitive search when present (any value)
  LINEGREP_IGNORE_CASE     Case-insensitive search (true/false)
  LINEGREP_OUTPUT          Output format (text|json|yaml)
  LINEGREP_OUTPUT_FILE     Output file path
  LINEGREP_LINE_NUMBERS    Prefix matches with line numbers
  LINEGREP_COUNT           Print only the match count
  LINEGREP_INVERT_MATCH    Select non-matching lines
  LINEGREP_STATS           Append search statistics
  LINEGREP_BUFFER_SIZE     Buffer size for file reading
  LINEGREP_MAX_FILE_SIZE   Reject files larger than this (bytes)
  LINEGREP_NO_COLOR        Disable colored output
  LINEGREP_VERBOSE         Verbosity level (number of 'v's)

Examples:
  # Find lines containing "duct"
  linegrep duct poem.txt

  # Case-insensitive search, classic style
  IGNORE_CASE=1 linegrep rUsT poem.txt

  # Case-insensitive search via flag, with line numbers
  linegrep -i -n rust poem.txt

  # Count matches only
  linegrep -c to poem.txt

  # JSON report written to a file
  linegrep -o json -f matches.json body poem.txt

Version Information:
  linegrep version     Show version number
  linegrep version -f  Show full version information (build date, commit hash, etc.)

For more information and updates, visit: https://github.com/sonemaro/linegrep
`
}
