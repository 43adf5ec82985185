/*
Package output provides formatters for search results in various formats
including plain text, JSON, and YAML. It supports colored match highlighting,
line numbers, count-only mode, and statistics inclusion.

Basic usage:

	formatter := output.NewFormatter(output.Config{
		Format:     output.FormatText,
		WithColors: true,
	}, log)

	result, err := formatter.Format(report)
*/
package output

import (
	"fmt"

	"github.com/sonemaro/linegrep/pkg/logger"
	"github.com/sonemaro/linegrep/pkg/search"
)

// Format represents the output format type
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Config holds formatter configuration
type Config struct {
	Format          Format
	WithStats       bool
	WithColors      bool
	WithLineNumbers bool
	CountOnly       bool

	// IgnoreCase makes highlighting locate query occurrences after lowering,
	// mirroring how the search itself compared lines
	IgnoreCase bool
}

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(*search.Report) (string, error)
}

// formatter implements the Formatter interface
type formatter struct {
	config Config
	log    logger.Logger
}

// NewFormatter creates a new formatter instance
func NewFormatter(config Config, log logger.Logger) Formatter {
	return &formatter{
		config: config,
		log:    log,
	}
}

// Format renders the search report according to the configured format
func (f *formatter) Format(report *search.Report) (string, error) {
	if report == nil {
		msg := "nil report provided for formatting"
		f.log.Error(msg)
		return "", fmt.Errorf(msg)
	}

	f.log.WithFields(logger.Fields{
		"format":     f.config.Format,
		"withStats":  f.config.WithStats,
		"withColors": f.config.WithColors,
		"matches":    len(report.Matches),
	}).Debug("Starting format operation")

	switch f.config.Format {
	case FormatText:
		return f.formatText(report)
	case FormatJSON:
		return f.formatJSON(report)
	case FormatYAML:
		return f.formatYAML(report)
	default:
		msg := fmt.Sprintf("unsupported format: %s", f.config.Format)
		f.log.Error(msg)
		return "", fmt.Errorf(msg)
	}
}
