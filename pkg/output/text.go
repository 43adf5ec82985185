package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/sonemaro/linegrep/pkg/logger"
	"github.com/sonemaro/linegrep/pkg/search"
	"github.com/sonemaro/linegrep/pkg/util"
)

// formatText renders matches as plain lines, one per match, in file order
func (f *formatter) formatText(report *search.Report) (string, error) {
	f.log.Debug("Formatting text output")

	if f.config.CountOnly {
		return strconv.Itoa(report.Stats.MatchCount), nil
	}

	var builder strings.Builder
	for i, match := range report.Matches {
		if i > 0 {
			builder.WriteString("\n")
		}
		f.formatTextMatch(&builder, report.Query, match)
	}

	if f.config.WithStats {
		f.log.Debug("Adding statistics to output")
		stats := f.buildStats(report)
		builder.WriteString("\n\nStatistics:\n")
		builder.WriteString(fmt.Sprintf("  Lines Scanned: %d\n", stats.LinesScanned))
		builder.WriteString(fmt.Sprintf("  Matches: %d\n", stats.MatchCount))
		builder.WriteString(fmt.Sprintf("  Bytes Searched: %s\n", util.FormatSize(stats.BytesScanned)))
		builder.WriteString(fmt.Sprintf("  Duration: %s\n", stats.Duration))
	}

	return builder.String(), nil
}

func (f *formatter) formatTextMatch(builder *strings.Builder, query string, match search.Match) {
	f.log.WithFields(logger.Fields{
		"line": match.Number,
	}).Trace("Formatting match")

	if f.config.WithLineNumbers {
		number := strconv.Itoa(match.Number)
		if f.config.WithColors {
			number = color.New(color.FgGreen).Sprint(number)
		}
		builder.WriteString(number)
		builder.WriteString(":")
	}

	text := match.Text
	if f.config.WithColors {
		text = f.highlight(text, query)
	}
	builder.WriteString(text)
}

// highlight wraps each occurrence of query in the line with a color marker.
// Occurrences are located the same way the search matched them, so the
// case-insensitive mode lowers both sides first.
func (f *formatter) highlight(line, query string) string {
	if query == "" {
		return line
	}

	hay := line
	needle := query
	if f.config.IgnoreCase {
		hay = strings.ToLower(line)
		needle = strings.ToLower(query)
	}

	marker := color.New(color.FgRed, color.Bold)
	var builder strings.Builder

	for {
		idx := strings.Index(hay, needle)
		if idx < 0 || idx+len(needle) > len(line) {
			builder.WriteString(line)
			return builder.String()
		}

		builder.WriteString(line[:idx])
		builder.WriteString(marker.Sprint(line[idx : idx+len(needle)]))
		line = line[idx+len(needle):]
		hay = hay[idx+len(needle):]
	}
}
