/*
Package search implements literal substring matching over in-memory file
contents. It scans line by line, in original file order, with optional
case-insensitive comparison and invert mode.

Basic usage:

	searcher := search.NewSearcher(search.Config{
		IgnoreCase: true,
	}, log)

	report := searcher.Search("duct", contents)
	for _, match := range report.Matches {
		fmt.Println(match.Text)
	}
*/
package search

import (
	"strings"
	"time"

	"github.com/sonemaro/linegrep/pkg/logger"
)

// Searcher defines the interface for substring search operations
type Searcher interface {
	// Search scans contents for lines containing query and returns them
	// in original file order. An empty query matches every line.
	Search(query, contents string) Report
}

// searcher implements the Searcher interface
type searcher struct {
	config Config
	log    logger.Logger
}

// NewSearcher creates a new searcher instance
func NewSearcher(config Config, log logger.Logger) Searcher {
	return &searcher{
		config: config,
		log:    log,
	}
}

// Search performs the line scan operation
func (s *searcher) Search(query, contents string) Report {
	startTime := time.Now()

	s.log.WithFields(logger.Fields{
		"query":      query,
		"ignoreCase": s.config.IgnoreCase,
		"invert":     s.config.InvertMatch,
		"bytes":      len(contents),
	}).Debug("Starting search")

	needle := query
	if s.config.IgnoreCase {
		needle = strings.ToLower(query)
	}

	lines := SplitLines(contents)
	matches := make([]Match, 0)

	for i, line := range lines {
		candidate := line
		if s.config.IgnoreCase {
			candidate = strings.ToLower(line)
		}

		matched := strings.Contains(candidate, needle)
		if matched != s.config.InvertMatch {
			matches = append(matches, Match{
				Number: i + 1,
				Text:   line,
			})

			s.log.WithFields(logger.Fields{
				"line": i + 1,
			}).Trace("Line matched")
		}
	}

	endTime := time.Now()
	report := Report{
		Query:   query,
		Matches: matches,
		Stats: Stats{
			StartTime:    startTime,
			EndTime:      endTime,
			Duration:     endTime.Sub(startTime),
			LinesScanned: len(lines),
			BytesScanned: int64(len(contents)),
			MatchCount:   len(matches),
		},
	}

	s.log.WithFields(logger.Fields{
		"lines":   report.Stats.LinesScanned,
		"matches": report.Stats.MatchCount,
	}).Debug("Search completed")

	return report
}

// SplitLines splits contents on newline. A trailing carriage return is
// stripped from each line and a trailing newline does not produce a final
// empty line, so "a\nb\n" yields exactly ["a", "b"].
func SplitLines(contents string) []string {
	if contents == "" {
		return []string{}
	}

	contents = strings.TrimSuffix(contents, "\n")
	lines := strings.Split(contents, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
