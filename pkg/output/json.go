package output

import (
	"encoding/json"
	"time"

	"github.com/sonemaro/linegrep/pkg/logger"
	"github.com/sonemaro/linegrep/pkg/search"
)

// jsonMatch represents a single match in JSON output
type jsonMatch struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

// jsonOutput represents the complete JSON output
type jsonOutput struct {
	Query      string      `json:"query"`
	File       string      `json:"file,omitempty"`
	IgnoreCase bool        `json:"ignoreCase"`
	Matches    []jsonMatch `json:"matches"`
	Count      int         `json:"count"`
	Statistics *stats      `json:"statistics,omitempty"`
	Generated  time.Time   `json:"generated"`
}

func (f *formatter) formatJSON(report *search.Report) (string, error) {
	f.log.Debug("Formatting JSON output")

	output := f.buildOutput(report)

	bytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		f.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Failed to marshal JSON")
		return "", err
	}

	return string(bytes), nil
}

func (f *formatter) buildOutput(report *search.Report) *jsonOutput {
	matches := make([]jsonMatch, len(report.Matches))
	for i, match := range report.Matches {
		matches[i] = jsonMatch{
			Line: match.Number,
			Text: match.Text,
		}
	}

	output := &jsonOutput{
		Query:      report.Query,
		File:       report.FilePath,
		IgnoreCase: f.config.IgnoreCase,
		Matches:    matches,
		Count:      report.Stats.MatchCount,
		Generated:  time.Now(),
	}

	if f.config.WithStats {
		f.log.Debug("Adding statistics to structured output")
		output.Statistics = f.buildStats(report)
	}

	return output
}
