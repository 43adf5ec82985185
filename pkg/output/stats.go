package output

import (
	"time"

	"github.com/sonemaro/linegrep/pkg/logger"
	"github.com/sonemaro/linegrep/pkg/search"
)

// stats holds statistics about a completed search run
type stats struct {
	LinesScanned int           `json:"linesScanned"`
	MatchCount   int           `json:"matchCount"`
	BytesScanned int64         `json:"bytesScanned"`
	Duration     time.Duration `json:"durationNs"`
}

func (f *formatter) buildStats(report *search.Report) *stats {
	f.log.Debug("Collecting search statistics")

	s := &stats{
		LinesScanned: report.Stats.LinesScanned,
		MatchCount:   report.Stats.MatchCount,
		BytesScanned: report.Stats.BytesScanned,
		Duration:     report.Stats.Duration,
	}

	f.log.WithFields(logger.Fields{
		"lines":   s.LinesScanned,
		"matches": s.MatchCount,
		"bytes":   s.BytesScanned,
	}).Debug("Statistics collected")

	return s
}
