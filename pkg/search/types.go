package search

import "time"

// Match represents a single matching line in the searched contents
type Match struct {
	// Number is the 1-based line number within the file
	Number int

	// Text is the line content without its trailing newline
	Text string
}

// Stats contains statistics about a completed search operation
type Stats struct {
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	LinesScanned int
	BytesScanned int64
	MatchCount   int
}

// Report contains the complete results of a search run
type Report struct {
	Query    string
	FilePath string
	Matches  []Match
	Stats    Stats
}

// Config contains searcher configuration options
type Config struct {
	// IgnoreCase lowers both query and line before comparison
	IgnoreCase bool

	// InvertMatch selects the lines that do NOT contain the query
	InvertMatch bool
}
