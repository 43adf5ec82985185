package output

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sonemaro/linegrep/pkg/logger"
	"github.com/sonemaro/linegrep/pkg/search"
)

// mockLogger implements logger.Logger interface for testing
type mockLogger struct {
	logs []string
}

func (m *mockLogger) Info(msg string)                               { m.logs = append(m.logs, "INFO: "+msg) }
func (m *mockLogger) Debug(msg string)                              { m.logs = append(m.logs, "DEBUG: "+msg) }
func (m *mockLogger) Error(msg string)                              { m.logs = append(m.logs, "ERROR: "+msg) }
func (m *mockLogger) Warn(msg string)                               { m.logs = append(m.logs, "WARN: "+msg) }
func (m *mockLogger) Trace(msg string)                              { m.logs = append(m.logs, "TRACE: "+msg) }
func (m *mockLogger) WithFields(fields logger.Fields) logger.Logger { return m }

func testReport() *search.Report {
	started := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return &search.Report{
		Query:    "duct",
		FilePath: "poem.txt",
		Matches: []search.Match{
			{Number: 2, Text: "safe, fast, productive."},
		},
		Stats: search.Stats{
			StartTime:    started,
			EndTime:      started.Add(time.Millisecond),
			Duration:     time.Millisecond,
			LinesScanned: 3,
			BytesScanned: 42,
			MatchCount:   1,
		},
	}
}

func TestFormatter(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		report *search.Report
		verify func(*testing.T, string)
	}{
		{
			name:   "text format basic",
			config: Config{Format: FormatText},
			report: testReport(),
			verify: func(t *testing.T, output string) {
				assert.Equal(t, "safe, fast, productive.", output)
			},
		},
		{
			name:   "text format with line numbers",
			config: Config{Format: FormatText, WithLineNumbers: true},
			report: testReport(),
			verify: func(t *testing.T, output string) {
				assert.Equal(t, "2:safe, fast, productive.", output)
			},
		},
		{
			name:   "text format count only",
			config: Config{Format: FormatText, CountOnly: true},
			report: testReport(),
			verify: func(t *testing.T, output string) {
				assert.Equal(t, "1", output)
			},
		},
		{
			name:   "text format with stats",
			config: Config{Format: FormatText, WithStats: true},
			report: testReport(),
			verify: func(t *testing.T, output string) {
				assert.Contains(t, output, "safe, fast, productive.")
				assert.Contains(t, output, "Statistics:")
				assert.Contains(t, output, "Lines Scanned: 3")
				assert.Contains(t, output, "Matches: 1")
				assert.Contains(t, output, "Bytes Searched: 42 B")
			},
		},
		{
			name:   "text format multiple matches keep order",
			config: Config{Format: FormatText},
			report: &search.Report{
				Query: "a",
				Matches: []search.Match{
					{Number: 1, Text: "alpha"},
					{Number: 3, Text: "gamma"},
				},
				Stats: search.Stats{MatchCount: 2},
			},
			verify: func(t *testing.T, output string) {
				assert.Equal(t, "alpha\ngamma", output)
			},
		},
		{
			name:   "json format",
			config: Config{Format: FormatJSON},
			report: testReport(),
			verify: func(t *testing.T, output string) {
				var decoded map[string]interface{}
				require.NoError(t, json.Unmarshal([]byte(output), &decoded))
				assert.Equal(t, "duct", decoded["query"])
				assert.Equal(t, "poem.txt", decoded["file"])
				assert.Equal(t, float64(1), decoded["count"])

				matches := decoded["matches"].([]interface{})
				require.Len(t, matches, 1)
				match := matches[0].(map[string]interface{})
				assert.Equal(t, float64(2), match["line"])
				assert.Equal(t, "safe, fast, productive.", match["text"])
			},
		},
		{
			name:   "json format with stats",
			config: Config{Format: FormatJSON, WithStats: true},
			report: testReport(),
			verify: func(t *testing.T, output string) {
				var decoded map[string]interface{}
				require.NoError(t, json.Unmarshal([]byte(output), &decoded))
				statistics := decoded["statistics"].(map[string]interface{})
				assert.Equal(t, float64(3), statistics["linesScanned"])
				assert.Equal(t, float64(42), statistics["bytesScanned"])
			},
		},
		{
			name:   "yaml format",
			config: Config{Format: FormatYAML},
			report: testReport(),
			verify: func(t *testing.T, output string) {
				var decoded map[string]interface{}
				require.NoError(t, yaml.Unmarshal([]byte(output), &decoded))
				assert.Equal(t, "duct", decoded["query"])
				assert.Equal(t, 1, decoded["count"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := NewFormatter(tt.config, &mockLogger{})

			output, err := formatter.Format(tt.report)
			require.NoError(t, err)
			tt.verify(t, output)
		})
	}
}

func TestFormatterErrors(t *testing.T) {
	log := &mockLogger{}
	formatter := NewFormatter(Config{Format: FormatText}, log)

	_, err := formatter.Format(nil)
	assert.Error(t, err)
	assert.Contains(t, strings.Join(log.logs, " "), "nil report")

	formatter = NewFormatter(Config{Format: Format("xml")}, &mockLogger{})
	_, err = formatter.Format(testReport())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestHighlightAlignment(t *testing.T) {
	f := &formatter{
		config: Config{Format: FormatText, WithColors: true, IgnoreCase: true},
		log:    &mockLogger{},
	}

	// Highlighting must not lose any of the original line text, colors aside.
	out := f.highlight("Trust me, Rust.", "rust")
	plain := strings.NewReplacer("\x1b[31;1m", "", "\x1b[0m", "").Replace(out)
	assert.Equal(t, "Trust me, Rust.", plain)
}
