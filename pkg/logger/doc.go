/*
Package logger provides a structured logging solution for the Linegrep
application. It wraps uber-go/zap to provide a simpler interface with support
for different verbosity levels and structured logging.

Basic Usage:

	log := logger.NewLogger(logger.Config{
	    Verbosity: 0,  // Default level (INFO)
	})

	log.Info("Search started")
	log.Debug("Loading file")        // Only shown with verbosity >= 1
	log.Trace("Line scan detail")    // Only shown with verbosity >= 2

Verbosity Levels:

	0: Info, Warn, Error (default)
	1: Debug + Level 0
	2: Trace + Level 1

Structured Logging:

	log.WithFields(logger.Fields{
	    "component": "search",
	    "query":     "duct",
	    "matches":   3,
	}).Info("Search completed")

Output Example (JSON):

	{
	    "level": "info",
	    "ts": "2024-01-20T15:04:05.000Z",
	    "message": "Search completed",
	    "component": "search",
	    "query": "duct",
	    "matches": 3
	}

All diagnostics go to os.Stderr by default so that matched lines on os.Stdout
stay clean for piping and redirection.

Thread Safety:

The logger is safe for concurrent use by multiple goroutines.
*/
package logger
