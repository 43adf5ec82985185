/*
Package app provides the main application container and orchestration for the
Linegrep application. It manages component lifecycle, coordinates a search run,
and handles graceful shutdown.

The application container initializes and manages all core components:
- Logger for structured logging
- Loader for reading the target file
- Searcher for line matching
- Output formatting

Usage:

	application := app.New(cfg)
	defer application.Shutdown()
	if err := application.Run(); err != nil {
	    log.Fatal(err)
	}
*/
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/spf13/afero"

	"github.com/sonemaro/linegrep/internal/config"
	"github.com/sonemaro/linegrep/pkg/loader"
	"github.com/sonemaro/linegrep/pkg/logger"
	"github.com/sonemaro/linegrep/pkg/output"
	"github.com/sonemaro/linegrep/pkg/search"
)

// App represents the main application container
type App struct {
	config *config.Config
	log    logger.Logger

	fs        afero.Fs
	stdout    io.Writer
	loader    loader.Loader
	searcher  search.Searcher
	formatter output.Formatter

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	mu     sync.Mutex
	closed bool
}

// New creates a new application instance backed by the OS filesystem
func New(cfg *config.Config) *App {
	return newApp(cfg, afero.NewOsFs(), os.Stdout)
}

func newApp(cfg *config.Config, fs afero.Fs, stdout io.Writer) *App {
	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		config: cfg,
		fs:     fs,
		stdout: stdout,
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	a.initLogger()
	a.initComponents()
	a.setupSignalHandling()

	a.log.WithFields(logger.Fields{
		"query":      cfg.Query,
		"file":       cfg.FilePath,
		"ignoreCase": cfg.IgnoreCase,
		"verbose":    cfg.Verbose,
	}).Debug("Application initialized")

	return a
}

// initLogger initializes the application logger
func (a *App) initLogger() {
	a.log = logger.NewLogger(logger.Config{
		Verbosity: a.config.Verbose,
	})
}

// initComponents initializes all application components
func (a *App) initComponents() {
	a.log.Debug("Initializing application components")

	a.loader = loader.NewLoader(loader.Config{
		BufferSize:  a.config.BufferSize,
		MaxFileSize: a.config.MaxFileSize,
	}, a.fs, a.log)

	a.searcher = search.NewSearcher(search.Config{
		IgnoreCase:  a.config.IgnoreCase,
		InvertMatch: a.config.InvertMatch,
	}, a.log)

	a.formatter = output.NewFormatter(output.Config{
		Format:          output.Format(a.config.Output),
		WithStats:       a.config.ShowStats,
		WithColors:      !a.config.NoColor && a.config.OutputFile == "",
		WithLineNumbers: a.config.LineNumbers,
		CountOnly:       a.config.CountOnly,
		IgnoreCase:      a.config.IgnoreCase,
	}, a.log)

	a.log.Debug("Components initialized successfully")
}

// Run executes the search operation described by the configuration
func (a *App) Run() error {
	defer func() {
		if r := recover(); r != nil {
			a.log.WithFields(logger.Fields{
				"panic": r,
				"stack": string(debug.Stack()),
			}).Error("Recovered from panic")
		}
	}()

	a.log.WithFields(logger.Fields{
		"query":  a.config.Query,
		"file":   a.config.FilePath,
		"format": a.config.Output,
	}).Debug("Starting search operation")

	ctx, cancel := context.WithTimeout(a.ctx, 1*time.Hour)
	defer cancel()

	contents, err := a.loader.Load(ctx, a.config.FilePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", a.config.FilePath, err)
	}

	report := a.searcher.Search(a.config.Query, contents)
	report.FilePath = a.config.FilePath

	formatted, err := a.formatter.Format(&report)
	if err != nil {
		return fmt.Errorf("output formatting failed: %w", err)
	}

	if err := a.writeOutput(formatted, a.config.OutputFile); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	a.log.WithFields(logger.Fields{
		"lines":    report.Stats.LinesScanned,
		"matches":  report.Stats.MatchCount,
		"bytes":    report.Stats.BytesScanned,
		"duration": report.Stats.Duration,
		"outputTo": a.config.OutputFile,
	}).Debug("Search operation completed")

	return nil
}

// writeOutput writes the formatted output to the specified destination
func (a *App) writeOutput(content string, outputPath string) error {
	if outputPath == "" {
		if content == "" {
			// Zero text matches produce no stdout output at all
			return nil
		}
		_, err := fmt.Fprintln(a.stdout, content)
		if err != nil {
			a.log.WithFields(logger.Fields{
				"error": err,
			}).Error("Failed to write to stdout")
		}
		return err
	}

	if err := afero.WriteFile(a.fs, outputPath, []byte(content), 0644); err != nil {
		a.log.WithFields(logger.Fields{
			"error": err,
			"path":  outputPath,
		}).Error("Failed to write output file")
		return err
	}

	a.log.WithFields(logger.Fields{
		"path": outputPath,
	}).Debug("Output written successfully")
	return nil
}

// Shutdown performs a graceful shutdown of the application
func (a *App) Shutdown() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil
	}
	a.closed = true

	a.log.Debug("Initiating shutdown")
	a.cancel()
	close(a.done)
	a.log.Debug("Shutdown complete")

	return nil
}
