/*
Package loader reads target files into memory ahead of searching. All
filesystem access goes through afero so the loader can be exercised against an
in-memory filesystem in tests.

The read is chunked and context-aware so a cancelled run stops promptly even
on large inputs.

Basic usage:

	ldr := loader.NewLoader(loader.Config{}, afero.NewOsFs(), log)
	contents, err := ldr.Load(ctx, "poem.txt")
*/
package loader

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/sonemaro/linegrep/pkg/logger"
)

// DefaultBufferSize is the chunk size used when none is configured
const DefaultBufferSize = 4096

// Config contains loader configuration options
type Config struct {
	// BufferSize is the chunk size for file reading (defaults to 4096)
	BufferSize int

	// MaxFileSize rejects files larger than this many bytes (0 for unlimited)
	MaxFileSize int64
}

// Loader defines the interface for reading file contents
type Loader interface {
	// Load reads the entire file at path and returns it as a string
	Load(ctx context.Context, path string) (string, error)
}

// loader implements the Loader interface
type loader struct {
	config Config
	fs     afero.Fs
	log    logger.Logger
}

// NewLoader creates a new loader instance backed by the given filesystem
func NewLoader(config Config, fs afero.Fs, log logger.Logger) Loader {
	return &loader{
		config: config,
		fs:     fs,
		log:    log,
	}
}

// Load reads the entire file into memory
func (l *loader) Load(ctx context.Context, path string) (string, error) {
	l.log.WithFields(logger.Fields{
		"path": path,
	}).Debug("Loading file")

	info, err := l.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.log.WithFields(logger.Fields{
				"path": path,
			}).Error("File does not exist")
			return "", &NotFoundError{Path: path}
		}
		if os.IsPermission(err) {
			return "", &PermissionError{Path: path, Err: err}
		}
		return "", fmt.Errorf("failed to stat file %s: %w", path, err)
	}

	if info.IsDir() {
		return "", fmt.Errorf("path is a directory: %s", path)
	}

	if l.config.MaxFileSize > 0 && info.Size() > l.config.MaxFileSize {
		l.log.WithFields(logger.Fields{
			"path": path,
			"size": info.Size(),
			"max":  l.config.MaxFileSize,
		}).Error("File exceeds size limit")
		return "", &TooLargeError{Path: path, Size: info.Size(), MaxSize: l.config.MaxFileSize}
	}

	file, err := l.fs.Open(path)
	if err != nil {
		if os.IsPermission(err) {
			l.log.WithFields(logger.Fields{
				"error": err,
				"path":  path,
			}).Error("Failed to open file")
			return "", &PermissionError{Path: path, Err: err}
		}
		return "", fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	bufferSize := l.config.BufferSize
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	buf := make([]byte, bufferSize)
	content := make([]byte, 0, info.Size())

	for {
		select {
		case <-ctx.Done():
			l.log.WithFields(logger.Fields{
				"path":   path,
				"reason": ctx.Err(),
			}).Debug("File read cancelled")
			return "", ctx.Err()

		default:
			n, err := file.Read(buf)
			if n > 0 {
				content = append(content, buf[:n]...)
			}

			if err == io.EOF {
				l.log.WithFields(logger.Fields{
					"path": path,
					"size": len(content),
				}).Debug("File read completed")
				return string(content), nil
			}

			if err != nil {
				l.log.WithFields(logger.Fields{
					"error": err,
					"path":  path,
				}).Error("Error reading file")
				return "", fmt.Errorf("error reading file %s: %w", path, err)
			}
		}
	}
}
