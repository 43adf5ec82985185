package loader

import "fmt"

// NotFoundError indicates that the target file does not exist
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// PermissionError indicates that the target file could not be read
type PermissionError struct {
	Path string
	Err  error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: %s: %v", e.Path, e.Err)
}

func (e *PermissionError) Unwrap() error {
	return e.Err
}

// TooLargeError indicates that the target file exceeds the configured limit
type TooLargeError struct {
	Path    string
	Size    int64
	MaxSize int64
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("file too large: %s (%d bytes, limit %d)", e.Path, e.Size, e.MaxSize)
}
