// Package util contains small formatting helpers shared across packages.
package util

import "fmt"

// FormatSize renders a byte count as a human-readable string, e.g. "4.2 KB".
func FormatSize(size int64) string {
	const unit = 1024

	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
