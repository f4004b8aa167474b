package file

import (
	"path/filepath"
	"strings"
)

// SplitExt splits a path into its stem (directory plus base name
// without extension) and the extension including the dot.
func SplitExt(path string) (string, string) {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext), ext
}

// WithSuffix inserts a suffix between a file's stem and its extension:
// WithSuffix("movie.srt", "_es") -> "movie_es.srt".
func WithSuffix(path, suffix string) string {
	stem, ext := SplitExt(path)
	return stem + suffix + ext
}

// ReplaceExt swaps the extension of path with ext, adding a dot if missing.
func ReplaceExt(path, ext string) string {
	if path == "" {
		return path
	}

	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	stem, _ := SplitExt(path)
	return stem + ext
}
