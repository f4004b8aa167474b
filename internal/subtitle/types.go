package subtitle

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// Reader is the interface for reading subtitle files
type Reader interface {
	Read() (*File, error)
}

// Writer is the interface for writing subtitle files
type Writer interface {
	Write(path string, subtitle *File) error
}

// Line represents a single timed subtitle block
type Line struct {
	Index          int           // display index, not necessarily contiguous
	StartTime      time.Duration // start time
	EndTime        time.Duration // end time
	Text           string        // original subtitle text
	TranslatedText string        // translated text, empty until translated
}

// File represents a parsed subtitle file
type File struct {
	Lines    []Line
	Language language.Tag
	Format   string // e.g. SRT
}

// ParseError reports a malformed subtitle file
type ParseError struct {
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse subtitle file %s: %s", e.Path, e.Reason)
}
