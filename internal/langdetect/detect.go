package langdetect

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// Unknown is returned when the source language cannot be classified.
const Unknown = "unknown"

// Detector classifies the language of a text unit.
type Detector interface {
	Detect(text string) string
}

// WhatlangDetector detects languages with the whatlanggo trigram
// classifier. Detection is deterministic for identical input.
type WhatlangDetector struct {
	minConfidence float64
}

// NewDetector creates a detector with a confidence floor below which
// results are reported as unknown.
func NewDetector() Detector {
	return &WhatlangDetector{minConfidence: 0.1}
}

// Detect returns the ISO 639-1 code of text, or Unknown for empty,
// whitespace-only or unclassifiable input. It never fails.
func (d *WhatlangDetector) Detect(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return Unknown
	}

	info := whatlanggo.Detect(text)
	if info.Lang < 0 {
		return Unknown
	}

	code := info.Lang.Iso6391()
	if code == "" || info.Confidence < d.minConfidence {
		return Unknown
	}
	return code
}
