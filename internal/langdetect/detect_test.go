package langdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	detector := NewDetector()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "english",
			input: "The quick brown fox jumps over the lazy dog near the river bank.",
			want:  "en",
		},
		{
			name:  "japanese",
			input: "こんにちは、世界。今日はいい天気ですね。",
			want:  "ja",
		},
		{
			name:  "russian",
			input: "Быстрая коричневая лиса перепрыгивает через ленивую собаку.",
			want:  "ru",
		},
		{
			name:  "empty is unknown",
			input: "",
			want:  Unknown,
		},
		{
			name:  "whitespace is unknown",
			input: "   \n\t ",
			want:  Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.Detect(tt.input))
		})
	}
}

func TestDetectNeverPanics(t *testing.T) {
	detector := NewDetector()

	for _, input := range []string{"", " ", ".", "42", "__TAG_0__", "a"} {
		assert.NotPanics(t, func() {
			detector.Detect(input)
		}, "input %q", input)
	}
}

func TestDetectDeterministic(t *testing.T) {
	detector := NewDetector()
	text := "Deterministic results keep the whole pipeline reproducible."

	first := detector.Detect(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, detector.Detect(text))
	}
}
