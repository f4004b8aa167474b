package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fam007e/SRT-Trans/internal/langdetect"
)

// stubDetector answers from a fixed table, unknown otherwise.
type stubDetector struct {
	langs map[string]string
}

func (d stubDetector) Detect(text string) string {
	if lang, ok := d.langs[text]; ok {
		return lang
	}
	return langdetect.Unknown
}

type backendCall struct {
	Text       string
	TargetLang string
	SourceLang string
}

// stubBackend records calls and answers via fn; safe for concurrent use.
type stubBackend struct {
	fn func(text, targetLang, sourceLang string) (string, error)

	mu    sync.Mutex
	calls []backendCall
}

func (b *stubBackend) Name() string { return "stub" }

func (b *stubBackend) Translate(ctx context.Context, text, targetLang, sourceLang string) (string, error) {
	b.mu.Lock()
	b.calls = append(b.calls, backendCall{Text: text, TargetLang: targetLang, SourceLang: sourceLang})
	b.mu.Unlock()
	return b.fn(text, targetLang, sourceLang)
}

func (b *stubBackend) Calls() []backendCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]backendCall(nil), b.calls...)
}

func TestTranslateBlockRestoresMarkup(t *testing.T) {
	backend := &stubBackend{
		fn: func(text, targetLang, sourceLang string) (string, error) {
			return "Hola Mundo", nil
		},
	}
	translator := NewBlockTranslator(stubDetector{}, backend)

	result := translator.TranslateBlock(context.Background(), "<i>Hello</i> <b>World</b>", "es", "auto")

	assert.Contains(t, result, "Hola Mundo")
	for _, tag := range []string{"<i>", "</i>", "<b>", "</b>"} {
		assert.Contains(t, result, tag)
	}
}

func TestTranslateBlockPerSentenceSourceLanguage(t *testing.T) {
	detector := stubDetector{langs: map[string]string{
		"Hello.":        "en",
		"¿Cómo estás?": "es",
	}}
	backend := &stubBackend{
		fn: func(text, targetLang, sourceLang string) (string, error) {
			switch text {
			case "Hello.":
				return "Hola.", nil
			case "¿Cómo estás?":
				return "¿Qué tal?", nil
			}
			return "", fmt.Errorf("unexpected text %q", text)
		},
	}
	translator := NewBlockTranslator(detector, backend)

	result := translator.TranslateBlock(context.Background(), "Hello. ¿Cómo estás?", "fr", "auto")

	assert.Equal(t, "Hola. ¿Qué tal?", result)

	calls := backend.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, backendCall{Text: "Hello.", TargetLang: "fr", SourceLang: "en"}, calls[0])
	assert.Equal(t, backendCall{Text: "¿Cómo estás?", TargetLang: "fr", SourceLang: "es"}, calls[1])
}

func TestTranslateBlockDetectedLanguageWinsOverSupplied(t *testing.T) {
	detector := stubDetector{langs: map[string]string{"Hello there, friend.": "en"}}
	backend := &stubBackend{
		fn: func(text, targetLang, sourceLang string) (string, error) {
			return "Hallo", nil
		},
	}
	translator := NewBlockTranslator(detector, backend)

	translator.TranslateBlock(context.Background(), "Hello there, friend.", "de", "fr")

	calls := backend.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "en", calls[0].SourceLang)
}

func TestTranslateBlockUnknownDetectionKeepsSuppliedSource(t *testing.T) {
	backend := &stubBackend{
		fn: func(text, targetLang, sourceLang string) (string, error) {
			return "ok", nil
		},
	}
	translator := NewBlockTranslator(stubDetector{}, backend)

	translator.TranslateBlock(context.Background(), "zzz", "de", "fr")

	calls := backend.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "fr", calls[0].SourceLang)
}

func TestTranslateBlockSentenceFallback(t *testing.T) {
	detector := stubDetector{langs: map[string]string{
		"Hello.":        "en",
		"¿Cómo estás?": "es",
	}}
	backend := &stubBackend{
		fn: func(text, targetLang, sourceLang string) (string, error) {
			if text == "Hello." {
				return "Hola.", nil
			}
			return "", fmt.Errorf("service unavailable")
		},
	}
	translator := NewBlockTranslator(detector, backend)

	result := translator.TranslateBlock(context.Background(), "Hello. ¿Cómo estás?", "es", "auto")

	// one bad sentence never discards the whole block
	assert.Equal(t, "Hola. ¿Cómo estás?", result)
}

func TestTranslateBlockEmptyInputSkipsBackend(t *testing.T) {
	backend := &stubBackend{
		fn: func(text, targetLang, sourceLang string) (string, error) {
			return "should not happen", nil
		},
	}
	translator := NewBlockTranslator(stubDetector{}, backend)

	assert.Equal(t, "", translator.TranslateBlock(context.Background(), "", "es", "auto"))
	assert.Equal(t, "   ", translator.TranslateBlock(context.Background(), "   ", "es", "auto"))
	assert.Empty(t, backend.Calls())
}

func TestTranslateBlockRecoversFromPanic(t *testing.T) {
	backend := &stubBackend{
		fn: func(text, targetLang, sourceLang string) (string, error) {
			panic("backend defect")
		},
	}
	translator := NewBlockTranslator(stubDetector{}, backend)

	original := "Hello world."
	assert.NotPanics(t, func() {
		assert.Equal(t, original, translator.TranslateBlock(context.Background(), original, "es", "auto"))
	})
}

func TestTranslateBlockEmptyBackendResultKeepsOriginal(t *testing.T) {
	backend := &stubBackend{
		fn: func(text, targetLang, sourceLang string) (string, error) {
			return "", nil
		},
	}
	translator := NewBlockTranslator(stubDetector{}, backend)

	result := translator.TranslateBlock(context.Background(), "Hello world.", "es", "auto")
	assert.Equal(t, "Hello world.", result)
}

func TestTranslateBlockMultiline(t *testing.T) {
	backend := &stubBackend{
		fn: func(text, targetLang, sourceLang string) (string, error) {
			return strings.ToUpper(text), nil
		},
	}
	translator := NewBlockTranslator(stubDetector{}, backend)

	// newlines inside a block collapse to single spaces before translation
	result := translator.TranslateBlock(context.Background(), "line one\nline two", "es", "auto")
	assert.Equal(t, "LINE ONE LINE TWO", result)
}
