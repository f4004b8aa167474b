package service

import (
	"context"
	"strings"

	"github.com/fam007e/SRT-Trans/internal/langdetect"
	"github.com/fam007e/SRT-Trans/internal/textproc"
	"github.com/fam007e/SRT-Trans/internal/translator"
	"github.com/fam007e/SRT-Trans/pkg/log"
)

// BlockTranslator translates one subtitle block: extract markup,
// segment into sentences, detect each sentence's source language,
// translate through the backend and reassemble with markup restored.
type BlockTranslator struct {
	detector langdetect.Detector
	backend  translator.Translator
}

// NewBlockTranslator composes a block translator from a detector and a
// translation backend. Both must be safe for concurrent use.
func NewBlockTranslator(detector langdetect.Detector, backend translator.Translator) *BlockTranslator {
	return &BlockTranslator{
		detector: detector,
		backend:  backend,
	}
}

// TranslateBlock never fails: any unexpected error or panic inside the
// pipeline falls back to the original block text, so a batch always
// keeps its block count.
func (b *BlockTranslator) TranslateBlock(ctx context.Context, blockText, targetLang, sourceLang string) string {
	if strings.TrimSpace(blockText) == "" {
		return blockText
	}

	translated := blockText
	err := SafeExecute(func() error {
		clean, tags := textproc.Sanitize(blockText)
		sentences := textproc.Segment(clean)

		translatedSentences := make([]string, 0, len(sentences))
		for _, sentence := range sentences {
			translatedSentences = append(translatedSentences,
				b.translateSentence(ctx, sentence, targetLang, sourceLang))
		}

		joined := strings.Join(translatedSentences, " ")
		translated = textproc.Restore(joined, tags)
		return nil
	})
	if err != nil {
		log.Warn("Block translation failed, keeping original text: %v", err)
		return blockText
	}

	return translated
}

// translateSentence translates a single sentence with its own fallback:
// a backend failure keeps that sentence untranslated without touching
// the rest of the block. A detected language always wins over the
// caller-supplied source, favoring per-sentence accuracy for
// mixed-language blocks.
func (b *BlockTranslator) translateSentence(ctx context.Context, sentence, targetLang, sourceLang string) string {
	if strings.TrimSpace(sentence) == "" {
		return sentence
	}

	effectiveSource := sourceLang
	if detected := b.detector.Detect(sentence); detected != langdetect.Unknown {
		effectiveSource = detected
	}

	result, err := b.backend.Translate(ctx, sentence, targetLang, effectiveSource)
	if err != nil {
		log.Warn("Sentence translation via %s failed, keeping original: %v", b.backend.Name(), err)
		return sentence
	}
	if result == "" {
		return sentence
	}
	return result
}
