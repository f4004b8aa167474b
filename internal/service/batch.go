package service

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/fam007e/SRT-Trans/pkg/log"
)

const (
	// MaxWorkers caps the worker pool; requests beyond it are clamped
	// with a warning.
	MaxWorkers = 8

	// below this many blocks the pool overhead is not worth it
	sequentialThreshold = 10
)

// BatchOrchestrator runs the block translator over all blocks of one
// file under a bounded worker pool, preserving input order.
type BatchOrchestrator struct {
	blocks  *BlockTranslator
	workers int
}

// NewBatchOrchestrator clamps workers to [1, MaxWorkers].
func NewBatchOrchestrator(blocks *BlockTranslator, workers int) *BatchOrchestrator {
	if workers > MaxWorkers {
		log.Warn("Worker count capped at %d (requested %d)", MaxWorkers, workers)
		workers = MaxWorkers
	}
	if workers < 1 {
		workers = 1
	}
	return &BatchOrchestrator{
		blocks:  blocks,
		workers: workers,
	}
}

// Run translates blockTexts and returns the translated texts in input
// order together with the failed-block count. A block counts as failed
// when its output equals its non-blank input, a best-effort proxy for
// "translation changed nothing". Each result slot is written exactly
// once by exactly one worker; slot ownership is partitioned by block
// position at dispatch time, so no locking is needed.
func (o *BatchOrchestrator) Run(ctx context.Context, blockTexts []string, targetLang, sourceLang string) ([]string, int) {
	requests := make([]TranslationRequest, len(blockTexts))
	for i, text := range blockTexts {
		requests[i] = TranslationRequest{
			BlockPosition: i,
			OriginalText:  text,
			TargetLang:    targetLang,
			SourceLang:    sourceLang,
		}
	}

	results := make([]TranslationResult, len(requests))

	if o.workers <= 1 || len(requests) < sequentialThreshold {
		for _, req := range requests {
			results[req.BlockPosition] = o.translate(ctx, req)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(o.workers)
		for _, req := range requests {
			req := req
			g.Go(func() error {
				results[req.BlockPosition] = o.translate(gctx, req)
				return nil
			})
		}
		// workers never return errors, block failures fall back locally
		_ = g.Wait()
	}

	translated := make([]string, len(results))
	failed := 0
	for i, res := range results {
		translated[i] = res.TranslatedText
		original := requests[i].OriginalText
		if strings.TrimSpace(original) != "" && res.TranslatedText == original {
			failed++
		}
	}

	return translated, failed
}

func (o *BatchOrchestrator) translate(ctx context.Context, req TranslationRequest) TranslationResult {
	return TranslationResult{
		BlockPosition:  req.BlockPosition,
		TranslatedText: o.blocks.TranslateBlock(ctx, req.OriginalText, req.TargetLang, req.SourceLang),
	}
}
