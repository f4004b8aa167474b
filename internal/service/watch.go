package service

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/singleflight"

	"github.com/fam007e/SRT-Trans/internal/config"
	"github.com/fam007e/SRT-Trans/internal/translator"
	"github.com/fam007e/SRT-Trans/pkg/file"
	"github.com/fam007e/SRT-Trans/pkg/icron"
	"github.com/fam007e/SRT-Trans/pkg/log"
)

// WatchService rescans the configured directories on a cron schedule
// and translates subtitle files modified since the previous trigger.
// Already-translated output files (stem ending in _<target>) are
// skipped so a run does not feed on its own output.
type WatchService struct {
	cfg             config.Config
	runner          *FileJobRunner
	cron            *cron.Cron
	lastTriggerTime time.Time
}

func NewWatchService(
	cfg config.Config,
	cron *cron.Cron,
) *WatchService {
	return &WatchService{
		cfg:    cfg,
		runner: NewFileJobRunner(translator.Config{
			DeepLAPIKey:   cfg.Backend.DeepLAPIKey,
			MyMemoryEmail: cfg.Backend.MyMemoryEmail,
			Timeout:       cfg.Backend.Timeout(),
		}),
		cron: cron,
	}
}

var singleflightGroup singleflight.Group

// Schedule registers the watch job. Overlapping cron ticks collapse
// into a single run via singleflight.
func (s *WatchService) Schedule(
	ctx context.Context,
) error {
	if _, err := icron.Parse(s.cfg.Watch.CronExpr); err != nil {
		return WrapError(err, ErrConfig, "invalid watch schedule")
	}

	log.Info("Watching %d directories on schedule %q", len(s.cfg.Watch.Dirs), s.cfg.Watch.CronExpr)

	runFunc := func() {
		_, _, _ = singleflightGroup.Do("run", func() (any, error) {
			s.runAll(ctx)
			return nil, nil
		})
	}
	_, err := s.cron.AddFunc(s.cfg.Watch.CronExpr, runFunc)
	return err
}

// runAll performs one tick. The modified-since window is fixed before
// the directory loop so every directory sees the same window; updating
// it per directory would make later directories miss the inter-tick
// files.
func (s *WatchService) runAll(ctx context.Context) {
	since := s.windowStart()
	s.lastTriggerTime = time.Now()

	for _, dir := range s.cfg.Watch.Dirs {
		log.Info("Scanning dir %s", dir)
		if err := s.run(ctx, dir, since); err != nil {
			log.Error("Failed to run in dir %s: %v", dir, err)
		}
	}
}

// windowStart returns the start of the current modified-since window.
func (s *WatchService) windowStart() time.Time {
	if !s.lastTriggerTime.IsZero() {
		return s.lastTriggerTime
	}
	// first run covers the previous schedule window
	if info, err := icron.GetTriggerInfo(s.cfg.Watch.CronExpr, time.Now()); err == nil && !info.Last.IsZero() {
		return info.Last
	}
	return time.Time{}
}

func (s *WatchService) run(
	ctx context.Context,
	dir string,
	since time.Time,
) error {
	recent, err := file.FindRecentAfter(dir, since)
	if err != nil {
		return WrapError(err, ErrFileRead, "failed to scan watch directory").WithContext("dir", dir)
	}

	targetLang := s.cfg.Translate.TargetLanguage
	for _, path := range recent {
		if !strings.EqualFold(filepath.Ext(path), ".srt") {
			continue
		}
		if isTranslatedOutput(path, targetLang) {
			continue
		}

		report, err := s.runner.Run(ctx, FileJob{
			InputPath:  path,
			TargetLang: targetLang,
			SourceLang: s.cfg.Translate.SourceLanguage,
			Backend:    s.cfg.Backend.Name,
			Workers:    s.cfg.Translate.Workers,
		})
		if err != nil {
			log.Error("Failed to translate %s: %v", path, err)
			continue
		}
		log.Info("Translated %s -> %s (%d subtitles, %d failed)",
			path, report.OutputPath, report.Total, report.Failed)
	}
	return nil
}

func isTranslatedOutput(path, targetLang string) bool {
	stem, _ := file.SplitExt(path)
	return targetLang != "" && strings.HasSuffix(stem, "_"+targetLang)
}
