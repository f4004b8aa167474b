package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/fam007e/SRT-Trans/internal/config"
	"github.com/fam007e/SRT-Trans/internal/service"
	"github.com/fam007e/SRT-Trans/internal/translator"
	"github.com/fam007e/SRT-Trans/pkg/file"
	"github.com/fam007e/SRT-Trans/pkg/log"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	var (
		listLanguages bool
		watchMode     bool
		targetLang    string
		sourceLang    string
		backendName   string
		outputDir     string
		workers       int
		logLevel      string
	)

	flag.BoolVar(&listLanguages, "list-languages", false, "Display supported language codes and exit")
	flag.BoolVar(&watchMode, "watch", false, "Keep running and translate new subtitle files on a cron schedule")
	flag.StringVar(&targetLang, "target", "", "Target language code for translation (e.g. en, es, fr, zh-CN)")
	flag.StringVar(&targetLang, "t", "", "Shorthand for -target")
	flag.StringVar(&sourceLang, "source", "", "Source language code, defaults to auto-detect")
	flag.StringVar(&sourceLang, "s", "", "Shorthand for -source")
	flag.StringVar(&backendName, "translator", "", "Translation service: google (default), deepl (requires API key), mymemory (free)")
	flag.StringVar(&outputDir, "output-dir", "", "Directory for translated files, defaults to next to the originals")
	flag.IntVar(&workers, "workers", 0, "Number of parallel workers per file (max 8)")
	flag.IntVar(&workers, "w", 0, "Shorthand for -workers")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	log.InitLogger(log.ParseLevel(logLevel))

	if listLanguages {
		fmt.Println(translator.SupportedLanguages())
		return
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatal("Failed to load configuration: %v", err)
	}

	// flags take precedence over environment defaults
	targetLang = fallback(targetLang, cfg.Translate.TargetLanguage)
	sourceLang = fallback(sourceLang, cfg.Translate.SourceLanguage, "auto")
	backendName = fallback(backendName, cfg.Backend.Name)
	if workers <= 0 {
		workers = cfg.Translate.Workers
	}

	if watchMode {
		runWatch(cfg, targetLang, sourceLang, backendName, workers)
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "error: provide path(s) to SRT files or directories")
		flag.Usage()
		os.Exit(2)
	}
	if targetLang == "" {
		fmt.Fprintln(os.Stderr, "error: -target is required (e.g. -t es)")
		os.Exit(2)
	}

	if !translator.ValidateLanguageCode(targetLang, false) {
		log.Warn("'%s' may not be a recognized language code, use -list-languages to see common codes", targetLang)
	}
	if sourceLang != "auto" && !translator.ValidateLanguageCode(sourceLang, false) {
		log.Warn("'%s' may not be a recognized language code", sourceLang)
	}

	inputFiles, err := file.FindSubtitles(flag.Args(), ".srt")
	if err != nil {
		log.Fatal("Failed to collect subtitle files: %v", err)
	}
	if len(inputFiles) == 0 {
		fmt.Println("No SRT files found to translate.")
		return
	}

	workerInfo := ""
	if workers > 1 {
		workerInfo = fmt.Sprintf(" with %d workers", workers)
	}
	fmt.Printf("Translating %d SRT file(s) to %s using %s%s...\n\n",
		len(inputFiles), targetLang, backendName, workerInfo)

	runner := service.NewFileJobRunner(translator.Config{
		DeepLAPIKey:   cfg.Backend.DeepLAPIKey,
		MyMemoryEmail: cfg.Backend.MyMemoryEmail,
		Timeout:       cfg.Backend.Timeout(),
	})

	ctx := context.Background()
	succeeded, failed := 0, 0
	for _, inputFile := range inputFiles {
		report, err := runner.Run(ctx, service.FileJob{
			InputPath:  inputFile,
			TargetLang: targetLang,
			SourceLang: sourceLang,
			Backend:    backendName,
			OutputDir:  outputDir,
			Workers:    workers,
		})
		if err != nil {
			fmt.Printf("✗ Error for %s: %v\n", inputFile, err)
			failed++
			continue
		}
		if report.Total == 0 {
			fmt.Printf("✓ Warning: no subtitles found in %s\n", inputFile)
			succeeded++
			continue
		}
		fmt.Printf("✓ Translated %s → %s (%d subtitles, %d unchanged)\n",
			inputFile, report.OutputPath, report.Total, report.Failed)
		succeeded++
	}

	fmt.Printf("\n--- Summary: %d succeeded, %d failed ---\n", succeeded, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// fallback returns value if set, otherwise the first non-empty default.
func fallback(value string, defaults ...string) string {
	if value != "" {
		return value
	}
	for _, d := range defaults {
		if d != "" {
			return d
		}
	}
	return ""
}

// runWatch blocks forever translating files as they appear.
func runWatch(cfg *config.Config, targetLang, sourceLang, backendName string, workers int) {
	if targetLang == "" {
		log.Fatal("Watch mode requires a target language (set -target or TARGET_LANGUAGE)")
	}
	if len(cfg.Watch.Dirs) == 0 {
		log.Fatal("Watch mode requires WATCH_DIRS to be set")
	}

	cfg.Translate.TargetLanguage = targetLang
	cfg.Translate.SourceLanguage = sourceLang
	cfg.Translate.Workers = workers
	cfg.Backend.Name = backendName

	c := cron.New()
	svc := service.NewWatchService(*cfg, c)
	if err := svc.Schedule(context.Background()); err != nil {
		log.Fatal("Failed to schedule watch service: %v", err)
	}
	c.Run()
}
