package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fam007e/SRT-Trans/internal/langdetect"
	"github.com/fam007e/SRT-Trans/internal/subtitle"
	"github.com/fam007e/SRT-Trans/internal/translator"
	"github.com/fam007e/SRT-Trans/pkg/file"
	"github.com/fam007e/SRT-Trans/pkg/log"
)

// FileJob describes one subtitle file to translate.
type FileJob struct {
	InputPath  string
	TargetLang string
	SourceLang string // "auto" or "" delegates detection
	Backend    string // backend name, empty selects the default
	OutputDir  string // empty writes next to the input
	Workers    int
}

// OutputPath computes where the translated file goes:
// <stem>_<target><ext>, either next to the input or inside OutputDir.
func (j FileJob) OutputPath() string {
	suffixed := file.WithSuffix(j.InputPath, "_"+j.TargetLang)
	if j.OutputDir == "" {
		return suffixed
	}
	return filepath.Join(j.OutputDir, filepath.Base(suffixed))
}

// FileJobRunner runs the batch orchestrator over single files. Any
// failure comes back as a *TransError; nothing below the file boundary
// escapes it.
type FileJobRunner struct {
	backendCfg translator.Config
	detector   langdetect.Detector
	writer     subtitle.Writer

	// injection points for tests
	newReader  func(path string) subtitle.Reader
	newBackend func(name string, cfg translator.Config) (translator.Translator, error)
}

// NewFileJobRunner creates a runner with the production collaborators.
func NewFileJobRunner(backendCfg translator.Config) *FileJobRunner {
	return &FileJobRunner{
		backendCfg: backendCfg,
		detector:   langdetect.NewDetector(),
		writer:     subtitle.NewWriter(),
		newReader:  subtitle.NewReader,
		newBackend: translator.New,
	}
}

// Run translates one file end to end and reports totals. The input
// file's index and timestamps are carried into the output verbatim;
// only the text changes.
func (r *FileJobRunner) Run(ctx context.Context, job FileJob) (*BatchReport, error) {
	if !translator.ValidateLanguageCode(job.TargetLang, false) {
		return nil, NewError(ErrConfig,
			fmt.Sprintf("'%s' may not be a valid language code, use --list-languages to see supported codes", job.TargetLang))
	}

	backend, err := r.newBackend(job.Backend, r.backendCfg)
	if err != nil {
		return nil, WrapError(err, ErrConfig, "failed to initialize translation backend").
			WithContext("backend", job.Backend)
	}

	subFile, err := r.newReader(job.InputPath).Read()
	if err != nil {
		return nil, r.readError(job.InputPath, err)
	}

	if len(subFile.Lines) == 0 {
		log.Warn("No subtitles found in %s", job.InputPath)
		return &BatchReport{Total: 0, Failed: 0, OutputPath: ""}, nil
	}

	texts := make([]string, len(subFile.Lines))
	for i, line := range subFile.Lines {
		texts[i] = line.Text
	}

	orchestrator := NewBatchOrchestrator(NewBlockTranslator(r.detector, backend), job.Workers)
	translated, failed := orchestrator.Run(ctx, texts, job.TargetLang, job.SourceLang)

	for i := range subFile.Lines {
		subFile.Lines[i].TranslatedText = translated[i]
	}

	outputPath := job.OutputPath()
	if job.OutputDir != "" {
		if err := os.MkdirAll(job.OutputDir, 0755); err != nil {
			return nil, WrapError(err, ErrFileWrite, "failed to create output directory")
		}
	}

	if err := r.writer.Write(outputPath, subFile); err != nil {
		return nil, WrapError(err, ErrFileWrite, "failed to save translated subtitles").
			WithContext("path", outputPath)
	}

	return &BatchReport{
		Total:      len(subFile.Lines),
		Failed:     failed,
		OutputPath: outputPath,
	}, nil
}

func (r *FileJobRunner) readError(path string, err error) *TransError {
	var parseErr *subtitle.ParseError
	switch {
	case errors.Is(err, os.ErrNotExist):
		return WrapError(err, ErrFileNotFound, "input file not found").WithContext("path", path)
	case errors.As(err, &parseErr):
		return WrapError(err, ErrParse, "failed to parse subtitle file").WithContext("path", path)
	default:
		return WrapError(err, ErrFileRead, "failed to read subtitle file").WithContext("path", path)
	}
}
