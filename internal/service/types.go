package service

// TranslationRequest is the unit of work submitted to the worker pool,
// exactly one per subtitle block. BlockPosition is unique within a
// batch and is the only field used to reorder results.
type TranslationRequest struct {
	BlockPosition int
	OriginalText  string
	TargetLang    string
	SourceLang    string
}

// TranslationResult is always produced for every request; on internal
// failure it carries the original text unchanged, so a batch never
// yields fewer results than requests.
type TranslationResult struct {
	BlockPosition  int
	TranslatedText string
}

// BatchReport summarizes one translated file.
type BatchReport struct {
	Total      int
	Failed     int
	OutputPath string
}
