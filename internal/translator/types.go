package translator

import (
	"context"
	"fmt"
	"time"
)

// Translator is the capability interface every translation backend
// implements. Implementations are stateless after construction and safe
// for concurrent use; a sourceLang of "auto" or "" delegates source
// detection to the backend.
type Translator interface {
	Name() string
	Translate(ctx context.Context, text, targetLang, sourceLang string) (string, error)
}

// BackendError reports a failed remote translation call. It carries the
// backend name so callers can tell which service failed; the decision
// whether the failure is fatal belongs to the orchestration layer.
type BackendError struct {
	Backend string
	Cause   error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s translate error: %v", e.Backend, e.Cause)
}

func (e *BackendError) Unwrap() error {
	return e.Cause
}

// Config carries backend construction settings. Credentials come from
// the process environment via internal/config.
type Config struct {
	DeepLAPIKey   string
	MyMemoryEmail string
	Timeout       time.Duration
}
