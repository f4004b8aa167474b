package translator

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DefaultBackend is used when no backend name is given; it needs no
// credential.
const DefaultBackend = "google"

const defaultTimeout = 30 * time.Second

// factories is the closed set of constructable backends.
var factories = map[string]func(cfg Config) (Translator, error){
	"google": func(cfg Config) (Translator, error) {
		return NewGoogleTranslator(cfg.timeout()), nil
	},
	"deepl": func(cfg Config) (Translator, error) {
		return NewDeepLTranslator(cfg.DeepLAPIKey, cfg.timeout())
	},
	"mymemory": func(cfg Config) (Translator, error) {
		return NewMyMemoryTranslator(cfg.MyMemoryEmail, cfg.timeout()), nil
	},
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return defaultTimeout
	}
	return c.Timeout
}

// New constructs a backend by name. Construction fails for unknown
// names and for backends whose credential is missing.
func New(name string, cfg Config) (Translator, error) {
	if name == "" {
		name = DefaultBackend
	}

	factory, ok := factories[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown translator: %s (available: %s)",
			name, strings.Join(Available(), ", "))
	}
	return factory(cfg)
}

// Available lists the constructable backend names, sorted.
func Available() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
