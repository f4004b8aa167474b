package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
// Supports environment variables with sensible defaults.
//
// Environment Variables:
// Backend Configuration:
// - DEEPL_API_KEY: API key for the DeepL backend (required for deepl only)
// - MYMEMORY_EMAIL: contact email for the MyMemory backend (optional, raises quota)
// - HTTP_TIMEOUT: backend request timeout in seconds (default: 30)
//
// Translate Configuration:
// - TARGET_LANGUAGE: default target language code
// - SOURCE_LANGUAGE: default source language code (default: auto)
// - TRANSLATOR: default backend name (default: google)
// - WORKERS: default worker count (default: 1)
//
// Watch Configuration:
// - WATCH_DIRS: comma-separated directories scanned in watch mode
// - CRON_EXPR: watch schedule (default: hourly)
type Config struct {
	Backend   BackendConfig
	Translate TranslateConfig
	Watch     WatchConfig
}

// BackendConfig holds translation backend settings
type BackendConfig struct {
	Name           string
	DeepLAPIKey    string
	MyMemoryEmail  string
	TimeoutSeconds int
}

func (c BackendConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// TranslateConfig holds default translation settings
type TranslateConfig struct {
	TargetLanguage string
	SourceLanguage string
	Workers        int
}

// WatchConfig holds the watch-mode schedule and directories
type WatchConfig struct {
	Dirs     []string
	CronExpr string
}

// Option is a function type for adjusting Config
type Option func(*Config)

// New creates a Config from environment variables and options
func New(opts ...Option) (*Config, error) {
	config := &Config{
		Backend: BackendConfig{
			Name:           getEnvString("TRANSLATOR", "google"),
			DeepLAPIKey:    getEnvString("DEEPL_API_KEY", ""),
			MyMemoryEmail:  getEnvString("MYMEMORY_EMAIL", ""),
			TimeoutSeconds: getEnvInt("HTTP_TIMEOUT", 30),
		},
		Translate: TranslateConfig{
			TargetLanguage: getEnvString("TARGET_LANGUAGE", ""),
			SourceLanguage: getEnvString("SOURCE_LANGUAGE", "auto"),
			Workers:        getEnvInt("WORKERS", 1),
		},
		Watch: WatchConfig{
			Dirs:     splitList(getEnvString("WATCH_DIRS", "")),
			CronExpr: getEnvString("CRON_EXPR", "0 * * * *"),
		},
	}

	for _, opt := range opts {
		opt(config)
	}

	return config, nil
}

// getEnvString gets a string value from environment variables with default
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer value from environment variables with default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
