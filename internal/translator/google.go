package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const googleAPIURL = "https://translate.googleapis.com/translate_a/single"

// GoogleTranslator translates text through the free Google Translate
// web endpoint. No credential is required, which makes it the default
// backend.
type GoogleTranslator struct {
	endpoint   string
	httpClient *http.Client
}

// NewGoogleTranslator creates a Google backend with the given request timeout.
func NewGoogleTranslator(timeout time.Duration) *GoogleTranslator {
	return &GoogleTranslator{
		endpoint: googleAPIURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (g *GoogleTranslator) Name() string {
	return "google"
}

// Translate requests a translation of text into targetLang. An empty or
// "auto" sourceLang lets the service detect the source.
func (g *GoogleTranslator) Translate(ctx context.Context, text, targetLang, sourceLang string) (string, error) {
	if sourceLang == "" {
		sourceLang = "auto"
	}

	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("sl", sourceLang)
	query.Set("tl", targetLang)
	query.Set("dt", "t")
	query.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		g.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return "", &BackendError{Backend: g.Name(), Cause: err}
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", &BackendError{Backend: g.Name(), Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &BackendError{Backend: g.Name(), Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &BackendError{
			Backend: g.Name(),
			Cause:   fmt.Errorf("status %d: %s", resp.StatusCode, string(body)),
		}
	}

	translated, err := parseGoogleResponse(body)
	if err != nil {
		return "", &BackendError{Backend: g.Name(), Cause: err}
	}

	if translated == "" {
		return text, nil
	}
	return translated, nil
}

// parseGoogleResponse extracts the translated text from the endpoint's
// nested-array payload: [[["<translated>","<original>",...],...],...].
func parseGoogleResponse(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty response")
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("parse response segments: %w", err)
	}

	var sb strings.Builder
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		var chunk string
		if err := json.Unmarshal(segment[0], &chunk); err != nil {
			continue
		}
		sb.WriteString(chunk)
	}

	return sb.String(), nil
}
