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

const deeplAPIURL = "https://api-free.deepl.com/v2/translate"

// DeepLTranslator translates text through the DeepL REST API. DeepL
// expects uppercase language codes; a missing API key fails at
// construction time, before any translation attempt.
type DeepLTranslator struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewDeepLTranslator creates a DeepL backend. apiKey must not be empty.
func NewDeepLTranslator(apiKey string, timeout time.Duration) (*DeepLTranslator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("DeepL API key not found, set the DEEPL_API_KEY environment variable")
	}
	return &DeepLTranslator{
		endpoint: deeplAPIURL,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

func (d *DeepLTranslator) Name() string {
	return "deepl"
}

// Translate requests a translation of text into targetLang. A sourceLang
// of "auto" or "" is omitted from the request so DeepL detects it.
func (d *DeepLTranslator) Translate(ctx context.Context, text, targetLang, sourceLang string) (string, error) {
	form := url.Values{}
	form.Add("text", text)
	form.Set("target_lang", deeplLangCode(targetLang))
	if sourceLang != "" && sourceLang != "auto" {
		form.Set("source_lang", deeplLangCode(sourceLang))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", &BackendError{Backend: d.Name(), Cause: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "DeepL-Auth-Key "+d.apiKey)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", &BackendError{Backend: d.Name(), Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &BackendError{Backend: d.Name(), Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &BackendError{
			Backend: d.Name(),
			Cause:   fmt.Errorf("status %d: %s", resp.StatusCode, string(body)),
		}
	}

	var deeplResp struct {
		Translations []struct {
			Text string `json:"text"`
		} `json:"translations"`
	}
	if err := json.Unmarshal(body, &deeplResp); err != nil {
		return "", &BackendError{Backend: d.Name(), Cause: fmt.Errorf("parse response: %w", err)}
	}

	if len(deeplResp.Translations) == 0 || deeplResp.Translations[0].Text == "" {
		return text, nil
	}
	return deeplResp.Translations[0].Text, nil
}

// deeplLangCode uppercases codes the way DeepL expects (en -> EN).
func deeplLangCode(code string) string {
	return strings.ToUpper(code)
}
