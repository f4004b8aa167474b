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

const mymemoryAPIURL = "https://api.mymemory.translated.net/get"

// mymemoryLangCodes maps short language codes to the region-qualified
// forms MyMemory requires.
var mymemoryLangCodes = map[string]string{
	"af": "af-ZA", "sq": "sq-AL", "am": "am-ET", "ar": "ar-SA",
	"hy": "hy-AM", "az": "az-AZ", "eu": "eu-ES", "be": "be-BY",
	"bn": "bn-IN", "bs": "bs-BA", "bg": "bg-BG", "ca": "ca-ES",
	"ceb": "ceb-PH", "zh-cn": "zh-CN", "zh-tw": "zh-TW", "zh": "zh-CN",
	"hr": "hr-HR", "cs": "cs-CZ", "da": "da-DK", "nl": "nl-NL",
	"en": "en-GB", "eo": "eo-EU", "et": "et-EE", "fi": "fi-FI",
	"fr": "fr-FR", "gl": "gl-ES", "ka": "ka-GE", "de": "de-DE",
	"el": "el-GR", "gu": "gu-IN", "ht": "ht-HT", "ha": "ha-NE",
	"haw": "haw-US", "he": "he-IL", "hi": "hi-IN", "hu": "hu-HU",
	"is": "is-IS", "ig": "ig-NG", "id": "id-ID", "ga": "ga-IE",
	"it": "it-IT", "ja": "ja-JP", "jv": "jv-ID", "kn": "kn-IN",
	"kk": "kk-KZ", "km": "km-KH", "rw": "rw-RW", "ko": "ko-KR",
	"ku": "kmr-TR", "ky": "ky-KG", "lo": "lo-LA", "la": "la-XN",
	"lv": "lv-LV", "lt": "lt-LT", "lb": "lb-LU", "mk": "mk-MK",
	"mg": "mg-MG", "ms": "ms-MY", "ml": "ml-IN", "mt": "mt-MT",
	"mi": "mi-NZ", "mr": "mr-IN", "mn": "mn-MN", "my": "my-MM",
	"ne": "ne-NP", "no": "nb-NO", "ny": "ny-MW", "or": "or-IN",
	"ps": "ps-PK", "fa": "fa-IR", "pl": "pl-PL", "pt": "pt-PT",
	"pa": "pa-IN", "ro": "ro-RO", "ru": "ru-RU", "sm": "sm-WS",
	"gd": "gd-GB", "sr": "sr-Latn-RS", "sn": "sn-ZW", "sd": "sd-PK",
	"si": "si-LK", "sk": "sk-SK", "sl": "sl-SI", "so": "so-SO",
	"es": "es-ES", "su": "su-ID", "sw": "sw-KE", "sv": "sv-SE",
	"tl": "tl-PH", "tg": "tg-TJ", "ta": "ta-IN", "tt": "tt-RU",
	"te": "te-IN", "th": "th-TH", "tr": "tr-TR", "tk": "tk-TM",
	"uk": "uk-UA", "ur": "ur-PK", "ug": "ug-CN", "uz": "uz-UZ",
	"vi": "vi-VN", "cy": "cy-GB", "xh": "xh-ZA", "yi": "yi-YD",
	"yo": "yo-NG", "zu": "zu-ZA",
}

// MyMemoryTranslator translates text through the MyMemory REST API.
// Free, no API key; an optional contact email raises the daily quota.
type MyMemoryTranslator struct {
	endpoint   string
	email      string
	httpClient *http.Client
}

// NewMyMemoryTranslator creates a MyMemory backend. email may be empty.
func NewMyMemoryTranslator(email string, timeout time.Duration) *MyMemoryTranslator {
	return &MyMemoryTranslator{
		endpoint: mymemoryAPIURL,
		email:    email,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (m *MyMemoryTranslator) Name() string {
	return "mymemory"
}

// Translate requests a translation of text into targetLang. MyMemory
// has no auto-detection, so an "auto" or empty sourceLang falls back to
// English as the assumed source.
func (m *MyMemoryTranslator) Translate(ctx context.Context, text, targetLang, sourceLang string) (string, error) {
	query := url.Values{}
	query.Set("q", text)
	query.Set("langpair", mymemoryLangCode(sourceLang)+"|"+mymemoryLangCode(targetLang))
	if m.email != "" {
		query.Set("de", m.email)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		m.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return "", &BackendError{Backend: m.Name(), Cause: err}
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", &BackendError{Backend: m.Name(), Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &BackendError{Backend: m.Name(), Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &BackendError{
			Backend: m.Name(),
			Cause:   fmt.Errorf("status %d: %s", resp.StatusCode, string(body)),
		}
	}

	// responseStatus is a number on success and a quoted string on
	// some error responses
	var mmResp struct {
		ResponseData struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
		ResponseStatus  any    `json:"responseStatus"`
		ResponseDetails string `json:"responseDetails"`
	}
	if err := json.Unmarshal(body, &mmResp); err != nil {
		return "", &BackendError{Backend: m.Name(), Cause: fmt.Errorf("parse response: %w", err)}
	}

	if status := fmt.Sprint(mmResp.ResponseStatus); status != "200" {
		return "", &BackendError{
			Backend: m.Name(),
			Cause:   fmt.Errorf("status %s: %s", status, mmResp.ResponseDetails),
		}
	}

	if mmResp.ResponseData.TranslatedText == "" {
		return text, nil
	}
	return mmResp.ResponseData.TranslatedText, nil
}

// mymemoryLangCode converts a short code to the full MyMemory format,
// guessing xx-XX for codes outside the mapping.
func mymemoryLangCode(code string) string {
	if code == "" || code == "auto" {
		return "en-GB"
	}
	if strings.Contains(code, "-") {
		if mapped, ok := mymemoryLangCodes[strings.ToLower(code)]; ok {
			return mapped
		}
		return code
	}
	lower := strings.ToLower(code)
	if mapped, ok := mymemoryLangCodes[lower]; ok {
		return mapped
	}
	return lower + "-" + strings.ToUpper(lower)
}
