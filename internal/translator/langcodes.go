package translator

import (
	"fmt"
	"sort"
	"strings"
)

// CommonLanguageCodes maps short language codes to display names. Loaded
// once at startup, never mutated. Actual availability depends on the
// backend in use.
var CommonLanguageCodes = map[string]string{
	"af": "Afrikaans", "sq": "Albanian", "am": "Amharic", "ar": "Arabic",
	"hy": "Armenian", "az": "Azerbaijani", "eu": "Basque", "be": "Belarusian",
	"bn": "Bengali", "bs": "Bosnian", "bg": "Bulgarian", "ca": "Catalan",
	"ceb": "Cebuano", "zh-CN": "Chinese (Simplified)", "zh-TW": "Chinese (Traditional)",
	"co": "Corsican", "hr": "Croatian", "cs": "Czech", "da": "Danish",
	"nl": "Dutch", "en": "English", "eo": "Esperanto", "et": "Estonian",
	"fi": "Finnish", "fr": "French", "fy": "Frisian", "gl": "Galician",
	"ka": "Georgian", "de": "German", "el": "Greek", "gu": "Gujarati",
	"ht": "Haitian Creole", "ha": "Hausa", "haw": "Hawaiian", "he": "Hebrew",
	"hi": "Hindi", "hmn": "Hmong", "hu": "Hungarian", "is": "Icelandic",
	"ig": "Igbo", "id": "Indonesian", "ga": "Irish", "it": "Italian",
	"ja": "Japanese", "jv": "Javanese", "kn": "Kannada", "kk": "Kazakh",
	"km": "Khmer", "rw": "Kinyarwanda", "ko": "Korean", "ku": "Kurdish",
	"ky": "Kyrgyz", "lo": "Lao", "la": "Latin", "lv": "Latvian",
	"lt": "Lithuanian", "lb": "Luxembourgish", "mk": "Macedonian", "mg": "Malagasy",
	"ms": "Malay", "ml": "Malayalam", "mt": "Maltese", "mi": "Maori",
	"mr": "Marathi", "mn": "Mongolian", "my": "Myanmar (Burmese)", "ne": "Nepali",
	"no": "Norwegian", "ny": "Nyanja (Chichewa)", "or": "Odia (Oriya)", "ps": "Pashto",
	"fa": "Persian", "pl": "Polish", "pt": "Portuguese", "pa": "Punjabi",
	"ro": "Romanian", "ru": "Russian", "sm": "Samoan", "gd": "Scots Gaelic",
	"sr": "Serbian", "st": "Sesotho", "sn": "Shona", "sd": "Sindhi",
	"si": "Sinhala (Sinhalese)", "sk": "Slovak", "sl": "Slovenian", "so": "Somali",
	"es": "Spanish", "su": "Sundanese", "sw": "Swahili", "sv": "Swedish",
	"tl": "Tagalog (Filipino)", "tg": "Tajik", "ta": "Tamil", "tt": "Tatar",
	"te": "Telugu", "th": "Thai", "tr": "Turkish", "tk": "Turkmen",
	"uk": "Ukrainian", "ur": "Urdu", "ug": "Uyghur", "uz": "Uzbek",
	"vi": "Vietnamese", "cy": "Welsh", "xh": "Xhosa", "yi": "Yiddish",
	"yo": "Yoruba", "zu": "Zulu",
}

// SupportedLanguages formats the catalog sorted by display name.
func SupportedLanguages() string {
	type entry struct {
		code string
		name string
	}

	entries := make([]entry, 0, len(CommonLanguageCodes))
	for code, name := range CommonLanguageCodes {
		entries = append(entries, entry{code: code, name: name})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].name < entries[j].name
	})

	var sb strings.Builder
	sb.WriteString("Supported language codes:\n")
	sb.WriteString(strings.Repeat("-", 50) + "\n")
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("  %-8s - %s\n", e.code, e.name))
	}
	sb.WriteString(strings.Repeat("-", 50) + "\n")
	sb.WriteString("Note: Actual availability depends on the translation service used.\n")
	sb.WriteString("Use 'auto' for source language to auto-detect.")
	return sb.String()
}

// ValidateLanguageCode reports whether a code is likely supported:
// catalog members pass, and codes of length 2 or 5 are trusted to cover
// region-qualified forms like zh-CN outside the catalog.
func ValidateLanguageCode(code string, allowAuto bool) bool {
	if allowAuto && code == "auto" {
		return true
	}
	if _, ok := CommonLanguageCodes[strings.ToLower(code)]; ok {
		return true
	}
	if _, ok := CommonLanguageCodes[code]; ok {
		return true
	}
	return len(code) == 2 || len(code) == 5
}
