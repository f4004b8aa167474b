package translator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLanguageCode(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		allowAuto bool
		want      bool
	}{
		{name: "catalog member", code: "es", want: true},
		{name: "catalog member upper", code: "ES", want: true},
		{name: "region qualified in catalog", code: "zh-CN", want: true},
		{name: "region qualified outside catalog", code: "pt-BR", want: true},
		{name: "length heuristic", code: "xx", want: true},
		{name: "three letter outside catalog", code: "xyz", want: false},
		{name: "auto allowed", code: "auto", allowAuto: true, want: true},
		{name: "auto rejected", code: "auto", allowAuto: false, want: false},
		{name: "empty", code: "", want: false},
		{name: "garbage", code: "notalang", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateLanguageCode(tt.code, tt.allowAuto))
		})
	}
}

func TestSupportedLanguages(t *testing.T) {
	listing := SupportedLanguages()

	assert.Contains(t, listing, "Supported language codes:")
	assert.Contains(t, listing, "es")
	assert.Contains(t, listing, "Spanish")
	assert.Contains(t, listing, "Chinese (Simplified)")
	assert.Contains(t, listing, "Use 'auto' for source language to auto-detect.")
}
