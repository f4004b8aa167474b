package textproc

import (
	"strings"
	"unicode"
)

// abbreviations that end with a period but do not end a sentence
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "rev": {},
	"sr": {}, "jr": {}, "st": {}, "vs": {}, "etc": {}, "approx": {},
	"gen": {}, "col": {}, "lt": {}, "sgt": {}, "capt": {}, "cmdr": {},
	"inc": {}, "ltd": {}, "co": {}, "dept": {}, "est": {}, "min": {},
	"max": {}, "fig": {}, "no": {}, "vol": {},
}

func isTerminal(r rune) bool {
	switch r {
	case '.', '!', '?', '…', '。', '！', '？':
		return true
	}
	return false
}

// closing quotes and brackets that may trail sentence punctuation
func isCloser(r rune) bool {
	switch r {
	case '"', '\'', '”', '’', ')', ']', '»', '」', '』':
		return true
	}
	return false
}

// Segment splits sanitized text into sentences in a single left-to-right
// pass. A sentence boundary is a run of terminal punctuation, optionally
// followed by closing quotes or brackets, followed by whitespace or the
// end of the text. Periods after known abbreviations, single-letter
// initials and decimal digits do not split. Text without terminal
// punctuation comes back as one segment. Joining the segments with
// single spaces reproduces the input.
func Segment(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	runes := []rune(text)
	var sentences []string
	start := 0

	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) {
			continue
		}

		// consume the whole punctuation run ("?!", "...")
		j := i
		for j+1 < len(runes) && isTerminal(runes[j+1]) {
			j++
		}

		k := j
		for k+1 < len(runes) && isCloser(runes[k+1]) {
			k++
		}

		// boundary only at whitespace or end of text
		if k+1 < len(runes) && !unicode.IsSpace(runes[k+1]) {
			i = j
			continue
		}

		if runes[i] == '.' && j == i && endsWithAbbreviation(runes[start:i]) {
			continue
		}

		sentence := strings.TrimSpace(string(runes[start : k+1]))
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = k + 1
		i = k
	}

	if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
		sentences = append(sentences, rest)
	}

	if len(sentences) == 0 {
		sentences = []string{text}
	}
	return sentences
}

// endsWithAbbreviation reports whether the trailing word of prefix is a
// known abbreviation or a single-letter initial.
func endsWithAbbreviation(prefix []rune) bool {
	end := len(prefix)
	begin := end
	for begin > 0 && (unicode.IsLetter(prefix[begin-1]) || unicode.IsDigit(prefix[begin-1])) {
		begin--
	}
	if begin == end {
		return false
	}

	word := string(prefix[begin:end])
	if len([]rune(word)) == 1 && unicode.IsUpper([]rune(word)[0]) {
		return true
	}

	_, ok := abbreviations[strings.ToLower(word)]
	return ok
}
