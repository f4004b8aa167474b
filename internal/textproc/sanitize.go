package textproc

import (
	"fmt"
	"regexp"
	"strings"
)

// TagPlaceholder pairs a placeholder token with the markup span it replaced.
type TagPlaceholder struct {
	Token string
	Tag   string
}

var (
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Sanitize extracts inline markup tags from text, replacing each with a
// unique __TAG_<n>__ token numbered in discovery order, then collapses
// all whitespace runs to single spaces and trims the result. Text
// without markup returns an empty placeholder list.
func Sanitize(text string) (string, []TagPlaceholder) {
	var tags []TagPlaceholder

	clean := tagRe.ReplaceAllStringFunc(text, func(tag string) string {
		token := fmt.Sprintf("__TAG_%d__", len(tags))
		tags = append(tags, TagPlaceholder{Token: token, Tag: tag})
		return token
	})

	clean = whitespaceRe.ReplaceAllString(clean, " ")
	return strings.TrimSpace(clean), tags
}

// Restore substitutes placeholder tokens back with their original markup.
// Tokens still present in text are replaced in place. Tokens the
// translation destroyed are re-attached by wrapping the whole output:
// opening tags are prepended in discovery order and closing tags
// appended in reverse, so markup is never silently dropped. Calling
// with an empty placeholder list returns text unchanged.
func Restore(text string, tags []TagPlaceholder) string {
	var missing []TagPlaceholder
	for _, t := range tags {
		if strings.Contains(text, t.Token) {
			text = strings.ReplaceAll(text, t.Token, t.Tag)
		} else {
			missing = append(missing, t)
		}
	}

	if len(missing) == 0 {
		return text
	}

	var opening, closing []string
	for _, t := range missing {
		if strings.HasPrefix(t.Tag, "</") {
			closing = append(closing, t.Tag)
		} else {
			opening = append(opening, t.Tag)
		}
	}

	var sb strings.Builder
	for _, tag := range opening {
		sb.WriteString(tag)
	}
	sb.WriteString(text)
	for i := len(closing) - 1; i >= 0; i-- {
		sb.WriteString(closing[i])
	}
	return sb.String()
}
