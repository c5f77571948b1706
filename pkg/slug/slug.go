// Package slug converts subject display names to URL slugs and back.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToSlug lowercases name and replaces every run of whitespace with a single hyphen.
// Leading and trailing whitespace is dropped.
func ToSlug(name string) string {
	return strings.Join(strings.FieldsFunc(strings.ToLower(name), unicode.IsSpace), "-")
}

// ToDisplayName reverses ToSlug for names made of simple space-separated words:
// each hyphen-separated segment is title-cased and the segments are joined by spaces.
// Empty segments are skipped, so the result is always a usable lookup name.
func ToDisplayName(s string) string {
	parts := strings.Split(strings.TrimSpace(s), "-")
	// cases.Caser is stateful and must not be shared across goroutines.
	caser := cases.Title(language.English)
	words := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		words = append(words, caser.String(part))
	}
	return strings.Join(words, " ")
}
