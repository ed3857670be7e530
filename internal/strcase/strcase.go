package strcase

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToLowerFirst lowers the leading ASCII capital of name and leaves the rest untouched.
func ToLowerFirst(name string) string {
	if name == "" {
		return name
	}

	firstChar := name[0]
	if firstChar >= 'A' && firstChar <= 'Z' {
		return string(firstChar+32) + name[1:]
	}

	return name
}

func ToSnakeCase(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	var result []rune

	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				nextLower := false
				if i < len(runes)-1 {
					nextLower = unicode.IsLower(runes[i+1])
				}

				if unicode.IsLower(prev) || nextLower {
					result = append(result, '_')
				}
			}
			r = unicode.ToLower(r)
		}

		result = append(result, r)
	}

	return string(result)
}

// UnderscoresToCamelCase joins the words of s into a single identifier.
// Words are separated by any non-alphanumeric rune, and a letter following a
// digit starts a new word. Every word but the first is capitalized; the
// first is capitalized only when capitalizeFirst is set.
func UnderscoresToCamelCase(s string, capitalizeFirst bool) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}

	// Casers keep state, so one is built per call.
	title := cases.Title(language.Und, cases.NoLower)

	var b strings.Builder
	for i, w := range words {
		if i == 0 && !capitalizeFirst {
			b.WriteString(ToLowerFirst(w))
			continue
		}
		b.WriteString(title.String(w))
	}
	return b.String()
}

func splitWords(s string) []string {
	var (
		words []string
		cur   []rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			if len(cur) > 0 && unicode.IsDigit(cur[len(cur)-1]) {
				flush()
			}
			cur = append(cur, r)
		case unicode.IsDigit(r):
			cur = append(cur, r)
		default:
			flush()
		}
	}
	flush()

	return words
}
