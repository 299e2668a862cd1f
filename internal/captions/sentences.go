package captions

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SplitSentences breaks text at whitespace that directly follows '.', '!' or
// '?'. The terminator stays with the sentence before it and every piece is
// trimmed. Text without such a break comes back as a single trimmed element.
//
// Empty pieces are returned as-is (for example the tail of "Hi. "); the
// Formatter decides whether to keep them.
func SplitSentences(text string) []string {
	var sentences []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size
		if !isTerminator(r) {
			continue
		}
		next := skipSpace(text, i)
		if next == i {
			continue
		}
		sentences = append(sentences, strings.TrimSpace(text[start:i]))
		start = next
		i = next
	}
	return append(sentences, strings.TrimSpace(text[start:]))
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func skipSpace(text string, from int) int {
	for from < len(text) {
		r, size := utf8.DecodeRuneInString(text[from:])
		if !unicode.IsSpace(r) {
			break
		}
		from += size
	}
	return from
}
