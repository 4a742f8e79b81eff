package chunker

import (
	"strings"
	"unicode"
)

// terminal reports whether r ends a sentence.
func terminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// SplitSentences splits text into sentences on terminal punctuation followed
// by whitespace. A closing quote or bracket may sit between the punctuation
// and the whitespace. This is a lightweight heuristic, not a language model;
// abbreviations like "e.g. " will split. Leading and trailing whitespace is
// trimmed from each sentence and empty sentences are dropped.
func SplitSentences(text string) []string {
	runes := []rune(text)
	var sentences []string
	var current strings.Builder

	flush := func() {
		s := strings.TrimSpace(current.String())
		if s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		current.WriteRune(r)
		if !terminal(r) {
			continue
		}
		j := i + 1
		for j < len(runes) && (runes[j] == '"' || runes[j] == '\'' || runes[j] == ')' || runes[j] == ']') {
			current.WriteRune(runes[j])
			j++
		}
		if j < len(runes) && unicode.IsSpace(runes[j]) {
			flush()
		}
		i = j - 1
	}
	flush()

	return sentences
}
