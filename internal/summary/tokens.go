package summary

import (
	"strings"
	"unicode"
)

// CountTokens approximates the token count of a text. Most tokenizers
// produce about 1.3 tokens per word, with punctuation often split into
// separate tokens.
func CountTokens(text string) int {
	if text == "" {
		return 0
	}
	words := len(strings.Fields(text))
	punct := 0
	for _, r := range text {
		if unicode.IsPunct(r) {
			punct++
		}
	}
	return int(float64(words)*1.3) + punct/2
}
