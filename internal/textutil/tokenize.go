package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// isWordRune reports whether r belongs to a token once the text is
// lowercased: Cyrillic а-я and ё, Latin a-z.
func isWordRune(r rune) bool {
	return (r >= 'а' && r <= 'я') || r == 'ё' || (r >= 'a' && r <= 'z')
}

// Lower folds text to lowercase with Russian casing rules and composes it
// to NFC so decomposed й and ё survive as single letters.
func Lower(text string) string {
	// Casers keep state and must not be shared across goroutines.
	return norm.NFC.String(cases.Lower(language.Russian).String(text))
}

// Tokenize splits text into lowercase words. Any rune that is not a
// Cyrillic or Latin letter ends the current word, so digits, hyphens and
// apostrophes all separate tokens.
func Tokenize(text string) []string {
	lowered := Lower(text)
	var (
		tokens []string
		start  = -1
	)
	for i, r := range lowered {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, lowered[start:i])
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, lowered[start:])
	}
	return tokens
}

// CountWords returns the number of tokens in text.
func CountWords(text string) int {
	return len(Tokenize(text))
}

// CountLines counts newline-separated lines; an empty text has one line.
func CountLines(text string) int {
	return strings.Count(text, "\n") + 1
}

// TTR is the type-token ratio: distinct word forms over word count. It is
// 0 for a text without words.
func TTR(text string) float64 {
	return typeTokenRatio(Tokenize(text))
}

// LongestWord returns the longest token by rune count; the first one wins
// a tie. It returns "" when text has no words.
func LongestWord(text string) string {
	return longest(Tokenize(text))
}

func typeTokenRatio(items []string) float64 {
	if len(items) == 0 {
		return 0
	}
	return float64(countDistinct(items)) / float64(len(items))
}

func countDistinct(items []string) int {
	seen := make(map[string]struct{}, len(items))
	for _, v := range items {
		seen[v] = struct{}{}
	}
	return len(seen)
}

func longest(tokens []string) string {
	best, bestLen := "", 0
	for _, tok := range tokens {
		if n := len([]rune(tok)); n > bestLen {
			best, bestLen = tok, n
		}
	}
	return best
}
