package morph

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// foldKey turns a word into its lookup key: NFC composed, ё folded to е.
// Callers pass lowercase input.
func foldKey(s string) string {
	if !norm.NFC.IsNormalString(s) {
		s = norm.NFC.String(s)
	}
	if !strings.ContainsAny(s, "ёЁ") {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case 'ё':
			return 'е'
		case 'Ё':
			return 'Е'
		}
		return r
	}, s)
}

func isVowel(r rune) bool {
	return strings.ContainsRune("аеёиоуыэюя", r)
}

// endsWithVowel reports whether s is empty or ends with a vowel.
func endsWithVowel(s string) bool {
	if s == "" {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return isVowel(r)
}

// commonPrefix returns the length in bytes of the longest rune-aligned
// prefix shared by a and b.
func commonPrefix(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) {
		ra, sa := utf8.DecodeRuneInString(a[n:])
		rb, sb := utf8.DecodeRuneInString(b[n:])
		if ra != rb || sa != sb {
			break
		}
		n += sa
	}
	return n
}
