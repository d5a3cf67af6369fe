package selection

import (
	"strings"
	"unicode/utf8"
)

// runeCount is the number of code points in s.
func runeCount(s string) int {
	return utf8.RuneCountInString(s)
}

// runeOffset returns the byte offset of code point n in s, clamped to
// len(s).
func runeOffset(s string, n int) int {
	if n <= 0 {
		return 0
	}
	i := 0
	for i < len(s) && n > 0 {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		n--
	}
	return i
}

// sliceRunes returns code points [from, to) of s. Out-of-range bounds
// are clamped.
func sliceRunes(s string, from, to int) string {
	if to <= from {
		return ""
	}
	lo := runeOffset(s, from)
	hi := lo + runeOffset(s[lo:], to-from)
	return s[lo:hi]
}

// prefixRunes returns the first n code points of s.
func prefixRunes(s string, n int) string {
	return s[:runeOffset(s, n)]
}

// suffixRunes returns s without its first n code points.
func suffixRunes(s string, n int) string {
	return s[runeOffset(s, n):]
}

func isWhitespaceOnly(s string) bool {
	return strings.TrimSpace(s) == ""
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

func orderedIndices(a, b int) (int, int) {
	if a <= b {
		return a, b
	}
	return b, a
}
