package fuzzy

import (
	"unicode"
	"unicode/utf8"
)

// A Split is one occurrence of a character within a string: the text before
// the occurrence, the character as it appears in the string (original case),
// and the text after it.
type Split struct {
	Before  string
	Matched rune
	After   string
}

// Splits returns one Split for every occurrence of ch in text, scanning
// case-insensitively from left to right. It returns nil when text is empty
// or ch never occurs.
func Splits(text string, ch rune) []Split {
	var splits []Split

	lch := unicode.ToLower(ch)
	for i, r := range text {
		if unicode.ToLower(r) == lch {
			splits = append(splits, Split{
				Before:  text[:i],
				Matched: r,
				After:   text[i+utf8.RuneLen(r):],
			})
		}
	}

	return splits
}
