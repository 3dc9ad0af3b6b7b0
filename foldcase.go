package peg

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lowerCaser performs Unicode-aware lowercasing for
// TerminalIgnoreCase/BackRefIgnoreCase. language.Und (undetermined) is used
// rather than a concrete locale: PEG grammars have no notion of the source
// language, and the one case where locale changes lowering (Turkish dotted
// and dotless I) should not silently depend on the host's default locale.
var lowerCaser = cases.Lower(language.Und)

// runeToLower lowercases a single rune the Unicode-aware way. TerminalIgnoreCase
// compares runes pairwise rather than byte ranges, so unlike a
// whole-string Caser pass this never needs to worry about input and pattern
// lowering to different byte lengths — each side only ever advances by its
// own rune's width.
func runeToLower(r rune) rune {
	lowered := lowerCaser.String(string(r))
	lr, size := utf8.DecodeRuneInString(lowered)
	if size != len(lowered) {
		// lowerCaser expanded r into more than one code point (true only for
		// a handful of exotic runes outside any grammar's realistic alphabet);
		// fall back to the rune unchanged rather than mis-advancing a cursor.
		return r
	}
	return lr
}

// skipUnderscores returns the offset of the next byte in s at or after i
// that is not '_'.
func skipUnderscores(s string, i int) int {
	for i < len(s) && s[i] == '_' {
		i++
	}
	return i
}
