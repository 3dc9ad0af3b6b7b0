// Package pegutil provides a small set of ready-made grammars for common
// lexical shapes, built on top of the peg package's programmatic combinator
// surface. It does not attempt address formats (MAC/IPv4/IPv6/URI) or a
// full per-width integer/float literal zoo: those are out of scope for a
// generic PEG library's bundled presets and are left to be expressed as
// ordinary grammars by a caller who needs them.
package pegutil

import "github.com/pegc/pegc"

// Scope exposes every preset grammar by name, for embedding in a larger
// programmatic grammar (e.g. passed to a templating or rule-lookup helper).
var Scope = map[string]*peg.Node{
	"Letters":         Letters,
	"Digits":          Digits,
	"Whitespace":      Whitespace,
	"IdentStartChars": IdentStartChars,
	"IdentChars":      IdentChars,
	"Ident":           Ident,
	"Natural":         Natural,
	"Integer":         Integer,
	"Float":           Float,
}

// Presets mirroring peg's package-level shorthands, kept here too so a
// caller that only imports pegutil (for Integer/Float) gets the whole set
// without a second import.
var (
	Letters         = peg.Letters()
	Digits          = peg.Digits()
	Whitespace      = peg.Whitespace()
	IdentStartChars = peg.IdentStartChars()
	IdentChars      = peg.IdentChars()
	Ident           = peg.Ident()
	Natural         = peg.Natural()
)

// Integer matches an optionally signed run of decimal digits.
var Integer = peg.Sequence(peg.Option(peg.Chars("+-")), peg.Natural())

// Float matches an optionally signed decimal number with a required
// decimal point followed by zero or more fraction digits, and an optional
// exponent, e.g. "-3.14", "2.5e-10", "5.".
var Float = peg.Sequence(
	peg.Option(peg.Chars("+-")),
	peg.Natural(),
	peg.Term("."),
	peg.GreedyRep(peg.Digits()),
	peg.Option(peg.Sequence(
		peg.Chars("eE"),
		peg.Option(peg.Chars("+-")),
		peg.Natural(),
	)),
)
