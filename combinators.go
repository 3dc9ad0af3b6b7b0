package peg

// Preset character-class shorthands, built on the byte-set
// helpers in charsets.go shared with the textual `\d`/`\s`/`\w`/`\ident`
// built-ins.

// Digits matches a single ASCII digit.
func Digits() *Node { return CharSet(digitSet()) }

// Whitespace matches a single ASCII whitespace byte.
func Whitespace() *Node { return CharSet(whitespaceSet()) }

// Letters matches a single ASCII letter.
func Letters() *Node { return CharSet(lettersSet()) }

// IdentStartChars matches a single byte that may start an identifier:
// [A-Za-z_].
func IdentStartChars() *Node { return CharSet(identStartSet()) }

// IdentChars matches a single byte that may continue an identifier:
// [A-Za-z0-9_].
func IdentChars() *Node { return CharSet(identContSet()) }

// Ident matches a full identifier: IdentStartChars followed by zero or more
// IdentChars.
func Ident() *Node {
	return Sequence(CharSet(identStartSet()), GreedyRep(CharSet(identContSet())))
}

// Natural matches one or more decimal digits.
func Natural() *Node {
	return GreedyPlus(CharSet(digitSet()))
}

// Chars builds a single-byte membership pattern over the bytes of members,
// the programmatic equivalent of a textual `[...]` class.
func Chars(members string) *Node {
	s := newByteSet()
	for i := 0; i < len(members); i++ {
		s.add(members[i])
	}
	return CharSet(s)
}

// NotChars builds the complement of Chars(members): any single byte other
// than NUL and the bytes of members.
func NotChars(members string) *Node {
	s := newByteSet()
	for i := 0; i < len(members); i++ {
		s.add(members[i])
	}
	return CharSet(s.complement())
}

// NewRule creates a standalone, as yet undefined rule record for
// programmatic grammar construction: callers build cyclic
// references by first creating the record, using it in NonTerminal sites,
// then assigning its Rule field once the recursive definition is ready.
func NewRule(name string) *NonTerminal {
	return newNonTerminal(name, Position{})
}

// DefineRule assigns rec's body, completing a forward declaration made via
// NewRule. It panics if rec is already defined: a NonTerminal record built
// programmatically is meant to be defined exactly once, the same rule the
// textual parser enforces via its redefinition check.
func DefineRule(rec *NonTerminal, body *Node) {
	if rec.Declared() {
		panic(newConstructionError("rule %q is already defined", rec.Name))
	}
	rec.Rule = body
	rec.markDeclared()
}
