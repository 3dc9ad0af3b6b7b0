package peg

// literalSetThreshold is the minimum number of plain-literal alternatives
// in an OrderedChoice before the constructor builds the ahocorasick-backed
// LiteralSet superoperator instead of leaving a general OrderedChoice.
// Below this size a linear try-each-alternative scan is already cheap and
// building an automaton would not pay for itself.
const literalSetThreshold = 8

// Sequence builds a concatenation of patterns, flattening nested sequences
// and fusing adjacent literals into single nodes where doing so preserves
// exact match semantics: Terminal/Terminal and Terminal/Char runs collapse into a
// single Terminal, and a singleton sequence unwraps to its only child.
func Sequence(kids ...*Node) *Node {
	flat := make([]*Node, 0, len(kids))
	for _, k := range kids {
		if k.Kind == KSequence {
			flat = append(flat, k.Kids...)
		} else {
			flat = append(flat, k)
		}
	}

	fused := make([]*Node, 0, len(flat))
	for _, k := range flat {
		if len(fused) > 0 && isPlainLiteral(fused[len(fused)-1]) && isPlainLiteral(k) {
			fused[len(fused)-1] = Term(literalText(fused[len(fused)-1]) + literalText(k))
			continue
		}
		fused = append(fused, k)
	}

	switch len(fused) {
	case 0:
		return emptyNode
	case 1:
		return fused[0]
	default:
		return &Node{Kind: KSequence, Kids: fused}
	}
}

func isPlainLiteral(n *Node) bool {
	return n.Kind == KTerminal || n.Kind == KChar
}

func literalText(n *Node) string {
	if n.Kind == KChar {
		return string([]byte{n.Byte})
	}
	return n.Text
}

// OrderedChoice builds a `a / b / ...` alternation, flattening nested
// choices, merging adjacent single-byte alternatives (Char/CharChoice) by
// set union, unwrapping singletons, and — when the whole alternation is
// plain case-sensitive literals numbering at least literalSetThreshold — specializing
// to the LiteralSet superoperator (see literalset.go and DESIGN.md for the
// correctness argument behind that specialization).
func OrderedChoice(kids ...*Node) *Node {
	flat := make([]*Node, 0, len(kids))
	for _, k := range kids {
		if k.Kind == KOrderedChoice {
			flat = append(flat, k.Kids...)
		} else {
			flat = append(flat, k)
		}
	}

	fused := make([]*Node, 0, len(flat))
	for _, k := range flat {
		if len(fused) > 0 && isByteAlt(fused[len(fused)-1]) && isByteAlt(k) {
			merged := setOf(fused[len(fused)-1]).union(setOf(k))
			fused[len(fused)-1] = CharSet(merged)
			continue
		}
		fused = append(fused, k)
	}

	if lit := tryLiteralSet(fused); lit != nil {
		return lit
	}

	switch len(fused) {
	case 0:
		return &Node{Kind: KOrderedChoice}
	case 1:
		return fused[0]
	default:
		return &Node{Kind: KOrderedChoice, Kids: fused}
	}
}

func isByteAlt(n *Node) bool {
	return n.Kind == KChar || n.Kind == KCharChoice
}

func setOf(n *Node) *byteSet {
	if n.Kind == KChar {
		s := newByteSet()
		s.add(n.Byte)
		return s
	}
	return n.Set
}

// tryLiteralSet returns a LiteralSet node when every alternative is a plain
// Terminal/Char and the count clears literalSetThreshold, else nil.
func tryLiteralSet(kids []*Node) *Node {
	if len(kids) < literalSetThreshold {
		return nil
	}
	lits := make([]string, len(kids))
	for i, k := range kids {
		if !isPlainLiteral(k) {
			return nil
		}
		lits[i] = literalText(k)
	}
	return &Node{Kind: KLiteralSet, Literals: lits, lits: &literalMatcher{}}
}

// GreedyRep builds `a*`. Char/CharChoice/Any/AnyRune specialize to the
// superoperator forms for speed; wrapping an already-nullable repetition or
// option is a construction error, since it could never terminate.
func GreedyRep(kid *Node) *Node {
	switch kid.Kind {
	case KGreedyRep, KGreedyRepChar, KGreedyRepSet, KGreedyAny, KOption:
		panic(newConstructionError("cannot repeat a pattern that already matches empty: %s", Sprint(kid)))
	case KChar:
		return &Node{Kind: KGreedyRepChar, Byte: kid.Byte}
	case KCharChoice:
		return &Node{Kind: KGreedyRepSet, Set: kid.Set}
	case KAny, KAnyRune:
		return &Node{Kind: KGreedyAny}
	default:
		return &Node{Kind: KGreedyRep, Kid: kid}
	}
}

// GreedyPlus builds `a+`, defined as `(a, a*)`.
func GreedyPlus(kid *Node) *Node {
	return Sequence(kid, GreedyRep(kid))
}

// Option builds `a?`. If the child already matches empty (it is itself
// optional or greedy), it is returned unchanged per the idempotence
// invariant `(a*)? == a*`, `(a?)? == a?`.
func Option(kid *Node) *Node {
	switch kid.Kind {
	case KGreedyRep, KGreedyRepChar, KGreedyRepSet, KGreedyAny, KOption:
		return kid
	default:
		return &Node{Kind: KOption, Kid: kid}
	}
}

// AndPredicate builds `&a`, a zero-width lookahead.
func AndPredicate(kid *Node) *Node {
	return &Node{Kind: KAndPredicate, Kid: kid}
}

// NotPredicate builds `!a`, a zero-width negative lookahead.
func NotPredicate(kid *Node) *Node {
	return &Node{Kind: KNotPredicate, Kid: kid}
}

// Search builds `@a`, equivalent to `(!a .)* a` but executed directly by
// the engine as a single scan (see engine.go).
func Search(kid *Node) *Node {
	return &Node{Kind: KSearch, Kid: kid}
}
