package peg

import (
	"sync"

	"github.com/coregx/ahocorasick"
)

// literalMatcher accelerates a KLiteralSet node's "does any alternative
// match here" test with an Aho-Corasick automaton (github.com/coregx/ahocorasick,
// the same package used for large literal alternations in coregx-coregex's
// meta engine). The automaton is built lazily and once, since a compiled
// grammar may be shared across concurrent matches and most LiteralSet nodes
// are never exercised by a given input at all.
//
// Ordered choice requires the FIRST alternative in declaration order that
// matches at the cursor, not whichever one Aho-Corasick happens to report.
// The library's own tie-break behavior among overlapping patterns anchored
// at the same start is not part of its documented contract, so it is used
// here purely as a fast-reject prefilter: Find tells us whether ANY literal
// matches starting exactly at the cursor, and on a hit we still resolve the
// real answer with a linear declaration-order scan over all the literals.
// This keeps the automaton on the hot "nothing
// matches" path — the common case for a search-heavy grammar — while never
// trusting it for the actual ordered-choice answer.
type literalMatcher struct {
	once sync.Once
	auto *ahocorasick.Automaton
}

func (lm *literalMatcher) build(lits []string) {
	lm.once.Do(func() {
		builder := ahocorasick.NewBuilder()
		for _, lit := range lits {
			builder.AddPattern([]byte(lit))
		}
		auto, err := builder.Build()
		if err != nil {
			// Leave lm.auto nil: matchLiteralSet falls back to the plain
			// linear scan below, which is always correct on its own.
			return
		}
		lm.auto = auto
	})
}

// matchLiteralSet returns the byte length of the first (in declaration
// order) literal in n.Literals that occurs as a prefix of input[pos:], or
// -1 if none does.
func matchLiteralSet(n *Node, input string, pos int) int {
	n.lits.build(n.Literals)

	if n.lits.auto != nil {
		hay := []byte(input[pos:])
		if m := n.lits.auto.Find(hay, 0); m == nil || m.Start != 0 {
			return -1
		}
	}

	for _, lit := range n.Literals {
		if len(lit) <= len(input)-pos && input[pos:pos+len(lit)] == lit {
			return len(lit)
		}
	}
	return -1
}
