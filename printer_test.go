package peg

import "testing"

func TestSprintNonEmptyForSimpleNodes(t *testing.T) {
	data := []*Node{
		Char('a'),
		Term("hello"),
		CharSet(digitSet()),
		GreedyRep(Term("ab")),
		&Node{Kind: KGreedyRepChar, Byte: 'x'},
		Option(Term("ab")),
		AndPredicate(Term("x")),
		NotPredicate(Term("x")),
		Search(Term("x")),
		Sequence(Term("a"), Term("b")),
		OrderedChoice(Term("ab"), Term("cd")),
	}
	for _, n := range data {
		printed := Sprint(n)
		if printed == "" {
			t.Errorf("Sprint(%v) returned empty string", n.Kind)
		}
	}
}
