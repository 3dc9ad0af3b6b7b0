package pegutil

import (
	"testing"

	"github.com/pegc/pegc"
)

func fullMatch(t *testing.T, node *peg.Node, text string) bool {
	t.Helper()
	g := &peg.Grammar{Start: node}
	return g.IsFullMatch(text)
}

func TestPresetFullMatch(t *testing.T) {
	data := []struct {
		name string
		node *peg.Node
		text string
		full bool
	}{
		{"Ident", Ident, "hello_world2", true},
		{"Ident", Ident, "2bad", false},
		{"Natural", Natural, "0012", true},
		{"Natural", Natural, "", false},
		{"Integer", Integer, "-42", true},
		{"Integer", Integer, "+7", true},
		{"Integer", Integer, "4.2", false},
		{"Float", Float, "3.14", true},
		{"Float", Float, "-2.5e-10", true},
		{"Float", Float, "5", false},
		{"Whitespace", Whitespace, " ", true},
		{"Whitespace", Whitespace, "x", false},
	}

	for _, d := range data {
		got := fullMatch(t, d.node, d.text)
		if got != d.full {
			t.Errorf("%s.IsFullMatch(%q) = %t, want %t", d.name, d.text, got, d.full)
		}
	}
}
