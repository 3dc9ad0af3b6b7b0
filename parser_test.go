package peg

import (
	"errors"
	"testing"
)

func TestCompileErrors(t *testing.T) {
	data := []struct {
		name string
		src  string
	}{
		{"redefined rule", "a <- 'x'\na <- 'y'\n"},
		{"unused rule", "a <- 'x' b\nb <- 'y'\nc <- 'z'\n"},
		{"undeclared rule", "a <- b\n"},
		{"unknown builtin", `a <- \bogus`},
		{"unterminated string", `a <- 'x`},
		{"backref out of range", `a <- 'x' $1`},
		{"empty sequence", `a <- ()`},
	}
	for _, d := range data {
		d := d
		t.Run(d.name, func(t *testing.T) {
			_, err := Compile(d.src)
			if err == nil {
				t.Fatalf("Compile(%q) succeeded, want error", d.src)
			}
			var gerr *GrammarError
			if !errors.As(err, &gerr) {
				t.Errorf("error %v is not a *GrammarError", err)
			}
		})
	}
}

func TestCompileValidGrammars(t *testing.T) {
	data := []string{
		`a <- 'x' / 'y'`,
		"a <- b\nb <- 'x'\n",
		`a <- [a-z]+ [0-9]*`,
		`a <- \n`,
		`a <- {'x' 'y'} $1`,
		`a <- &'x' !'y' .`,
	}
	for _, src := range data {
		if _, err := Compile(src); err != nil {
			t.Errorf("Compile(%q) failed: %v", src, err)
		}
	}
}

func TestGreedyRepConstructionError(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		var cerr *ConstructionError
		if !errors.As(r.(error), &cerr) {
			t.Errorf("panic value %v is not a *ConstructionError", r)
		}
	}()
	GreedyRep(GreedyRep(Term("ab")))
}

func TestModifierOverride(t *testing.T) {
	// \y sets a file-scoped style-insensitive default; v'while' forces a
	// plain Terminal regardless, so it must NOT match the mixed-style input
	// that the bare \y-defaulted 'while' (tested via TestScenarios) does.
	g, err := Compile("\\y\na <- v'while'\n")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	r, err := g.Match("W_HI_Le")
	if err != nil {
		t.Fatal(err)
	}
	if r.Ok {
		t.Errorf("v'while' should ignore the file-scoped \\y default and fail to match %q", "W_HI_Le")
	}
}
