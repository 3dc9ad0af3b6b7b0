package peg

import "testing"

// Scenarios from the testable properties table: compile a grammar, run it
// on one input, check the outcome.
func TestScenarios(t *testing.T) {
	data := []struct {
		name   string
		src    string
		text   string
		ok     bool
		n      int
		caps   []string
	}{
		{
			name: "search",
			src:  `start <- '(' @ ')'`,
			text: "(a b c)",
			ok:   true,
			n:    7,
		},
		{
			name: "style-insensitive match",
			src:  `\y start <- 'while'`,
			text: "W_HI_Le",
			ok:   true,
			n:    7,
		},
		{
			name: "style-insensitive no match (truncated)",
			src:  `\y start <- 'while'`,
			text: "W_HI_L",
			ok:   false,
		},
		{
			name: "verbatim overrides style",
			src:  `\y start <- v'while'`,
			text: "W_HI_Le",
			ok:   false,
		},
		{
			name: "digit run full match",
			src:  `start <- \d+`,
			text: "0158787",
			ok:   true,
			n:    7,
		},
		{
			name: "ident, whitespace, digits",
			src:  `start <- \w+ \s+ \d+`,
			text: "ABC 0232",
			ok:   true,
			n:    8,
		},
		{
			name: "ordered choice with capture, first alt fails",
			src:  `start <- {'a'}'bc' 'xyz' / {\ident}`,
			text: "abc",
			ok:   true,
			n:    3,
			caps: []string{"abc"},
		},
		{
			name: "ordered choice, plus vs sequence alternative",
			src:  `start <- 'aa' !. / ({'a'})+`,
			text: "aaaaaa",
			ok:   true,
			n:    6,
			caps: []string{"a"},
		},
		{
			name: "multi-rule grammar",
			src:  "S <- A B / C D\nA <- 'a'+\nB <- 'b'+\nC <- 'c'+\nD <- 'd'+\n",
			text: "cccccdddddd",
			ok:   true,
			n:    11,
		},
	}

	for _, d := range data {
		d := d
		t.Run(d.name, func(t *testing.T) {
			g, err := Compile(d.src)
			if err != nil {
				t.Fatalf("Compile(%q) error: %v", d.src, err)
			}
			r, err := g.Match(d.text)
			if err != nil {
				t.Fatalf("Match(%q) error: %v", d.text, err)
			}
			if r.Ok != d.ok {
				t.Fatalf("Match(%q).Ok = %t, want %t", d.text, r.Ok, d.ok)
			}
			if !d.ok {
				return
			}
			if r.N != d.n {
				t.Errorf("Match(%q).N = %d, want %d", d.text, r.N, d.n)
			}
			if d.caps != nil {
				if len(r.Captures) < len(d.caps) {
					t.Fatalf("Match(%q).Captures = %v, want prefix %v", d.text, r.Captures, d.caps)
				}
				for i, want := range d.caps {
					if r.Captures[i] != want {
						t.Errorf("Match(%q).Captures[%d] = %q, want %q", d.text, i, r.Captures[i], want)
					}
				}
			}
		})
	}
}

func TestFindScenario(t *testing.T) {
	g, err := Compile(`start <- 'abc'`)
	if err != nil {
		t.Fatal(err)
	}
	got := Find(g, "_____abc_______", 0)
	if got != 5 {
		t.Errorf("Find = %d, want 5", got)
	}
}

func TestReplaceScenario(t *testing.T) {
	g, err := Compile(`start <- {\ident} '=' {\ident}`)
	if err != nil {
		t.Fatal(err)
	}
	got := Replace(g, "var1=key; var2=key2", "$1<-$2$2")
	want := "var1<-keykey; var2<-key2key2"
	if got != want {
		t.Errorf("Replace = %q, want %q", got, want)
	}
}

func TestSplitScenario(t *testing.T) {
	g, err := Compile(`start <- \d+`)
	if err != nil {
		t.Fatal(err)
	}
	got := Split(g, "00232this02939is39an22example111")
	want := []string{"", "this", "is", "an", "example", ""}
	if len(got) != len(want) {
		t.Fatalf("Split = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Split[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// Predicates (&/!) must not consume input or let inner captures survive.
func TestPredicatesDoNotConsumeOrCapture(t *testing.T) {
	g, err := Compile(`start <- &{'a'} {'a'}`)
	if err != nil {
		t.Fatal(err)
	}
	r, err := g.Match("a")
	if err != nil {
		t.Fatal(err)
	}
	if !r.Ok || r.N != 1 {
		t.Fatalf("Match = %+v", r)
	}
	if len(r.Captures) != 1 || r.Captures[0] != "a" {
		t.Fatalf("Captures = %v, want a single capture \"a\" (the predicate's capture must not survive)", r.Captures)
	}
}

// Option/GreedyRep nesting over an already-nullable node is idempotent.
func TestIdempotence(t *testing.T) {
	a := Term("ab") // a two-byte literal: GreedyRep(a) stays the general KGreedyRep form
	rep := GreedyRep(a)
	if Option(rep) != rep {
		t.Errorf("Option(a*) should return a* unchanged")
	}
	opt := Option(a)
	if Option(opt) != opt {
		t.Errorf("Option(a?) should return a? unchanged")
	}
}

func TestIdempotenceRepeatPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("GreedyRep(a*) should panic: a repetition can never fail to advance its repeated child")
		}
	}()
	GreedyRep(GreedyRep(Term("ab")))
}

// Find and Contains must always agree on whether p occurs in s.
func TestFindContainsAgree(t *testing.T) {
	g, err := Compile(`start <- 'needle'`)
	if err != nil {
		t.Fatal(err)
	}
	for _, text := range []string{"a needle in a haystack", "nothing here"} {
		got := Find(g, text, 0) >= 0
		if got != Contains(g, text) {
			t.Errorf("Find/Contains disagree on %q", text)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	src := "start <- 'a' 'b'* [0-9]+ / {\\w+}"
	g, err := Compile(src)
	if err != nil {
		t.Fatal(err)
	}
	printed := Print(g)
	g2, err := Compile(printed)
	if err != nil {
		t.Fatalf("re-compiling printed grammar: %v\nprinted:\n%s", err, printed)
	}
	for _, text := range []string{"ab09", "abbb123", "hello"} {
		r1, _ := g.Match(text)
		r2, _ := g2.Match(text)
		if r1.Ok != r2.Ok || r1.N != r2.N {
			t.Errorf("round-trip mismatch on %q: %+v vs %+v", text, r1, r2)
		}
	}
}
