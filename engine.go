package peg

import "unicode/utf8"

// matchState carries the per-invocation mutable state threaded through a
// call to match: the capture slot array and its live count (ml), plus a
// recursion-depth counter enforcing Config.CallstackLimit. Node trees are
// read-only and may be shared across concurrent matches; a matchState
// belongs to exactly one of them.
type matchState struct {
	input   string
	cfg     Config
	matches []capSlot
	ml      int
	depth   int
}

func newMatchState(input string, cfg Config) *matchState {
	n := cfg.MaxSubpatterns
	if n <= 0 {
		n = MaxSubpatterns
	}
	return &matchState{input: input, cfg: cfg, matches: make([]capSlot, n)}
}

// match implements `m(input, pattern, start, closure) -> Int`:
// the byte length of the match at start (>= 0), or -1 on failure. It
// recurses natively on the Go call stack rather than through an explicit
// continuation stack; Go's dynamically growing goroutine stacks make native
// recursion safe in practice, and Config.CallstackLimit still bounds a
// pathological grammar's recursion depth, by panicking with
// errCallstackOverflow, recovered at the public API boundary in grammar.go.
func match(n *Node, input string, start int, st *matchState) int {
	if st.cfg.CallstackLimit > 0 {
		st.depth++
		if st.depth > st.cfg.CallstackLimit {
			panic(errCallstackOverflow)
		}
		defer func() { st.depth-- }()
	}

	switch n.Kind {
	case KEmpty:
		return 0

	case KAny:
		if start < len(input) {
			return 1
		}
		return -1

	case KAnyRune:
		if !st.cfg.Unicode {
			if start < len(input) {
				return 1
			}
			return -1
		}
		if start >= len(input) {
			return -1
		}
		_, size := utf8.DecodeRuneInString(input[start:])
		return size

	case KGreedyAny:
		return len(input) - start

	case KNewLine:
		return matchNewLine(input, start)

	case KTerminal:
		return matchTerminal(n.Text, input, start)

	case KTerminalIgnoreCase:
		return matchTerminalIgnoreCase(n.Text, input, start, false)

	case KTerminalIgnoreStyle:
		return matchTerminalIgnoreCase(n.Text, input, start, true)

	case KChar:
		if start < len(input) && input[start] == n.Byte {
			return 1
		}
		return -1

	case KCharChoice:
		if start < len(input) && n.Set.has(input[start]) {
			return 1
		}
		return -1

	case KNonTerminal:
		oldMl := st.ml
		r := match(n.Rule.Rule, input, start, st)
		if r < 0 {
			st.ml = oldMl
		}
		return r

	case KSequence:
		return matchSequence(n, input, start, st)

	case KOrderedChoice:
		return matchOrderedChoice(n, input, start, st)

	case KSearch:
		return matchSearch(n, input, start, st)

	case KGreedyRep:
		return matchGreedyRep(n.Kid, input, start, st)

	case KGreedyRepChar:
		k := 0
		for start+k < len(input) && input[start+k] == n.Byte {
			k++
		}
		return k

	case KGreedyRepSet:
		k := 0
		for start+k < len(input) && n.Set.has(input[start+k]) {
			k++
		}
		return k

	case KOption:
		if r := match(n.Kid, input, start, st); r >= 0 {
			return r
		}
		return 0

	case KAndPredicate:
		oldMl := st.ml
		r := match(n.Kid, input, start, st)
		st.ml = oldMl
		if r >= 0 {
			return 0
		}
		return -1

	case KNotPredicate:
		oldMl := st.ml
		r := match(n.Kid, input, start, st)
		st.ml = oldMl
		if r < 0 {
			return 0
		}
		return -1

	case KCapture:
		return matchCapture(n, input, start, st)

	case KBackRef:
		return matchBackRef(n, input, start, st, backRefPlain)

	case KBackRefIgnoreCase:
		return matchBackRef(n, input, start, st, backRefIgnoreCase)

	case KBackRefIgnoreStyle:
		return matchBackRef(n, input, start, st, backRefIgnoreStyle)

	case KLiteralSet:
		return matchLiteralSet(n, input, start)

	default:
		panic(errCorner)
	}
}

func matchNewLine(input string, start int) int {
	if start >= len(input) {
		return -1
	}
	switch input[start] {
	case '\n':
		return 1
	case '\r':
		if start+1 < len(input) && input[start+1] == '\n' {
			return 2
		}
		return 1
	default:
		return -1
	}
}

func matchTerminal(term, input string, start int) int {
	if start+len(term) > len(input) {
		return -1
	}
	if input[start:start+len(term)] == term {
		return len(term)
	}
	return -1
}

// matchTerminalIgnoreCase implements both TerminalIgnoreCase (style=false)
// and TerminalIgnoreStyle (style=true): a rune-by-rune walk of term against
// input, each pair compared after Unicode lowercasing, each cursor advanced
// independently by its own rune's byte width. In style mode,
// every `_` byte is skipped in both texts before each comparison.
func matchTerminalIgnoreCase(term, input string, start int, style bool) int {
	ti, ii := 0, start
	for ti < len(term) {
		if style {
			ti = skipUnderscores(term, ti)
			if ti >= len(term) {
				break
			}
			ii = skipUnderscores(input, ii)
		}
		if ii >= len(input) {
			return -1
		}
		tr, tn := utf8.DecodeRuneInString(term[ti:])
		ir, in := utf8.DecodeRuneInString(input[ii:])
		if runeToLower(tr) != runeToLower(ir) {
			return -1
		}
		ti += tn
		ii += in
	}
	return ii - start
}

func matchSequence(n *Node, input string, start int, st *matchState) int {
	oldMl := st.ml
	total := 0
	for _, kid := range n.Kids {
		r := match(kid, input, start+total, st)
		if r < 0 {
			st.ml = oldMl
			return -1
		}
		total += r
	}
	return total
}

func matchOrderedChoice(n *Node, input string, start int, st *matchState) int {
	oldMl := st.ml
	for _, kid := range n.Kids {
		if r := match(kid, input, start, st); r >= 0 {
			return r
		}
		st.ml = oldMl
	}
	return -1
}

// matchSearch implements `@a`, trying a at every offset from start to
// len(input) inclusive until one succeeds, returning the skipped prefix
// plus the match length; a full scan failure rewinds captures and returns
// -1.
func matchSearch(n *Node, input string, start int, st *matchState) int {
	oldMl := st.ml
	for k := 0; start+k <= len(input); k++ {
		if r := match(n.Kid, input, start+k, st); r >= 0 {
			return k + r
		}
		st.ml = oldMl
	}
	return -1
}

// matchGreedyRep implements `a*`: loop while a returns a strictly positive
// length; a returning 0 or -1 terminates the loop with the length
// accumulated so far. This is the standard PEG guard against zero-width
// infinite repetition, already enough on its own since every further
// iteration must consume input that is bounded by len(input). LoopLimit,
// when set, caps the iteration count anyway as an extra belt against a
// pathological grammar doing expensive no-progress work per iteration.
func matchGreedyRep(kid *Node, input string, start int, st *matchState) int {
	total := 0
	for iter := 0; st.cfg.LoopLimit <= 0 || iter < st.cfg.LoopLimit; iter++ {
		oldMl := st.ml
		r := match(kid, input, start+total, st)
		if r < 0 {
			st.ml = oldMl
			break
		}
		if r == 0 {
			break
		}
		total += r
	}
	return total
}

// matchCapture implements `{a}`: the slot is reserved on entry (idx = ml,
// ml++) rather than on success, so nested and sibling captures keep a
// deterministic numbering along a path that ultimately backtracks. A slot
// beyond the configured MaxSubpatterns is silently dropped rather than written.
func matchCapture(n *Node, input string, start int, st *matchState) int {
	idx := st.ml
	st.ml++
	r := match(n.Kid, input, start, st)
	if r < 0 {
		st.ml = idx
		return -1
	}
	if idx < len(st.matches) {
		st.matches[idx] = capSlot{first: start, last: start + r - 1}
	}
	return r
}

type backRefMode int

const (
	backRefPlain backRefMode = iota
	backRefIgnoreCase
	backRefIgnoreStyle
)

// matchBackRef implements `$n`/`$in`/`$yn`: index i must already have a
// completed capture (i < ml); the captured substring is then matched as an
// ephemeral literal against the cursor, under the corresponding case/style
// rule.
func matchBackRef(n *Node, input string, start int, st *matchState, mode backRefMode) int {
	i := n.Index
	if i < 0 || i >= st.ml || i >= len(st.matches) {
		return -1
	}
	text := capturedText(st.input, st.matches[i])
	switch mode {
	case backRefIgnoreCase:
		return matchTerminalIgnoreCase(text, input, start, false)
	case backRefIgnoreStyle:
		return matchTerminalIgnoreCase(text, input, start, true)
	default:
		return matchTerminal(text, input, start)
	}
}

// capturedText re-derives the captured substring from a slot's inclusive
// (first,last) pair, where last == first-1 denotes a zero-length capture.
func capturedText(input string, slot capSlot) string {
	if slot.last < slot.first {
		return input[slot.first:slot.first]
	}
	return input[slot.first : slot.last+1]
}
