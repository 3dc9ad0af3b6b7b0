package peg

import "strings"

// String operations layer, built directly on the engine's
// match() rather than going through Grammar.Match: these run g.Start
// against arbitrary offsets of s under DefaultConfig, with a fresh
// matchState (and capture array) for every candidate offset a scanning
// operation (find, replace, split) tries.

// Match reports whether g matches s exactly from offset start to the end
// of s (an anchored full match), `match`.
func Match(g *Grammar, s string, start int) bool {
	st := newMatchState(s, DefaultConfig)
	n := match(g.Start, s, start, st)
	return n >= 0 && start+n == len(s)
}

// MatchLen returns the byte length g matches at s[start:], or -1 on
// failure.
func MatchLen(g *Grammar, s string, start int) int {
	st := newMatchState(s, DefaultConfig)
	return match(g.Start, s, start, st)
}

// Find returns the first offset i >= start where g matches s[i:] with
// length >= 0, or -1 if none exists.
func Find(g *Grammar, s string, start int) int {
	for i := start; i <= len(s); i++ {
		if MatchLen(g, s, i) >= 0 {
			return i
		}
	}
	return -1
}

// Contains reports whether g matches somewhere in s; per the testable
// invariant `find(s, p) >= 0 iff contains(s, p)`, it is defined directly in
// terms of Find.
func Contains(g *Grammar, s string) bool {
	return Find(g, s, 0) >= 0
}

// StartsWith reports whether g matches at offset 0 of s (any length >= 0,
// not necessarily the whole string).
func StartsWith(g *Grammar, s string) bool {
	return MatchLen(g, s, 0) >= 0
}

// EndsWith reports whether some offset i has a match running exactly to
// the end of s.
func EndsWith(g *Grammar, s string) bool {
	for i := 0; i <= len(s); i++ {
		if n := MatchLen(g, s, i); n >= 0 && i+n == len(s) {
			return true
		}
	}
	return false
}

// Replace scans s left to right; at each position it tries g, and on a
// match of length k > 0 emits template with `$1`..`$9` expanded from the
// match's captures and `$#` from the whole matched text, and advances by k. On no match, or a
// zero-length match, it copies one byte unchanged and advances by 1 — this
// is what keeps the scan from looping forever on a pattern that can match
// empty.
func Replace(g *Grammar, s, template string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		st := newMatchState(s, DefaultConfig)
		n := match(g.Start, s, i, st)
		if n > 0 {
			b.WriteString(expandTemplate(template, s, i, n, st))
			i += n
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// Sub is one (pattern, replacement template) pair for ParallelReplace.
type Sub struct {
	Pattern *Grammar
	Repl    string
}

// ParallelReplace runs the same left-to-right scan as Replace, but at each
// position tries every sub in order and takes the first with a positive
// match length.
func ParallelReplace(s string, subs []Sub) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		matched := false
		for _, sub := range subs {
			st := newMatchState(s, DefaultConfig)
			n := match(sub.Pattern.Start, s, i, st)
			if n > 0 {
				b.WriteString(expandTemplate(sub.Repl, s, i, n, st))
				i += n
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// expandTemplate substitutes `$1`..`$9` with the corresponding capture
// (1-based) and `$#` with the overall matched text, leaving any other `$x`
// sequence (including an out-of-range index) unchanged.
func expandTemplate(template, s string, start, n int, st *matchState) string {
	var b strings.Builder
	for i := 0; i < len(template); i++ {
		if template[i] != '$' || i+1 >= len(template) {
			b.WriteByte(template[i])
			continue
		}
		next := template[i+1]
		switch {
		case next == '#':
			b.WriteString(s[start : start+n])
			i++
		case next >= '1' && next <= '9':
			idx := int(next - '1')
			if idx < st.ml && idx < len(st.matches) {
				b.WriteString(capturedText(s, st.matches[idx]))
			} else {
				b.WriteByte('$')
				b.WriteByte(next)
			}
			i++
		default:
			b.WriteByte('$')
		}
	}
	return b.String()
}

// Split yields the substrings of s separated by non-empty matches of sep; a
// zero-length separator match is ignored rather than producing an infinite
// sequence of empty pieces.
func Split(sep *Grammar, s string) []string {
	var out []string
	last := 0
	i := 0
	for i < len(s) {
		st := newMatchState(s, DefaultConfig)
		n := match(sep.Start, s, i, st)
		if n > 0 {
			out = append(out, s[last:i])
			i += n
			last = i
			continue
		}
		i++
	}
	out = append(out, s[last:])
	return out
}
