package peg

import (
	"strconv"
	"strings"
)

// Sprint renders n back into the textual PEG surface, using the
// canonical form a compiled grammar would produce — not necessarily the
// exact text it was parsed from, but structurally equivalent:
// Compile(Sprint(g.Start)) must parse back into IR with the same matching
// behavior. NonTerminal references print as their rule name; Sprint does
// not walk into NonTerminal.Rule, so a full grammar is rendered rule-by-rule
// via Print rather than by printing the start node alone.
func Sprint(n *Node) string {
	var b strings.Builder
	writeNode(&b, n, 0)
	return b.String()
}

// precedence levels, low to high: choice binds loosest, then sequence, then
// a prefixed/suffixed primary. writeNode parenthesizes a child whenever its
// own precedence is lower than the context it is printed in.
const (
	precChoice = iota
	precSeq
	precPrimary
)

func writeNode(b *strings.Builder, n *Node, ctx int) {
	switch n.Kind {
	case KEmpty:
		b.WriteString("''")
	case KAny:
		b.WriteString("_")
	case KAnyRune:
		b.WriteString(".")
	case KNewLine:
		b.WriteString(`\n`)
	case KTerminal:
		writeQuoted(b, n.Text, 0)
	case KTerminalIgnoreCase:
		writeQuoted(b, n.Text, 'i')
	case KTerminalIgnoreStyle:
		writeQuoted(b, n.Text, 'y')
	case KChar:
		writeQuoted(b, string([]byte{n.Byte}), 0)
	case KCharChoice:
		writeCharSet(b, n.Set)
	case KNonTerminal:
		b.WriteString(n.Rule.Name)
	case KSequence:
		writeJoined(b, n.Kids, " ", precSeq, ctx)
	case KOrderedChoice:
		writeJoined(b, n.Kids, " / ", precChoice, ctx)
	case KGreedyRep:
		writeParenIfNeeded(b, n.Kid, precPrimary)
		b.WriteString("*")
	case KGreedyRepChar:
		writeQuoted(b, string([]byte{n.Byte}), 0)
		b.WriteString("*")
	case KGreedyRepSet:
		writeCharSet(b, n.Set)
		b.WriteString("*")
	case KGreedyAny:
		b.WriteString("_*")
	case KOption:
		writeParenIfNeeded(b, n.Kid, precPrimary)
		b.WriteString("?")
	case KAndPredicate:
		b.WriteString("&")
		writeParenIfNeeded(b, n.Kid, precPrimary)
	case KNotPredicate:
		b.WriteString("!")
		writeParenIfNeeded(b, n.Kid, precPrimary)
	case KSearch:
		b.WriteString("@")
		writeParenIfNeeded(b, n.Kid, precPrimary)
	case KCapture:
		b.WriteString("{")
		writeNode(b, n.Kid, precChoice)
		b.WriteString("}")
	case KBackRef:
		b.WriteString("$" + strconv.Itoa(n.Index+1))
	case KBackRefIgnoreCase:
		b.WriteString("i$" + strconv.Itoa(n.Index+1))
	case KBackRefIgnoreStyle:
		b.WriteString("y$" + strconv.Itoa(n.Index+1))
	case KLiteralSet:
		parts := make([]string, len(n.Literals))
		for i, lit := range n.Literals {
			var sb strings.Builder
			writeQuoted(&sb, lit, 0)
			parts[i] = sb.String()
		}
		needsParen := ctx > precChoice && len(parts) > 1
		if needsParen {
			b.WriteString("(")
		}
		b.WriteString(strings.Join(parts, " / "))
		if needsParen {
			b.WriteString(")")
		}
	default:
		b.WriteString("<?>")
	}
}

func writeParenIfNeeded(b *strings.Builder, kid *Node, need int) {
	if nodePrecedence(kid) < need {
		b.WriteString("(")
		writeNode(b, kid, precChoice)
		b.WriteString(")")
		return
	}
	writeNode(b, kid, need)
}

func nodePrecedence(n *Node) int {
	switch n.Kind {
	case KSequence, KOrderedChoice:
		if len(n.Kids) > 1 {
			if n.Kind == KOrderedChoice {
				return precChoice
			}
			return precSeq
		}
	}
	return precPrimary
}

func writeJoined(b *strings.Builder, kids []*Node, sep string, own, ctx int) {
	needsParen := ctx > own && len(kids) > 1
	if needsParen {
		b.WriteString("(")
	}
	for i, k := range kids {
		if i > 0 {
			b.WriteString(sep)
		}
		writeNode(b, k, own)
	}
	if needsParen {
		b.WriteString(")")
	}
}

// writeQuoted renders a literal string with the escapes the lexer accepts,
// prefixed by its modifier letter (0 for none), matching the lexer's
// token-level modifier syntax.
func writeQuoted(b *strings.Builder, text string, mod byte) {
	if mod != 0 {
		b.WriteByte(mod)
	}
	b.WriteByte('\'')
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\l`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				b.WriteString(`\x` + hexByte(c))
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('\'')
}

func hexByte(b byte) string {
	const hex = "0123456789abcdef"
	return string([]byte{hex[b>>4], hex[b&0xf]})
}

// writeCharSet renders a byteSet as a `[...]` class, always in positive
// form: Print never emits `[^...]` since complement() materializes the full
// membership set and the printer has no way to tell a "declared negated"
// set apart from one that happens to contain the same bytes.
func writeCharSet(b *strings.Builder, set *byteSet) {
	b.WriteString("[")
	members := set.bytes()
	for i := 0; i < len(members); {
		lo := members[i]
		hi := lo
		j := i + 1
		for j < len(members) && members[j] == hi+1 {
			hi = members[j]
			j++
		}
		writeClassByte(b, lo)
		if hi == lo+1 {
			writeClassByte(b, hi)
		} else if hi > lo+1 {
			b.WriteString("-")
			writeClassByte(b, hi)
		}
		i = j
	}
	b.WriteString("]")
}

func writeClassByte(b *strings.Builder, c byte) {
	switch c {
	case ']', '^', '-', '\\':
		b.WriteByte('\\')
		b.WriteByte(c)
	default:
		if c < 0x20 || c == 0x7f {
			b.WriteString(`\x` + hexByte(c))
		} else {
			b.WriteByte(c)
		}
	}
}

// Print renders a full grammar back to textual PEG source, one rule per
// line in declaration order. A grammar without rules (compiled from a bare
// expression, or built directly around a Start node) renders as its start
// expression on a single line.
func Print(g *Grammar) string {
	if g.rules == nil || len(g.rules.order) == 0 {
		return Sprint(g.Start) + "\n"
	}
	var b strings.Builder
	for _, rec := range g.rules.order {
		b.WriteString(rec.Name)
		b.WriteString(" <- ")
		b.WriteString(Sprint(rec.Rule))
		b.WriteString("\n")
	}
	return b.String()
}
