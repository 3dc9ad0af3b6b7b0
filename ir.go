package peg

// NodeKind tags the variant held by a Node. The matching engine dispatches
// on Kind with a single switch (see engine.go) rather than through per-kind
// interface methods: the node tree is a closed sum type and per-kind
// branches are hot code, so a tagged variant is used throughout instead of
// the visitor-style dispatch an inheritance-based design would reach for.
type NodeKind uint8

const (
	KEmpty NodeKind = iota
	KAny
	KAnyRune
	KNewLine
	KTerminal
	KTerminalIgnoreCase
	KTerminalIgnoreStyle
	KChar
	KCharChoice
	KNonTerminal
	KSequence
	KOrderedChoice
	KGreedyRep
	KGreedyRepChar
	KGreedyRepSet
	KGreedyAny
	KOption
	KAndPredicate
	KNotPredicate
	KCapture
	KBackRef
	KBackRefIgnoreCase
	KBackRefIgnoreStyle
	KSearch
	KLiteralSet // superoperator: ahocorasick-backed OrderedChoice of literals
	KRule       // parse-time only
	KList       // parse-time only
)

// MaxSubpatterns is the default compile-time number of numbered capture
// slots. Config.MaxSubpatterns may raise it for a particular match run,
// at the cost of a larger per-match capture array.
const MaxSubpatterns = 10

// Node is a single PEG IR node. It is a tagged variant: only the fields
// relevant to Kind are populated, the rest are left zero. Nodes are
// immutable once returned by a constructor (aside from NonTerminal.Rule,
// which is filled in exactly once when the referenced rule's body is
// parsed) so a compiled tree may be shared across concurrent matches.
type Node struct {
	Kind NodeKind

	// KTerminal, KTerminalIgnoreCase, KTerminalIgnoreStyle
	Text string

	// KChar
	Byte byte

	// KCharChoice, KGreedyRepSet: shared by reference with any
	// specialization derived from the same source set.
	Set *byteSet

	// KSequence, KOrderedChoice, KList: ordered children.
	Kids []*Node

	// KGreedyRep, KOption, KAndPredicate, KNotPredicate, KCapture,
	// KSearch: single child.
	Kid *Node

	// KNonTerminal
	Rule *NonTerminal

	// KRule: head identifier name (body lives in Rule.Rule once linked).
	RuleName string

	// KBackRef, KBackRefIgnoreCase, KBackRefIgnoreStyle: zero-based index.
	Index int

	// KCapture: the declaration-order number assigned during IR
	// construction (parser increments a counter). The engine allocates
	// slots at match time and does not read it (see capture.go).
	CaptureIndex int

	// KLiteralSet: the literal alternatives in original declaration order,
	// plus the lazily built Aho-Corasick automaton used to accelerate the
	// "none of these match" rejection path (see literalset.go).
	Literals []string
	lits     *literalMatcher
}

var (
	emptyNode = &Node{Kind: KEmpty}
	anyNode   = &Node{Kind: KAny}
	anyRune   = &Node{Kind: KAnyRune}
	newLine   = &Node{Kind: KNewLine}
)

// Empty matches the empty string.
func Empty() *Node { return emptyNode }

// Any matches any single byte other than the NUL sentinel.
func Any() *Node { return anyNode }

// AnyRune matches any single Unicode code point other than NUL.
func AnyRune() *Node { return anyRune }

// NewLine matches a line ending: CR, LF, or CRLF.
func NewLine() *Node { return newLine }

// Char constructs a single-byte literal. The zero byte is never a valid
// Char payload (it is the end-of-input sentinel); callers must not pass it.
func Char(b byte) *Node {
	return &Node{Kind: KChar, Byte: b}
}

// Term builds a literal byte-sequence pattern. A one-character string
// collapses to Char (the engine's fast path for single-byte literals).
func Term(text string) *Node {
	if len(text) == 0 {
		return emptyNode
	}
	if len(text) == 1 {
		return Char(text[0])
	}
	return &Node{Kind: KTerminal, Text: text}
}

// TermIgnoreCase builds a Unicode case-insensitive literal pattern.
func TermIgnoreCase(text string) *Node {
	if len(text) == 0 {
		return emptyNode
	}
	return &Node{Kind: KTerminalIgnoreCase, Text: text}
}

// TermIgnoreStyle builds a literal pattern that additionally ignores
// underscores on both sides of the comparison (see foldcase.go).
func TermIgnoreStyle(text string) *Node {
	if len(text) == 0 {
		return emptyNode
	}
	return &Node{Kind: KTerminalIgnoreStyle, Text: text}
}

// CharSet builds a membership pattern over a set of bytes. The set is
// defensively copied so the caller's byteSet mutations (if any) never leak
// into the compiled tree, but repetition specialization (GreedyRep in
// ir_combine.go) aliases the
// resulting node's Set directly by design, to avoid a second copy per
// specialization.
func CharSet(set *byteSet) *Node {
	if set.isEmpty() {
		return &Node{Kind: KOrderedChoice, Kids: nil} // never matches; see OrderedChoice([])
	}
	copied := *set
	return &Node{Kind: KCharChoice, Set: &copied}
}
