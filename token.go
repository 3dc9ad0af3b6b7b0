package peg

// tokenKind tags a single lexical token of the textual PEG surface.
type tokenKind uint8

const (
	tkEOF tokenKind = iota
	tkIdent
	tkArrow  // <-
	tkSlash  // /
	tkAmp    // &
	tkBang   // !
	tkAt     // @
	tkQMark  // ?
	tkStar   // *
	tkPlus   // +
	tkLParen // (
	tkRParen // )
	tkLBrace // {
	tkRBrace // }
	tkDot    // .
	tkWild   // _
	tkString
	tkCharSet
	tkBuiltin
	tkEscaped
	tkBackRef
	tkInvalid
)

// token is one lexed unit plus whatever payload its kind carries. mod holds
// the modifier ('i', 'y', 'v', or 0 for none) attached to a tkString or
// tkBackRef by the lexer's modifier-prefix rule.
type token struct {
	kind   tokenKind
	offset int

	// text holds: tkIdent's name, tkString/tkEscaped's decoded bytes,
	// tkBuiltin's name, or tkInvalid's diagnostic message.
	text string
	set  *byteSet // tkCharSet
	n    int      // tkBackRef: the decimal index
	mod  byte     // tkString, tkBackRef: 'i'/'y'/'v'/0
}

func (k tokenKind) String() string {
	switch k {
	case tkEOF:
		return "end of input"
	case tkIdent:
		return "identifier"
	case tkArrow:
		return "'<-'"
	case tkSlash:
		return "'/'"
	case tkAmp:
		return "'&'"
	case tkBang:
		return "'!'"
	case tkAt:
		return "'@'"
	case tkQMark:
		return "'?'"
	case tkStar:
		return "'*'"
	case tkPlus:
		return "'+'"
	case tkLParen:
		return "'('"
	case tkRParen:
		return "')'"
	case tkLBrace:
		return "'{'"
	case tkRBrace:
		return "'}'"
	case tkDot:
		return "'.'"
	case tkWild:
		return "'_'"
	case tkString:
		return "string"
	case tkCharSet:
		return "character class"
	case tkBuiltin:
		return "built-in escape"
	case tkEscaped:
		return "escaped byte"
	case tkBackRef:
		return "back-reference"
	default:
		return "invalid token"
	}
}
