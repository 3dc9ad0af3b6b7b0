package peg

// parser is a recursive-descent parser over the token stream produced by
// lexer, building IR directly via the combinator constructors rather than
// an intermediate AST. fileMod holds the grammar-wide default
// modifier set by a leading `\i`/`\y` builtin before the first rule; capCount
// tracks how many `{...}` captures have been parsed so far, for back-reference
// range checking.
type parser struct {
	file     string
	lx       *lexer
	tok      token
	rules    *nonTerminalTable
	capCount int
	fileMod  byte
}

func newParser(file, src string) *parser {
	return &parser{file: file, lx: newLexer(file, src), rules: newNonTerminalTable()}
}

// parseGrammar parses `grammar ::= [globalModifier] (rule)+ | expr` and
// returns the start symbol's IR (the body of the first declared rule, or
// the bare expression) along with the linked rule table.
func (p *parser) parseGrammar() (*Node, *nonTerminalTable, error) {
	p.advance()
	p.consumeGlobalModifier()

	var start *Node
	if p.tok.kind == tkIdent && p.peekIsArrow() {
		for p.tok.kind == tkIdent {
			if err := p.parseRule(); err != nil {
				return nil, nil, err
			}
		}
		if len(p.rules.order) == 0 {
			return nil, nil, p.errorf("grammar has no rules")
		}
		start = p.rules.order[0].Rule
	} else {
		n, err := p.parseExpr()
		if err != nil {
			return nil, nil, err
		}
		start = n
	}

	if p.tok.kind != tkEOF {
		return nil, nil, p.errorf("unexpected %s", p.tok.kind)
	}
	if err := p.rules.checkDeclaredUsed(p.file); err != nil {
		return nil, nil, err
	}
	return start, p.rules, nil
}

func (p *parser) advance() {
	p.tok = p.lx.next()
}

// peekIsArrow looks one token past the current one without consuming it;
// this is the lexer's single permitted two-token look-ahead, used both to
// tell a rule head `ident <-` from a non-terminal reference and to know
// when a sequence inside a rule body has run into the next rule's head.
func (p *parser) peekIsArrow() bool {
	saved := p.lx.at
	t := p.lx.next()
	p.lx.at = saved
	return t.kind == tkArrow
}

func (p *parser) consumeGlobalModifier() {
	if p.tok.kind == tkBuiltin && (p.tok.text == "i" || p.tok.text == "y") {
		p.fileMod = p.tok.text[0]
		p.advance()
	}
}

func (p *parser) parseRule() error {
	nameTok := p.tok
	rec := p.rules.lookupOrCreate(nameTok.text, p.lx.pos(nameTok.offset))
	if rec.Declared() {
		return p.errorAt(nameTok.offset, "rule %q is defined more than once", nameTok.text)
	}

	p.advance() // consume identifier
	if p.tok.kind != tkArrow {
		return p.errorf("expected '<-'")
	}
	p.advance() // consume '<-'

	body, err := p.parseExpr()
	if err != nil {
		return err
	}
	rec.Rule = body
	rec.markDeclared()
	return nil
}

// parseExpr implements `expr ::= seq ('/' seq)*`.
func (p *parser) parseExpr() (*Node, error) {
	first, err := p.parseSeq()
	if err != nil {
		return nil, err
	}
	choices := []*Node{first}
	for p.tok.kind == tkSlash {
		p.advance()
		n, err := p.parseSeq()
		if err != nil {
			return nil, err
		}
		choices = append(choices, n)
	}
	if len(choices) == 1 {
		return choices[0], nil
	}
	return OrderedChoice(choices...), nil
}

// parseSeq implements `seq ::= primary+` (implicit concatenation).
func (p *parser) parseSeq() (*Node, error) {
	var kids []*Node
	for p.startsPrimary() {
		n, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		kids = append(kids, n)
	}
	if len(kids) == 0 {
		return nil, p.errorf("expected a pattern, found %s", p.tok.kind)
	}
	return Sequence(kids...), nil
}

// startsPrimary reports whether the current token can begin a primary. An
// identifier only counts if it is NOT the head of the next rule (`ident
// <-`), which is how a rule body's sequence knows to stop.
func (p *parser) startsPrimary() bool {
	switch p.tok.kind {
	case tkAmp, tkBang, tkAt:
		return true
	case tkIdent:
		return !p.peekIsArrow()
	case tkString, tkCharSet, tkLParen, tkLBrace, tkDot, tkWild, tkBuiltin, tkEscaped, tkBackRef:
		return true
	case tkInvalid:
		// Always dives into parseAtom rather than being silently treated as
		// "no primary here": that is what surfaces the lexer's specific
		// diagnostic (e.g. "unterminated string") instead of a generic
		// "expected a pattern" message.
		return true
	default:
		return false
	}
}

// parsePrimary implements `primary ::= prefix? atom suffix*`.
func (p *parser) parsePrimary() (*Node, error) {
	prefix := tkEOF
	switch p.tok.kind {
	case tkAmp, tkBang, tkAt:
		prefix = p.tok.kind
		p.advance()
	}

	n, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	for {
		switch p.tok.kind {
		case tkQMark:
			p.advance()
			n = Option(n)
			continue
		case tkStar:
			p.advance()
			n, err = p.applyGreedyRep(n)
			if err != nil {
				return nil, err
			}
			continue
		case tkPlus:
			p.advance()
			n, err = p.applyGreedyPlus(n)
			if err != nil {
				return nil, err
			}
			continue
		}
		break
	}

	switch prefix {
	case tkAmp:
		n = AndPredicate(n)
	case tkBang:
		n = NotPredicate(n)
	case tkAt:
		n = Search(n)
	}
	return n, nil
}

// applyGreedyRep/applyGreedyPlus convert the programmatic ConstructionError
// panic raised by an illegal `**`/`*?`-style nesting into a parser error,
// so a textual grammar reports it the same way GrammarError reports any
// other compile-time mistake.
func (p *parser) applyGreedyRep(n *Node) (result *Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ce, ok := r.(*ConstructionError); ok {
				err = p.errorf("%s", ce.Msg)
				return
			}
			panic(r)
		}
	}()
	return GreedyRep(n), nil
}

func (p *parser) applyGreedyPlus(n *Node) (result *Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ce, ok := r.(*ConstructionError); ok {
				err = p.errorf("%s", ce.Msg)
				return
			}
			panic(r)
		}
	}()
	return GreedyPlus(n), nil
}

// parseAtom implements the `atom` production.
func (p *parser) parseAtom() (*Node, error) {
	tok := p.tok
	switch tok.kind {
	case tkIdent:
		p.advance()
		rec := p.rules.lookupOrCreate(tok.text, p.lx.pos(tok.offset))
		return NonTerminalNode(rec), nil

	case tkString:
		p.advance()
		return p.buildTerminal(tok.text, tok.mod), nil

	case tkCharSet:
		p.advance()
		return CharSet(tok.set), nil

	case tkLParen:
		p.advance()
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tkRParen {
			return nil, p.errorf("expected ')'")
		}
		p.advance()
		return n, nil

	case tkLBrace:
		p.advance()
		idx := p.capCount
		p.capCount++
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tkRBrace {
			return nil, p.errorf("expected '}'")
		}
		p.advance()
		return Capture(idx, n), nil

	case tkDot:
		p.advance()
		return AnyRune(), nil

	case tkWild:
		p.advance()
		return Any(), nil

	case tkBuiltin:
		p.advance()
		return p.resolveBuiltin(tok)

	case tkEscaped:
		p.advance()
		return Term(tok.text), nil

	case tkBackRef:
		p.advance()
		if tok.n < 1 || tok.n > p.capCount {
			return nil, p.errorAt(tok.offset,
				"back-reference $%d out of range (%d capture(s) seen so far)", tok.n, p.capCount)
		}
		return p.buildBackRef(tok.n, tok.mod), nil

	case tkInvalid:
		return nil, p.errorAt(tok.offset, "%s", tok.text)

	default:
		return nil, p.errorAt(tok.offset, "unexpected %s", tok.kind)
	}
}

func (p *parser) effectiveMod(mod byte) byte {
	if mod != 0 {
		return mod
	}
	return p.fileMod
}

func (p *parser) buildTerminal(text string, mod byte) *Node {
	switch p.effectiveMod(mod) {
	case 'i':
		return TermIgnoreCase(text)
	case 'y':
		return TermIgnoreStyle(text)
	default:
		return Term(text)
	}
}

func (p *parser) buildBackRef(n int, mod byte) *Node {
	switch p.effectiveMod(mod) {
	case 'i':
		return BackRefIgnoreCase(n)
	case 'y':
		return BackRefIgnoreStyle(n)
	default:
		return BackRef(n)
	}
}

// resolveBuiltin maps a `\ident` builtin name to its IR. The
// names "i" and "y" are deliberately absent: they are reserved for the
// grammar-wide modifier consumed by consumeGlobalModifier, and are an
// unknown built-in anywhere else.
func (p *parser) resolveBuiltin(tok token) (*Node, error) {
	switch tok.text {
	case "n":
		return NewLine(), nil
	case "d":
		return CharSet(digitSet()), nil
	case "D":
		return CharSet(digitSet().complement()), nil
	case "s":
		return CharSet(whitespaceSet()), nil
	case "S":
		return CharSet(whitespaceSet().complement()), nil
	case "w":
		return CharSet(identStartSet()), nil
	case "W":
		return CharSet(identStartSet().complement()), nil
	case "ident":
		return Sequence(CharSet(identStartSet()), GreedyRep(CharSet(identContSet()))), nil
	default:
		return nil, p.errorAt(tok.offset, "unknown built-in \\%s", tok.text)
	}
}

func (p *parser) errorf(format string, v ...interface{}) *GrammarError {
	return p.errorAt(p.tok.offset, format, v...)
}

func (p *parser) errorAt(offset int, format string, v ...interface{}) *GrammarError {
	return newGrammarError(p.file, p.lx.pos(offset), format, v...)
}
