package sexpr

// Parser builds Sexp values from a token stream, with one token of
// lookahead.
type Parser struct {
	lexer   *Lexer
	lookPos *Token
}

// NewParser creates a parser reading from lexer.
func NewParser(lexer *Lexer) *Parser {
	return &Parser{lexer: lexer}
}

func (p *Parser) peek() (Token, error) {
	if p.lookPos == nil {
		t, err := p.lexer.Next()
		if err != nil {
			return Token{}, err
		}
		p.lookPos = &t
	}
	return *p.lookPos, nil
}

func (p *Parser) next() (Token, error) {
	t, err := p.peek()
	if err != nil {
		return Token{}, err
	}
	p.lookPos = nil
	return t, nil
}

// ParseOne parses a single top-level s-expression.
func (p *Parser) ParseOne() (Sexp, error) {
	tok, err := p.next()
	if err != nil {
		return Sexp{}, err
	}
	switch tok.Kind {
	case TokIdent:
		return Sexp{Kind: SexpIdent, Pos: tok.Pos, Ident: tok.Text}, nil
	case TokInt:
		return Sexp{Kind: SexpInt, Pos: tok.Pos, Int: tok.Int}, nil
	case TokLParen, TokLBracket:
		return p.parseList(tok)
	case TokEOF:
		return Sexp{}, newError(KindParseStructural, tok.Pos, "unexpected end of file")
	default:
		return Sexp{}, newError(KindParseStructural, tok.Pos, "unexpected token")
	}
}

func closingFor(open TokenKind) TokenKind {
	if open == TokLBracket {
		return TokRBracket
	}
	return TokRParen
}

func (p *Parser) parseList(open Token) (Sexp, error) {
	closeKind := closingFor(open.Kind)
	var elements []Sexp
	var tail *Sexp

	for {
		tok, err := p.peek()
		if err != nil {
			return Sexp{}, err
		}
		if tok.Kind == closeKind {
			p.next() //nolint:errcheck // peek already succeeded; next cannot fail here
			break
		}
		if tok.Kind == TokEOF {
			return Sexp{}, newError(KindParseStructural, tok.Pos, "unterminated list")
		}
		if tok.Kind == TokDot {
			p.next() //nolint:errcheck
			t, err := p.ParseOne()
			if err != nil {
				return Sexp{}, err
			}
			tail = &t
			closeTok, err := p.next()
			if err != nil {
				return Sexp{}, err
			}
			if closeTok.Kind != closeKind {
				return Sexp{}, newError(KindParseStructural, closeTok.Pos, "expected closing delimiter after dotted tail")
			}
			break
		}
		el, err := p.ParseOne()
		if err != nil {
			return Sexp{}, err
		}
		elements = append(elements, el)
	}

	return Sexp{Kind: SexpList, Pos: open.Pos, Elements: elements, Tail: tail}, nil
}

// ParseAll parses every top-level form until end of file.
func (p *Parser) ParseAll() ([]Sexp, error) {
	var out []Sexp
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokEOF {
			return out, nil
		}
		el, err := p.ParseOne()
		if err != nil {
			return nil, err
		}
		out = append(out, el)
	}
}
