package cst

import "github.com/strager/cprog/diag"

// Lexer turns source bytes into tokens. The input buffer is NUL-terminated
// so the scanner can look one byte ahead without bounds checks.
type Lexer struct {
	input []byte
	pos   int
	line  int
	col   int

	sink diag.Sink
}

// NewLexer creates a lexer over src. Lexical errors are reported to sink.
func NewLexer(src []byte, sink diag.Sink) *Lexer {
	input := make([]byte, len(src), len(src)+2)
	copy(input, src)
	input = append(input, 0, 0)
	if sink == nil {
		sink = diag.Discard
	}
	return &Lexer{input: input, line: 1, col: 1, sink: sink}
}

func (l *Lexer) here() diag.Pos {
	return diag.Pos{Line: l.line, Col: l.col}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.input)-2
}

func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.input[l.pos] == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
		l.pos++
	}
}

// NextToken scans and returns the next token. At end of input it keeps
// returning EOF.
func (l *Lexer) NextToken() Token {
	l.skipWhitespaceAndComments()

	start := l.pos
	tok := Token{Pos: l.here()}
	c := l.input[l.pos]

	single := func(t TokenType) Token {
		l.advance(1)
		tok.Type = t
		tok.Text = string(l.input[start:l.pos])
		return tok
	}
	double := func(t TokenType) Token {
		l.advance(2)
		tok.Type = t
		tok.Text = string(l.input[start:l.pos])
		return tok
	}

	switch {
	case l.atEnd():
		tok.Type = EOF
		return tok
	case c == '+':
		if l.input[l.pos+1] == '+' {
			return double(OP_PP)
		}
		return single(OP_PLUS)
	case c == '-':
		if l.input[l.pos+1] == '-' {
			return double(OP_MM)
		}
		return single(OP_MINUS)
	case c == '=':
		return single(OP_ASGN)
	case c == '*':
		return single(OP_MUL)
	case c == '/':
		return single(OP_DIV)
	case c == '%':
		return single(OP_MOD)
	case c == '&':
		return single(OP_BAND)
	case c == '|':
		return single(OP_BOR)
	case c == '^':
		return single(OP_BXOR)
	case c == '~':
		return single(OP_BNOT)
	case c == '!':
		return single(OP_NOT)
	case c == ',':
		return single(COMMA)
	case c == ';':
		return single(SEMICOLON)
	case c == '(':
		return single(LPAREN)
	case c == ')':
		return single(RPAREN)
	case c == '{':
		return single(LBRACE)
	case c == '}':
		return single(RBRACE)
	case c == '\'':
		return l.readCharLiteral(tok)
	case isLetter(c):
		lit := l.readIdentifier()
		tok.Text = lit
		if kw, ok := keywords[lit]; ok {
			tok.Type = kw
		} else {
			tok.Type = IDENTIFIER
		}
		return tok
	case isDigit(c):
		for isDigit(l.input[l.pos]) {
			l.advance(1)
		}
		tok.Type = INT_LITERAL
		tok.Text = string(l.input[start:l.pos])
		return tok
	default:
		diag.Errorf(l.sink, tok.Pos, "unexpected character %q", c)
		return single(ILLEGAL)
	}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		c := l.input[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			l.advance(1)
		case c == '/' && l.input[l.pos+1] == '/':
			for l.input[l.pos] != '\n' && !l.atEnd() {
				l.advance(1)
			}
		case c == '/' && l.input[l.pos+1] == '*':
			pos := l.here()
			l.advance(2)
			for !(l.input[l.pos] == '*' && l.input[l.pos+1] == '/') {
				if l.atEnd() {
					diag.Errorf(l.sink, pos, "unterminated block comment")
					return
				}
				l.advance(1)
			}
			l.advance(2)
		default:
			return
		}
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.input[l.pos]) || isDigit(l.input[l.pos]) {
		l.advance(1)
	}
	return string(l.input[start:l.pos])
}

// readCharLiteral reads 'c' or '\c'. The token text keeps both quotes.
func (l *Lexer) readCharLiteral(tok Token) Token {
	start := l.pos
	l.advance(1) // Skip first '.
	if l.input[l.pos] == '\\' && l.input[l.pos+1] != 0 {
		l.advance(2)
	} else if l.input[l.pos] != '\'' && l.input[l.pos] != '\n' && l.input[l.pos] != 0 {
		l.advance(1)
	}
	if l.input[l.pos] != '\'' {
		diag.Errorf(l.sink, tok.Pos, "unterminated character literal")
		tok.Type = ILLEGAL
		tok.Text = string(l.input[start:l.pos])
		return tok
	}
	l.advance(1) // Skip last '.
	tok.Type = CHAR_LITERAL
	tok.Text = string(l.input[start:l.pos])
	return tok
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
