package cst

import "github.com/strager/cprog/diag"

// Parser builds a CST from a token stream using precedence climbing.
// Syntax errors are reported to the sink; the parser then skips ahead to a
// statement boundary and keeps going, so it always returns a tree.
type Parser struct {
	lexer *Lexer
	sink  diag.Sink

	curr Token
	peek Token
}

// NewParser creates a parser over src. Both lexical and syntax errors go to
// sink.
func NewParser(src []byte, sink diag.Sink) *Parser {
	if sink == nil {
		sink = diag.Discard
	}
	p := &Parser{lexer: NewLexer(src, sink), sink: sink}
	p.next()
	p.next()
	return p
}

// Parse parses a whole program.
func Parse(src []byte, sink diag.Sink) *Program {
	return NewParser(src, sink).ParseProgram()
}

// ParseExpr parses a single expression followed by end of input.
func ParseExpr(src []byte, sink diag.Sink) *Expr {
	p := NewParser(src, sink)
	e := p.ParseExpr()
	if p.curr.Type != EOF {
		p.errorf("unexpected %s after expression", describe(p.curr))
	}
	return e
}

func (p *Parser) next() {
	p.curr = p.peek
	p.peek = p.lexer.NextToken()
}

func (p *Parser) errorf(format string, args ...any) {
	diag.Errorf(p.sink, p.curr.Pos, format, args...)
}

// take consumes the current token and returns a pointer to a copy of it.
func (p *Parser) take() *Token {
	tok := p.curr
	p.next()
	return &tok
}

// expect consumes a token of type t, reporting an error and returning nil
// when the current token is something else.
func (p *Parser) expect(t TokenType) *Token {
	if p.curr.Type != t {
		p.errorf("expected %s but got %s", describeType(t), describe(p.curr))
		return nil
	}
	return p.take()
}

// sync skips tokens up to and including the next ';', or up to the next '}'.
func (p *Parser) sync() {
	for p.curr.Type != EOF && p.curr.Type != RBRACE {
		if p.curr.Type == SEMICOLON {
			p.next()
			return
		}
		p.next()
	}
}

// ParseProgram parses funcdef* EOF.
func (p *Parser) ParseProgram() *Program {
	prog := &Program{}
	for p.curr.Type != EOF {
		f := p.parseFuncdef()
		if f == nil {
			// Skip to something that could start a new function.
			for p.curr.Type != EOF && p.curr.Type != RBRACE {
				p.next()
			}
			if p.curr.Type == RBRACE {
				p.next()
			}
			continue
		}
		prog.Funcdefs = append(prog.Funcdefs, f)
	}
	return prog
}

func (p *Parser) parseFuncdef() *Funcdef {
	f := &Funcdef{}
	if p.curr.Type.IsTypeKeyword() || (p.curr.Type == IDENTIFIER && p.peek.Type == IDENTIFIER) {
		f.TypeName = p.parseTypeName()
	}
	f.Identifier = p.expect(IDENTIFIER)
	if f.Identifier == nil {
		return nil
	}
	if p.expect(LPAREN) == nil || p.expect(RPAREN) == nil {
		return nil
	}
	f.Block = p.parseBlock()
	if f.Block == nil {
		return nil
	}
	return f
}

func (p *Parser) parseBlock() *Block {
	lbrace := p.expect(LBRACE)
	if lbrace == nil {
		return nil
	}
	b := &Block{LBrace: lbrace}
	for p.curr.Type != RBRACE && p.curr.Type != EOF {
		b.Statements = append(b.Statements, p.parseStatement())
	}
	p.expect(RBRACE)
	return b
}

func (p *Parser) parseStatement() *Statement {
	s := &Statement{Start: p.curr.Pos}
	switch {
	case p.curr.Type == SEMICOLON:
		// Empty statement.
	case p.curr.Type == RETURN:
		ret := &ReturnStatement{Return: p.take()}
		ret.Expr = p.ParseExpr()
		s.ReturnStatement = ret
	case p.curr.Type.IsTypeKeyword() || (p.curr.Type == IDENTIFIER && p.peek.Type == IDENTIFIER):
		s.Declaration = p.parseDeclaration()
	default:
		s.Expr = p.ParseExpr()
	}
	if p.curr.Type == SEMICOLON {
		p.next()
	} else {
		p.errorf("expected ';' but got %s", describe(p.curr))
		p.sync()
	}
	return s
}

func (p *Parser) parseTypeName() *TypeName {
	t := &TypeName{}
	switch p.curr.Type {
	case CHAR_TYPE_NAME:
		t.CharTypeName = p.take()
	case INT_16_TYPE_NAME:
		t.Int16TypeName = p.take()
	case INT_32_TYPE_NAME:
		t.Int32TypeName = p.take()
	case INT_64_TYPE_NAME:
		t.Int64TypeName = p.take()
	case INT_TYPE_NAME:
		t.IntTypeName = p.take()
	case VOID_TYPE_NAME:
		t.VoidTypeName = p.take()
	case IDENTIFIER:
		t.Identifier = p.take()
	default:
		p.errorf("expected type name but got %s", describe(p.curr))
	}
	return t
}

func (p *Parser) parseDeclaration() *Declaration {
	d := &Declaration{TypeName: p.parseTypeName()}
	for {
		decl := &Declarator{}
		if p.curr.Type == IDENTIFIER && p.peek.Type == OP_ASGN {
			decl.Assignment = p.parseAssignment()
		} else {
			decl.Identifier = p.expect(IDENTIFIER)
			if decl.Identifier == nil {
				return d
			}
		}
		d.Declarators = append(d.Declarators, decl)
		if p.curr.Type != COMMA {
			return d
		}
		p.next()
	}
}

func (p *Parser) parseAssignment() *Assignment {
	a := &Assignment{Identifier: p.take(), OpAsgn: p.take()}
	a.Expr = p.ParseExpr()
	return a
}

// precedence returns the binding power of a binary operator, or 0 if t is
// not one.
func precedence(t TokenType) int {
	switch t {
	case OP_BOR:
		return 1
	case OP_BXOR:
		return 2
	case OP_BAND:
		return 3
	case OP_PLUS, OP_MINUS:
		return 4
	case OP_MUL, OP_DIV, OP_MOD:
		return 5
	default:
		return 0
	}
}

// ParseExpr parses an expression starting at the current token.
func (p *Parser) ParseExpr() *Expr {
	return p.parseExprWithPrecedence(1)
}

// parseExprWithPrecedence implements precedence climbing. All binary
// operators are left-associative.
func (p *Parser) parseExprWithPrecedence(minPrec int) *Expr {
	left := p.parseUnary()
	for {
		prec := precedence(p.curr.Type)
		if prec == 0 || prec < minPrec {
			return left
		}
		op := p.take()
		right := p.parseExprWithPrecedence(prec + 1)
		e := &Expr{Exprs: []*Expr{left, right}}
		setOperator(e, op)
		left = e
	}
}

func (p *Parser) parseUnary() *Expr {
	switch p.curr.Type {
	case OP_PLUS, OP_MINUS, OP_PP, OP_MM, OP_NOT, OP_BNOT:
		op := p.take()
		operand := p.parseUnary()
		e := &Expr{Exprs: []*Expr{operand}, PrefixOp: op}
		setOperator(e, op)
		return e
	}
	return p.parsePostfix(p.parsePrimary())
}

func (p *Parser) parsePostfix(left *Expr) *Expr {
	for {
		switch p.curr.Type {
		case OP_PP, OP_MM:
			op := p.take()
			e := &Expr{Exprs: []*Expr{left}, PostfixOp: op}
			setOperator(e, op)
			left = e
		case LPAREN:
			e := &Expr{Exprs: []*Expr{left}, ArgOp: p.take()}
			if p.curr.Type != RPAREN {
				e.ArgList = p.parseArgList()
			}
			p.expect(RPAREN)
			left = e
		default:
			return left
		}
	}
}

func (p *Parser) parseArgList() *ArgList {
	args := &ArgList{Exprs: []*Expr{p.ParseExpr()}}
	for p.curr.Type == COMMA {
		p.next()
		args.Exprs = append(args.Exprs, p.ParseExpr())
	}
	return args
}

func (p *Parser) parsePrimary() *Expr {
	switch p.curr.Type {
	case INT_LITERAL:
		return &Expr{IntLiteral: p.take()}
	case CHAR_LITERAL:
		return &Expr{CharLiteral: p.take()}
	case IDENTIFIER:
		if p.peek.Type == OP_ASGN {
			e := &Expr{Identifier: p.take(), OpAsgn: p.take()}
			// Assignment is right-associative and binds loosest.
			e.Exprs = []*Expr{p.ParseExpr()}
			return e
		}
		return &Expr{Identifier: p.take()}
	case LPAREN:
		e := &Expr{ParOp: p.take()}
		e.Exprs = []*Expr{p.ParseExpr()}
		p.expect(RPAREN)
		return e
	default:
		p.errorf("expected expression but got %s", describe(p.curr))
		// An Expr with no alternative set; lowering reports it as malformed
		// only if the syntax error above is ignored.
		if p.curr.Type != SEMICOLON && p.curr.Type != RBRACE && p.curr.Type != EOF {
			p.next()
		}
		return &Expr{}
	}
}

// setOperator stores op in the operator field of e matching its type.
func setOperator(e *Expr, op *Token) {
	switch op.Type {
	case OP_PLUS:
		e.OpPlus = op
	case OP_MINUS:
		e.OpMinus = op
	case OP_MUL:
		e.OpMul = op
	case OP_DIV:
		e.OpDiv = op
	case OP_MOD:
		e.OpMod = op
	case OP_BAND:
		e.OpBAnd = op
	case OP_BOR:
		e.OpBOr = op
	case OP_BXOR:
		e.OpBXor = op
	case OP_PP:
		e.OpPP = op
	case OP_MM:
		e.OpMM = op
	case OP_NOT:
		e.OpNot = op
	case OP_BNOT:
		e.OpBNot = op
	}
}

func describe(tok Token) string {
	switch tok.Type {
	case EOF:
		return "end of file"
	case IDENTIFIER, INT_LITERAL, CHAR_LITERAL:
		return string(tok.Type) + " '" + tok.Text + "'"
	default:
		return "'" + tok.Text + "'"
	}
}

func describeType(t TokenType) string {
	switch t {
	case IDENTIFIER, INT_LITERAL, CHAR_LITERAL, EOF:
		return string(t)
	default:
		return "'" + string(t) + "'"
	}
}
