// Package cst holds the concrete syntax tree of cprog source, one struct per
// grammar rule, and a parser producing it.
//
// Optional clauses and terminals are nil when the rule alternative that
// matched did not contain them. Consumers inspect which fields are set to
// tell alternatives apart; the tree carries no other discriminator.
package cst

import "github.com/strager/cprog/diag"

// program : funcdef* EOF
type Program struct {
	Funcdefs []*Funcdef
}

// funcdef : type_name? IDENTIFIER '(' ')' block
type Funcdef struct {
	TypeName   *TypeName
	Identifier *Token
	Block      *Block
}

// block : '{' statement* '}'
type Block struct {
	LBrace     *Token
	Statements []*Statement
}

// statement : return_statement ';' | declaration ';' | expr ';' | ';'
type Statement struct {
	Start           diag.Pos
	ReturnStatement *ReturnStatement
	Declaration     *Declaration
	Expr            *Expr
}

// return_statement : 'return' expr
type ReturnStatement struct {
	Return *Token
	Expr   *Expr
}

// declaration : type_name declarator (',' declarator)*
type Declaration struct {
	TypeName    *TypeName
	Declarators []*Declarator
}

// declarator : IDENTIFIER | assignment
type Declarator struct {
	Identifier *Token
	Assignment *Assignment
}

// assignment : IDENTIFIER '=' expr
type Assignment struct {
	Identifier *Token
	OpAsgn     *Token
	Expr       *Expr
}

// type_name : 'char' | 'int16' | 'int32' | 'int64' | 'int' | 'void' | IDENTIFIER
//
// At most one field is set.
type TypeName struct {
	CharTypeName  *Token
	Int16TypeName *Token
	Int32TypeName *Token
	Int64TypeName *Token
	IntTypeName   *Token
	VoidTypeName  *Token
	Identifier    *Token
}

// Token returns whichever keyword or identifier token is set, or nil.
func (t *TypeName) Token() *Token {
	if t == nil {
		return nil
	}
	for _, tok := range []*Token{t.CharTypeName, t.Int16TypeName, t.Int32TypeName, t.Int64TypeName, t.IntTypeName, t.VoidTypeName, t.Identifier} {
		if tok != nil {
			return tok
		}
	}
	return nil
}

// Expr is the single left-recursive expression rule. Its alternatives are
// told apart by the number of sub-expressions, by the alternative label
// tokens and by which operator or terminal token is set:
//
//	PAR_OP='(' expr ')'
//	expr POSTFIX_OP=('++' | '--')
//	expr ARG_OP='(' arg_list? ')'
//	PREFIX_OP=('+' | '-' | '++' | '--' | '!' | '~') expr
//	expr ('*' | '/' | '%') expr
//	expr ('+' | '-') expr
//	expr '&' expr
//	expr '^' expr
//	expr '|' expr
//	IDENTIFIER '=' expr
//	INT_LITERAL | CHAR_LITERAL | IDENTIFIER
type Expr struct {
	Exprs   []*Expr
	ArgList *ArgList

	// Alternative labels.
	ParOp     *Token
	PostfixOp *Token
	ArgOp     *Token
	PrefixOp  *Token

	OpPlus  *Token
	OpMinus *Token
	OpMul   *Token
	OpDiv   *Token
	OpMod   *Token
	OpBAnd  *Token
	OpBOr   *Token
	OpBXor  *Token
	OpPP    *Token
	OpMM    *Token
	OpNot   *Token
	OpBNot  *Token
	OpAsgn  *Token

	IntLiteral  *Token
	CharLiteral *Token
	Identifier  *Token
}

// Pos returns the position of the leftmost token of e.
func (e *Expr) Pos() diag.Pos {
	if e == nil {
		return diag.Pos{}
	}
	if len(e.Exprs) > 0 && e.ParOp == nil && e.PrefixOp == nil && e.OpAsgn == nil {
		return e.Exprs[0].Pos()
	}
	for _, tok := range []*Token{e.ParOp, e.PrefixOp, e.Identifier, e.IntLiteral, e.CharLiteral} {
		if tok != nil {
			return tok.Pos
		}
	}
	return diag.Pos{}
}

// arg_list : expr (',' expr)*
type ArgList struct {
	Exprs []*Expr
}
