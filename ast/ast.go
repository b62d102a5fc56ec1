// Package ast defines the abstract syntax tree produced by lowering the cprog
// concrete syntax tree.
//
// Every node owns its children; subtrees are never shared between parents.
// Nodes are built once and not modified afterwards, except that sequence
// fields grow through the Append methods while their owner is under
// construction.
package ast

import "strconv"

// Type is a primitive scalar type. void and unknown type names are rejected
// before a Type is ever produced.
type Type int

const (
	Char Type = iota
	Int16
	Int32
	Int64
)

func (t Type) String() string {
	switch t {
	case Char:
		return "char"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	default:
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
}

// Node is implemented by every AST node.
type Node interface {
	node()
}

// ExprKind discriminates the Expr family.
type ExprKind int

const (
	KindIntLiteral ExprKind = iota
	KindCharLiteral
	KindIdentifier
	KindAssignment
	KindUnaryMinus
	KindMultiplication
	KindDivision
	KindModulo
	KindAddition
	KindSubtraction
	KindBitwiseAnd
	KindBitwiseOr
	KindBitwiseXor
)

var exprKindNames = [...]string{
	KindIntLiteral:     "IntLiteral",
	KindCharLiteral:    "CharLiteral",
	KindIdentifier:     "Identifier",
	KindAssignment:     "Assignment",
	KindUnaryMinus:     "UnaryMinus",
	KindMultiplication: "Multiplication",
	KindDivision:       "Division",
	KindModulo:         "Modulo",
	KindAddition:       "Addition",
	KindSubtraction:    "Subtraction",
	KindBitwiseAnd:     "BitwiseAnd",
	KindBitwiseOr:      "BitwiseOr",
	KindBitwiseXor:     "BitwiseXor",
}

func (k ExprKind) String() string {
	if k >= 0 && int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "ExprKind(" + strconv.Itoa(int(k)) + ")"
}

// Expr is an expression node. Use Kind to find out which variant it is.
type Expr interface {
	Node
	Kind() ExprKind
}

type IntLiteral struct {
	Value int64
}

// CharLiteral holds the text between the quotes of a character literal.
// Escape sequences are kept as written.
type CharLiteral struct {
	Value string
}

// Identifier names a variable. It is not resolved against any scope.
type Identifier struct {
	Name string
}

type Assignment struct {
	Target *Identifier
	Value  Expr
}

type UnaryMinus struct {
	X Expr
}

// BinaryOp is the operator of a Binary expression.
type BinaryOp int

const (
	Mul BinaryOp = iota
	Div
	Mod
	Add
	Sub
	BitAnd
	BitOr
	BitXor
)

var binaryOpSymbols = [...]string{
	Mul:    "*",
	Div:    "/",
	Mod:    "%",
	Add:    "+",
	Sub:    "-",
	BitAnd: "&",
	BitOr:  "|",
	BitXor: "^",
}

func (op BinaryOp) String() string {
	if op >= 0 && int(op) < len(binaryOpSymbols) {
		return binaryOpSymbols[op]
	}
	return "BinaryOp(" + strconv.Itoa(int(op)) + ")"
}

// Kind maps the operator to its expression variant.
func (op BinaryOp) Kind() ExprKind {
	return KindMultiplication + ExprKind(op)
}

// Binary is an operator applied to two operands. Left and Right keep source
// order even for commutative operators.
type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (*IntLiteral) node()  {}
func (*CharLiteral) node() {}
func (*Identifier) node()  {}
func (*Assignment) node()  {}
func (*UnaryMinus) node()  {}
func (*Binary) node()      {}

func (*IntLiteral) Kind() ExprKind  { return KindIntLiteral }
func (*CharLiteral) Kind() ExprKind { return KindCharLiteral }
func (*Identifier) Kind() ExprKind  { return KindIdentifier }
func (*Assignment) Kind() ExprKind  { return KindAssignment }
func (*UnaryMinus) Kind() ExprKind  { return KindUnaryMinus }
func (b *Binary) Kind() ExprKind    { return b.Op.Kind() }

// StmtKind discriminates the Stmt family.
type StmtKind int

const (
	KindReturn StmtKind = iota
	KindDeclaration
	KindExpression
)

func (k StmtKind) String() string {
	switch k {
	case KindReturn:
		return "Return"
	case KindDeclaration:
		return "Declaration"
	case KindExpression:
		return "Expression"
	default:
		return "StmtKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Stmt is a statement in a function body.
type Stmt interface {
	Node
	Kind() StmtKind
}

type Return struct {
	Value Expr
}

// Declaration declares one or more variables of the same type.
type Declaration struct {
	Type        Type
	Declarators []*Declarator
}

// AppendDeclarator adds decl after the declarators already present.
func (d *Declaration) AppendDeclarator(decl *Declarator) {
	d.Declarators = append(d.Declarators, decl)
}

// ExprStmt is an expression evaluated for its side effects.
type ExprStmt struct {
	X Expr
}

func (*Return) node()      {}
func (*Declaration) node() {}
func (*ExprStmt) node()    {}

func (*Return) Kind() StmtKind      { return KindReturn }
func (*Declaration) Kind() StmtKind { return KindDeclaration }
func (*ExprStmt) Kind() StmtKind    { return KindExpression }

// Declarator is one variable within a declaration. Init is nil when the
// variable has no initializer; otherwise Init.Target names the same variable
// as Identifier.
type Declarator struct {
	Identifier *Identifier
	Init       *Assignment
}

func (*Declarator) node() {}

// FuncDef is a function definition. ReturnType is always Int64 for now.
type FuncDef struct {
	Name       string
	ReturnType Type
	Body       []Stmt
}

// AppendStmt adds s to the end of the function body.
func (f *FuncDef) AppendStmt(s Stmt) {
	f.Body = append(f.Body, s)
}

func (*FuncDef) node() {}

// Program is a translation unit: function definitions in source order.
type Program struct {
	Funcs []*FuncDef
}

// AppendFunc adds f after the functions already present.
func (p *Program) AppendFunc(f *FuncDef) {
	p.Funcs = append(p.Funcs, f)
}

func (*Program) node() {}
