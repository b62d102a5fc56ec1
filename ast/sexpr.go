package ast

import (
	"strconv"
	"strings"
)

// ToSExpr renders node as an s-expression:
//
//	(int 5) (char "a") (ident "x") (assign "x" e) (neg e) (binary "+" l r)
//	(return e) (expr e) (decl int64 (declarator "x") ...)
//	(func "f" int64 stmt...) (program func...)
//
// A nil node renders as "nil".
func ToSExpr(node Node) string {
	var sb strings.Builder
	writeSExpr(&sb, node)
	return sb.String()
}

func writeSExpr(sb *strings.Builder, node Node) {
	switch n := node.(type) {
	case *IntLiteral:
		sb.WriteString("(int ")
		sb.WriteString(strconv.FormatInt(n.Value, 10))
		sb.WriteString(")")
	case *CharLiteral:
		sb.WriteString("(char ")
		writeQuoted(sb, n.Value)
		sb.WriteString(")")
	case *Identifier:
		sb.WriteString("(ident ")
		writeQuoted(sb, n.Name)
		sb.WriteString(")")
	case *Assignment:
		sb.WriteString("(assign ")
		writeQuoted(sb, n.Target.Name)
		sb.WriteString(" ")
		writeSExpr(sb, n.Value)
		sb.WriteString(")")
	case *UnaryMinus:
		sb.WriteString("(neg ")
		writeSExpr(sb, n.X)
		sb.WriteString(")")
	case *Binary:
		sb.WriteString("(binary ")
		writeQuoted(sb, n.Op.String())
		sb.WriteString(" ")
		writeSExpr(sb, n.Left)
		sb.WriteString(" ")
		writeSExpr(sb, n.Right)
		sb.WriteString(")")
	case *Return:
		sb.WriteString("(return ")
		writeSExpr(sb, n.Value)
		sb.WriteString(")")
	case *ExprStmt:
		sb.WriteString("(expr ")
		writeSExpr(sb, n.X)
		sb.WriteString(")")
	case *Declaration:
		sb.WriteString("(decl ")
		sb.WriteString(n.Type.String())
		for _, d := range n.Declarators {
			sb.WriteString(" ")
			writeSExpr(sb, d)
		}
		sb.WriteString(")")
	case *Declarator:
		sb.WriteString("(declarator ")
		writeQuoted(sb, n.Identifier.Name)
		if n.Init != nil {
			sb.WriteString(" ")
			writeSExpr(sb, n.Init)
		}
		sb.WriteString(")")
	case *FuncDef:
		sb.WriteString("(func ")
		writeQuoted(sb, n.Name)
		sb.WriteString(" ")
		sb.WriteString(n.ReturnType.String())
		for _, s := range n.Body {
			sb.WriteString(" ")
			writeSExpr(sb, s)
		}
		sb.WriteString(")")
	case *Program:
		sb.WriteString("(program")
		for _, f := range n.Funcs {
			sb.WriteString(" ")
			writeSExpr(sb, f)
		}
		sb.WriteString(")")
	default:
		sb.WriteString("nil")
	}
}

// writeQuoted writes s as a string the sexy reader understands: only '"' and
// '\' are escaped.
func writeQuoted(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
}
