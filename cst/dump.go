package cst

import "strings"

// Dump renders the shape of an expression tree as an s-expression: which
// alternative each node matched and the operator it carries. Terminals print
// as their source text, character literals quoted.
//
//	1 + -x     =>  (+ 1 (prefix - x))
//	(a)++      =>  (postfix ++ (paren a))
//	f(1, 2)    =>  (call f 1 2)
//	x = y = 1  =>  (= x (= y 1))
func Dump(e *Expr) string {
	var sb strings.Builder
	dumpExpr(&sb, e)
	return sb.String()
}

func dumpExpr(sb *strings.Builder, e *Expr) {
	if e == nil {
		sb.WriteString("nil")
		return
	}
	list := func(head string, subs ...*Expr) {
		sb.WriteString("(")
		sb.WriteString(head)
		for _, sub := range subs {
			sb.WriteString(" ")
			dumpExpr(sb, sub)
		}
		sb.WriteString(")")
	}
	switch {
	case len(e.Exprs) == 0 && e.IntLiteral != nil:
		sb.WriteString(e.IntLiteral.Text)
	case len(e.Exprs) == 0 && e.CharLiteral != nil:
		sb.WriteString(`"`)
		sb.WriteString(strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(e.CharLiteral.Text))
		sb.WriteString(`"`)
	case len(e.Exprs) == 0 && e.Identifier != nil:
		sb.WriteString(e.Identifier.Text)
	case len(e.Exprs) == 1 && e.ParOp != nil:
		list("paren", e.Exprs...)
	case len(e.Exprs) == 1 && e.PostfixOp != nil:
		list("postfix "+e.PostfixOp.Text, e.Exprs...)
	case len(e.Exprs) == 1 && e.ArgOp != nil:
		subs := e.Exprs
		if e.ArgList != nil {
			subs = append(subs[:1:1], e.ArgList.Exprs...)
		}
		list("call", subs...)
	case len(e.Exprs) == 1 && e.PrefixOp != nil:
		list("prefix "+e.PrefixOp.Text, e.Exprs...)
	case len(e.Exprs) == 1 && e.OpAsgn != nil && e.Identifier != nil:
		list("= "+e.Identifier.Text, e.Exprs...)
	case len(e.Exprs) == 2:
		op := "malformed"
		for _, tok := range []*Token{e.OpMul, e.OpDiv, e.OpMod, e.OpPlus, e.OpMinus, e.OpBAnd, e.OpBOr, e.OpBXor} {
			if tok != nil {
				op = tok.Text
				break
			}
		}
		list(op, e.Exprs...)
	default:
		list("malformed", e.Exprs...)
	}
}
