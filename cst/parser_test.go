package cst

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"
	"github.com/strager/cprog/diag"
)

func TestParseExprShapes(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"42", "42"},
		{"'a'", `"'a'"`},
		{"x", "x"},
		{"(x)", "(paren x)"},
		{"1 + 2", "(+ 1 2)"},
		{"1 - 2 - 3", "(- (- 1 2) 3)"},
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"1 * 2 + 3", "(+ (* 1 2) 3)"},
		{"a / b % c", "(% (/ a b) c)"},
		{"a | b ^ c & d", "(| a (^ b (& c d)))"},
		{"a & b + c", "(& a (+ b c))"},
		{"(1 + 2) * 3", "(* (paren (+ 1 2)) 3)"},
		{"-x", "(prefix - x)"},
		{"+x", "(prefix + x)"},
		{"- -x", "(prefix - (prefix - x))"},
		{"!x", "(prefix ! x)"},
		{"~x", "(prefix ~ x)"},
		{"++x", "(prefix ++ x)"},
		{"x--", "(postfix -- x)"},
		{"-x++", "(prefix - (postfix ++ x))"},
		{"f()", "(call f)"},
		{"f(1, a + b)", "(call f 1 (+ a b))"},
		{"x = 1", "(= x 1)"},
		{"x = y = 1 + 2", "(= x (= y (+ 1 2)))"},
	}
	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			c := diag.NewCollector()
			e := ParseExpr([]byte(test.src), c)
			be.Equal(t, c.String(), "")
			be.Equal(t, Dump(e), test.expected)
		})
	}
}

func TestParseExprOperatorTokens(t *testing.T) {
	e := ParseExpr([]byte("a * b"), nil)
	be.Equal(t, len(e.Exprs), 2)
	be.True(t, e.OpMul != nil)
	be.Equal(t, e.OpMul.Pos, diag.Pos{Line: 1, Col: 3})
	be.True(t, e.OpPlus == nil)
	be.Equal(t, e.Pos(), diag.Pos{Line: 1, Col: 1})

	e = ParseExpr([]byte("-b"), nil)
	be.True(t, e.PrefixOp != nil)
	be.True(t, e.OpMinus == e.PrefixOp)

	e = ParseExpr([]byte("b++"), nil)
	be.True(t, e.PostfixOp != nil)
	be.True(t, e.OpPP == e.PostfixOp)
	be.True(t, e.PrefixOp == nil)

	e = ParseExpr([]byte("x = 3"), nil)
	be.Equal(t, len(e.Exprs), 1)
	be.Equal(t, e.Identifier.Text, "x")
	be.True(t, e.OpAsgn != nil)
}

func TestParseExprErrors(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"", "expected expression but got end of file"},
		{"1 +", "expected expression but got end of file"},
		{"(1", "expected ')' but got end of file"},
		{"1 2", "unexpected INT_LITERAL '2' after expression"},
		{"f(1,", "expected expression"},
	}
	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			c := diag.NewCollector()
			e := ParseExpr([]byte(test.src), c)
			be.True(t, e != nil)
			be.True(t, strings.Contains(c.String(), test.expected))
		})
	}
}

func TestParseProgram(t *testing.T) {
	src := `
f() {
    int64 x = 5, y;
    return x + y;
}

int g() {
    ;
    x = 1;
}
`
	c := diag.NewCollector()
	p := Parse([]byte(src), c)
	be.Equal(t, c.String(), "")
	be.Equal(t, len(p.Funcdefs), 2)

	f := p.Funcdefs[0]
	be.True(t, f.TypeName == nil)
	be.Equal(t, f.Identifier.Text, "f")
	be.Equal(t, len(f.Block.Statements), 2)

	decl := f.Block.Statements[0].Declaration
	be.True(t, decl != nil)
	be.True(t, decl.TypeName.Int64TypeName != nil)
	be.Equal(t, decl.TypeName.Token().Text, "int64")
	be.Equal(t, len(decl.Declarators), 2)
	be.True(t, decl.Declarators[0].Identifier == nil)
	be.Equal(t, decl.Declarators[0].Assignment.Identifier.Text, "x")
	be.Equal(t, Dump(decl.Declarators[0].Assignment.Expr), "5")
	be.Equal(t, decl.Declarators[1].Identifier.Text, "y")
	be.True(t, decl.Declarators[1].Assignment == nil)

	ret := f.Block.Statements[1].ReturnStatement
	be.True(t, ret != nil)
	be.Equal(t, Dump(ret.Expr), "(+ x y)")

	g := p.Funcdefs[1]
	be.True(t, g.TypeName.IntTypeName != nil)
	be.Equal(t, g.Identifier.Text, "g")

	empty := g.Block.Statements[0]
	be.True(t, empty.ReturnStatement == nil)
	be.True(t, empty.Declaration == nil)
	be.True(t, empty.Expr == nil)
	be.Equal(t, empty.Start, diag.Pos{Line: 8, Col: 5})

	be.Equal(t, Dump(g.Block.Statements[1].Expr), "(= x 1)")
}

func TestParseUserTypeName(t *testing.T) {
	c := diag.NewCollector()
	p := Parse([]byte("f() { foo x; void y; }"), c)
	be.Equal(t, c.String(), "")
	stmts := p.Funcdefs[0].Block.Statements
	be.Equal(t, stmts[0].Declaration.TypeName.Identifier.Text, "foo")
	be.True(t, stmts[1].Declaration.TypeName.VoidTypeName != nil)
}

func TestParseEmptyProgram(t *testing.T) {
	c := diag.NewCollector()
	p := Parse([]byte("  // nothing\n"), c)
	be.Equal(t, c.String(), "")
	be.Equal(t, len(p.Funcdefs), 0)
}

func TestParseRecovery(t *testing.T) {
	src := `f() {
    x = ;
    return 1
}
g() { return 2; }
`
	c := diag.NewCollector()
	p := Parse([]byte(src), c)
	be.True(t, c.HasErrors())
	be.True(t, strings.Contains(c.String(), "2:9: expected expression but got ';'"))
	be.True(t, strings.Contains(c.String(), "4:1: expected ';' but got '}'"))
	be.Equal(t, len(p.Funcdefs), 2)
	be.Equal(t, p.Funcdefs[1].Identifier.Text, "g")
}

func TestParseMissingFunctionName(t *testing.T) {
	c := diag.NewCollector()
	p := Parse([]byte("() { return 1; } h() {}"), c)
	be.True(t, strings.Contains(c.String(), "expected IDENTIFIER but got '('"))
	be.Equal(t, len(p.Funcdefs), 1)
	be.Equal(t, p.Funcdefs[0].Identifier.Text, "h")
}
