package lower

import (
	"github.com/strager/cprog/ast"
	"github.com/strager/cprog/cst"
	"github.com/strager/cprog/diag"
)

// Declaration lowers a declaration with one or more declarators. If the type
// does not resolve, there are no declarators, or any declarator fails, no
// Declaration is returned.
func (l *Lowerer) Declaration(d *cst.Declaration) (*ast.Declaration, error) {
	if d == nil {
		return nil, l.fail(ErrInvalidDeclaration, diag.Pos{}, "missing declaration")
	}
	typ, err := l.ResolveType(d.TypeName)
	if err != nil {
		return nil, err
	}
	if len(d.Declarators) == 0 {
		pos := diag.Pos{}
		if tok := d.TypeName.Token(); tok != nil {
			pos = tok.Pos
		}
		return nil, l.fail(ErrInvalidDeclaration, pos, "declaration of type %s declares nothing", typ)
	}
	decl := &ast.Declaration{Type: typ}
	for _, dctx := range d.Declarators {
		declarator, err := l.Declarator(dctx)
		if err != nil {
			return nil, err
		}
		decl.AppendDeclarator(declarator)
	}
	l.debug("lowered declaration", "type", typ.String(), "declarators", len(decl.Declarators))
	return decl, nil
}

// Declarator lowers `name` or `name = expr`.
//
// For an initialized declarator the name is read from the assignment's own
// target token. A declarator that carries both a bare identifier and an
// assignment must name the same variable in both.
func (l *Lowerer) Declarator(d *cst.Declarator) (*ast.Declarator, error) {
	switch {
	case d == nil || (d.Identifier == nil && d.Assignment == nil):
		return nil, l.fail(ErrInvalidDeclaration, diag.Pos{}, "declarator without a name")
	case d.Assignment == nil:
		return &ast.Declarator{Identifier: &ast.Identifier{Name: d.Identifier.Text}}, nil
	}

	initializer, err := l.Assignment(d.Assignment)
	if err != nil {
		return nil, err
	}
	name := d.Assignment.Identifier.Text
	if d.Identifier != nil && d.Identifier.Text != name {
		return nil, l.fail(ErrInvalidDeclaration, d.Identifier.Pos,
			"declarator names '%s' but its initializer assigns '%s'", d.Identifier.Text, name)
	}
	return &ast.Declarator{Identifier: &ast.Identifier{Name: name}, Init: initializer}, nil
}

// Assignment lowers `name = expr`.
func (l *Lowerer) Assignment(a *cst.Assignment) (*ast.Assignment, error) {
	if a == nil {
		return nil, l.fail(ErrMalformedExpression, diag.Pos{}, "missing assignment")
	}
	if a.Identifier == nil {
		pos := diag.Pos{}
		if a.OpAsgn != nil {
			pos = a.OpAsgn.Pos
		}
		return nil, l.fail(ErrMalformedExpression, pos, "assignment without a target")
	}
	if a.Expr == nil {
		return nil, l.fail(ErrMalformedExpression, a.Identifier.Pos, "assignment to '%s' without a value", a.Identifier.Text)
	}
	value, err := l.Expr(a.Expr)
	if err != nil {
		return nil, err
	}
	return &ast.Assignment{Target: &ast.Identifier{Name: a.Identifier.Text}, Value: value}, nil
}
