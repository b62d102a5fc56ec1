package lower

import (
	"github.com/strager/cprog/ast"
	"github.com/strager/cprog/cst"
	"github.com/strager/cprog/diag"
)

// ResolveType maps a type name to a scalar type. int and int64 are the same
// type. void and unknown names are errors: neither can be the type of a
// variable.
func (l *Lowerer) ResolveType(t *cst.TypeName) (ast.Type, error) {
	switch {
	case t == nil:
		return 0, l.fail(ErrInvalidDeclaration, diag.Pos{}, "missing type name")
	case t.CharTypeName != nil:
		return ast.Char, nil
	case t.Int16TypeName != nil:
		return ast.Int16, nil
	case t.Int32TypeName != nil:
		return ast.Int32, nil
	case t.Int64TypeName != nil, t.IntTypeName != nil:
		return ast.Int64, nil
	case t.VoidTypeName != nil:
		return 0, l.fail(ErrInvalidDeclaration, t.VoidTypeName.Pos, "cannot declare a variable of type void")
	case t.Identifier != nil:
		return 0, l.fail(ErrInvalidDeclaration, t.Identifier.Pos, "unknown type name '%s'", t.Identifier.Text)
	default:
		return 0, l.fail(ErrInvalidDeclaration, diag.Pos{}, "missing type name")
	}
}
