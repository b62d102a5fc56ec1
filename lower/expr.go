package lower

import (
	"errors"
	"strconv"

	"github.com/strager/cprog/ast"
	"github.com/strager/cprog/cst"
	"github.com/strager/cprog/diag"
)

// Expr lowers an expression. Parentheses and unary plus vanish; every other
// supported alternative produces exactly one AST node. Precedence and
// associativity come from the shape of the CST and are not revisited here.
func (l *Lowerer) Expr(e *cst.Expr) (ast.Expr, error) {
	if e == nil {
		return nil, l.fail(ErrMalformedExpression, diag.Pos{}, "missing expression")
	}

	sh := classify(e)
	switch sh {
	case shapeMalformed:
		return nil, l.fail(ErrMalformedExpression, e.Pos(), "malformed expression with %d operands", len(e.Exprs))
	case shapeIntLiteral:
		return l.intLiteral(e.IntLiteral)
	case shapeCharLiteral:
		return l.charLiteral(e.CharLiteral)
	case shapeIdentifier:
		return &ast.Identifier{Name: e.Identifier.Text}, nil
	}

	operands := make([]ast.Expr, len(e.Exprs))
	for i, sub := range e.Exprs {
		x, err := l.Expr(sub)
		if err != nil {
			return nil, err
		}
		operands[i] = x
	}

	switch sh {
	case shapeParen, shapePrefixPlus:
		return operands[0], nil
	case shapePrefixMinus:
		return &ast.UnaryMinus{X: operands[0]}, nil
	case shapeAssignment:
		return &ast.Assignment{Target: &ast.Identifier{Name: e.Identifier.Text}, Value: operands[0]}, nil
	case shapePostfixIncrement, shapePostfixDecrement:
		return nil, l.fail(ErrUnsupportedConstruct, e.PostfixOp.Pos, "%s is not supported", sh)
	case shapeCall:
		return nil, l.fail(ErrUnsupportedConstruct, e.ArgOp.Pos, "%s is not supported", sh)
	case shapePrefixIncrement, shapePrefixDecrement, shapeLogicalNot, shapeBitwiseNot:
		return nil, l.fail(ErrUnsupportedConstruct, e.PrefixOp.Pos, "%s is not supported", sh)
	case shapeMultiplication, shapeDivision, shapeModulo, shapeAddition,
		shapeSubtraction, shapeBitwiseAnd, shapeBitwiseOr, shapeBitwiseXor:
		return &ast.Binary{Op: binaryOps[sh], Left: operands[0], Right: operands[1]}, nil
	default:
		return nil, l.fail(ErrMalformedExpression, e.Pos(), "%s cannot be lowered", sh)
	}
}

// intLiteral parses a decimal literal into a signed 64-bit value. Literals
// that do not fit are rejected rather than truncated.
func (l *Lowerer) intLiteral(tok *cst.Token) (ast.Expr, error) {
	v, err := strconv.ParseInt(tok.Text, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, l.fail(ErrInvalidLiteral, tok.Pos, "integer literal %s out of range", tok.Text)
		}
		return nil, l.fail(ErrInvalidLiteral, tok.Pos, "invalid integer literal '%s'", tok.Text)
	}
	return &ast.IntLiteral{Value: v}, nil
}

// charLiteral strips the quote delimiters from a character literal.
func (l *Lowerer) charLiteral(tok *cst.Token) (ast.Expr, error) {
	text := tok.Text
	if len(text) < 2 || text[0] != '\'' || text[len(text)-1] != '\'' {
		return nil, l.fail(ErrInvalidLiteral, tok.Pos, "invalid character literal %s", text)
	}
	return &ast.CharLiteral{Value: text[1 : len(text)-1]}, nil
}
