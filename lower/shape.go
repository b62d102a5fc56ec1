package lower

import (
	"github.com/strager/cprog/ast"
	"github.com/strager/cprog/cst"
)

// shape names the expr alternative a CST expression node matched. The expr
// rule folds every operator into one production, so the alternative has to
// be recovered from the number of sub-expressions and from which label and
// operator tokens are set.
type shape int

const (
	shapeMalformed shape = iota

	// No sub-expressions.
	shapeIntLiteral
	shapeCharLiteral
	shapeIdentifier

	// One sub-expression.
	shapeParen
	shapePostfixIncrement
	shapePostfixDecrement
	shapeCall
	shapePrefixPlus
	shapePrefixMinus
	shapePrefixIncrement
	shapePrefixDecrement
	shapeLogicalNot
	shapeBitwiseNot
	shapeAssignment

	// Two sub-expressions.
	shapeMultiplication
	shapeDivision
	shapeModulo
	shapeAddition
	shapeSubtraction
	shapeBitwiseAnd
	shapeBitwiseOr
	shapeBitwiseXor
)

var shapeNames = [...]string{
	shapeMalformed:        "malformed expression",
	shapeIntLiteral:       "integer literal",
	shapeCharLiteral:      "character literal",
	shapeIdentifier:       "identifier",
	shapeParen:            "parenthesized expression",
	shapePostfixIncrement: "postfix operator '++'",
	shapePostfixDecrement: "postfix operator '--'",
	shapeCall:             "function call",
	shapePrefixPlus:       "prefix operator '+'",
	shapePrefixMinus:      "prefix operator '-'",
	shapePrefixIncrement:  "prefix operator '++'",
	shapePrefixDecrement:  "prefix operator '--'",
	shapeLogicalNot:       "prefix operator '!'",
	shapeBitwiseNot:       "prefix operator '~'",
	shapeAssignment:       "assignment",
	shapeMultiplication:   "binary operator '*'",
	shapeDivision:         "binary operator '/'",
	shapeModulo:           "binary operator '%'",
	shapeAddition:         "binary operator '+'",
	shapeSubtraction:      "binary operator '-'",
	shapeBitwiseAnd:       "binary operator '&'",
	shapeBitwiseOr:        "binary operator '|'",
	shapeBitwiseXor:       "binary operator '^'",
}

func (s shape) String() string {
	return shapeNames[s]
}

var binaryOps = map[shape]ast.BinaryOp{
	shapeMultiplication: ast.Mul,
	shapeDivision:       ast.Div,
	shapeModulo:         ast.Mod,
	shapeAddition:       ast.Add,
	shapeSubtraction:    ast.Sub,
	shapeBitwiseAnd:     ast.BitAnd,
	shapeBitwiseOr:      ast.BitOr,
	shapeBitwiseXor:     ast.BitXor,
}

// classify determines the shape of e. It is total: anything that is not one
// of the alternatives of the expr rule is shapeMalformed.
func classify(e *cst.Expr) shape {
	switch len(e.Exprs) {
	case 0:
		return classifyTerminal(e)
	case 1:
		return classifyUnary(e)
	case 2:
		return classifyBinary(e)
	default:
		return shapeMalformed
	}
}

// classifyTerminal accepts a leaf only when exactly one terminal is set and
// the node carries no label or operator token.
func classifyTerminal(e *cst.Expr) shape {
	if hasLabelOrOperator(e) {
		return shapeMalformed
	}
	terminals := 0
	for _, tok := range []*cst.Token{e.IntLiteral, e.CharLiteral, e.Identifier} {
		if tok != nil {
			terminals++
		}
	}
	if terminals != 1 {
		return shapeMalformed
	}
	switch {
	case e.IntLiteral != nil:
		return shapeIntLiteral
	case e.CharLiteral != nil:
		return shapeCharLiteral
	default:
		return shapeIdentifier
	}
}

func hasLabelOrOperator(e *cst.Expr) bool {
	for _, tok := range []*cst.Token{
		e.ParOp, e.PostfixOp, e.ArgOp, e.PrefixOp,
		e.OpPlus, e.OpMinus, e.OpMul, e.OpDiv, e.OpMod, e.OpBAnd, e.OpBOr, e.OpBXor,
		e.OpPP, e.OpMM, e.OpNot, e.OpBNot, e.OpAsgn,
	} {
		if tok != nil {
			return true
		}
	}
	return e.ArgList != nil
}

func classifyUnary(e *cst.Expr) shape {
	switch {
	case e.ParOp != nil:
		return shapeParen
	case e.PostfixOp != nil:
		switch {
		case e.OpPP != nil:
			return shapePostfixIncrement
		case e.OpMM != nil:
			return shapePostfixDecrement
		}
	case e.ArgOp != nil:
		return shapeCall
	case e.PrefixOp != nil:
		switch {
		case e.OpPlus != nil:
			return shapePrefixPlus
		case e.OpMinus != nil:
			return shapePrefixMinus
		case e.OpPP != nil:
			return shapePrefixIncrement
		case e.OpMM != nil:
			return shapePrefixDecrement
		case e.OpNot != nil:
			return shapeLogicalNot
		case e.OpBNot != nil:
			return shapeBitwiseNot
		}
	case e.OpAsgn != nil && e.Identifier != nil:
		return shapeAssignment
	}
	return shapeMalformed
}

func classifyBinary(e *cst.Expr) shape {
	switch {
	case e.OpMul != nil:
		return shapeMultiplication
	case e.OpDiv != nil:
		return shapeDivision
	case e.OpMod != nil:
		return shapeModulo
	case e.OpPlus != nil:
		return shapeAddition
	case e.OpMinus != nil:
		return shapeSubtraction
	case e.OpBAnd != nil:
		return shapeBitwiseAnd
	case e.OpBOr != nil:
		return shapeBitwiseOr
	case e.OpBXor != nil:
		return shapeBitwiseXor
	default:
		return shapeMalformed
	}
}
