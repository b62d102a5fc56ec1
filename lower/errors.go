package lower

import (
	"errors"
	"fmt"

	"github.com/strager/cprog/diag"
)

// Sentinel errors classifying lowering failures. Use errors.Is against the
// error returned by any lowering function.
var (
	// ErrUnsupportedConstruct: the grammar accepts the construct but the
	// AST has no node for it yet.
	ErrUnsupportedConstruct = errors.New("unsupported construct")
	// ErrInvalidDeclaration: void or unknown type names, or a declarator
	// whose name cannot be determined.
	ErrInvalidDeclaration = errors.New("invalid declaration")
	// ErrEmptyStatement: a statement with no return, declaration or
	// expression clause.
	ErrEmptyStatement = errors.New("empty statement")
	// ErrMalformedExpression: an expression node whose shape matches no
	// alternative of the expr rule.
	ErrMalformedExpression = errors.New("malformed expression")
	// ErrInvalidLiteral: a literal whose text cannot be represented.
	ErrInvalidLiteral = errors.New("invalid literal")
)

// Error is a failure to lower one subtree. It has already been reported to
// the diagnostics sink by the time a caller sees it.
type Error struct {
	Kind error
	Pos  diag.Pos
	Msg  string
}

func (e *Error) Error() string {
	if !e.Pos.IsValid() {
		return e.Msg
	}
	return e.Pos.String() + ": " + e.Msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// fail reports a diagnostic and returns the matching *Error.
func (l *Lowerer) fail(kind error, pos diag.Pos, format string, args ...any) *Error {
	err := &Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
	l.sink.Report(diag.Diagnostic{Pos: pos, Message: err.Msg})
	l.debug("lowering failed", "kind", kind.Error(), "pos", pos.String(), "msg", err.Msg)
	return err
}
