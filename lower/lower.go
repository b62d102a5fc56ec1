// Package lower turns the concrete syntax tree produced by package cst into
// the abstract syntax tree of package ast.
//
// Lowering is a post-order walk: children are lowered before their parent
// node is assembled. Below the function level every lowering function
// returns either a node or an error, never both. Failures are reported once,
// by the function that detects them, to the diag.Sink given to New; callers
// only propagate.
package lower

import (
	"context"
	"errors"
	"log/slog"

	"github.com/strager/cprog/ast"
	"github.com/strager/cprog/cst"
	"github.com/strager/cprog/diag"
)

// Lowerer converts CST nodes into AST nodes. It keeps no state between
// calls apart from the sink and logger it was created with, and must not be
// used from several goroutines at once.
type Lowerer struct {
	sink   diag.Sink
	logger *slog.Logger
}

// Option configures a Lowerer.
type Option func(*Lowerer)

// WithLogger traces lowering decisions at debug level. A nil logger disables
// tracing, which is the default.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Lowerer) {
		l.logger = logger
	}
}

// New creates a Lowerer reporting diagnostics to sink.
func New(sink diag.Sink, opts ...Option) *Lowerer {
	if sink == nil {
		sink = diag.Discard
	}
	l := &Lowerer{sink: sink}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Lower lowers a whole program with a fresh Lowerer. See Lowerer.Program.
func Lower(p *cst.Program, sink diag.Sink, opts ...Option) (*ast.Program, error) {
	return New(sink, opts...).Program(p)
}

func (l *Lowerer) debug(msg string, args ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Log(context.Background(), slog.LevelDebug, msg, args...)
}

// Program lowers every function definition in source order.
//
// A function that fails to lower completely is still included with the
// statements that did lower, so that one bad statement does not hide the
// diagnostics of its siblings. The returned error joins every failure; when
// it is non-nil the program must be treated as not lowered even though a
// partial tree is returned.
func (l *Lowerer) Program(p *cst.Program) (*ast.Program, error) {
	prog := &ast.Program{}
	if p == nil {
		return prog, nil
	}
	var errs []error
	for _, fctx := range p.Funcdefs {
		f, err := l.Funcdef(fctx)
		if err != nil {
			errs = append(errs, err)
		}
		if f != nil {
			prog.AppendFunc(f)
		}
	}
	l.debug("lowered program", "funcs", len(prog.Funcs), "errors", len(errs))
	return prog, errors.Join(errs...)
}

// Funcdef lowers a function definition. The return type is always int64;
// the grammar's optional return type name is not interpreted yet.
//
// Statements that fail are left out of the body and their errors joined into
// the returned error. The function itself is nil only when it has no name.
func (l *Lowerer) Funcdef(f *cst.Funcdef) (*ast.FuncDef, error) {
	if f == nil || f.Identifier == nil {
		return nil, l.fail(ErrInvalidDeclaration, diag.Pos{}, "function definition without a name")
	}
	fn := &ast.FuncDef{Name: f.Identifier.Text, ReturnType: ast.Int64}
	if f.Block == nil {
		return fn, nil
	}
	var errs []error
	for _, sctx := range f.Block.Statements {
		s, err := l.Statement(sctx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		fn.AppendStmt(s)
	}
	l.debug("lowered function", "name", fn.Name, "stmts", len(fn.Body))
	return fn, errors.Join(errs...)
}

// Statement lowers a statement into a Return, a Declaration or an ExprStmt,
// checking the clauses in that order.
func (l *Lowerer) Statement(s *cst.Statement) (ast.Stmt, error) {
	switch {
	case s == nil:
		return nil, l.fail(ErrEmptyStatement, diag.Pos{}, "empty statement currently not supported")
	case s.ReturnStatement != nil:
		r, err := l.Return(s.ReturnStatement)
		if err != nil {
			return nil, err
		}
		return r, nil
	case s.Declaration != nil:
		d, err := l.Declaration(s.Declaration)
		if err != nil {
			return nil, err
		}
		return d, nil
	case s.Expr != nil:
		x, err := l.Expr(s.Expr)
		if err != nil {
			return nil, err
		}
		return &ast.ExprStmt{X: x}, nil
	default:
		return nil, l.fail(ErrEmptyStatement, s.Start, "empty statement currently not supported")
	}
}

// Return lowers a return statement.
func (l *Lowerer) Return(r *cst.ReturnStatement) (*ast.Return, error) {
	if r == nil {
		return nil, l.fail(ErrMalformedExpression, diag.Pos{}, "missing return statement")
	}
	if r.Expr == nil {
		pos := diag.Pos{}
		if r.Return != nil {
			pos = r.Return.Pos
		}
		return nil, l.fail(ErrMalformedExpression, pos, "return statement without a value")
	}
	x, err := l.Expr(r.Expr)
	if err != nil {
		return nil, err
	}
	return &ast.Return{Value: x}, nil
}
