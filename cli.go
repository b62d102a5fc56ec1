package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kr/pretty"
	"github.com/strager/cprog/ast"
	"github.com/strager/cprog/cst"
	"github.com/strager/cprog/diag"
	"github.com/strager/cprog/lower"
)

func showUsage(w io.Writer) {
	fmt.Fprintf(w, `cprog - lowers cprog source to an abstract syntax tree

Usage:
    cprog <command> [arguments]

Commands:
    lower <file>    Parse and lower a file, then print the tree
    check <file>    Parse and lower a file, reporting errors only
    eval <code>     Lower inline source code and print the tree
    help            Show this help message

Examples:
    cprog lower examples/sum.c
    cprog lower -format yaml examples/sum.c
    cprog eval -expr '1 + 2 * x'
    cprog eval -expr -- '-x'
    cprog check -v myfile.c

Use "cprog <command> -h" for more information about a command.
`)
}

const (
	formatSExpr  = "sexpr"
	formatYAML   = "yaml"
	formatPretty = "pretty"
)

var errSyntax = errors.New("syntax errors")

// compiler holds the settings shared by the lowering commands.
type compiler struct {
	stderr  io.Writer
	verbose bool
}

func (c *compiler) options() []lower.Option {
	if !c.verbose {
		return nil
	}
	logger := slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return []lower.Option{lower.WithLogger(logger)}
}

// lowerProgram parses and lowers src, printing diagnostics under name. Syntax
// errors stop before lowering.
func (c *compiler) lowerProgram(name string, src []byte) (*ast.Program, error) {
	diags := diag.NewCollector()
	p := cst.Parse(src, diags)
	if diags.HasErrors() {
		diags.Fprint(c.stderr, name)
		return nil, errSyntax
	}
	prog, err := lower.Lower(p, diags, c.options()...)
	diags.Fprint(c.stderr, name)
	return prog, err
}

func (c *compiler) lowerExpr(name string, src []byte) (ast.Expr, error) {
	diags := diag.NewCollector()
	e := cst.ParseExpr(src, diags)
	if diags.HasErrors() {
		diags.Fprint(c.stderr, name)
		return nil, errSyntax
	}
	x, err := lower.New(diags, c.options()...).Expr(e)
	diags.Fprint(c.stderr, name)
	return x, err
}

func printNode(w io.Writer, node ast.Node, format string) error {
	switch format {
	case formatSExpr:
		_, err := fmt.Fprintln(w, ast.ToSExpr(node))
		return err
	case formatYAML:
		out, err := ast.MarshalYAML(node)
		if err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		_, err = w.Write(out)
		return err
	case formatPretty:
		_, err := fmt.Fprintf(w, "%# v\n", pretty.Formatter(node))
		return err
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", format, formatSExpr, formatYAML, formatPretty)
	}
}

func newFlagSet(name, usage, summary string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: cprog %s\n", usage)
		fmt.Fprintf(stderr, "%s\n\n", summary)
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	return fs
}

func lowerCommand(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("lower", "lower [-format sexpr|yaml|pretty] [-v] <file>", "Parse and lower a file, then print the tree", stderr)
	format := fs.String("format", formatSExpr, "Output format: sexpr, yaml or pretty")
	verbose := fs.Bool("v", false, "Trace lowering decisions on stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(stderr, "Error: expected exactly one file argument\n")
		fs.Usage()
		return 2
	}
	filename := fs.Arg(0)

	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading file %s: %v\n", filename, err)
		return 1
	}

	c := &compiler{stderr: stderr, verbose: *verbose}
	prog, err := c.lowerProgram(filename, src)
	if err != nil {
		fmt.Fprintf(stderr, "Lowering failed\n")
		return 1
	}
	if err := printNode(stdout, prog, *format); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func checkCommand(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("check", "check [-v] <file>", "Parse and lower a file, reporting errors only", stderr)
	verbose := fs.Bool("v", false, "Trace lowering decisions on stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(stderr, "Error: expected exactly one file argument\n")
		fs.Usage()
		return 2
	}
	filename := fs.Arg(0)

	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading file %s: %v\n", filename, err)
		return 1
	}

	c := &compiler{stderr: stderr, verbose: *verbose}
	if _, err := c.lowerProgram(filename, src); err != nil {
		return 1
	}
	fmt.Fprintf(stdout, "%s: no errors found\n", filename)
	return 0
}

func evalCommand(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("eval", "eval [-expr] [-format sexpr|yaml|pretty] [-v] [--] <code>", "Lower inline source code and print the tree.\nUse -- before code that starts with '-'.", stderr)
	format := fs.String("format", formatSExpr, "Output format: sexpr, yaml or pretty")
	exprOnly := fs.Bool("expr", false, "Treat the code as a single expression")
	verbose := fs.Bool("v", false, "Trace lowering decisions on stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(stderr, "Error: expected exactly one code argument\n")
		fs.Usage()
		return 2
	}
	code := []byte(fs.Arg(0))

	c := &compiler{stderr: stderr, verbose: *verbose}
	var (
		node ast.Node
		err  error
	)
	if *exprOnly {
		var x ast.Expr
		x, err = c.lowerExpr("", code)
		node = x
	} else {
		node, err = c.lowerProgram("", code)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Lowering failed\n")
		return 1
	}
	if err := printNode(stdout, node, *format); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// run dispatches to a command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		showUsage(stderr)
		return 2
	}

	command := args[0]
	args = args[1:]

	switch command {
	case "lower":
		return lowerCommand(args, stdout, stderr)
	case "check":
		return checkCommand(args, stdout, stderr)
	case "eval":
		return evalCommand(args, stdout, stderr)
	case "help", "-h", "--help":
		showUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", command)
		showUsage(stderr)
		return 2
	}
}
