package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.c")
	be.Err(t, os.WriteFile(path, []byte(src), 0644), nil)
	return path
}

func TestLowerCommand(t *testing.T) {
	path := writeSource(t, "f() { int x = 1; return x + 2; }\n")
	code, stdout, stderr := runCLI(t, "lower", path)
	be.Equal(t, code, 0)
	be.Equal(t, stderr, "")
	be.Equal(t, stdout, `(program (func "f" int64 (decl int64 (declarator "x" (assign "x" (int 1)))) (return (binary "+" (ident "x") (int 2)))))`+"\n")
}

func TestLowerCommandYAML(t *testing.T) {
	path := writeSource(t, "f() { return 1; }\n")
	code, stdout, _ := runCLI(t, "lower", "-format", "yaml", path)
	be.Equal(t, code, 0)
	be.True(t, strings.HasPrefix(stdout, "kind: Program\n"))
	be.True(t, strings.Contains(stdout, "kind: Return"))
}

func TestLowerCommandPretty(t *testing.T) {
	path := writeSource(t, "f() { return 1; }\n")
	code, stdout, _ := runCLI(t, "lower", "-format", "pretty", path)
	be.Equal(t, code, 0)
	be.True(t, strings.Contains(stdout, "ast.Program"))
	be.True(t, strings.Contains(stdout, `Name:`))
}

func TestLowerCommandUnknownFormat(t *testing.T) {
	path := writeSource(t, "f() { return 1; }\n")
	code, _, stderr := runCLI(t, "lower", "-format", "xml", path)
	be.Equal(t, code, 1)
	be.True(t, strings.Contains(stderr, `unknown format "xml"`))
}

func TestLowerCommandDiagnostics(t *testing.T) {
	path := writeSource(t, "f() {\n    void x;\n}\n")
	code, stdout, stderr := runCLI(t, "lower", path)
	be.Equal(t, code, 1)
	be.Equal(t, stdout, "")
	be.Equal(t, stderr, path+":2:5: cannot declare a variable of type void\nLowering failed\n")
}

func TestEvalCommandReportsEachDiagnosticOnce(t *testing.T) {
	code, _, stderr := runCLI(t, "eval", "f() { x++; !y; }")
	be.Equal(t, code, 1)
	be.Equal(t, strings.Count(stderr, "postfix operator '++' is not supported"), 1)
	be.Equal(t, strings.Count(stderr, "prefix operator '!' is not supported"), 1)
	be.True(t, strings.HasSuffix(stderr, "Lowering failed\n"))
}

func TestEvalUsageMentionsTerminator(t *testing.T) {
	code, _, stderr := runCLI(t, "eval", "-h")
	be.Equal(t, code, 2)
	be.True(t, strings.Contains(stderr, "[--] <code>"))
}

func TestLowerCommandVerbose(t *testing.T) {
	path := writeSource(t, "f() { return 1; }\n")
	code, _, stderr := runCLI(t, "lower", "-v", path)
	be.Equal(t, code, 0)
	be.True(t, strings.Contains(stderr, "level=DEBUG"))
	be.True(t, strings.Contains(stderr, "lowered program"))
}

func TestCheckCommand(t *testing.T) {
	path := writeSource(t, "f() { return 1; }\n")
	code, stdout, _ := runCLI(t, "check", path)
	be.Equal(t, code, 0)
	be.Equal(t, stdout, path+": no errors found\n")

	path = writeSource(t, "f() { return 1 }\n")
	code, stdout, stderr := runCLI(t, "check", path)
	be.Equal(t, code, 1)
	be.Equal(t, stdout, "")
	be.True(t, strings.Contains(stderr, "expected ';'"))
}

func TestCheckCommandMissingFile(t *testing.T) {
	code, _, stderr := runCLI(t, "check", filepath.Join(t.TempDir(), "missing.c"))
	be.Equal(t, code, 1)
	be.True(t, strings.Contains(stderr, "Error reading file"))
}

func TestEvalCommand(t *testing.T) {
	code, stdout, _ := runCLI(t, "eval", "-expr", "--", "-(1 + 2)")
	be.Equal(t, code, 0)
	be.Equal(t, stdout, `(neg (binary "+" (int 1) (int 2)))`+"\n")

	code, stdout, _ = runCLI(t, "eval", "-expr", "1 - 2")
	be.Equal(t, code, 0)
	be.Equal(t, stdout, `(binary "-" (int 1) (int 2))`+"\n")

	code, stdout, _ = runCLI(t, "eval", "main() { return 'a'; }")
	be.Equal(t, code, 0)
	be.Equal(t, stdout, `(program (func "main" int64 (return (char "a"))))`+"\n")

	code, _, stderr := runCLI(t, "eval", "-expr", "x++")
	be.Equal(t, code, 1)
	be.True(t, strings.Contains(stderr, "1:2: postfix operator '++' is not supported"))
}

func TestUsage(t *testing.T) {
	code, stdout, _ := runCLI(t, "help")
	be.Equal(t, code, 0)
	be.True(t, strings.Contains(stdout, "Usage:"))

	code, _, stderr := runCLI(t)
	be.Equal(t, code, 2)
	be.True(t, strings.Contains(stderr, "Commands:"))

	code, _, stderr = runCLI(t, "frobnicate")
	be.Equal(t, code, 2)
	be.True(t, strings.Contains(stderr, "Unknown command: frobnicate"))

	code, _, stderr = runCLI(t, "lower")
	be.Equal(t, code, 2)
	be.True(t, strings.Contains(stderr, "expected exactly one file argument"))
}
