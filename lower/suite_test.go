package lower

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/nalgeon/be"
	"github.com/strager/cprog/ast"
	"github.com/strager/cprog/cst"
	"github.com/strager/cprog/diag"
	"github.com/strager/cprog/sexy"
)

func TestSexyAllTests(t *testing.T) {
	testFiles, err := filepath.Glob("testdata/*_test.md")
	be.Err(t, err, nil)
	be.True(t, len(testFiles) > 0)

	for _, testFile := range testFiles {
		testName := strings.TrimSuffix(filepath.Base(testFile), ".md")

		t.Run(testName, func(t *testing.T) {
			content, err := os.ReadFile(testFile)
			be.Err(t, err, nil)

			testCases, err := sexy.ExtractTestCases(string(content))
			be.Err(t, err, nil)

			for _, tc := range testCases {
				t.Run(tc.Name, func(t *testing.T) {
					runTestCase(t, tc)
				})
			}
		})
	}
}

func runTestCase(t *testing.T, tc sexy.TestCase) {
	diags := diag.NewCollector()
	var (
		expr   *cst.Expr
		result ast.Node
	)
	switch tc.InputType {
	case sexy.InputTypeExpr:
		expr = cst.ParseExpr([]byte(tc.Input), diags)
		if x, err := New(diags).Expr(expr); err == nil {
			result = x
		}
	case sexy.InputTypeProgram:
		p := cst.Parse([]byte(tc.Input), diags)
		prog, _ := Lower(p, diags)
		result = prog
	default:
		t.Fatalf("unknown input type: %s", tc.InputType)
	}

	checkedDiagnostics := false
	for _, assertion := range tc.Assertions {
		switch assertion.Type {
		case sexy.AssertionTypeAST:
			got := ast.ToSExpr(result)
			parsed, err := sexy.Parse(got)
			be.Err(t, err, nil)
			if parsed.String() != assertion.ParsedSexy.String() {
				t.Logf("line %d: lowered tree:\n%# v", assertion.Line, pretty.Formatter(result))
			}
			be.Equal(t, parsed.String(), assertion.ParsedSexy.String())
		case sexy.AssertionTypeCST:
			if expr == nil {
				t.Fatalf("line %d: cst assertions need a %s input", assertion.Line, sexy.InputTypeExpr)
			}
			parsed, err := sexy.Parse(cst.Dump(expr))
			be.Err(t, err, nil)
			be.Equal(t, parsed.String(), assertion.ParsedSexy.String())
		case sexy.AssertionTypeDiagnostics:
			checkedDiagnostics = true
			assertDiagnostics(t, diags.Diagnostics(), assertion)
		}
	}
	if !checkedDiagnostics && diags.HasErrors() {
		t.Errorf("unexpected diagnostics:\n%s", diags)
	}
}

// assertDiagnostics checks that each line of the assertion is a substring of
// the diagnostic reported at the same index.
func assertDiagnostics(t *testing.T, got []diag.Diagnostic, assertion sexy.Assertion) {
	t.Helper()
	var want []string
	for _, line := range strings.Split(assertion.Content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			want = append(want, line)
		}
	}
	if len(got) != len(want) {
		t.Errorf("line %d: got %d diagnostics, want %d: %v", assertion.Line, len(got), len(want), got)
		return
	}
	for i, w := range want {
		if !strings.Contains(got[i].String(), w) {
			t.Errorf("line %d: diagnostic %d is %q, want it to contain %q", assertion.Line, i, got[i], w)
		}
	}
}
