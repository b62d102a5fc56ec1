package sexy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nalgeon/be"
)

func TestExtractTestCases_ExpressionsTestMd(t *testing.T) {
	content, err := os.ReadFile("../lower/testdata/expressions_test.md")
	be.Err(t, err, nil)

	testCases, err := ExtractTestCases(string(content))
	be.Err(t, err, nil)
	be.True(t, len(testCases) > 5)

	var addition, precedence *TestCase
	for i := range testCases {
		tc := &testCases[i]
		switch tc.Name {
		case "addition":
			addition = tc
		case "multiplication binds tighter than addition":
			precedence = tc
		}
	}

	be.True(t, addition != nil)
	be.Equal(t, addition.Input, "1 + 2")
	be.Equal(t, addition.InputType, InputTypeExpr)
	be.Equal(t, len(addition.Assertions), 2)
	be.Equal(t, addition.Assertions[0].Type, AssertionTypeCST)
	be.Equal(t, addition.Assertions[0].ParsedSexy.String(), "(+ 1 2)")
	be.Equal(t, addition.Assertions[1].Type, AssertionTypeAST)
	be.Equal(t, addition.Assertions[1].ParsedSexy.String(), `(binary "+" (int 1) (int 2))`)

	be.True(t, precedence != nil)
	assertion := precedence.Assertions[0].ParsedSexy
	be.Equal(t, assertion.Head(), "binary")
	be.Equal(t, len(assertion.Items), 4) // (binary "+" (int 1) (binary "*" ...))
	be.Equal(t, assertion.Items[1].Type, NodeString)
	be.Equal(t, assertion.Items[1].Text, "+")
	be.Equal(t, assertion.Items[2].Head(), "int")
	be.Equal(t, assertion.Items[3].Head(), "binary")
}

func TestExtractTestCases_AllSuites(t *testing.T) {
	files, err := filepath.Glob("../lower/testdata/*_test.md")
	be.Err(t, err, nil)
	be.True(t, len(files) > 0)

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			content, err := os.ReadFile(file)
			be.Err(t, err, nil)

			testCases, err := ExtractTestCases(string(content))
			be.Err(t, err, nil)
			be.True(t, len(testCases) > 0)

			names := map[string]bool{}
			for _, tc := range testCases {
				be.True(t, tc.Name != "")
				be.True(t, !names[tc.Name])
				names[tc.Name] = true
				be.True(t, isInputFence(string(tc.InputType)))
				be.True(t, len(tc.Assertions) > 0)
				for _, a := range tc.Assertions {
					be.True(t, a.Line > 0)
					if a.Type != AssertionTypeDiagnostics {
						be.True(t, a.ParsedSexy != nil)
					}
				}
			}
		})
	}
}
