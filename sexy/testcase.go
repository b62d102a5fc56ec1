package sexy

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// InputType represents the type of input code fence in a Sexy test
type InputType string

const (
	InputTypeExpr    InputType = "cprog-expr"
	InputTypeProgram InputType = "cprog-program"
)

// AssertionType represents the type of assertion code fence in a Sexy test
type AssertionType string

const (
	// AST matches the lowered tree, printed by ast.ToSExpr.
	AssertionTypeAST AssertionType = "ast"
	// CST matches the shape of the parse tree: arity and operator of
	// every expr node.
	AssertionTypeCST AssertionType = "cst"
	// Diagnostics lists the expected diagnostic messages, one per line, in
	// report order. Each line must be a substring of the matching message.
	AssertionTypeDiagnostics AssertionType = "diagnostics"
)

// Assertion represents a single assertion in a Sexy test
type Assertion struct {
	Type       AssertionType // The type of assertion (ast, cst, diagnostics)
	Content    string        // The raw content of the assertion code fence
	ParsedSexy *Node         // The parsed Sexy expression, nil for diagnostics
	Line       int           // Line of the opening fence in the markdown file
}

// TestCase represents a complete Sexy test case extracted from Markdown
type TestCase struct {
	Name       string      // The test name from the heading (after "Test: ")
	Input      string      // The raw input code from the input fence
	InputType  InputType   // The type of input fence (cprog-expr, cprog-program)
	Assertions []Assertion // All assertions for this test case
}

// ExtractTestCases parses a Markdown document and extracts all Sexy test cases.
//
// A test case starts at a heading of the form "Test: <name>" and runs until
// the next such heading. It must contain exactly one input fence and at
// least one assertion fence. Fences with a language are only allowed inside
// test cases; fences without one are ignored anywhere.
func ExtractTestCases(markdownContent string) ([]TestCase, error) {
	source := []byte(markdownContent)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	x := &extractor{source: source}
	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		var err error
		switch n := node.(type) {
		case *ast.Heading:
			err = x.heading(n)
		case *ast.FencedCodeBlock:
			err = x.fence(n)
		}
		if err != nil {
			return ast.WalkStop, err
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking markdown AST: %w", err)
	}
	if err := x.flush(); err != nil {
		return nil, err
	}
	return x.cases, nil
}

type extractor struct {
	source  []byte
	cases   []TestCase
	current *TestCase
}

// flush validates the test case being built and appends it to the result.
func (x *extractor) flush() error {
	if x.current == nil {
		return nil
	}
	if err := validateTestCase(x.current); err != nil {
		return err
	}
	x.cases = append(x.cases, *x.current)
	x.current = nil
	return nil
}

func (x *extractor) heading(n *ast.Heading) error {
	headingText := extractTextFromNode(n, x.source)
	name, ok := strings.CutPrefix(headingText, "Test: ")
	if !ok {
		return nil
	}
	if err := x.flush(); err != nil {
		return err
	}
	x.current = &TestCase{Name: name, Assertions: []Assertion{}}
	return nil
}

func (x *extractor) fence(n *ast.FencedCodeBlock) error {
	language := string(n.Language(x.source))
	if language == "" {
		return nil
	}
	lineNum := getLineNumber(n, x.source)
	known := isInputFence(language) || isAssertionFence(language)

	if x.current == nil {
		if known {
			return fmt.Errorf("line %d: %s fence found outside of test case", lineNum, language)
		}
		return fmt.Errorf("line %d: unknown fence language '%s' found outside of test case", lineNum, language)
	}
	tc := x.current
	if !known {
		return fmt.Errorf("line %d: unknown fence language '%s' in test '%s'", lineNum, language, tc.Name)
	}

	content := strings.TrimRight(extractCodeBlockContent(n, x.source), "\n")
	if isInputFence(language) {
		if tc.InputType != "" {
			return fmt.Errorf("line %d: multiple input fences found in test '%s'", lineNum, tc.Name)
		}
		tc.Input = content
		tc.InputType = InputType(language)
		return nil
	}

	assertion := Assertion{Type: AssertionType(language), Content: content, Line: lineNum}
	if assertion.Type != AssertionTypeDiagnostics {
		parsed, err := Parse(content)
		if err != nil {
			return fmt.Errorf("line %d: failed to parse Sexy assertion in test '%s': %w", lineNum, tc.Name, err)
		}
		assertion.ParsedSexy = parsed
	}
	tc.Assertions = append(tc.Assertions, assertion)
	return nil
}

// extractTextFromNode extracts plain text content from a markdown node
func extractTextFromNode(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*ast.Text); ok && entering {
			buf.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

// extractCodeBlockContent extracts the content from a fenced code block
func extractCodeBlockContent(codeBlock *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	lines := codeBlock.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(source))
	}
	return buf.String()
}

func isInputFence(language string) bool {
	switch InputType(language) {
	case InputTypeExpr, InputTypeProgram:
		return true
	}
	return false
}

func isAssertionFence(language string) bool {
	switch AssertionType(language) {
	case AssertionTypeAST, AssertionTypeCST, AssertionTypeDiagnostics:
		return true
	}
	return false
}

// validateTestCase ensures a test case has both input and at least one assertion
func validateTestCase(tc *TestCase) error {
	if tc.InputType == "" {
		return fmt.Errorf("test '%s' has no input fence", tc.Name)
	}
	if len(tc.Assertions) == 0 {
		return fmt.Errorf("test '%s' has no assertion fences", tc.Name)
	}
	return nil
}

// getLineNumber returns the 1-based line of the first content line of node,
// or 1 if it has none.
func getLineNumber(node ast.Node, source []byte) int {
	if node.Lines().Len() == 0 {
		return 1
	}
	startPos := node.Lines().At(0).Start
	return bytes.Count(source[:min(startPos, len(source))], []byte{'\n'}) + 1
}
