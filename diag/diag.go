// Package diag carries compiler diagnostics from the parser and the lowering
// pass to whoever wants to print or inspect them.
package diag

import (
	"fmt"
	"io"
	"strings"
)

// Pos is a 1-based source position.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// IsValid reports whether the position was set.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

// Diagnostic is a single error message tied to a source position.
type Diagnostic struct {
	Pos     Pos
	Message string
}

func (d Diagnostic) String() string {
	if !d.Pos.IsValid() {
		return d.Message
	}
	return d.Pos.String() + ": " + d.Message
}

// Sink receives diagnostics. Reporting never fails and never stops the
// reporter; sinks are not queried for severity counts.
type Sink interface {
	Report(d Diagnostic)
}

// Errorf formats a message and reports it to sink.
func Errorf(sink Sink, pos Pos, format string, args ...any) {
	sink.Report(Diagnostic{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

// Collector accumulates diagnostics in report order.
type Collector struct {
	diags []Diagnostic
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Report(d Diagnostic) {
	c.diags = append(c.diags, d)
}

func (c *Collector) HasErrors() bool {
	return len(c.diags) > 0
}

// Diagnostics returns the collected diagnostics. The slice must not be modified.
func (c *Collector) Diagnostics() []Diagnostic {
	return c.diags
}

// String renders one diagnostic per line.
func (c *Collector) String() string {
	var sb strings.Builder
	for i, d := range c.diags {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(d.String())
	}
	return sb.String()
}

// Fprint writes every collected diagnostic to w, prefixed with name when it is
// not empty.
func (c *Collector) Fprint(w io.Writer, name string) {
	for _, d := range c.diags {
		if name != "" {
			fmt.Fprintf(w, "%s:%s\n", name, d)
		} else {
			fmt.Fprintln(w, d)
		}
	}
}

// Writer prints each diagnostic as soon as it is reported.
type Writer struct {
	w    io.Writer
	name string
}

// NewWriter returns a sink printing to w. name, typically the source file
// name, prefixes every line when it is not empty.
func NewWriter(w io.Writer, name string) *Writer {
	return &Writer{w: w, name: name}
}

func (w *Writer) Report(d Diagnostic) {
	if w.name != "" {
		fmt.Fprintf(w.w, "%s:%s\n", w.name, d)
		return
	}
	fmt.Fprintln(w.w, d)
}

type tee []Sink

func (t tee) Report(d Diagnostic) {
	for _, s := range t {
		s.Report(d)
	}
}

// Tee returns a sink that forwards every diagnostic to each of sinks in order.
func Tee(sinks ...Sink) Sink {
	return tee(sinks)
}

// Discard drops every diagnostic.
var Discard Sink = discard{}

type discard struct{}

func (discard) Report(Diagnostic) {}
