package diag

import (
	"bytes"
	"testing"

	"github.com/nalgeon/be"
)

func TestPos(t *testing.T) {
	be.Equal(t, Pos{Line: 3, Col: 7}.String(), "3:7")
	be.True(t, Pos{Line: 1, Col: 1}.IsValid())
	be.True(t, !Pos{}.IsValid())
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Pos: Pos{Line: 2, Col: 5}, Message: "unknown type name 'foo'"}
	be.Equal(t, d.String(), "2:5: unknown type name 'foo'")

	d = Diagnostic{Message: "missing expression"}
	be.Equal(t, d.String(), "missing expression")
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	be.True(t, !c.HasErrors())
	be.Equal(t, c.String(), "")

	Errorf(c, Pos{Line: 1, Col: 1}, "first %d", 1)
	Errorf(c, Pos{}, "second")

	be.True(t, c.HasErrors())
	be.Equal(t, len(c.Diagnostics()), 2)
	be.Equal(t, c.Diagnostics()[0].Message, "first 1")
	be.Equal(t, c.String(), "1:1: first 1\nsecond")

	var buf bytes.Buffer
	c.Fprint(&buf, "main.c")
	be.Equal(t, buf.String(), "main.c:1:1: first 1\nmain.c:second\n")

	buf.Reset()
	c.Fprint(&buf, "")
	be.Equal(t, buf.String(), "1:1: first 1\nsecond\n")
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, "x.c")
	Errorf(w, Pos{Line: 4, Col: 2}, "oops")
	be.Equal(t, buf.String(), "x.c:4:2: oops\n")

	buf.Reset()
	Errorf(NewWriter(&buf, ""), Pos{Line: 4, Col: 2}, "oops")
	be.Equal(t, buf.String(), "4:2: oops\n")
}

func TestTee(t *testing.T) {
	a := NewCollector()
	b := NewCollector()
	sink := Tee(a, Discard, b)
	Errorf(sink, Pos{Line: 1, Col: 2}, "shared")
	be.Equal(t, a.String(), "1:2: shared")
	be.Equal(t, b.String(), "1:2: shared")
}
