package lexer

import (
	"testing"

	"regxl/internal/source"
)

func newTestCursor(content string) Cursor {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rgx", []byte(content))
	return NewCursor(fs.Get(id))
}

func TestCursorBumpAndEOF(t *testing.T) {
	c := newTestCursor("ab")

	if c.EOF() {
		t.Fatal("unexpected EOF at start")
	}
	if b := c.Bump(); b != 'a' {
		t.Fatalf("expected 'a', got %q", b)
	}
	if b := c.Bump(); b != 'b' {
		t.Fatalf("expected 'b', got %q", b)
	}
	if !c.EOF() {
		t.Fatal("expected EOF")
	}
	if b := c.Bump(); b != 0 {
		t.Fatalf("expected 0 after EOF, got %q", b)
	}
}

func TestCursorPeek2(t *testing.T) {
	c := newTestCursor("xy")
	b0, b1, ok := c.Peek2()
	if !ok || b0 != 'x' || b1 != 'y' {
		t.Fatalf("unexpected Peek2 result: %q %q %v", b0, b1, ok)
	}

	c.Bump()
	if _, _, ok := c.Peek2(); ok {
		t.Fatal("expected Peek2 to fail with one byte left")
	}
}

func TestCursorEat(t *testing.T) {
	c := newTestCursor("?x")
	if !c.Eat('?') {
		t.Fatal("expected Eat('?') to succeed")
	}
	if c.Eat('?') {
		t.Fatal("expected second Eat('?') to fail")
	}
	if c.Peek() != 'x' {
		t.Fatalf("expected 'x', got %q", c.Peek())
	}
}

func TestCursorMarkSpan(t *testing.T) {
	c := newTestCursor("hello")
	m := c.Mark()
	c.Bump()
	c.Bump()
	sp := c.SpanFrom(m)
	if sp.Start != 0 || sp.End != 2 {
		t.Fatalf("expected span 0-2, got %d-%d", sp.Start, sp.End)
	}
}
