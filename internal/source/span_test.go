package source

import "testing"

func TestSpanEmptyAndLen(t *testing.T) {
	s := Span{File: 0, Start: 3, End: 3}
	if !s.Empty() {
		t.Error("expected empty span")
	}
	if s.Len() != 0 {
		t.Errorf("expected len 0, got %d", s.Len())
	}

	s = Span{File: 0, Start: 2, End: 7}
	if s.Empty() {
		t.Error("expected non-empty span")
	}
	if s.Len() != 5 {
		t.Errorf("expected len 5, got %d", s.Len())
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}

	got := a.Cover(b)
	want := Span{File: 1, Start: 2, End: 8}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}

	// different file: untouched
	c := Span{File: 2, Start: 0, End: 100}
	got = a.Cover(c)
	if got != a {
		t.Errorf("expected %v, got %v", a, got)
	}
}
