package source_test

import (
	"testing"

	"litcast/internal/source"
)

func TestSpanCover(t *testing.T) {
	a := source.Span{File: 1, Start: 10, End: 20}
	b := source.Span{File: 1, Start: 5, End: 15}

	got := a.Cover(b)
	if got.Start != 5 || got.End != 20 {
		t.Errorf("Cover: got %v, want 1:5-20", got)
	}

	other := source.Span{File: 2, Start: 0, End: 100}
	got = a.Cover(other)
	if got != a {
		t.Errorf("Cover across files must be a no-op, got %v", got)
	}
}

func TestSpanEmptyLen(t *testing.T) {
	s := source.Span{File: 0, Start: 7, End: 7}
	if !s.Empty() {
		t.Error("expected empty span")
	}
	s.End = 12
	if s.Empty() || s.Len() != 5 {
		t.Errorf("Len: got %d, want 5", s.Len())
	}
}

func TestSpanContains(t *testing.T) {
	s := source.Span{Start: 3, End: 6}
	for _, off := range []uint32{3, 4, 5} {
		if !s.Contains(off) {
			t.Errorf("Contains(%d) = false, want true", off)
		}
	}
	for _, off := range []uint32{2, 6, 100} {
		if s.Contains(off) {
			t.Errorf("Contains(%d) = true, want false", off)
		}
	}
}
