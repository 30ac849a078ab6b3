package rewrite_test

import (
	"strings"
	"testing"

	"litcast/internal/literal"
	"litcast/internal/parser"
	"litcast/internal/rewrite"
	"litcast/internal/rule"
	"litcast/internal/source"
)

func finding(t *testing.T, src string) (rule.Finding, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.cs", []byte(src))
	file := fs.Get(id)
	res := parser.ScanFile(file, parser.Options{})
	if len(res.Casts) != 1 {
		t.Fatalf("%q: %d casts, want 1", src, len(res.Casts))
	}
	f, v := rule.Evaluate(res.Casts[0])
	if v != rule.VerdictMatched {
		t.Fatalf("%q: verdict %v, want matched", src, v)
	}
	return f, file
}

func TestReplacement(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"var x = (long)1;", "1L"},
		{"var x = (uint)1;", "1U"},
		{"var x = (ulong)1;", "1UL"},
		{"var x = (float)1;", "1F"},
		{"var x = (double)1;", "1D"},
		{"var x = (decimal)1;", "1M"},
		{"var x = (float)+1;", "+1F"},
		{"var x = (double)-1;", "-1D"},
		{"var x = (ulong)1L;", "1UL"},   // old suffix dropped, never stacked
		{"var x = (ulong)1u;", "1UL"},
		{"var x = (long)0x1F;", "0x1FL"},
		{"var x = (float)1.5;", "1.5F"},
		{"var x = (decimal)1.5e2;", "1.5e2M"},
		{"var x = unchecked((ulong)-1L);", "18446744073709551615UL"},
		{"var x = unchecked((uint)-1);", "4294967295U"},
	}
	for _, c := range cases {
		f, _ := finding(t, c.src)
		if got := rewrite.Replacement(f); got != c.want {
			t.Errorf("%q: replacement %q, want %q", c.src, got, c.want)
		}
	}
}

func TestReplacementRoundTrip(t *testing.T) {
	// classifying the rewritten literal must land exactly on the target kind
	cases := []string{
		"var x = (long)1;",
		"var x = (uint)1;",
		"var x = (ulong)1L;",
		"var x = (float)1.5;",
		"var x = (double)2;",
		"var x = (decimal)1;",
		"var x = unchecked((ulong)-1L);",
	}
	for _, src := range cases {
		f, _ := finding(t, src)
		text := strings.TrimLeft(rewrite.Replacement(f), "+-")
		if !literal.Recognized(text) {
			t.Errorf("%q: replacement %q is not a literal", src, text)
			continue
		}
		if got := literal.Classify(text).Kind; got != f.Target {
			t.Errorf("%q: replacement classifies as %v, want %v", src, got, f.Target)
		}
	}
}

func TestFixEditGuardsOnOriginalText(t *testing.T) {
	src := "var x = (ulong)1L;"
	f, file := finding(t, src)
	fix := rewrite.Fix(file, f)
	if len(fix.Edits) != 1 {
		t.Fatalf("%d edits, want 1", len(fix.Edits))
	}
	edit := fix.Edits[0]
	if edit.OldText != "(ulong)1L" {
		t.Errorf("OldText = %q, want the original cast text", edit.OldText)
	}
	if edit.NewText != "1UL" {
		t.Errorf("NewText = %q, want 1UL", edit.NewText)
	}
	if fix.ID != rewrite.FixID {
		t.Errorf("fix ID = %q, want %q", fix.ID, rewrite.FixID)
	}
}
