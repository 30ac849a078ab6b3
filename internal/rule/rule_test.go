package rule_test

import (
	"testing"

	"litcast/internal/parser"
	"litcast/internal/rule"
	"litcast/internal/source"
)

// evalSnippet scans src and evaluates its single cast. ok is false when the
// scanner found no cast at all (shape rejected before the rule even runs).
func evalSnippet(t *testing.T, src string) (rule.Finding, rule.Verdict, bool) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.cs", []byte(src))
	res := parser.ScanFile(fs.Get(id), parser.Options{})
	if len(res.Casts) == 0 {
		return rule.Finding{}, rule.VerdictNotApplicable, false
	}
	if len(res.Casts) > 1 {
		t.Fatalf("%q: %d casts, want at most 1", src, len(res.Casts))
	}
	f, v := rule.Evaluate(res.Casts[0])
	return f, v, true
}

func TestEvaluateFlags(t *testing.T) {
	cases := []string{
		"var x = (long)1;",
		"var x = (ulong)1;",
		"var x = (uint)1;",
		"var x = (float)1;",
		"var x = (double)1;",
		"var x = (decimal)1;",
		"var x = (float)+1;",
		"var x = (double)-1;",
		"var x = (ulong)1L;", // wrong suffix for the target, still rewritable
		"var x = (long)0x1F;",
		"var x = (float)1.5;",
	}
	for _, src := range cases {
		_, v, found := evalSnippet(t, src)
		if !found {
			t.Errorf("%q: cast not found", src)
			continue
		}
		if v != rule.VerdictMatched {
			t.Errorf("%q: verdict %v, want matched", src, v)
		}
	}
}

func TestEvaluateNotApplicable(t *testing.T) {
	// shapes the scanner rejects outright
	rejected := []string{
		"var x = (long)~1;",
		"var x = (long)~+1;",
		"var x = (bool)true;",
		"var x = (long)x;",
	}
	for _, src := range rejected {
		if _, _, found := evalSnippet(t, src); found {
			t.Errorf("%q: scanner produced a cast, want none", src)
		}
	}

	// casts the rule rejects
	cases := []string{
		"var x = (int)1;",      // no suffix notation for int
		"var x = (short)1;",
		"var x = (long)0b101;", // binary literals stay untouched
		"var x = (long)1_000;", // digit separators too
		"var x = (long)1.5;",   // 1.5L would not be a literal
		"var x = (float)0x10;", // 0x10F would not be a literal
	}
	for _, src := range cases {
		_, v, found := evalSnippet(t, src)
		if !found {
			t.Errorf("%q: cast not found", src)
			continue
		}
		if v != rule.VerdictNotApplicable {
			t.Errorf("%q: verdict %v, want not applicable", src, v)
		}
	}
}

func TestEvaluateRedundant(t *testing.T) {
	cases := []string{
		"var x = (long)1L;",
		"var x = (long)1l;",
		"var x = (ulong)1UL;",
		"var x = (float)1.5F;",
		"var x = (double)1.5;", // bare real literal is already double
		"var x = (double)1d;",
	}
	for _, src := range cases {
		_, v, found := evalSnippet(t, src)
		if !found {
			t.Errorf("%q: cast not found", src)
			continue
		}
		if v != rule.VerdictRedundant {
			t.Errorf("%q: verdict %v, want redundant", src, v)
		}
	}
}

func TestEvaluateInvalidConstant(t *testing.T) {
	cases := []string{
		"var x = (ulong)-1;",
		"var x = (uint)-1;",
		"var x = (uint)4294967296;",
		"var x = (long)9223372036854775808;",
		"var x = (float)3.5e38;",
	}
	for _, src := range cases {
		_, v, found := evalSnippet(t, src)
		if !found {
			t.Errorf("%q: cast not found", src)
			continue
		}
		if v != rule.VerdictInvalidConstant {
			t.Errorf("%q: verdict %v, want invalid constant", src, v)
		}
	}
}

func TestEvaluateUncheckedTruncation(t *testing.T) {
	f, v, found := evalSnippet(t, "var x = unchecked((ulong)-1L);")
	if !found || v != rule.VerdictMatched {
		t.Fatalf("verdict %v (found=%v), want matched", v, found)
	}
	if !f.Wrapped || f.WrappedText != "18446744073709551615" {
		t.Errorf("finding = %+v, want wrapped 18446744073709551615", f)
	}

	// same cast without the unchecked wrapper stays invalid
	_, v, found = evalSnippet(t, "var x = (ulong)-1L;")
	if !found || v != rule.VerdictInvalidConstant {
		t.Errorf("checked verdict %v (found=%v), want invalid constant", v, found)
	}
}

func TestEvaluateFindingFields(t *testing.T) {
	src := "var x = (float)+1;"
	f, v, found := evalSnippet(t, src)
	if !found || v != rule.VerdictMatched {
		t.Fatalf("verdict %v (found=%v), want matched", v, found)
	}
	if got := src[f.Span.Start:f.Span.End]; got != "(float)+1" {
		t.Errorf("finding span text = %q, want %q", got, "(float)+1")
	}
	if f.SignText != "+" {
		t.Errorf("sign = %q, want +", f.SignText)
	}
	if f.Lit.Digits != "1" {
		t.Errorf("digits = %q, want 1", f.Lit.Digits)
	}
}
