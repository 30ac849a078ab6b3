package parser_test

import (
	"testing"

	"litcast/internal/ast"
	"litcast/internal/parser"
	"litcast/internal/source"
	"litcast/internal/token"
)

func scan(t *testing.T, src string, opts parser.Options) parser.Result {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.cs", []byte(src))
	return parser.ScanFile(fs.Get(id), opts)
}

func TestScanFindsCasts(t *testing.T) {
	cases := []struct {
		src      string
		typeKind token.Kind
		litText  string
		sign     string
	}{
		{"var x = (long)1;", token.KwLong, "1", ""},
		{"var x = (ulong)1L;", token.KwUlong, "1L", ""},
		{"var x = (float)1.5;", token.KwFloat, "1.5", ""},
		{"var x = (decimal)0.1;", token.KwDecimal, "0.1", ""},
		{"var x = (long)-1;", token.KwLong, "1", "-"},
		{"var x = (long)+42;", token.KwLong, "42", "+"},
		{"var x = (int) 7 ;", token.KwInt, "7", ""},
		{"M(a, (uint)3);", token.KwUint, "3", ""},
	}
	for _, c := range cases {
		res := scan(t, c.src, parser.Options{})
		if len(res.Casts) != 1 {
			t.Errorf("%q: found %d casts, want 1", c.src, len(res.Casts))
			continue
		}
		cast := res.Casts[0]
		if cast.TypeTok.Kind != c.typeKind {
			t.Errorf("%q: type %v, want %v", c.src, cast.TypeTok.Kind, c.typeKind)
		}
		if cast.Operand.Lit.Text != c.litText {
			t.Errorf("%q: literal %q, want %q", c.src, cast.Operand.Lit.Text, c.litText)
		}
		if cast.Operand.SignText() != c.sign {
			t.Errorf("%q: sign %q, want %q", c.src, cast.Operand.SignText(), c.sign)
		}
	}
}

func TestScanIgnoresNonCasts(t *testing.T) {
	cases := []string{
		"var t = typeof(long);",
		"void M(long x) { }",
		"var x = (long)y;",
		"var x = (long)~1;",    // unary ~ is not a sign
		"var x = (long)++i;",   // ++ never splits into signs
		"var s = (long)1.ToString();",
		"var s = \"(long)1\";",
		"// (long)1\nvar x = 0;",
		"#region (long)1\nvar x = 0;\n#endregion\n",
		"var c = '('; var x = 1;",
	}
	for _, src := range cases {
		res := scan(t, src, parser.Options{})
		if len(res.Casts) != 0 {
			t.Errorf("%q: found %d casts, want 0", src, len(res.Casts))
		}
	}
}

func TestScanCastSpanCoversParenThroughLiteral(t *testing.T) {
	src := "var x = (long)-1;"
	res := scan(t, src, parser.Options{})
	if len(res.Casts) != 1 {
		t.Fatalf("found %d casts, want 1", len(res.Casts))
	}
	sp := res.Casts[0].Span
	if got := src[sp.Start:sp.End]; got != "(long)-1" {
		t.Errorf("cast span text = %q, want %q", got, "(long)-1")
	}
	op := res.Casts[0].Operand.Span
	if got := src[op.Start:op.End]; got != "-1" {
		t.Errorf("operand span text = %q, want %q", got, "-1")
	}
}

func TestScanUncheckedRegions(t *testing.T) {
	cases := []struct {
		src       string
		unchecked []bool
	}{
		{"var x = (ulong)1;", []bool{false}},
		{"var x = unchecked((ulong)1);", []bool{true}},
		{"unchecked { var x = (ulong)1; }", []bool{true}},
		{"unchecked { checked { var x = (ulong)1; } }", []bool{false}},
		{"unchecked { var a = (ulong)1; } var b = (ulong)2;", []bool{true, false}},
		{"checked { var x = (ulong)1; }", []bool{false}},
		{"unchecked { if (f((ulong)1)) { var y = (ulong)2; } }", []bool{true, true}},
	}
	for _, c := range cases {
		res := scan(t, c.src, parser.Options{})
		if len(res.Casts) != len(c.unchecked) {
			t.Errorf("%q: found %d casts, want %d", c.src, len(res.Casts), len(c.unchecked))
			continue
		}
		for i, want := range c.unchecked {
			if res.Casts[i].Unchecked != want {
				t.Errorf("%q: cast %d unchecked = %v, want %v", c.src, i, res.Casts[i].Unchecked, want)
			}
		}
	}
}

func TestScanAssumeUnchecked(t *testing.T) {
	src := "var x = (ulong)1; checked { var y = (ulong)2; }"
	res := scan(t, src, parser.Options{AssumeUnchecked: true})
	if len(res.Casts) != 2 {
		t.Fatalf("found %d casts, want 2", len(res.Casts))
	}
	if !res.Casts[0].Unchecked {
		t.Error("top-level cast should inherit the assumed unchecked context")
	}
	if res.Casts[1].Unchecked {
		t.Error("checked region must override the assumed context")
	}
}

func TestScanSourceOrder(t *testing.T) {
	src := "var a = (long)1; var b = (uint)2; var c = (float)3.5;"
	res := scan(t, src, parser.Options{})
	if len(res.Casts) != 3 {
		t.Fatalf("found %d casts, want 3", len(res.Casts))
	}
	for i := 1; i < len(res.Casts); i++ {
		if res.Casts[i].Span.Start <= res.Casts[i-1].Span.Start {
			t.Errorf("casts out of source order at %d", i)
		}
	}
	if res.Casts[0].Operand.Kind != ast.OperandLit {
		t.Errorf("first operand kind = %v, want bare literal", res.Casts[0].Operand.Kind)
	}
}
