package lexer_test

import (
	"testing"

	"litcast/internal/diag"
	"litcast/internal/lexer"
	"litcast/internal/source"
	"litcast/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
		Fixes:    fixes,
	})
}

func (r *testReporter) errorCount() int {
	count := 0
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			count++
		}
	}
	return count
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(t *testing.T, input string) (*lexer.Lexer, *testReporter) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.cs", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

type expected struct {
	kind token.Kind
	text string
}

// expectTokens lexes input and compares kinds and texts, ignoring the
// trailing EOF token.
func expectTokens(t *testing.T, input string, want []expected) {
	t.Helper()
	lx, _ := makeTestLexer(t, input)
	toks := lx.All()
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		t.Fatalf("token stream must end with EOF, got %v", toks)
	}
	toks = toks[:len(toks)-1]
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Kind != w.kind {
			t.Errorf("token %d kind = %v, want %v (%q)", i, toks[i].Kind, w.kind, toks[i].Text)
		}
		if toks[i].Text != w.text {
			t.Errorf("token %d text = %q, want %q", i, toks[i].Text, w.text)
		}
	}
}

func TestLexIntegerLiterals(t *testing.T) {
	cases := []struct {
		input string
		kind  token.Kind
	}{
		{"0", token.IntLit},
		{"42", token.IntLit},
		{"1_000_000", token.IntLit},
		{"1u", token.IntLit},
		{"1U", token.IntLit},
		{"1l", token.IntLit},
		{"1L", token.IntLit},
		{"1ul", token.IntLit},
		{"1UL", token.IntLit},
		{"1Ul", token.IntLit},
		{"0x1F", token.IntLit},
		{"0XABCDEF", token.IntLit},
		{"0xFFUL", token.IntLit},
		{"0b1010", token.IntLit},
		{"0b1010UL", token.IntLit},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			expectTokens(t, tc.input, []expected{{tc.kind, tc.input}})
		})
	}
}

func TestLexRealLiterals(t *testing.T) {
	cases := []string{
		"1.5",
		".5",
		"1.5f",
		"1.5F",
		"1.5d",
		"1.5m",
		"1f",
		"2d",
		"3m",
		"1e10",
		"1E10",
		"1e+10",
		"1e-10",
		"1.5e2M",
		".25e-1f",
	}
	for _, input := range cases {
		t.Run(input, func(t *testing.T) {
			expectTokens(t, input, []expected{{token.RealLit, input}})
		})
	}
}

// Member access on a literal must keep its Dot token: 1.ToString() is not a
// real literal.
func TestLexDotAfterIntIsMemberAccess(t *testing.T) {
	expectTokens(t, "1.ToString()", []expected{
		{token.IntLit, "1"},
		{token.Dot, "."},
		{token.Ident, "ToString"},
		{token.LParen, "("},
		{token.RParen, ")"},
	})
}

func TestLexBareExponentStaysInt(t *testing.T) {
	// "1e" alone: the e starts an identifier
	expectTokens(t, "1e", []expected{
		{token.IntLit, "1"},
		{token.Ident, "e"},
	})
}

func TestLexKeywordsAndIdents(t *testing.T) {
	expectTokens(t, "long ulong uint int float double decimal longing", []expected{
		{token.KwLong, "long"},
		{token.KwUlong, "ulong"},
		{token.KwUint, "uint"},
		{token.KwInt, "int"},
		{token.KwFloat, "float"},
		{token.KwDouble, "double"},
		{token.KwDecimal, "decimal"},
		{token.Ident, "longing"},
	})
}

func TestLexCheckedUncheckedKeywords(t *testing.T) {
	expectTokens(t, "unchecked checked", []expected{
		{token.KwUnchecked, "unchecked"},
		{token.KwChecked, "checked"},
	})
}

func TestLexVerbatimIdentifierIsNotKeyword(t *testing.T) {
	expectTokens(t, "@long", []expected{
		{token.Ident, "@long"},
	})
}

func TestLexCastShape(t *testing.T) {
	expectTokens(t, "(long)1;", []expected{
		{token.LParen, "("},
		{token.KwLong, "long"},
		{token.RParen, ")"},
		{token.IntLit, "1"},
		{token.Semicolon, ";"},
	})
}

func TestLexSignedCastShape(t *testing.T) {
	expectTokens(t, "(ulong)-1L", []expected{
		{token.LParen, "("},
		{token.KwUlong, "ulong"},
		{token.RParen, ")"},
		{token.Minus, "-"},
		{token.IntLit, "1L"},
	})
}

func TestLexStrings(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"plain", `"hello"`},
		{"escape", `"a\"b"`},
		{"verbatim", `@"C:\path"`},
		{"verbatim doubled quote", `@"a""b"`},
		{"interpolated", `$"x = {(long)1}"`},
		{"interpolated verbatim", `$@"x {1}"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			expectTokens(t, tc.input, []expected{{token.StringLit, tc.input}})
		})
	}
}

func TestLexVerbatimStringSpansNewline(t *testing.T) {
	input := "@\"a\nb\""
	expectTokens(t, input, []expected{{token.StringLit, input}})
}

func TestLexCharLiteral(t *testing.T) {
	expectTokens(t, `'x' '\n' '\''`, []expected{
		{token.CharLit, `'x'`},
		{token.CharLit, `'\n'`},
		{token.CharLit, `'\''`},
	})
}

// Cast-like text inside strings and chars must not produce cast tokens.
func TestLexCastInsideStringStaysOpaque(t *testing.T) {
	expectTokens(t, `var s = "(long)1";`, []expected{
		{token.Ident, "var"},
		{token.Ident, "s"},
		{token.Assign, "="},
		{token.StringLit, `"(long)1"`},
		{token.Semicolon, ";"},
	})
}

func TestLexOperators(t *testing.T) {
	expectTokens(t, "+ ++ - -- => = ~ . ?", []expected{
		{token.Plus, "+"},
		{token.PlusPlus, "++"},
		{token.Minus, "-"},
		{token.MinusMinus, "--"},
		{token.FatArrow, "=>"},
		{token.Assign, "="},
		{token.Tilde, "~"},
		{token.Dot, "."},
		{token.Question, "?"},
	})
}

func TestLexLeadingTrivia(t *testing.T) {
	lx, _ := makeTestLexer(t, "  // comment\n/* block */ #pragma warning disable\nlong")
	tok := lx.Next()
	if tok.Kind != token.KwLong {
		t.Fatalf("kind = %v, want KwLong", tok.Kind)
	}
	kinds := make([]token.TriviaKind, 0, len(tok.Leading))
	for _, tr := range tok.Leading {
		kinds = append(kinds, tr.Kind)
	}
	want := []token.TriviaKind{
		token.TriviaSpace,
		token.TriviaLineComment,
		token.TriviaNewline,
		token.TriviaBlockComment,
		token.TriviaSpace,
		token.TriviaDirective,
		token.TriviaNewline,
	}
	if len(kinds) != len(want) {
		t.Fatalf("trivia kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("trivia %d = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestLexDirectiveIsTrivia(t *testing.T) {
	// the whole preprocessor line is opaque, cast text included
	lx, _ := makeTestLexer(t, "#region (long)1\nx")
	tok := lx.Next()
	if tok.Kind != token.Ident || tok.Text != "x" {
		t.Fatalf("token = %v %q", tok.Kind, tok.Text)
	}
	if len(tok.Leading) == 0 || tok.Leading[0].Kind != token.TriviaDirective {
		t.Errorf("leading trivia = %+v", tok.Leading)
	}
	if tok.Leading[0].Text != "#region (long)1" {
		t.Errorf("directive text = %q", tok.Leading[0].Text)
	}
}

func TestLexPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer(t, "long x")
	p := lx.Peek()
	n := lx.Next()
	if p.Kind != n.Kind || p.Text != n.Text {
		t.Errorf("Peek %v %q, Next %v %q", p.Kind, p.Text, n.Kind, n.Text)
	}
	if next := lx.Next(); next.Kind != token.Ident || next.Text != "x" {
		t.Errorf("second Next = %v %q", next.Kind, next.Text)
	}
}

func TestLexEOFIsSticky(t *testing.T) {
	lx, _ := makeTestLexer(t, "")
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("call %d: kind = %v, want EOF", i, tok.Kind)
		}
	}
}

func TestLexErrorReporting(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		code   diag.Code
		errors int
	}{
		{"unterminated string", `"abc`, diag.LexUnterminatedString, 1},
		{"newline in string", "\"abc\ndef\"", diag.LexUnterminatedString, 1},
		{"unterminated char", "'a", diag.LexUnterminatedString, 1},
		{"unterminated block comment", "/* abc", diag.LexUnterminatedBlockComment, 1},
		{"bad hex", "0x", diag.LexBadNumber, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lx, rep := makeTestLexer(t, tc.input)
			lx.All()
			if got := rep.errorCount(); got != tc.errors {
				t.Fatalf("error count = %d, want %d (%v)", got, tc.errors, rep.diagnostics)
			}
			if rep.diagnostics[0].Code != tc.code {
				t.Errorf("code = %v, want %v", rep.diagnostics[0].Code, tc.code)
			}
		})
	}
}

func TestLexSpans(t *testing.T) {
	lx, _ := makeTestLexer(t, "var x = (long)1;")
	for _, tok := range lx.All() {
		if tok.Kind == token.EOF {
			continue
		}
		if tok.Span.End <= tok.Span.Start {
			t.Errorf("token %q has empty span %v", tok.Text, tok.Span)
		}
	}
}
