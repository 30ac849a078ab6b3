package parser

import (
	"litcast/internal/ast"
	"litcast/internal/diag"
	"litcast/internal/lexer"
	"litcast/internal/source"
	"litcast/internal/token"
)

type Options struct {
	Reporter diag.Reporter
	// AssumeUnchecked treats code outside any checked/unchecked region as
	// unchecked (project-wide /checked- builds).
	AssumeUnchecked bool
}

type Result struct {
	// Casts are all numeric-literal casts in source order.
	Casts []ast.CastExpr
}

// ScanFile lexes the file and scans the resulting tokens. Lexer diagnostics
// go through the same reporter as scan diagnostics.
func ScanFile(file *source.File, opts Options) Result {
	lx := lexer.New(file, lexer.Options{Reporter: opts.Reporter})
	return ScanTokens(lx.All(), opts)
}

// ScanTokens walks a token slice (ending in EOF) and collects cast
// expressions. The walk never backtracks: cast matching at an opening paren
// only looks ahead, and region bookkeeping only looks one token behind.
func ScanTokens(toks []token.Token, opts Options) Result {
	var res Result
	regions := regionStack{base: opts.AssumeUnchecked}

	prev := token.Invalid
	for i := 0; i < len(toks); i++ {
		switch toks[i].Kind {
		case token.LParen:
			if cast, ok := matchCast(toks, i); ok {
				cast.Unchecked = regions.unchecked()
				res.Casts = append(res.Casts, cast)
			}
			regions.openParen(prev, toks[i].Span)
		case token.LBrace:
			regions.openBrace(prev, toks[i].Span)
		case token.RParen:
			if !regions.closeParen() {
				report(opts.Reporter, diag.SynUnbalancedDelimiter, toks[i].Span, "')' has no matching '('")
			}
		case token.RBrace:
			if !regions.closeBrace() {
				report(opts.Reporter, diag.SynUnbalancedDelimiter, toks[i].Span, "'}' has no matching '{'")
			}
		}
		prev = toks[i].Kind
	}

	for _, r := range regions.unclosed() {
		kw := "checked"
		if r.unchecked {
			kw = "unchecked"
		}
		report(opts.Reporter, diag.SynUnterminatedUnchecked, r.open, "unterminated "+kw+" region")
	}
	return res
}

// matchCast tries to read `(T)lit` or `(T)±lit` starting at the opening
// paren at toks[i]. A literal followed by '.' is member access, which binds
// tighter than the cast, so the cast operand is not the literal and the
// match fails.
func matchCast(toks []token.Token, i int) (ast.CastExpr, bool) {
	if i+3 >= len(toks) {
		return ast.CastExpr{}, false
	}
	typeTok := toks[i+1]
	if !typeTok.Kind.IsPredefinedNumericType() || toks[i+2].Kind != token.RParen {
		return ast.CastExpr{}, false
	}

	j := i + 3
	var op ast.Operand
	if toks[j].IsSign() {
		op.Kind = ast.OperandSigned
		op.Sign = toks[j]
		j++
	}
	if j >= len(toks) || !toks[j].IsNumericLiteral() {
		return ast.CastExpr{}, false
	}
	if j+1 < len(toks) && toks[j+1].Kind == token.Dot {
		return ast.CastExpr{}, false
	}
	op.Lit = toks[j]
	if op.Kind == ast.OperandSigned {
		op.Span = op.Sign.Span.Cover(op.Lit.Span)
	} else {
		op.Span = op.Lit.Span
	}

	return ast.CastExpr{
		Span:    toks[i].Span.Cover(op.Lit.Span),
		TypeTok: typeTok,
		Operand: op,
	}, true
}

func report(r diag.Reporter, code diag.Code, sp source.Span, msg string) {
	if r == nil {
		return
	}
	r.Report(code, diag.SevError, sp, msg, nil, nil)
}
