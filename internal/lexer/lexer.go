package lexer

import (
	"litcast/internal/source"
	"litcast/internal/token"
)

// Lexer scans a single file into tokens for the cast scanner.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token
	hold   []token.Trivia
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token with its leading trivia attached.
// After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off},
		}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == '@':
		tok = lx.scanAt()

	case ch == '$':
		tok = lx.scanDollar()

	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		tok = lx.scanNumber()

	case ch == '"':
		tok = lx.scanString(false)

	case ch == '\'':
		tok = lx.scanChar()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// All lexes the remaining input into a slice ending with the EOF token.
func (lx *Lexer) All() []token.Token {
	toks := make([]token.Token, 0, 64)
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks
		}
	}
}

// scanAt handles '@': verbatim strings (@"...") and verbatim identifiers
// (@long stays an Ident, never a keyword).
func (lx *Lexer) scanAt() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '@'
	switch {
	case lx.cursor.Peek() == '"':
		return lx.scanVerbatimString(start)
	case isIdentStartByte(lx.cursor.Peek()):
		lx.scanIdentOrKeyword()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Ident, Span: sp, Text: lx.text(sp)}
	default:
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.At, Span: sp, Text: lx.text(sp)}
	}
}

// scanDollar handles '$': interpolated strings ($"..." and $@"...").
// Interpolation holes are kept inside the string token; the cast rule never
// looks inside strings.
func (lx *Lexer) scanDollar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '$'
	switch {
	case lx.cursor.Peek() == '"':
		tok := lx.scanString(true)
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: tok.Kind, Span: sp, Text: lx.text(sp)}
	case lx.cursor.Peek() == '@' && lx.cursor.PeekAt(1) == '"':
		lx.cursor.Bump() // '@'
		return lx.scanVerbatimString(start)
	default:
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
