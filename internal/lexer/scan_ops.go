package lexer

import (
	"litcast/internal/token"
)

// scanOperatorOrPunct lexes one operator or punctuation token. Multi-byte
// operators the cast scanner cares about (++, --, =>) are kept distinct;
// everything else an operator char can start collapses into its first-byte
// kind, which is enough for paren/brace tracking and operand shape checks.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()

	kind := token.Invalid
	switch b {
	case '+':
		kind = token.Plus
		if lx.cursor.Eat('+') {
			kind = token.PlusPlus
		}
	case '-':
		kind = token.Minus
		if lx.cursor.Eat('-') {
			kind = token.MinusMinus
		}
	case '=':
		kind = token.Assign
		if lx.cursor.Eat('>') {
			kind = token.FatArrow
		} else {
			lx.cursor.Eat('=')
		}
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '%':
		kind = token.Percent
	case '&':
		kind = token.Amp
		lx.cursor.Eat('&')
	case '|':
		kind = token.Pipe
		lx.cursor.Eat('|')
	case '^':
		kind = token.Caret
	case '~':
		kind = token.Tilde
	case '!':
		kind = token.Bang
		lx.cursor.Eat('=')
	case '<':
		kind = token.Lt
		if !lx.cursor.Eat('<') {
			lx.cursor.Eat('=')
		}
	case '>':
		kind = token.Gt
		lx.cursor.Eat('=')
	case '?':
		kind = token.Question
		if !lx.cursor.Eat('?') {
			lx.cursor.Eat('.')
		}
	case ':':
		kind = token.Colon
		lx.cursor.Eat(':')
	case ';':
		kind = token.Semicolon
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Dot
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}
