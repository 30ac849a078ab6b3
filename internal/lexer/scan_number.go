package lexer

import (
	"litcast/internal/diag"
	"litcast/internal/token"
)

// scanNumber lexes C# numeric literals:
//
//	0x... hex, 0b... binary, decimal ints with '_' separators,
//	reals with a fractional part and/or exponent,
//	integer suffixes (u, l, ul in either case), real suffixes (f, d, m).
//
// The suffix stays in Token.Text; the literal package decides what it means.
// Binary literals and separators are lexed so scanning stays in sync with the
// host language, even though the cast rule never rewrites them.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	// ".digits" form (caller checked isNumberAfterDot)
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		kind = token.RealLit
		lx.eatDecDigits()
		lx.eatExponent(&kind)
		lx.eatRealSuffix()
		return lx.emitNumber(kind, start)
	}

	// base prefix?
	if lx.cursor.Peek() == '0' {
		b1 := lx.cursor.PeekAt(1)
		switch b1 {
		case 'x', 'X':
			lx.cursor.Bump()
			lx.cursor.Bump()
			if !isHex(lx.cursor.Peek()) {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexBadNumber, sp, "expected hex digit after 0x")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
			for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
			lx.eatIntSuffix()
			return lx.emitNumber(token.IntLit, start)
		case 'b', 'B':
			lx.cursor.Bump()
			lx.cursor.Bump()
			for {
				b := lx.cursor.Peek()
				if b != '0' && b != '1' && b != '_' {
					break
				}
				lx.cursor.Bump()
			}
			lx.eatIntSuffix()
			return lx.emitNumber(token.IntLit, start)
		}
	}

	// integral part
	lx.eatDecDigits()

	// fractional part: only when a digit follows the dot, so member access
	// on a literal (1.ToString()) keeps its Dot token
	if lx.cursor.Peek() == '.' {
		if isDec(lx.cursor.PeekAt(1)) {
			lx.cursor.Bump()
			kind = token.RealLit
			lx.eatDecDigits()
		}
	}

	lx.eatExponent(&kind)

	if kind == token.RealLit {
		lx.eatRealSuffix()
		return lx.emitNumber(kind, start)
	}

	// an integer body with a real suffix is still a real literal (1f, 2m)
	if isRealSuffix(lx.cursor.Peek()) {
		lx.cursor.Bump()
		return lx.emitNumber(token.RealLit, start)
	}

	lx.eatIntSuffix()
	return lx.emitNumber(token.IntLit, start)
}

func (lx *Lexer) eatDecDigits() {
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}

// eatExponent consumes e/E followed by an optionally signed digit run, which
// forces the literal into the real family.
func (lx *Lexer) eatExponent(kind *token.Kind) {
	b := lx.cursor.Peek()
	if b != 'e' && b != 'E' {
		return
	}
	next := lx.cursor.PeekAt(1)
	if isDec(next) {
		lx.cursor.Bump()
	} else if (next == '+' || next == '-') && isDec(lx.cursor.PeekAt(2)) {
		lx.cursor.Bump()
		lx.cursor.Bump()
	} else {
		// "1e" alone: the e belongs to whatever follows (ident, EOF)
		return
	}
	*kind = token.RealLit
	lx.eatDecDigits()
}

// eatIntSuffix consumes up to two of u/U/l/L. The classifier validates the
// combination; the lexer only keeps the token boundary right.
func (lx *Lexer) eatIntSuffix() {
	for i := 0; i < 2 && isIntSuffix(lx.cursor.Peek()); i++ {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) eatRealSuffix() {
	if isRealSuffix(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) emitNumber(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}
