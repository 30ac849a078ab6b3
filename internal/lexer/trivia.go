package lexer

import (
	"litcast/internal/diag"
	"litcast/internal/token"
)

// collectLeadingTrivia gathers the run of trivia before the next significant
// token:
//   - spaces/tabs coalesce into one TriviaSpace
//   - consecutive newlines coalesce into one TriviaNewline
//   - //... to end of line -> TriviaLineComment
//   - /* ... */ -> TriviaBlockComment (unterminated is reported and cut at EOF)
//   - #... to end of line -> TriviaDirective (preprocessor lines are opaque)
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' || b == '\r' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' && b2 != '\r' {
					break
				}
				lx.cursor.Bump()
			}
			lx.holdTrivia(token.TriviaSpace, start)
			continue
		}

		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.holdTrivia(token.TriviaNewline, start)
			continue
		}

		if b == '#' {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			lx.holdTrivia(token.TriviaDirective, start)
			continue
		}

		if b == '/' {
			if lx.scanCommentIntoHold() {
				continue
			}
		}

		break
	}
}

// scanCommentIntoHold handles //... and /*...*/. Returns false when the '/'
// is an operator, leaving the cursor untouched.
func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	switch lx.cursor.Peek() {
	case '/':
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		lx.holdTrivia(token.TriviaLineComment, start)
		return true
	case '*':
		lx.cursor.Bump()
		closed := false
		for !lx.cursor.EOF() {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				closed = true
				break
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		if !closed {
			lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
		}
		lx.hold = append(lx.hold, token.Trivia{Kind: token.TriviaBlockComment, Span: sp, Text: lx.text(sp)})
		return true
	default:
		lx.cursor.Reset(start)
		return false
	}
}

func (lx *Lexer) holdTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{Kind: kind, Span: sp, Text: lx.text(sp)})
}
