package token

import (
	"litcast/internal/source"
)

// Token represents a single source token with its location and leading trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsNumericLiteral reports whether the token is an integer or real literal.
func (t Token) IsNumericLiteral() bool {
	return t.Kind == IntLit || t.Kind == RealLit
}

// IsLiteral reports whether the token is any literal, numeric or not.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, RealLit, StringLit, CharLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsSign reports whether the token is a unary + or - operator.
func (t Token) IsSign() bool {
	return t.Kind == Plus || t.Kind == Minus
}

// IsUnaryOp reports whether the token can start a unary expression.
func (t Token) IsUnaryOp() bool {
	switch t.Kind {
	case Plus, Minus, Tilde, Bang, PlusPlus, MinusMinus:
		return true
	default:
		return false
	}
}
