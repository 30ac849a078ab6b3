package ast

import (
	"litcast/internal/source"
	"litcast/internal/token"
)

// OperandKind classifies what sits to the right of the closing cast paren.
type OperandKind uint8

const (
	// OperandLit is a bare numeric literal.
	OperandLit OperandKind = iota
	// OperandSigned is a unary + or - applied directly to a numeric literal.
	OperandSigned
)

// Operand is the expression a cast applies to.
type Operand struct {
	Kind OperandKind
	// Sign is the + or - token when Kind == OperandSigned.
	Sign token.Token
	// Lit is the numeric literal token.
	Lit token.Token
	// Span covers the sign (if any) through the literal.
	Span source.Span
}

// Negative reports whether the operand carries a leading minus.
func (o Operand) Negative() bool {
	return o.Kind == OperandSigned && o.Sign.Kind == token.Minus
}

// SignText is the sign character as written, or "" for a bare literal.
func (o Operand) SignText() string {
	if o.Kind == OperandSigned {
		return o.Sign.Text
	}
	return ""
}

// CastExpr is one `(T)operand` occurrence where T is a predefined numeric
// type keyword and the operand is a (possibly signed) numeric literal.
type CastExpr struct {
	// Span covers the opening paren through the end of the operand. This is
	// the region a fix replaces.
	Span source.Span
	// TypeTok is the keyword token naming the target type.
	TypeTok token.Token
	// Operand is the literal being cast.
	Operand Operand
	// Unchecked reports that the innermost enclosing overflow-checking
	// context at this cast is unchecked.
	Unchecked bool
}
