package literal

import (
	"fmt"
	"regexp"
	"strings"
)

// Literal is the parsed structure of one numeric literal token. Instances
// are built fresh per inspection and never mutated.
type Literal struct {
	// Raw is the original token text, e.g. "1UL" or "0x1Fl".
	Raw string
	// Base of the digit body (hex only occurs in the integer family).
	Base Base
	// Family resolved from the token grammar.
	Family Family
	// Digits is the body before the suffix, including any 0x prefix,
	// fraction, and exponent.
	Digits string
	// Suffix is the trailing suffix with its original casing ("" if none).
	Suffix string
	// Kind is the canonical numeric kind the literal already has.
	Kind NumericKind
}

// The two mutually exclusive token grammars. An integer literal is a decimal
// or hex digit run with an optional U/L/UL suffix (that exact set, either
// case; LU is not literal notation). A real literal has a fraction and/or
// exponent, or an integer body forced real by an F/D/M suffix.
var (
	integerPattern = regexp.MustCompile(`^(0[xX][0-9a-fA-F]+|[0-9]+)([uU][lL]|[uU]|[lL])?$`)
	realPattern    = regexp.MustCompile(`^([0-9]*\.[0-9]+|[0-9]+)([eE][+-]?[0-9]+)?[fFdDmM]?$`)
)

// Recognized reports whether text conforms to one of the two literal
// grammars the cast rule can rewrite. Binary literals, digit separators, and
// malformed suffix stacks all fail here and make the enclosing cast
// not-applicable rather than an error.
func Recognized(text string) bool {
	return integerPattern.MatchString(text) || isRealLiteral(text)
}

func isRealLiteral(text string) bool {
	if !realPattern.MatchString(text) {
		return false
	}
	// the real grammar must not swallow plain integers
	return strings.ContainsAny(text, ".eE") || hasRealSuffix(text)
}

// Classify parses a numeric literal token that already passed Recognized.
// It is total over that input set; a suffix that resolves to no table entry
// means the grammar and the table fell out of sync, which is a bug here, not
// bad user input.
func Classify(text string) Literal {
	lit := Literal{Raw: text, Base: BaseDecimal, Family: FamilyInteger}

	switch {
	case integerPattern.MatchString(text):
		body := text
		if len(text) >= 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
			lit.Base = BaseHex
			body = text[2:]
		}
		cut := suffixStart(body, isIntegerSuffixByte)
		lit.Digits = text[:len(text)-(len(body)-cut)]
		lit.Suffix = body[cut:]
	case isRealLiteral(text):
		lit.Family = FamilyReal
		cut := suffixStart(text, isRealSuffixByte)
		lit.Digits = text[:cut]
		lit.Suffix = text[cut:]
	default:
		panic(fmt.Errorf("literal: %q matches neither literal grammar; callers must gate on Recognized", text))
	}

	kind, ok := KindForSuffix(lit.Family, lit.Suffix)
	if !ok {
		panic(fmt.Errorf("literal: suffix %q of %q has no kind; grammar and suffix table out of sync", lit.Suffix, text))
	}
	lit.Kind = kind
	return lit
}

// suffixStart finds the index where the suffix begins: the first byte that
// belongs to the family's suffix alphabet. For the integer family the body
// must already have its 0x prefix removed, since hex digits and suffix
// letters overlap in no other way.
func suffixStart(body string, isSuffix func(byte) bool) int {
	for i := 0; i < len(body); i++ {
		if isSuffix(body[i]) {
			return i
		}
	}
	return len(body)
}

func isIntegerSuffixByte(b byte) bool {
	return b == 'u' || b == 'U' || b == 'l' || b == 'L'
}

func isRealSuffixByte(b byte) bool {
	switch b {
	case 'f', 'F', 'd', 'D', 'm', 'M':
		return true
	default:
		return false
	}
}

func hasRealSuffix(text string) bool {
	if text == "" {
		return false
	}
	return isRealSuffixByte(text[len(text)-1])
}
