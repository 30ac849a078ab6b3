package rule

import (
	"litcast/internal/ast"
	"litcast/internal/consteval"
	"litcast/internal/literal"
	"litcast/internal/source"
	"litcast/internal/token"
)

// Verdict is the outcome of evaluating one cast.
type Verdict uint8

const (
	// VerdictMatched: the cast should be flagged and is rewritable.
	VerdictMatched Verdict = iota
	// VerdictNotApplicable: the cast is not the shape this rule handles.
	// Silently skipped.
	VerdictNotApplicable
	// VerdictRedundant: the literal already has the target kind. A
	// redundant-cast rule owns that case; flagging here would double-report.
	VerdictRedundant
	// VerdictInvalidConstant: the conversion has no compile-time constant
	// value under checked semantics. The compiler reports that itself.
	VerdictInvalidConstant
)

func (v Verdict) String() string {
	switch v {
	case VerdictMatched:
		return "matched"
	case VerdictNotApplicable:
		return "not applicable"
	case VerdictRedundant:
		return "redundant"
	case VerdictInvalidConstant:
		return "invalid constant"
	}
	return "unknown"
}

// Finding is one flagged cast, ready for reporting and rewriting. Immutable
// after Evaluate returns it.
type Finding struct {
	// Span of the whole cast expression, opening paren through literal.
	Span source.Span
	// Target kind named by the cast's type keyword.
	Target literal.NumericKind
	// Lit is the classified operand literal.
	Lit literal.Literal
	// SignText is the operand's written sign, "" if none.
	SignText string
	// Wrapped marks the unchecked-truncation case; WrappedText then holds
	// the decimal rendering of the effective value, sign included.
	Wrapped     bool
	WrappedText string
}

// targetKinds maps actionable type keywords to their literal kind. Types
// without a suffix notation (int, short, byte, sbyte, ushort) are absent and
// make the rule not applicable.
var targetKinds = map[token.Kind]literal.NumericKind{
	token.KwUint:    literal.KindUInt,
	token.KwLong:    literal.KindLong,
	token.KwUlong:   literal.KindULong,
	token.KwFloat:   literal.KindFloat,
	token.KwDouble:  literal.KindDouble,
	token.KwDecimal: literal.KindDecimal,
}

// Evaluate runs the guard chain over one cast. The Finding is only
// meaningful when the verdict is VerdictMatched.
func Evaluate(cast ast.CastExpr) (Finding, Verdict) {
	target, ok := targetKinds[cast.TypeTok.Kind]
	if !ok {
		return Finding{}, VerdictNotApplicable
	}

	text := cast.Operand.Lit.Text
	if !literal.Recognized(text) {
		// binary literals, digit separators, and other notations the suffix
		// grammar does not cover
		return Finding{}, VerdictNotApplicable
	}
	lit := literal.Classify(text)

	// A suffixed literal must stay a well-formed literal after the rewrite:
	// integral suffixes need an integer body, real suffixes need a decimal
	// body (1.5L and 0x10F are not literals).
	if target.IsIntegral() && lit.Family != literal.FamilyInteger {
		return Finding{}, VerdictNotApplicable
	}
	if !target.IsIntegral() && lit.Base != literal.BaseDecimal {
		return Finding{}, VerdictNotApplicable
	}

	if lit.Kind == target {
		return Finding{}, VerdictRedundant
	}

	res := consteval.EvalCast(lit, cast.Operand.Negative(), target, cast.Unchecked)
	if !res.Valid {
		return Finding{}, VerdictInvalidConstant
	}

	return Finding{
		Span:        cast.Span,
		Target:      target,
		Lit:         lit,
		SignText:    cast.Operand.SignText(),
		Wrapped:     res.Wrapped,
		WrappedText: res.Text,
	}, VerdictMatched
}
