// Package rewrite turns a flagged cast into its suffixed-literal text and
// packages that as an applicable fix.
package rewrite

import (
	"litcast/internal/diag"
	"litcast/internal/fix"
	"litcast/internal/rule"
	"litcast/internal/source"
)

// FixID identifies the use-literal-notation fix on a diagnostic.
const FixID = "use-literal-suffix"

// Replacement builds the literal text that replaces the whole cast
// expression. The literal's own suffix, if any, is discarded; the target's
// canonical suffix takes its place, so `(ulong)1L` becomes `1UL` and never
// `1LUL`.
func Replacement(f rule.Finding) string {
	if f.Wrapped {
		// the wrapped rendering already absorbed the operand's sign
		return f.WrappedText + f.Target.Suffix()
	}
	return f.SignText + f.Lit.Digits + f.Target.Suffix()
}

// Fix builds the quick fix for a finding. The edit guards on the original
// cast text so a stale span can never clobber unrelated code.
func Fix(file *source.File, f rule.Finding) diag.Fix {
	text := Replacement(f)
	return fix.ReplaceSpan(
		"Replace cast with "+text,
		f.Span,
		text,
		file.Text(f.Span),
		fix.WithID(FixID),
		fix.Preferred(),
	)
}
