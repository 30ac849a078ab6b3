// Package literal parses the textual form of C# numeric literals.
//
// A literal's raw text fully determines its compile-time kind: the base
// (decimal or hex), the family (integer or real), and the optional suffix
// (U, L, UL for integers; F, D, M for reals, case-insensitive). Classify
// recovers that structure so the cast rule can compare a literal's kind
// against a cast's target type without a semantic model.
//
// The suffix/kind mapping lives here as a single immutable table with both
// directions (suffix to kind, kind to canonical suffix); the rule and the
// rewriter share it instead of keeping their own copies.
package literal
