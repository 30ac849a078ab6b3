// Package driver orchestrates the analysis pipeline over files and
// directories: load, lex, scan for casts, evaluate the rule, and collect
// diagnostics with their fixes.
//
// Directory runs pre-load every file sequentially in sorted order so file
// IDs and output are deterministic, then analyze files in parallel; the
// per-file analysis is pure. A content-addressed disk cache short-circuits
// re-analysis of unchanged files.
package driver
