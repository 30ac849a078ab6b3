// Package diag carries diagnostics from the scanner and the cast rule to the
// CLI and the fix engine.
//
// The model is deliberately small:
//   - Diagnostic: severity + code + message anchored at a primary span, with
//     optional notes and fixes.
//   - Fix: a titled group of text edits. Every edit carries the text it
//     expects to replace, so a stale fix fails loudly instead of corrupting
//     the file.
//   - Bag: a bounded, sortable collection. Sorting is total (file, start,
//     end, severity, code) so output and fix application are deterministic
//     across runs.
//
// Reporters decouple the producers from the collection strategy: phases talk
// to the Reporter interface, and the caller decides whether that lands in a
// Bag, gets deduplicated, or is dropped.
package diag
