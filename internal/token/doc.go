// Package token defines lexical token kinds and trivia for the C# subset
// litcast scans.
// Invariants:
//   - Token.Text matches the source bytes covered by Token.Span exactly.
//   - Numeric literal tokens keep their suffix in Text (e.g. "1UL", "0x1Fl");
//     suffix interpretation happens in the literal package, not here.
//   - Comments, whitespace, and preprocessor directives never appear in the
//     token stream; they are attached to the next token as leading Trivia.
//   - Only the keywords the cast rule needs are recognized; every other
//     identifier-looking word stays an Ident.
package token
