package token

import "litcast/internal/source"

// TriviaKind classifies non-token source text.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
	// TriviaDirective covers preprocessor lines (#if, #region, #pragma, ...).
	TriviaDirective
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	case TriviaDirective:
		return "Directive"
	default:
		return "Unknown"
	}
}

// Trivia is a run of whitespace, a comment, or a preprocessor line attached
// to the token that follows it.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
