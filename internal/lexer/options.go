package lexer

import (
	"litcast/internal/diag"
	"litcast/internal/source"
)

// Reporter is the thin contract the lexer reports through. Formatting and
// collection live in the diag layer.
type Reporter interface {
	Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix)
}

// Options configures a Lexer. A nil Reporter drops diagnostics but lexing
// continues.
type Options struct {
	Reporter Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil, nil)
	}
}
