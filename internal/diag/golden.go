package diag

import (
	"fmt"
	"sort"
	"strings"

	"litcast/internal/source"
)

type shortDiagnostic struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatShort renders diagnostics one per line in a stable order:
//
//	path:line:col: SEVERITY CODE: message
//
// The format doubles as golden-file output in tests, so it must stay
// deterministic and free of color or terminal width concerns.
func FormatShort(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	rendered := make([]shortDiagnostic, 0, len(diags))
	for _, d := range diags {
		f := fs.Get(d.Primary.File)
		pos := f.LineCol(d.Primary.Start)
		rendered = append(rendered, shortDiagnostic{
			Severity: strings.ToLower(d.Severity.String()),
			Code:     d.Code.ID(),
			Path:     f.FormatPath("relative", fs.BaseDir()),
			Line:     pos.Line,
			Column:   pos.Col,
			Message:  d.Message,
		})
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			nf := fs.Get(n.Span.File)
			npos := nf.LineCol(n.Span.Start)
			rendered = append(rendered, shortDiagnostic{
				Severity: "note",
				Code:     d.Code.ID(),
				Path:     nf.FormatPath("relative", fs.BaseDir()),
				Line:     npos.Line,
				Column:   npos.Col,
				Message:  n.Msg,
			})
		}
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		if di.Severity != dj.Severity {
			return di.Severity < dj.Severity
		}
		return di.Code < dj.Code
	})

	var b strings.Builder
	for _, r := range rendered {
		fmt.Fprintf(&b, "%s:%d:%d: %s %s: %s\n", r.Path, r.Line, r.Column, r.Severity, r.Code, r.Message)
	}
	return b.String()
}
