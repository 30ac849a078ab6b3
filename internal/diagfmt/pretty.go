package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"litcast/internal/diag"
	"litcast/internal/source"
)

type palette struct {
	path   func(a ...interface{}) string
	sev    map[diag.Severity]func(a ...interface{}) string
	code   func(a ...interface{}) string
	caret  func(a ...interface{}) string
	fixTag func(a ...interface{}) string
}

func plain(a ...interface{}) string { return fmt.Sprint(a...) }

func newPalette(enabled bool) palette {
	if !enabled {
		return palette{
			path:   plain,
			sev:    map[diag.Severity]func(a ...interface{}) string{},
			code:   plain,
			caret:  plain,
			fixTag: plain,
		}
	}
	return palette{
		path: color.New(color.Bold).SprintFunc(),
		sev: map[diag.Severity]func(a ...interface{}) string{
			diag.SevInfo:    color.New(color.FgCyan).SprintFunc(),
			diag.SevWarning: color.New(color.FgYellow, color.Bold).SprintFunc(),
			diag.SevError:   color.New(color.FgRed, color.Bold).SprintFunc(),
		},
		code:   color.New(color.FgMagenta).SprintFunc(),
		caret:  color.New(color.FgGreen, color.Bold).SprintFunc(),
		fixTag: color.New(color.FgGreen).SprintFunc(),
	}
}

func (p palette) severity(sev diag.Severity) string {
	text := strings.ToUpper(sev.String())
	if fn, ok := p.sev[sev]; ok {
		return fn(text)
	}
	return text
}

// Pretty renders diagnostics for humans. Expects bag.Sort() to have run.
// Each diagnostic prints a header line
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a ^~~~ underline, optional context lines,
// notes, and fix suggestions with before/after previews.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts, pal)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	file := fs.Get(d.Primary.File)
	pos := file.LineCol(d.Primary.Start)

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		pal.path(file.FormatPath(opts.PathMode.format(), fs.BaseDir())),
		pos.Line, pos.Col,
		pal.severity(d.Severity),
		pal.code(d.Code.ID()),
		d.Message,
	)

	printUnderlined(w, file, d.Primary, opts, pal)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			nf := fs.Get(n.Span.File)
			npos := nf.LineCol(n.Span.Start)
			fmt.Fprintf(w, "  note: %s (%s:%d:%d)\n",
				n.Msg, nf.FormatPath("basename", ""), npos.Line, npos.Col)
		}
	}

	if opts.ShowFixes {
		for _, f := range d.Fixes {
			tag := f.ID
			if tag == "" {
				tag = "fix"
			}
			fmt.Fprintf(w, "  %s %s\n", pal.fixTag("fix["+tag+"]:"), f.Title)
			if !opts.ShowPreview {
				continue
			}
			for _, edit := range f.Edits {
				preview, err := buildFixEditPreview(fs, edit)
				if err != nil {
					continue
				}
				for _, line := range preview.before {
					fmt.Fprintf(w, "    - %s\n", clip(line, opts.Width))
				}
				for _, line := range preview.after {
					fmt.Fprintf(w, "    + %s\n", clip(line, opts.Width))
				}
			}
		}
	}
}

// printUnderlined shows the first line of the span with a caret underline,
// plus up to opts.Context surrounding lines.
func printUnderlined(w io.Writer, file *source.File, span source.Span, opts PrettyOpts, pal palette) {
	start := file.LineCol(span.Start)
	end := file.LineCol(span.End)

	ctx := uint32(0)
	if opts.Context > 0 {
		ctx = uint32(opts.Context)
	}
	first := start.Line
	if first > ctx {
		first -= ctx
	} else {
		first = 1
	}
	last := start.Line + ctx

	for num := first; num <= last; num++ {
		text := file.Line(num)
		if text == "" && num != start.Line {
			continue
		}
		fmt.Fprintf(w, "%5d | %s\n", num, clip(text, opts.Width))
		if num != start.Line {
			continue
		}

		// underline from the start column to the span end, clamped to the line
		underEnd := end.Col
		if end.Line != start.Line {
			underEnd = uint32(len(text)) + 1
		}
		if underEnd <= start.Col {
			underEnd = start.Col + 1
		}
		pad := strings.Repeat(" ", int(start.Col-1))
		marks := "^" + strings.Repeat("~", int(underEnd-start.Col-1))
		fmt.Fprintf(w, "      | %s%s\n", pad, pal.caret(marks))
	}
}

func clip(line string, width uint16) string {
	if width == 0 {
		return line
	}
	return runewidth.Truncate(line, int(width), "…")
}
