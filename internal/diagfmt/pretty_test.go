package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"litcast/internal/diag"
	"litcast/internal/driver"
)

func sampleResult(t *testing.T, src string) (*diag.Bag, *driver.FileResult, *bytes.Buffer) {
	t.Helper()
	fs, res := driver.CheckSource("sample.cs", []byte(src), driver.CheckOptions{})
	var buf bytes.Buffer
	Pretty(&buf, res.Bag, fs, PrettyOpts{ShowNotes: true, ShowFixes: true, ShowPreview: true})
	return res.Bag, res, &buf
}

func TestPrettyHeaderAndUnderline(t *testing.T) {
	_, _, buf := sampleResult(t, "var a = (long)1;\n")
	out := buf.String()

	if !strings.Contains(out, "sample.cs:1:9: WARNING CST3001: use literal notation instead of casting") {
		t.Errorf("missing header line:\n%s", out)
	}
	if !strings.Contains(out, "    1 | var a = (long)1;") {
		t.Errorf("missing source line:\n%s", out)
	}
	// underline starts at column 9 and covers "(long)1"
	underline := "| " + strings.Repeat(" ", 8) + "^~~~~~~"
	if !strings.Contains(out, underline) {
		t.Errorf("missing caret underline %q:\n%s", underline, out)
	}
}

func TestPrettyShowsFixWithPreview(t *testing.T) {
	_, _, buf := sampleResult(t, "var a = (ulong)1L;\n")
	out := buf.String()

	if !strings.Contains(out, "fix[use-literal-suffix]: Replace cast with 1UL") {
		t.Errorf("missing fix line:\n%s", out)
	}
	if !strings.Contains(out, "- var a = (ulong)1L;") || !strings.Contains(out, "+ var a = 1UL;") {
		t.Errorf("missing preview lines:\n%s", out)
	}
}

func TestPrettyShowsWrapNote(t *testing.T) {
	_, _, buf := sampleResult(t, "var a = unchecked((uint)-1);\n")
	out := buf.String()
	if !strings.Contains(out, "note: unchecked conversion wraps the value to 4294967295") {
		t.Errorf("missing note:\n%s", out)
	}
}

func TestPrettyWidthClipsLongLines(t *testing.T) {
	src := "var a = (long)1; // " + strings.Repeat("x", 200) + "\n"
	fs, res := driver.CheckSource("wide.cs", []byte(src), driver.CheckOptions{})
	var buf bytes.Buffer
	Pretty(&buf, res.Bag, fs, PrettyOpts{Width: 40})
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "| ") && len(line) > 60 {
			t.Errorf("source line not clipped: %q", line)
		}
	}
}
