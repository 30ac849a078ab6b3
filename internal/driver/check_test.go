package driver_test

import (
	"testing"

	"litcast/internal/diag"
	"litcast/internal/driver"
)

func TestCheckSourceFlagsCasts(t *testing.T) {
	src := `class C {
    void M() {
        var a = (long)1;
        var b = (ulong)2;
        var c = (long)1L;
        var d = (ulong)-1;
    }
}
`
	fs, res := driver.CheckSource("sample.cs", []byte(src), driver.CheckOptions{})
	if res.Flagged != 2 {
		t.Fatalf("flagged %d casts, want 2", res.Flagged)
	}

	got := diag.FormatShort(res.Bag.Items(), fs, false)
	want := "sample.cs:3:17: warning CST3001: use literal notation instead of casting\n" +
		"sample.cs:4:17: warning CST3001: use literal notation instead of casting\n"
	if got != want {
		t.Errorf("short output:\n%s\nwant:\n%s", got, want)
	}
}

func TestCheckSourceUncheckedNote(t *testing.T) {
	src := "class C { ulong M() { return unchecked((ulong)-1L); } }"
	_, res := driver.CheckSource("wrap.cs", []byte(src), driver.CheckOptions{})
	if res.Flagged != 1 {
		t.Fatalf("flagged %d casts, want 1", res.Flagged)
	}
	d := res.Bag.Items()[0]
	if len(d.Notes) != 1 || d.Notes[0].Msg != "unchecked conversion wraps the value to 18446744073709551615" {
		t.Errorf("notes = %+v", d.Notes)
	}
	if len(d.Fixes) != 1 || d.Fixes[0].Edits[0].NewText != "18446744073709551615UL" {
		t.Errorf("fixes = %+v", d.Fixes)
	}
}

func TestCheckSourceFixCarriesGuard(t *testing.T) {
	src := "var x = (ulong)1L;"
	_, res := driver.CheckSource("guard.cs", []byte(src), driver.CheckOptions{})
	if res.Flagged != 1 {
		t.Fatalf("flagged %d, want 1", res.Flagged)
	}
	edit := res.Bag.Items()[0].Fixes[0].Edits[0]
	if edit.OldText != "(ulong)1L" || edit.NewText != "1UL" {
		t.Errorf("edit = %+v", edit)
	}
}

func TestCheckSourceAssumeUnchecked(t *testing.T) {
	src := "var x = (uint)-1;"

	_, checked := driver.CheckSource("a.cs", []byte(src), driver.CheckOptions{})
	if checked.Flagged != 0 {
		t.Errorf("checked context flagged %d, want 0", checked.Flagged)
	}

	_, unchecked := driver.CheckSource("a.cs", []byte(src), driver.CheckOptions{AssumeUnchecked: true})
	if unchecked.Flagged != 1 {
		t.Fatalf("unchecked context flagged %d, want 1", unchecked.Flagged)
	}
	fix := unchecked.Bag.Items()[0].Fixes[0]
	if fix.Edits[0].NewText != "4294967295U" {
		t.Errorf("fix text = %q, want 4294967295U", fix.Edits[0].NewText)
	}
}

func TestCheckSourceReportsLexErrors(t *testing.T) {
	src := "var s = \"unterminated;\nvar x = (long)1;"
	_, res := driver.CheckSource("bad.cs", []byte(src), driver.CheckOptions{})
	found := false
	for _, d := range res.Bag.Items() {
		if d.Code == diag.LexUnterminatedString {
			found = true
		}
	}
	if !found {
		t.Error("unterminated string not reported")
	}
}

func TestCheckSourceDeterministicOrder(t *testing.T) {
	src := "var a = (long)1; var b = (uint)2; var c = (float)3.5;"
	_, res := driver.CheckSource("order.cs", []byte(src), driver.CheckOptions{})
	items := res.Bag.Items()
	if len(items) != 3 {
		t.Fatalf("%d diagnostics, want 3", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].Primary.Start <= items[i-1].Primary.Start {
			t.Errorf("diagnostics out of source order at %d", i)
		}
	}
}
