package diag

import "litcast/internal/source"

// Reporter is the minimal contract for receiving diagnostics from phases.
// Implementations: BagReporter, NopReporter, DedupReporter.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string, notes []Note, fixes []Fix)
}

// BagReporter collects into a *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note, fixes []Fix) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev, Code: code, Message: msg,
		Primary: primary, Notes: notes, Fixes: fixes,
	})
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, source.Span, string, []Note, []Fix) {}

// DedupReporter suppresses repeated code+span pairs before forwarding.
// Используется лексером: один и тот же span может репортиться повторно
// при повторном сканировании.
type DedupReporter struct {
	Next Reporter
	seen map[string]bool
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{
		Next: next,
		seen: make(map[string]bool),
	}
}

func (r *DedupReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note, fixes []Fix) {
	if r.Next == nil {
		return
	}
	key := code.ID() + ":" + primary.String()
	if r.seen[key] {
		return
	}
	r.seen[key] = true
	r.Next.Report(code, sev, primary, msg, notes, fixes)
}
