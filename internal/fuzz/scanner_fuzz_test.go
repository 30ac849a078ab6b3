package fuzztests

import (
	"testing"

	"litcast/internal/diag"
	"litcast/internal/parser"
	"litcast/internal/rule"
	"litcast/internal/source"
	"litcast/internal/testkit"
)

func FuzzCastScanner(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.cs", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(64)
		res := parser.ScanFile(file, parser.Options{Reporter: diag.BagReporter{Bag: bag}})

		if err := testkit.CheckCastInvariants(res.Casts, file); err != nil {
			t.Fatalf("cast invariants violated: %v", err)
		}

		// verdicts must come out without panics on any scanned cast
		for _, cast := range res.Casts {
			_, _ = rule.Evaluate(cast)
		}
	})
}
