package fuzztests

import (
	"testing"

	"litcast/internal/diag"
	"litcast/internal/lexer"
	"litcast/internal/source"
	"litcast/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func FuzzLexerTokens(f *testing.F) {
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
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		prevEnd := uint32(0)
		for {
			tok := lx.Next()
			if tok.Kind == token.EOF {
				break
			}
			// tokens must make progress and stay within the file
			if tok.Span.End <= prevEnd && tok.Span.End != tok.Span.Start {
				t.Fatalf("token %v does not advance past offset %d", tok, prevEnd)
			}
			if int(tok.Span.End) > len(file.Content) {
				t.Fatalf("token %v ends beyond content", tok)
			}
			prevEnd = tok.Span.End
		}
	})
}
