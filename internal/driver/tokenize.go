package driver

import (
	"litcast/internal/diag"
	"litcast/internal/lexer"
	"litcast/internal/source"
	"litcast/internal/token"
)

// TokenizeResult carries the token stream of one file plus its diagnostics.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes a single file, for the tokenize debugging command.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(id)

	if maxDiagnostics <= 0 {
		maxDiagnostics = defaultMaxDiagnostics
	}
	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{
		Reporter: diag.NewDedupReporter(diag.BagReporter{Bag: bag}),
	})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  lx.All(),
		Bag:     bag,
	}, nil
}
