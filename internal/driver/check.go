package driver

import (
	"litcast/internal/diag"
	"litcast/internal/parser"
	"litcast/internal/rewrite"
	"litcast/internal/rule"
	"litcast/internal/source"
)

const defaultMaxDiagnostics = 256

// CheckOptions configures per-file analysis.
type CheckOptions struct {
	// MaxDiagnostics caps the bag size per file; 0 means the default.
	MaxDiagnostics int
	// AssumeUnchecked treats code outside explicit regions as unchecked.
	AssumeUnchecked bool
	// Cache short-circuits analysis of files with an unchanged content
	// hash. Nil disables caching.
	Cache *DiskCache
}

func (o CheckOptions) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return defaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

// FileResult is the analysis outcome for one file.
type FileResult struct {
	Path      string
	FileID    source.FileID
	Bag       *diag.Bag
	Flagged   int
	FromCache bool
}

// CheckFile loads and analyzes a single file from disk.
func CheckFile(path string, opts CheckOptions) (*source.FileSet, *FileResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, nil, err
	}
	res := checkLoaded(fs, id, opts)
	return fs, res, nil
}

// CheckSource analyzes in-memory content, for tests and stdin.
func CheckSource(name string, src []byte, opts CheckOptions) (*source.FileSet, *FileResult) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, src)
	return fs, checkLoaded(fs, id, opts)
}

// checkLoaded analyzes one already-loaded file, consulting the cache first.
// The cache key is the normalized content hash, so a stale entry cannot
// survive an edit.
func checkLoaded(fs *source.FileSet, id source.FileID, opts CheckOptions) *FileResult {
	file := fs.Get(id)

	if opts.Cache != nil {
		var payload DiskPayload
		if ok, err := opts.Cache.Get(file.Hash, &payload); err == nil && ok {
			if bag := payloadToBag(&payload, id, opts.maxDiagnostics()); bag != nil {
				return &FileResult{
					Path:      file.Path,
					FileID:    id,
					Bag:       bag,
					Flagged:   countFlagged(bag),
					FromCache: true,
				}
			}
		}
	}

	bag := analyze(file, opts)

	if opts.Cache != nil {
		// cache write failures are invisible to the check outcome
		_ = opts.Cache.Put(file.Hash, bagToPayload(file.Path, bag))
	}

	return &FileResult{
		Path:    file.Path,
		FileID:  id,
		Bag:     bag,
		Flagged: countFlagged(bag),
	}
}

// analyze runs the pipeline over one file: scan casts, evaluate each, and
// report matched ones as warnings carrying their quick fix.
func analyze(file *source.File, opts CheckOptions) *diag.Bag {
	bag := diag.NewBag(opts.maxDiagnostics())
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag})

	res := parser.ScanFile(file, parser.Options{
		Reporter:        reporter,
		AssumeUnchecked: opts.AssumeUnchecked,
	})

	for _, cast := range res.Casts {
		finding, verdict := rule.Evaluate(cast)
		if verdict != rule.VerdictMatched {
			continue
		}
		d := diag.NewWarning(diag.CastUseLiteral, finding.Span, diag.CastUseLiteral.Title()).
			WithFix(rewrite.Fix(file, finding))
		if finding.Wrapped {
			d = d.WithNote(finding.Span, "unchecked conversion wraps the value to "+finding.WrappedText)
		}
		bag.Add(d)
	}

	bag.Sort()
	return bag
}

func countFlagged(bag *diag.Bag) int {
	n := 0
	for _, d := range bag.Items() {
		if d.Code == diag.CastUseLiteral {
			n++
		}
	}
	return n
}
