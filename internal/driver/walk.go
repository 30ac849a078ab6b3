package driver

import (
	"context"
	"io/fs"
	"path"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"litcast/internal/diag"
	"litcast/internal/source"
)

// Status of one file during a directory run.
type Status uint8

const (
	StatusQueued Status = iota
	StatusChecking
	StatusDone
	StatusError
)

// Event reports per-file progress to an observer (the progress UI).
// Callbacks may arrive from worker goroutines.
type Event struct {
	Path    string
	Status  Status
	Flagged int
}

// DirOptions configures a directory run.
type DirOptions struct {
	CheckOptions
	// Jobs bounds the number of parallel workers; 0 means GOMAXPROCS.
	Jobs int
	// Exclude holds glob patterns matched against the slash-separated path
	// relative to the root, and against each path segment (so "obj" skips
	// any obj directory).
	Exclude []string
	// Progress receives per-file events; nil disables reporting.
	Progress func(Event)
}

// ListSourceFiles returns the sorted .cs files under dir, minus exclusions.
func ListSourceFiles(dir string, exclude []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(dir, p)
		if relErr != nil {
			rel = p
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if rel != "." && excluded(rel, exclude) {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(p, ".cs") || excluded(rel, exclude) {
			return nil
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func excluded(rel string, patterns []string) bool {
	for _, pat := range patterns {
		if ok, _ := path.Match(pat, rel); ok {
			return true
		}
		for _, seg := range strings.Split(rel, "/") {
			if ok, _ := path.Match(pat, seg); ok {
				return true
			}
		}
	}
	return false
}

// CheckDir analyzes every .cs file under dir. Files are loaded sequentially
// in sorted order, so file IDs and diagnostics are deterministic; the
// analysis itself runs in parallel, which is safe because per-file analysis
// only reads the FileSet.
func CheckDir(ctx context.Context, dir string, opts DirOptions) (*source.FileSet, []FileResult, error) {
	files, err := ListSourceFiles(dir, opts.Exclude)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, p := range files {
		notify(opts.Progress, Event{Path: p, Status: StatusQueued})
		id, err := fileSet.Load(p)
		if err != nil {
			loadErrors[p] = err
			continue
		}
		fileIDs[p] = id
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индекс i уникален для каждой горутины, мьютекс не нужен
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, p := range files {
		i, p := i, p
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			notify(opts.Progress, Event{Path: p, Status: StatusChecking})

			if loadErr, failed := loadErrors[p]; failed {
				bag := diag.NewBag(opts.maxDiagnostics())
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+loadErr.Error()))
				results[i] = FileResult{Path: p, Bag: bag}
				notify(opts.Progress, Event{Path: p, Status: StatusError})
				return nil
			}

			res := checkLoaded(fileSet, fileIDs[p], opts.CheckOptions)
			results[i] = *res
			notify(opts.Progress, Event{Path: p, Status: StatusDone, Flagged: res.Flagged})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func notify(fn func(Event), ev Event) {
	if fn != nil {
		fn(ev)
	}
}

// MergeBags collects every file's diagnostics into one sorted bag.
func MergeBags(results []FileResult) *diag.Bag {
	total := 0
	for _, r := range results {
		if r.Bag != nil {
			total += r.Bag.Len()
		}
	}
	merged := diag.NewBag(max(total, 1))
	for _, r := range results {
		merged.Merge(r.Bag)
	}
	merged.Sort()
	return merged
}
