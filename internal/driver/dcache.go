package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"litcast/internal/diag"
	"litcast/internal/source"
)

// Current schema version - increment when DiskPayload format changes.
const diskCacheSchemaVersion uint16 = 1

// Digest is a SHA-256 content hash, the cache key.
type Digest = [32]byte

// DiskCache stores per-file analysis results keyed by content hash.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the serialized analysis of one file. Spans are stored as
// bare offsets; the file ID is reattached on load since IDs are per-run.
type DiskPayload struct {
	Schema uint16
	Path   string
	Diags  []CachedDiagnostic
}

type CachedDiagnostic struct {
	Code     uint16
	Severity uint8
	Start    uint32
	End      uint32
	Message  string
	Notes    []CachedNote
	Fixes    []CachedFix
}

type CachedNote struct {
	Start uint32
	End   uint32
	Msg   string
}

type CachedFix struct {
	ID            string
	Title         string
	Kind          uint8
	Applicability uint8
	Preferred     bool
	Edits         []CachedEdit
}

type CachedEdit struct {
	Start   uint32
	End     uint32
	NewText string
	OldText string
}

// OpenDiskCache initializes and returns a disk cache at the standard
// location ($XDG_CACHE_HOME/<app> or ~/.cache/<app>).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt uses an explicit directory, for tests.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	// подкаталог "files" для удобства очистки
	return filepath.Join(c.dir, "files", hex.EncodeToString(key[:])+".mp")
}

// Put serializes and writes a payload, replacing atomically via rename.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload. Returns false without error on a cache miss.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() { _ = f.Close() }()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll invalidates the whole cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// bagToPayload flattens a bag for caching. Only primary-file spans occur in
// this analysis, so offsets alone reconstruct every span.
func bagToPayload(path string, bag *diag.Bag) *DiskPayload {
	payload := &DiskPayload{
		Schema: diskCacheSchemaVersion,
		Path:   path,
		Diags:  make([]CachedDiagnostic, 0, bag.Len()),
	}
	for _, d := range bag.Items() {
		cd := CachedDiagnostic{
			Code:     uint16(d.Code),
			Severity: uint8(d.Severity),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Message:  d.Message,
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, CachedNote{Start: n.Span.Start, End: n.Span.End, Msg: n.Msg})
		}
		for _, f := range d.Fixes {
			cf := CachedFix{
				ID:            f.ID,
				Title:         f.Title,
				Kind:          uint8(f.Kind),
				Applicability: uint8(f.Applicability),
				Preferred:     f.IsPreferred,
			}
			for _, e := range f.Edits {
				cf.Edits = append(cf.Edits, CachedEdit{
					Start:   e.Span.Start,
					End:     e.Span.End,
					NewText: e.NewText,
					OldText: e.OldText,
				})
			}
			cd.Fixes = append(cd.Fixes, cf)
		}
		payload.Diags = append(payload.Diags, cd)
	}
	return payload
}

// payloadToBag rebuilds a bag against the current run's file ID. A schema
// mismatch yields nil and forces re-analysis.
func payloadToBag(payload *DiskPayload, id source.FileID, max int) *diag.Bag {
	if payload == nil || payload.Schema != diskCacheSchemaVersion {
		return nil
	}
	span := func(start, end uint32) source.Span {
		return source.Span{File: id, Start: start, End: end}
	}
	bag := diag.NewBag(max)
	for _, cd := range payload.Diags {
		d := diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code(cd.Code),
			Message:  cd.Message,
			Primary:  span(cd.Start, cd.End),
		}
		for _, n := range cd.Notes {
			d.Notes = append(d.Notes, diag.Note{Span: span(n.Start, n.End), Msg: n.Msg})
		}
		for _, cf := range cd.Fixes {
			f := diag.Fix{
				ID:            cf.ID,
				Title:         cf.Title,
				Kind:          diag.FixKind(cf.Kind),
				Applicability: diag.FixApplicability(cf.Applicability),
				IsPreferred:   cf.Preferred,
			}
			for _, e := range cf.Edits {
				f.Edits = append(f.Edits, diag.TextEdit{
					Span:    span(e.Start, e.End),
					NewText: e.NewText,
					OldText: e.OldText,
				})
			}
			d.Fixes = append(d.Fixes, f)
		}
		bag.Add(d)
	}
	return bag
}
