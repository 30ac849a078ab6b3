package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about how a source file was loaded.
	FileFlags uint8
)

const (
	// FileVirtual marks a file added from memory (tests, stdin) rather than disk.
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM marks a file that carried a UTF-8 BOM before normalization.
	FileHadBOM
	// FileNormalizedCRLF marks a file whose CRLF line endings were rewritten to LF.
	FileNormalizedCRLF
)

// File holds the normalized content and derived metadata for one source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	// LineStarts holds the byte offset of the first character of every line.
	// LineStarts[0] is always 0.
	LineStarts []uint32
	Hash       [32]byte
	Flags      FileFlags
}

// LineCol is a human-readable position in a source file (both 1-based).
type LineCol struct {
	Line uint32
	Col  uint32
}
