package source

import (
	"path/filepath"
	"slices"
)

// normalizeCRLF rewrites every \r\n pair to \n. Lone \r bytes are kept.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !slices.Contains(content, '\r') {
		return content, false
	}
	out := make([]byte, 0, len(content))
	changed := false
	for i := 0; i < len(content); i++ {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i++
			changed = true
			continue
		}
		out = append(out, content[i])
	}
	return out, changed
}

func stripBOM(content []byte) ([]byte, bool) {
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}

// buildLineStarts records the byte offset of each line's first character.
func buildLineStarts(content []byte) []uint32 {
	starts := make([]uint32, 1, 16)
	starts[0] = 0
	for i, b := range content {
		if b == '\n' {
			starts = append(starts, uint32(i)+1)
		}
	}
	return starts
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}
