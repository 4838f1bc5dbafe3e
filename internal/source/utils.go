package source

import (
	"bytes"
	"path/filepath"
	"sort"

	"fortio.org/safecast"
)

// buildLineIndex records the offset of every '\n'. Offsets past 4 GiB do
// not fit a Span and are not indexed.
func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, bytes.Count(content, []byte{'\n'}))
	for off := 0; ; {
		i := bytes.IndexByte(content[off:], '\n')
		if i < 0 {
			return out
		}
		pos, err := safecast.Conv[uint32](off + i)
		if err != nil {
			return out
		}
		out = append(out, pos)
		off += i + 1
	}
}

// toLineCol maps a byte offset to a 1-based line and column. A newline
// belongs to the line it terminates.
func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// число переводов строки строго до off
	line := sort.Search(len(lineIdx), func(i int) bool { return lineIdx[i] >= off })
	lineStart := uint32(0)
	if line > 0 {
		lineStart = lineIdx[line-1] + 1
	}
	return LineCol{Line: uint32(line) + 1, Col: off - lineStart + 1}
}

// normalizePath gives paths one slash-separated form on every platform.
func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}
