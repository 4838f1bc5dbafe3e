package source

import "strings"

// FileID indexes a file inside its FileSet.
type FileID uint32

// FileFlags records how content reached the FileSet.
type FileFlags uint8

const (
	FileVirtual    FileFlags = 1 << iota // не с диска: stdin, тесты
	FileHadBOM                           // BOM снят при загрузке
	FileTranscoded                       // перекодирован из UTF-16
)

// Has reports whether all bits of flag are set.
func (f FileFlags) Has(flag FileFlags) bool { return f&flag == flag }

func (f FileFlags) String() string {
	var names []string
	for _, fl := range []struct {
		bit  FileFlags
		name string
	}{{FileVirtual, "virtual"}, {FileHadBOM, "bom"}, {FileTranscoded, "utf16"}} {
		if f.Has(fl.bit) {
			names = append(names, fl.name)
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, "|")
}

// File is one decoded source. Content is always UTF-8 without a BOM; Hash
// is the SHA-256 of Content and LineIdx holds the offset of every '\n'.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a 1-based line and column.
type LineCol struct {
	Line uint32
	Col  uint32
}
