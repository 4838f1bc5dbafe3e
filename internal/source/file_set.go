package source

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"sync"

	"fortio.org/safecast"
)

// FileSet owns decoded source files and resolves spans to positions.
// It is safe for concurrent use: fmt workers load their files into one set.
// A *File returned by Get stays valid and unchanged for the set's lifetime.
type FileSet struct {
	mu     sync.RWMutex
	files  []*File
	byPath map[string]FileID // последняя версия по нормализованному пути
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{byPath: make(map[string]FileID)}
}

// Add stores decoded content under a fresh FileID, even when path was
// added before; GetLatest then resolves path to the new ID.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	file := &File{
		Path:    normalizePath(path),
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	}

	fileSet.mu.Lock()
	defer fileSet.mu.Unlock()
	n, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("too many files in set: %w", err))
	}
	file.ID = FileID(n)
	fileSet.files = append(fileSet.files, file)
	fileSet.byPath[file.Path] = file.ID
	return file.ID
}

// Load reads path, decodes it to UTF-8 and adds it.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return fileSet.addRaw(path, raw, 0)
}

// LoadReader reads r to the end and adds it as a virtual file named name.
func (fileSet *FileSet) LoadReader(name string, r io.Reader) (FileID, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	return fileSet.addRaw(name, raw, FileVirtual)
}

func (fileSet *FileSet) addRaw(name string, raw []byte, flags FileFlags) (FileID, error) {
	content, decoded, err := Decode(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return fileSet.Add(name, content, flags|decoded), nil
}

// AddVirtual adds in-memory content that did not come from disk.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.Add(name, content, FileVirtual)
}

// Get returns the file for id. It panics on an id from another set.
func (fileSet *FileSet) Get(id FileID) *File {
	fileSet.mu.RLock()
	defer fileSet.mu.RUnlock()
	return fileSet.files[id]
}

// GetLatest returns the newest ID added under path.
func (fileSet *FileSet) GetLatest(path string) (FileID, bool) {
	fileSet.mu.RLock()
	defer fileSet.mu.RUnlock()
	id, ok := fileSet.byPath[normalizePath(path)]
	return id, ok
}

// Len reports how many files were added.
func (fileSet *FileSet) Len() int {
	fileSet.mu.RLock()
	defer fileSet.mu.RUnlock()
	return len(fileSet.files)
}

// Resolve converts a span into 1-based start and end positions.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fileSet.Get(span.File)
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}
