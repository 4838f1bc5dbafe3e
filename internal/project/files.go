package project

import (
	"path/filepath"
	"slices"
	"strings"
)

// DefaultExtensions are formatted when [files].extensions is not set.
var DefaultExtensions = []string{".js"}

// Files is the [files] section: which files a directory walk picks up.
type Files struct {
	Extensions []string `toml:"extensions"`
	Exclude    []string `toml:"exclude"`
}

// Matches reports whether path has one of the configured extensions.
func (f Files) Matches(path string) bool {
	exts := f.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	return slices.Contains(exts, strings.ToLower(filepath.Ext(path)))
}

// Excluded reports whether any element of rel (a slash or OS separated
// path relative to the walk root) matches an exclude pattern.
func (f Files) Excluded(rel string) bool {
	if len(f.Exclude) == 0 {
		return false
	}
	rel = filepath.ToSlash(filepath.Clean(rel))
	for _, pattern := range f.Exclude {
		pattern = strings.TrimSuffix(filepath.ToSlash(pattern), "/")
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
		for _, elem := range strings.Split(rel, "/") {
			if ok, _ := filepath.Match(pattern, elem); ok {
				return true
			}
		}
	}
	return false
}
