package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigName is the preferred config file name.
const ConfigName = ".jsfmt.toml"

// ConfigNames lists accepted names in lookup order within one directory.
var ConfigNames = []string{ConfigName, "jsfmt.toml"}

// FindConfig looks for a config file in startDir and its parents. The walk
// ends at the first directory that holds a .git entry, so a config from
// outside the repository never applies.
func FindConfig(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		for _, name := range ConfigNames {
			candidate := filepath.Join(dir, name)
			found, err := exists(candidate)
			if err != nil {
				return "", false, err
			}
			if found {
				return candidate, true, nil
			}
		}
		if repoRoot, err := exists(filepath.Join(dir, ".git")); err != nil || repoRoot {
			return "", false, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("failed to stat %q: %w", path, err)
	}
}
