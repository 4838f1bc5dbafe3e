package driver

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"jsfmt/internal/format"
	"jsfmt/internal/observ"
	"jsfmt/internal/project"
	"jsfmt/internal/source"
	"jsfmt/internal/trace"
)

// ErrNoFiles is returned when the given paths contain nothing to format.
var ErrNoFiles = errors.New("fmt: no source files found")

// FormatOptions configures a multi-file formatting run.
type FormatOptions struct {
	Check    bool
	Stdout   bool
	Verify   bool // re-check idempotence; skipped with KeepArrayIndentation
	Options  format.Options
	Files    project.Files
	Jobs     int
	Cache    *DiskCache
	Timer    *observ.Timer
	Progress ProgressSink
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Cached    bool
	Err       error
	Formatted []byte
}

// FormatPaths formats provided files or directories (recursively collecting
// files accepted by opts.Files). When opts.Check is true, files are not
// modified; Changed indicates whether formatting would update the file
// contents. When opts.Stdout is true, formatted content is returned in the
// results without touching files on disk.
//
// Per-file failures are reported in FormatResult.Err; the returned error is
// reserved for invalid options, collection failures and cancellation.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := opts.Options.Validate(); err != nil {
		return nil, err
	}

	phase := opts.Timer.Begin("collect")
	files, err := CollectFiles(ctx, paths, opts.Files)
	opts.Timer.End(phase, strconv.Itoa(len(files))+" files")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	results := make([]FormatResult, len(files))
	for i, path := range files {
		results[i].Path = path
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	phase = opts.Timer.Begin("format")
	jobs := jobCount(opts.Jobs)
	digest := project.OptionsDigest(opts.Options)
	fileSet := source.NewFileSet()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusWorking})
			id, err := fileSet.Load(path)
			if err != nil {
				results[i].Err = err
				emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err})
				return nil
			}
			results[i] = formatOne(gctx, path, fileSet.Get(id), digest, &opts)
			return nil
		})
	}
	err = g.Wait()
	opts.Timer.End(phase, fmt.Sprintf("jobs=%d", jobs))
	return results, err
}

// FormatReader formats everything read from r, for the "-" path.
func FormatReader(ctx context.Context, r io.Reader, opts format.Options) (FormatResult, error) {
	result := FormatResult{Path: "-"}
	if err := opts.Validate(); err != nil {
		return result, err
	}
	fileSet := source.NewFileSet()
	id, err := fileSet.LoadReader("<stdin>", r)
	if err != nil {
		return result, err
	}
	file := fileSet.Get(id)
	out, err := format.File(ctx, file, opts)
	if err != nil {
		return result, err
	}
	result.Formatted = withFinalNewline(out)
	result.Changed = !bytes.Equal(file.Content, result.Formatted)
	return result, nil
}

func formatOne(ctx context.Context, path string, file *source.File, digest project.Digest, opts *FormatOptions) (result FormatResult) {
	result.Path = path
	start := time.Now()

	ctx, span := trace.StartSpan(ctx, trace.ScopeFile, "format_file")
	span.WithExtra("path", path).WithExtra("flags", file.Flags.String())

	status := StatusDone
	defer func() {
		if result.Err != nil {
			status = StatusError
		}
		span.End(string(status))
		emit(opts.Progress, Event{File: path, Stage: StageFormat, Status: status, Err: result.Err, Elapsed: time.Since(start)})
	}()

	emit(opts.Progress, Event{File: path, Stage: StageFormat, Status: StatusWorking})

	key := cacheKey(file.Hash, digest)
	if opts.Cache.Formatted(key, len(file.Content)) {
		result.Cached = true
		if opts.Stdout {
			result.Formatted = file.Content
		}
		status = StatusCached
		return result
	}

	out, err := format.File(ctx, file, opts.Options)
	if err != nil {
		result.Err = err
		return result
	}
	if opts.Verify && !opts.Options.KeepArrayIndentation {
		if ok, msg := format.CheckRoundTrip(string(file.Content), opts.Options); !ok {
			result.Err = errors.New(msg)
			return result
		}
	}
	formatted := withFinalNewline(out)
	result.Changed = !bytes.Equal(file.Content, formatted)
	if result.Changed {
		status = StatusChanged
	}

	switch {
	case opts.Stdout:
		result.Formatted = formatted
	case opts.Check:
	case result.Changed:
		emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusWorking})
		if err := writeFileAtomic(path, formatted); err != nil {
			result.Err = fmt.Errorf("write %s: %w", path, err)
			return result
		}
		key = cacheKey(sha256.Sum256(formatted), digest)
	}

	if !result.Changed || (!opts.Check && !opts.Stdout) {
		// кэш помнит только уже отформатированное содержимое
		_ = opts.Cache.Put(key, &DiskPayload{
			Path:    path,
			Size:    len(formatted),
			Options: digest,
			Stamp:   time.Now().UTC(),
		})
	}
	return result
}

// CollectFiles expands directories into the files accepted by files.
// Explicit file arguments are always kept. Hidden directories below a walk
// root and excluded paths are skipped. The result is sorted and free of
// duplicates.
func CollectFiles(ctx context.Context, paths []string, files project.Files) ([]string, error) {
	var out []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		path = filepath.Clean(path)
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		out = append(out, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			addFile(p)
			continue
		}

		root := p
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return relErr
			}
			if d.IsDir() {
				if rel == "." {
					return nil
				}
				if strings.HasPrefix(d.Name(), ".") || files.Excluded(rel) {
					return filepath.SkipDir
				}
				return nil
			}
			if files.Matches(path) && !files.Excluded(rel) {
				addFile(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(out)
	return out, nil
}

func withFinalNewline(out string) []byte {
	if out == "" {
		return []byte{}
	}
	return []byte(out + "\n")
}

func jobCount(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// writeFileAtomic replaces path keeping its permission bits.
func writeFileAtomic(path string, data []byte) (err error) {
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}
	f, err := os.CreateTemp(filepath.Dir(path), ".jsfmt-*")
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}
