package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"jsfmt/internal/format"
	"jsfmt/internal/lexer"
	"jsfmt/internal/project"
	"jsfmt/internal/token"
)

const (
	messy     = "if(a){b()}"
	formatted = "if (a) {\n    b()\n}\n"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func baseOptions() FormatOptions {
	return FormatOptions{Options: format.DefaultOptions(), Jobs: 2}
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.js"), "a")
	writeFile(t, filepath.Join(dir, "notes.txt"), "a")
	writeFile(t, filepath.Join(dir, "sub", "c.js"), "c")
	writeFile(t, filepath.Join(dir, "node_modules", "d.js"), "d")
	writeFile(t, filepath.Join(dir, ".git", "e.js"), "e")

	files := project.Files{Exclude: []string{"node_modules"}}
	got, err := CollectFiles(context.Background(), []string{dir, filepath.Join(dir, "notes.txt"), filepath.Join(dir, "a.js")}, files)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a.js"),
		filepath.Join(dir, "notes.txt"),
		filepath.Join(dir, "sub", "c.js"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("collected files mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectFilesExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.js"), "a")
	writeFile(t, filepath.Join(dir, "b.json"), "{}")

	got, err := CollectFiles(context.Background(), []string{dir}, project.Files{Extensions: []string{".json"}})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{filepath.Join(dir, "b.json")}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectFilesMissingPath(t *testing.T) {
	_, err := CollectFiles(context.Background(), []string{filepath.Join(t.TempDir(), "nope.js")}, project.Files{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want ErrNotExist, got %v", err)
	}
}

func TestFormatPathsWrite(t *testing.T) {
	dir := t.TempDir()
	dirty := filepath.Join(dir, "dirty.js")
	clean := filepath.Join(dir, "clean.js")
	writeFile(t, dirty, messy)
	writeFile(t, clean, formatted)

	results, err := FormatPaths(context.Background(), []string{dir}, baseOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("want 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Err != nil {
			t.Fatalf("%s: %v", r.Path, r.Err)
		}
		wantChanged := r.Path == dirty
		if r.Changed != wantChanged {
			t.Errorf("%s: Changed = %v, want %v", r.Path, r.Changed, wantChanged)
		}
	}
	if got := readFile(t, dirty); got != formatted {
		t.Fatalf("dirty.js not rewritten: %q", got)
	}

	again, err := FormatPaths(context.Background(), []string{dir}, baseOptions())
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range again {
		if r.Changed {
			t.Errorf("%s changed on second run", r.Path)
		}
	}
}

func TestFormatPathsKeepsMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.js")
	writeFile(t, path, messy)
	if err := os.Chmod(path, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := FormatPaths(context.Background(), []string{path}, baseOptions()); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestFormatPathsCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.js")
	writeFile(t, path, messy)

	opts := baseOptions()
	opts.Check = true
	results, err := FormatPaths(context.Background(), []string{path}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !results[0].Changed {
		t.Fatal("check must report the file as changed")
	}
	if results[0].Formatted != nil {
		t.Fatal("check must not return content")
	}
	if got := readFile(t, path); got != messy {
		t.Fatalf("check modified the file: %q", got)
	}
}

func TestFormatPathsStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.js")
	writeFile(t, path, messy)

	opts := baseOptions()
	opts.Stdout = true
	results, err := FormatPaths(context.Background(), []string{path}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(formatted, string(results[0].Formatted)); diff != "" {
		t.Fatalf("stdout content mismatch (-want +got):\n%s", diff)
	}
	if got := readFile(t, path); got != messy {
		t.Fatalf("stdout mode modified the file: %q", got)
	}
}

func TestFormatPathsCache(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "x.js")
	writeFile(t, path, messy)

	opts := baseOptions()
	opts.Cache = cache
	first, err := FormatPaths(context.Background(), []string{path}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].Cached || !first[0].Changed {
		t.Fatalf("first run: %+v", first[0])
	}

	second, err := FormatPaths(context.Background(), []string{path}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second[0].Cached || second[0].Changed {
		t.Fatalf("second run should be a cache hit: %+v", second[0])
	}

	// другие опции дают другой ключ
	opts.Options.IndentSize = 2
	third, err := FormatPaths(context.Background(), []string{path}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third[0].Cached {
		t.Fatal("changed options must miss the cache")
	}
	if got := readFile(t, path); got != "if (a) {\n  b()\n}\n" {
		t.Fatalf("unexpected content after reindent: %q", got)
	}
}

func TestFormatPathsVerify(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.js"), messy)
	writeFile(t, filepath.Join(dir, "b.js"), "var a=1,b=2;")

	opts := baseOptions()
	opts.Verify = true
	opts.Check = true
	results, err := FormatPaths(context.Background(), []string{dir}, opts)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("%s: %v", r.Path, r.Err)
		}
	}
}

func TestFormatPathsInvalidOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.js")
	writeFile(t, path, messy)

	opts := baseOptions()
	opts.Options.BraceStyle = format.BraceStyle(42)
	_, err := FormatPaths(context.Background(), []string{path}, opts)
	var cfgErr *format.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("want *format.ConfigError, got %v", err)
	}
}

func TestFormatPathsNoFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "readme.md"), "# hi")
	_, err := FormatPaths(context.Background(), []string{dir}, baseOptions())
	if !errors.Is(err, ErrNoFiles) {
		t.Fatalf("want ErrNoFiles, got %v", err)
	}
}

func TestFormatPathsCanceled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.js")
	writeFile(t, path, messy)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := FormatPaths(ctx, []string{path}, baseOptions()); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestFormatPathsProgress(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.js", "b.js", "c.js"} {
		writeFile(t, filepath.Join(dir, name), messy)
	}

	var (
		mu       sync.Mutex
		terminal = map[string]Status{}
		queued   int
	)
	opts := baseOptions()
	opts.Check = true
	opts.Progress = SinkFunc(func(evt Event) {
		mu.Lock()
		defer mu.Unlock()
		if evt.Status == StatusQueued {
			queued++
		}
		if evt.Terminal() {
			terminal[filepath.Base(evt.File)] = evt.Status
		}
	})
	if _, err := FormatPaths(context.Background(), []string{dir}, opts); err != nil {
		t.Fatal(err)
	}
	want := map[string]Status{"a.js": StatusChanged, "b.js": StatusChanged, "c.js": StatusChanged}
	if diff := cmp.Diff(want, terminal); diff != "" {
		t.Fatalf("terminal statuses mismatch (-want +got):\n%s", diff)
	}
	if queued != 3 {
		t.Fatalf("queued events = %d, want 3", queued)
	}
}

func TestFormatReader(t *testing.T) {
	res, err := FormatReader(context.Background(), strings.NewReader(messy), format.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if !res.Changed || string(res.Formatted) != formatted {
		t.Fatalf("unexpected result: changed=%v %q", res.Changed, res.Formatted)
	}

	res, err = FormatReader(context.Background(), strings.NewReader(""), format.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if res.Changed || len(res.Formatted) != 0 {
		t.Fatalf("empty input: changed=%v %q", res.Changed, res.Formatted)
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := cacheKey([32]byte{1, 2, 3}, project.Digest{9})

	var out DiskPayload
	if ok, err := cache.Get(key, &out); ok || err != nil {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}

	stamp := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	in := &DiskPayload{Path: "a.js", Size: 10, Options: project.Digest{9}, Stamp: stamp}
	if err := cache.Put(key, in); err != nil {
		t.Fatal(err)
	}
	ok, err := cache.Get(key, &out)
	if err != nil || !ok {
		t.Fatalf("get after put: ok=%v err=%v", ok, err)
	}
	if out.Path != "a.js" || out.Size != 10 || !out.Stamp.Equal(stamp) || out.Schema != CacheSchemaVersion {
		t.Fatalf("payload mismatch: %+v", out)
	}

	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	if ok, _ := cache.Get(key, &out); ok {
		t.Fatal("entry survived DropAll")
	}
}

func TestNilDiskCache(t *testing.T) {
	var cache *DiskCache
	var out DiskPayload
	if err := cache.Put(project.Digest{}, &out); err != nil {
		t.Fatal(err)
	}
	if ok, err := cache.Get(project.Digest{}, &out); ok || err != nil {
		t.Fatalf("nil cache: ok=%v err=%v", ok, err)
	}
}

func TestTokenize(t *testing.T) {
	res, err := Tokenize("-", strings.NewReader("a = /x/;"), lexer.Options{})
	if err != nil {
		t.Fatal(err)
	}
	var kinds []token.Kind
	for _, tok := range res.Tokens {
		kinds = append(kinds, tok.Kind)
	}
	want := []token.Kind{token.Word, token.Equals, token.String, token.Semicolon, token.EOF}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
	if res.File.Path != "<stdin>" {
		t.Fatalf("path = %q", res.File.Path)
	}
}

func TestDiskCacheFormattedChecksSize(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := cacheKey([32]byte{7}, project.Digest{1})
	if cache.Formatted(key, 4) {
		t.Fatal("empty cache reported a hit")
	}
	if err := cache.Put(key, &DiskPayload{Path: "a.js", Size: 4}); err != nil {
		t.Fatal(err)
	}
	if !cache.Formatted(key, 4) {
		t.Fatal("expected hit for matching size")
	}
	if cache.Formatted(key, 5) {
		t.Fatal("size mismatch must miss")
	}
	var nilCache *DiskCache
	if nilCache.Formatted(key, 4) {
		t.Fatal("nil cache must miss")
	}
}
