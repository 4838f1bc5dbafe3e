package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"jsfmt/internal/driver"
	"jsfmt/internal/format"
	"jsfmt/internal/project"
)

// repoDir returns a temp dir marked as a repository root so FindConfig
// never walks above it.
func repoDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}
	return dir
}

func TestBuildReportWithoutFormatterFields(t *testing.T) {
	r, err := collectBuildReport(repoDir(t), reportFields{hash: true})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if r.Tool != "jsfmt" || r.Version == "" {
		t.Fatalf("unexpected header %+v", r)
	}
	if r.Commit == "" {
		t.Fatalf("commit should be filled, got %+v", r)
	}
	if r.Message != "" || r.Built != "" || r.OptionsDigest != "" || r.CacheSchema != 0 {
		t.Fatalf("only the hash was requested, got %+v", r)
	}
}

func TestBuildReportDefaultsDigest(t *testing.T) {
	r, err := collectBuildReport(repoDir(t), reportFields{formatter: true})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if r.Config != "none" {
		t.Fatalf("config = %q, want none", r.Config)
	}
	if want := project.OptionsDigest(format.DefaultOptions()).Hex(); r.OptionsDigest != want {
		t.Fatalf("digest = %s, want %s", r.OptionsDigest, want)
	}
	if r.CacheSchema != driver.CacheSchemaVersion || r.BraceStyle != "collapse" {
		t.Fatalf("unexpected formatter fields %+v", r)
	}
}

func TestBuildReportFollowsConfig(t *testing.T) {
	dir := repoDir(t)
	path := filepath.Join(dir, project.ConfigName)
	if err := os.WriteFile(path, []byte("[format]\nindent_size = 2\nbrace_style = \"expand\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	r, err := collectBuildReport(dir, reportFields{formatter: true})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if r.Config != path || r.BraceStyle != "expand" {
		t.Fatalf("unexpected formatter fields %+v", r)
	}
	if r.OptionsDigest == project.OptionsDigest(format.DefaultOptions()).Hex() {
		t.Fatal("digest should change with the config")
	}
}

func TestBuildReportBadConfig(t *testing.T) {
	dir := repoDir(t)
	if err := os.WriteFile(filepath.Join(dir, project.ConfigName), []byte("[format]\nindent_size = -1\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := collectBuildReport(dir, reportFields{formatter: true}); err == nil {
		t.Fatal("expected an error for a negative indent_size")
	}
}

func TestWriteBuildReport(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = orig }()

	var buf bytes.Buffer
	writeBuildReport(&buf, buildReport{
		Tool:          "jsfmt",
		Version:       "1.2.3",
		Commit:        "abc123",
		Config:        "none",
		OptionsDigest: "deadbeef",
		BraceStyle:    "collapse",
		CacheSchema:   1,
	})
	want := strings.Join([]string{
		"jsfmt 1.2.3",
		"commit:   abc123",
		"config:   none",
		"braces:   collapse",
		"options:  deadbeef",
		"cache:    schema v1",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("output mismatch\n got: %q\nwant: %q", got, want)
	}
}
