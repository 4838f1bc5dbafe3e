package ui

import (
	"fmt"
	"strings"
	"testing"

	"jsfmt/internal/driver"
)

func newModel(files ...string) *progressModel {
	return NewProgressModel("fmt", files, nil).(*progressModel)
}

func TestApplyEventCounts(t *testing.T) {
	m := newModel("a.js", "b.js")
	m.applyEvent(driver.Event{File: "a.js", Stage: driver.StageFormat, Status: driver.StatusWorking})
	m.applyEvent(driver.Event{File: "a.js", Stage: driver.StageFormat, Status: driver.StatusChanged})
	m.applyEvent(driver.Event{File: "b.js", Stage: driver.StageFormat, Status: driver.StatusError})
	m.applyEvent(driver.Event{File: "unknown.js", Stage: driver.StageFormat, Status: driver.StatusDone})

	if got := m.finished(); got != 2 {
		t.Fatalf("finished = %d, want 2", got)
	}
	if m.items[0].status != driver.StatusChanged || m.items[1].status != driver.StatusError {
		t.Fatalf("unexpected statuses: %+v", m.items)
	}
	if m.counts[driver.StatusQueued] != 0 {
		t.Fatalf("queued count = %d", m.counts[driver.StatusQueued])
	}
}

func TestFinalStatusSticks(t *testing.T) {
	m := newModel("a.js")
	m.applyEvent(driver.Event{File: "a.js", Stage: driver.StageFormat, Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "a.js", Stage: driver.StageWrite, Status: driver.StatusWorking})
	if m.items[0].status != driver.StatusDone {
		t.Fatalf("status = %s, want done", m.items[0].status)
	}
}

func TestViewListsRecentFiles(t *testing.T) {
	files := make([]string, maxRows+5)
	for i := range files {
		files[i] = fmt.Sprintf("f%02d.js", i)
	}
	m := newModel(files...)
	m.applyEvent(driver.Event{File: "f03.js", Stage: driver.StageFormat, Status: driver.StatusChanged})

	view := m.View()
	if !strings.Contains(view, "f03.js") {
		t.Fatalf("view misses updated file:\n%s", view)
	}
	if strings.Contains(view, "f04.js") {
		t.Fatalf("view lists untouched file of a large run:\n%s", view)
	}
	if !strings.Contains(view, fmt.Sprintf("%d more", len(files)-1)) {
		t.Fatalf("view misses hidden counter:\n%s", view)
	}
	if !strings.Contains(view, "(1/17)") {
		t.Fatalf("view misses progress counter:\n%s", view)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short.js", 20, "short.js"},
		{"a/very/long/path/file.js", 10, "a/very/..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestCompleted(t *testing.T) {
	events := make(chan driver.Event)
	close(events)
	m := NewProgressModel("fmt", []string{"a.js"}, events)
	if Completed(m) {
		t.Fatal("fresh model must not be completed")
	}
	msg := m.(*progressModel).listenForEvent()()
	next, _ := m.Update(msg)
	if !Completed(next) {
		t.Fatal("model must be completed after the stream closed")
	}
}
