package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLevelShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelPhase, ScopeDriver, true},
		{LevelPhase, ScopeFile, false},
		{LevelDetail, ScopeFile, true},
		{LevelDetail, ScopeToken, false},
		{LevelDebug, ScopeToken, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Errorf("%v.ShouldEmit(%v) = %v, want %v", tt.level, tt.scope, got, tt.want)
		}
	}
}

func TestParseLevelAndMode(t *testing.T) {
	if l, err := ParseLevel("DETAIL"); err != nil || l != LevelDetail {
		t.Errorf("ParseLevel: %v %v", l, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
	if m, err := ParseMode("both"); err != nil || m != ModeBoth {
		t.Errorf("ParseMode: %v %v", m, err)
	}
}

func TestRingTracerWraps(t *testing.T) {
	r := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"a", "b", "c", "d"} {
		r.Emit(&Event{Kind: KindPoint, Scope: ScopeToken, Name: name})
	}
	snap := r.Snapshot()
	var got []string
	for _, ev := range snap {
		got = append(got, ev.Name)
	}
	if strings.Join(got, "") != "bcd" {
		t.Errorf("snapshot = %v", got)
	}
}

func TestStreamTracerFiltersByScope(t *testing.T) {
	var buf bytes.Buffer
	st := NewStreamTracer(&buf, LevelDetail, FormatNDJSON)
	span := Begin(st, ScopeFile, "file:a.js", 0)
	Point(st, ScopeToken, "Word", "foo", span.ID())
	span.WithExtra("changed", "true").End("ok")
	if err := st.Flush(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected begin+end only, got %d lines:\n%s", len(lines), buf.String())
	}
	var end jsonEvent
	if err := json.Unmarshal([]byte(lines[1]), &end); err != nil {
		t.Fatal(err)
	}
	if end.Kind != "end" || end.Detail != "ok" || end.Extra["changed"] != "true" {
		t.Errorf("unexpected end event %+v", end)
	}
}

func TestMultiTracerFansOut(t *testing.T) {
	a := NewRingTracer(8, LevelDebug)
	b := NewRingTracer(8, LevelDebug)
	m := NewMultiTracer(LevelDebug, a, b)
	Point(m, ScopeToken, "x", "", 0)
	if len(a.Snapshot()) != 1 || len(b.Snapshot()) != 1 {
		t.Error("expected the event in both rings")
	}
	if m.Ring() != a {
		t.Error("Ring should return the first ring tracer")
	}
}

func TestContextDefaultsToNop(t *testing.T) {
	if FromContext(context.Background()).Enabled() {
		t.Error("expected nop tracer")
	}
	r := NewRingTracer(1, LevelPhase)
	ctx := WithTracer(context.Background(), r)
	if FromContext(ctx) != r {
		t.Error("tracer not propagated")
	}
}

func TestBeginDisabledReturnsNopSpan(t *testing.T) {
	span := Begin(Nop, ScopeDriver, "fmt", 0)
	if span.ID() != 0 || span.End("") != 0 {
		t.Error("expected inert span")
	}
}

func TestFormatTextSortsExtra(t *testing.T) {
	out := string(FormatEvent(&Event{
		Kind:  KindPoint,
		Scope: ScopeDriver,
		Name:  "n",
		Extra: map[string]string{"b": "2", "a": "1"},
	}, FormatText))
	if !strings.Contains(out, "• n {a=1, b=2}") {
		t.Errorf("got %q", out)
	}
}

func TestRingLastAndDropped(t *testing.T) {
	r := NewRingTracer(4, LevelDebug)
	for i := range 6 {
		r.Emit(&Event{Kind: KindPoint, Scope: ScopeToken, Name: string(rune('a' + i))})
	}
	if got := r.Dropped(); got != 2 {
		t.Fatalf("Dropped = %d, want 2", got)
	}
	last := r.Last(2)
	if len(last) != 2 || last[0].Name != "e" || last[1].Name != "f" {
		t.Fatalf("Last(2) = %+v", last)
	}
	if got := len(r.Last(100)); got != 4 {
		t.Fatalf("Last(100) returned %d events", got)
	}

	var buf bytes.Buffer
	if err := r.Dump(&buf, FormatText); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "... 2 earlier events dropped\n") {
		t.Fatalf("dump misses drop note:\n%s", buf.String())
	}
}

func TestStartSpanCarriesParent(t *testing.T) {
	r := NewRingTracer(16, LevelDebug)
	ctx := WithTracer(context.Background(), r)

	ctx, outer := StartSpan(ctx, ScopeDriver, "fmt")
	_, inner := StartSpan(ctx, ScopeFile, "format_file")
	inner.End("")
	outer.End("")

	if CurrentSpan(ctx).SpanID != outer.ID() {
		t.Fatal("context does not carry the outer span")
	}
	var innerBegin *Event
	for _, ev := range r.Snapshot() {
		if ev.Kind == KindSpanBegin && ev.Name == "format_file" {
			innerBegin = &ev
		}
	}
	if innerBegin == nil || innerBegin.ParentID != outer.ID() {
		t.Fatalf("inner span parent = %+v, want %d", innerBegin, outer.ID())
	}
}

func TestStartSpanFilteredKeepsContext(t *testing.T) {
	r := NewRingTracer(16, LevelPhase)
	ctx := WithTracer(context.Background(), r)
	got, span := StartSpan(ctx, ScopeToken, "tok")
	if got != ctx || span.ID() != 0 {
		t.Fatal("filtered span must leave ctx untouched")
	}
}

func TestRingOf(t *testing.T) {
	ring := NewRingTracer(2, LevelPhase)
	stream := NewStreamTracer(&bytes.Buffer{}, LevelPhase, FormatText)
	if RingOf(ring) != ring || RingOf(NewMultiTracer(LevelPhase, stream, ring)) != ring {
		t.Fatal("ring not found")
	}
	if RingOf(stream) != nil || RingOf(Nop) != nil {
		t.Fatal("stream tracer has no ring")
	}
}

func TestHeartbeatNilSafe(t *testing.T) {
	if hb := StartHeartbeat(Nop, time.Millisecond); hb != nil {
		t.Fatal("heartbeat started for disabled tracer")
	}
	var hb *Heartbeat
	hb.Stop()

	r := NewRingTracer(8, LevelPhase)
	hb = StartHeartbeat(r, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	hb.Stop()
	hb.Stop()
	if len(r.Snapshot()) == 0 {
		t.Fatal("no heartbeat recorded")
	}
}

type failingWriter struct{ calls int }

func (w *failingWriter) Write([]byte) (int, error) {
	w.calls++
	return 0, errors.New("disk full")
}

func TestStreamTracerReportsWriteError(t *testing.T) {
	w := &failingWriter{}
	st := NewStreamTracer(w, LevelPhase, FormatText)
	for range 3 {
		Begin(st, ScopeDriver, "fmt", 0).End("")
	}
	if err := st.Close(); err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("Close = %v, want disk full", err)
	}
	if w.calls != 1 {
		t.Fatalf("writer called %d times after failing", w.calls)
	}
}
