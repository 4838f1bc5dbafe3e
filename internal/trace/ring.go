package trace

import (
	"fmt"
	"io"
	"sync"
)

// RingTracer keeps the most recent events in memory. It backs
// --trace-mode ring: nothing is written unless the command fails, and then
// only the tail leading up to the failure.
type RingTracer struct {
	mu      sync.Mutex
	buf     []Event
	written uint64 // всего принято событий
	level   Level
}

// NewRingTracer creates a ring holding up to capacity events.
func NewRingTracer(capacity int, level Level) *RingTracer {
	if capacity <= 0 {
		capacity = 4096
	}
	return &RingTracer{buf: make([]Event, capacity), level: level}
}

// Emit stores a copy of ev, overwriting the oldest event when full.
func (t *RingTracer) Emit(ev *Event) {
	if !t.level.ShouldEmit(ev.Scope) && ev.Kind != KindHeartbeat {
		return
	}
	stored := *ev
	stored.Seq = NextSeq()

	t.mu.Lock()
	t.buf[t.written%uint64(len(t.buf))] = stored
	t.written++
	t.mu.Unlock()
}

// Snapshot returns the stored events, oldest first.
func (t *RingTracer) Snapshot() []Event {
	return t.Last(len(t.buf))
}

// Last returns up to n of the newest events, oldest first.
func (t *RingTracer) Last(n int) []Event {
	t.mu.Lock()
	defer t.mu.Unlock()

	capacity := uint64(len(t.buf))
	count := min(uint64(max(n, 0)), t.written, capacity)
	out := make([]Event, 0, count)
	for i := t.written - count; i < t.written; i++ {
		out = append(out, t.buf[i%capacity])
	}
	return out
}

// Dropped reports how many events were overwritten.
func (t *RingTracer) Dropped() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if capacity := uint64(len(t.buf)); t.written > capacity {
		return t.written - capacity
	}
	return 0
}

// Dump writes the stored events in format. Text output starts with a note
// about overwritten events; NDJSON stays one event per line.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	if dropped := t.Dropped(); dropped > 0 && format == FormatText {
		if _, err := fmt.Fprintf(w, "... %d earlier events dropped\n", dropped); err != nil {
			return err
		}
	}
	for _, ev := range t.Snapshot() {
		if _, err := w.Write(FormatEvent(&ev, format)); err != nil {
			return err
		}
	}
	return nil
}

// Flush is a no-op: everything is in memory.
func (t *RingTracer) Flush() error { return nil }

// Close is a no-op.
func (t *RingTracer) Close() error { return nil }

// Level returns the current tracing level.
func (t *RingTracer) Level() Level { return t.level }

// Enabled returns true if tracing is active.
func (t *RingTracer) Enabled() bool { return t.level > LevelOff }
