package trace

import (
	"bufio"
	"fmt"
	"io"
	"sync"
)

// StreamTracer writes events to w as they arrive. Output to a file is
// buffered; standard streams are written through so an interrupted run
// still shows its last events.
type StreamTracer struct {
	mu       sync.Mutex
	w        io.Writer
	buf      *bufio.Writer // nil for stdout/stderr
	level    Level
	format   Format
	writeErr error // первая ошибка записи, отдаётся из Flush
}

// NewStreamTracer creates a new StreamTracer.
func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	t := &StreamTracer{w: w, level: level, format: format}
	if !isStdStream(w) {
		t.buf = bufio.NewWriter(w)
	}
	return t
}

// Emit formats and writes ev. A failed write does not interrupt
// formatting; it is reported once by Flush.
func (t *StreamTracer) Emit(ev *Event) {
	if !t.level.ShouldEmit(ev.Scope) && ev.Kind != KindHeartbeat {
		return
	}
	ev.Seq = NextSeq()
	data := FormatEvent(ev, t.format)

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.writeErr != nil {
		return
	}
	var out io.Writer = t.w
	if t.buf != nil {
		out = t.buf
	}
	if _, err := out.Write(data); err != nil {
		t.writeErr = fmt.Errorf("trace: write: %w", err)
	}
}

// Flush drains the buffer and reports the first write error, if any.
func (t *StreamTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.writeErr != nil {
		return t.writeErr
	}
	if t.buf != nil {
		if err := t.buf.Flush(); err != nil {
			t.writeErr = fmt.Errorf("trace: flush: %w", err)
			return t.writeErr
		}
	}
	return nil
}

// Close flushes and closes the writer when it is an io.Closer other than
// a standard stream.
func (t *StreamTracer) Close() error {
	if err := t.Flush(); err != nil {
		return err
	}
	if closer, ok := t.w.(io.Closer); ok && !isStdStream(t.w) {
		return closer.Close()
	}
	return nil
}

func (t *StreamTracer) Level() Level { return t.level }

func (t *StreamTracer) Enabled() bool { return t.level > LevelOff }
