package trace

import "errors"

// MultiTracer fans out trace events to several tracers. --trace-mode both
// pairs a stream with a ring this way.
type MultiTracer struct {
	tracers []Tracer
	level   Level
}

// NewMultiTracer creates a new MultiTracer that emits to all provided tracers.
func NewMultiTracer(level Level, tracers ...Tracer) *MultiTracer {
	return &MultiTracer{tracers: tracers, level: level}
}

// Emit sends a copy of the event to every child.
func (t *MultiTracer) Emit(ev *Event) {
	for _, tr := range t.tracers {
		// ring перезаписывает Seq
		cp := *ev
		tr.Emit(&cp)
	}
}

// Flush flushes all children and joins their errors.
func (t *MultiTracer) Flush() error {
	var errs []error
	for _, tr := range t.tracers {
		errs = append(errs, tr.Flush())
	}
	return errors.Join(errs...)
}

// Close closes all children and joins their errors.
func (t *MultiTracer) Close() error {
	var errs []error
	for _, tr := range t.tracers {
		errs = append(errs, tr.Close())
	}
	return errors.Join(errs...)
}

func (t *MultiTracer) Level() Level { return t.level }

func (t *MultiTracer) Enabled() bool { return t.level > LevelOff }

// Ring returns the first ring tracer among the children, if any.
func (t *MultiTracer) Ring() *RingTracer {
	for _, tr := range t.tracers {
		if r := RingOf(tr); r != nil {
			return r
		}
	}
	return nil
}

// RingOf returns the in-memory ring behind t: t itself or the ring child of
// a MultiTracer. It returns nil for stream-only tracers.
func RingOf(t Tracer) *RingTracer {
	switch v := t.(type) {
	case *RingTracer:
		return v
	case *MultiTracer:
		return v.Ring()
	default:
		return nil
	}
}
