// Package trace provides structured tracing for jsfmt runs.
//
// Tracing shows which command, file and token the formatter was working on.
// It is the place to look when a run is slow or appears stuck on one input.
//
// # Usage
//
//	jsfmt fmt --trace=- --trace-level=detail src/
//
// # Tracers
//
//   - Nop: zero-overhead tracer used when tracing is off
//   - StreamTracer: writes every event immediately (file or stderr)
//   - RingTracer: keeps the last N events in memory
//   - MultiTracer: fans out to several tracers
//
// # Levels and scopes
//
// LevelPhase emits ScopeDriver events (one span per command). LevelDetail
// adds ScopeFile spans, one per formatted file. LevelDebug adds a
// ScopeToken point for every token the layout engine dispatches.
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	ctx, span := trace.StartSpan(ctx, trace.ScopeFile, "format_file")
//	defer span.End("")
//
// Spans started from the returned ctx become children of span.
package trace
