package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Timer records named phases of one run (collect, format, ...). A nil
// *Timer accepts every call and records nothing, so --timings is the only
// place that decides whether one exists.
type Timer struct {
	mu      sync.Mutex
	created time.Time
	phases  []phase
}

type phase struct {
	name  string
	start time.Time
	dur   time.Duration
	note  string
	open  bool
}

// NewTimer starts the wall clock of a run.
func NewTimer() *Timer {
	return &Timer{created: time.Now(), phases: make([]phase, 0, 4)}
}

// Begin opens a phase and returns a handle for End.
func (t *Timer) Begin(name string) int {
	if t == nil {
		return -1
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.phases = append(t.phases, phase{name: name, start: time.Now(), open: true})
	return len(t.phases) - 1
}

// End closes the phase idx with an optional note. Unknown or already
// closed handles are ignored.
func (t *Timer) End(idx int, note string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if idx < 0 || idx >= len(t.phases) || !t.phases[idx].open {
		return
	}
	p := &t.phases[idx]
	p.dur = time.Since(p.start)
	p.note = note
	p.open = false
}

// Measure runs fn as one phase; a failing fn marks the phase "failed".
func (t *Timer) Measure(name string, fn func() error) error {
	idx := t.Begin(name)
	err := fn()
	note := ""
	if err != nil {
		note = "failed"
	}
	t.End(idx, note)
	return err
}

// PhaseReport is one closed phase in milliseconds.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report is the JSON form of a Timer. TotalMS is the wall time since
// NewTimer, so phases may not add up to it.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report snapshots the closed phases.
func (t *Timer) Report() Report {
	if t == nil {
		return Report{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	report := Report{TotalMS: millis(time.Since(t.created))}
	for _, p := range t.phases {
		if p.open {
			continue
		}
		report.Phases = append(report.Phases, PhaseReport{Name: p.name, DurationMS: millis(p.dur), Note: p.note})
	}
	return report
}

// Summary renders the report for --timings on stderr.
func (t *Timer) Summary() string {
	report := t.Report()
	width := len("total")
	for _, p := range report.Phases {
		width = max(width, len(p.Name))
	}

	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&sb, "  %-*s %9.2f ms", width, p.Name, p.DurationMS)
		if report.TotalMS > 0 {
			fmt.Fprintf(&sb, " %5.1f%%", 100*p.DurationMS/report.TotalMS)
		}
		if p.Note != "" {
			sb.WriteString("  // " + p.Note)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-*s %9.2f ms\n", width, "total", report.TotalMS)
	return sb.String()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
