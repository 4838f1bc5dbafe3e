package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity. Each level admits one more scope than
// the previous one.
type Level uint8

const (
	LevelOff    Level = iota
	LevelPhase        // command spans
	LevelDetail       // + one span per file
	LevelDebug        // + every dispatched token
)

var levelNames = [...]string{
	LevelOff:    "off",
	LevelPhase:  "phase",
	LevelDetail: "detail",
	LevelDebug:  "debug",
}

// deepest scope each level admits
var levelScopes = [...]Scope{
	LevelPhase:  ScopeDriver,
	LevelDetail: ScopeFile,
	LevelDebug:  ScopeToken,
}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel converts a --trace-level value.
func ParseLevel(s string) (Level, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for l, name := range levelNames {
		if name == want {
			return Level(l), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|phase|detail|debug)", s)
}

// ShouldEmit reports whether events of scope pass at this level.
func (l Level) ShouldEmit(scope Scope) bool {
	switch {
	case l == LevelOff:
		return false
	case int(l) >= len(levelScopes):
		return true
	default:
		return scope <= levelScopes[l]
	}
}
