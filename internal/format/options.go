package format

import (
	"strconv"
	"strings"
)

// BraceStyle selects where braces go.
type BraceStyle uint8

const (
	// BraceCollapse keeps '{' on the line of its header.
	BraceCollapse BraceStyle = iota
	// BraceExpand puts '{' and '}' on their own lines.
	BraceExpand
	// BraceEndExpand keeps '{' on the header line and puts
	// else/catch/finally on a new line after '}'.
	BraceEndExpand
)

var braceStyleNames = [...]string{
	BraceCollapse:  "collapse",
	BraceExpand:    "expand",
	BraceEndExpand: "end-expand",
}

func (b BraceStyle) String() string {
	if int(b) < len(braceStyleNames) {
		return braceStyleNames[b]
	}
	return "BraceStyle(" + strconv.Itoa(int(b)) + ")"
}

// ParseBraceStyle converts collapse|expand|end-expand into a BraceStyle.
func ParseBraceStyle(s string) (BraceStyle, error) {
	for i, name := range braceStyleNames {
		if strings.EqualFold(s, name) {
			return BraceStyle(i), nil
		}
	}
	return BraceCollapse, &ConfigError{
		Field:  "brace_style",
		Value:  s,
		Reason: "expected collapse, expand or end-expand",
	}
}

// Options control the layout. Start from DefaultOptions; the zero value
// has an empty indent character and is rejected by Validate.
type Options struct {
	IndentSize           int
	IndentChar           string
	PreserveNewlines     bool
	MaxPreserveNewlines  int // 0 means unlimited
	JSLintHappy          bool
	BraceStyle           BraceStyle
	KeepArrayIndentation bool
	IndentLevel          int
}

// DefaultOptions returns four-space indentation with newline preservation
// capped at ten consecutive line breaks.
func DefaultOptions() Options {
	return Options{
		IndentSize:          4,
		IndentChar:          " ",
		PreserveNewlines:    true,
		MaxPreserveNewlines: 10,
		BraceStyle:          BraceCollapse,
	}
}

// Validate reports the first invalid field as a *ConfigError.
func (o Options) Validate() error {
	switch {
	case int(o.BraceStyle) >= len(braceStyleNames):
		return &ConfigError{Field: "brace_style", Value: o.BraceStyle.String(), Reason: "unknown brace style"}
	case o.IndentSize < 0:
		return &ConfigError{Field: "indent_size", Value: strconv.Itoa(o.IndentSize), Reason: "must not be negative"}
	case o.IndentChar == "":
		return &ConfigError{Field: "indent_char", Value: o.IndentChar, Reason: "must not be empty"}
	case o.MaxPreserveNewlines < 0:
		return &ConfigError{Field: "max_preserve_newlines", Value: strconv.Itoa(o.MaxPreserveNewlines), Reason: "must not be negative"}
	case o.IndentLevel < 0:
		return &ConfigError{Field: "indent_level", Value: strconv.Itoa(o.IndentLevel), Reason: "must not be negative"}
	}
	return nil
}

// IndentString is one indentation unit.
func (o Options) IndentString() string {
	return strings.Repeat(o.IndentChar, o.IndentSize)
}
