package format

import "strings"

// Writer accumulates output as a list of fragments. Spaces, line breaks
// and indentation units are separate fragments so they can be trimmed
// from the tail before the text is joined.
type Writer struct {
	parts  []string
	indent string
}

// NewWriter creates a writer whose indentation unit is indent.
func NewWriter(indent string, sizeHint int) *Writer {
	return &Writer{
		parts:  make([]string, 0, sizeHint),
		indent: indent,
	}
}

// Len returns the number of fragments.
func (w *Writer) Len() int { return len(w.parts) }

// Last returns the final fragment, or "" when the writer is empty.
func (w *Writer) Last() string {
	if len(w.parts) == 0 {
		return ""
	}
	return w.parts[len(w.parts)-1]
}

// Push appends a fragment verbatim.
func (w *Writer) Push(s string) {
	w.parts = append(w.parts, s)
}

// PushIndent appends n indentation units.
func (w *Writer) PushIndent(n int) {
	for range n {
		w.parts = append(w.parts, w.indent)
	}
}

// PushSpaces appends n single-space fragments.
func (w *Writer) PushSpaces(n int) {
	for range n {
		w.parts = append(w.parts, " ")
	}
}

// Trim drops trailing spaces and indentation units, and also line breaks
// when eatNewlines is set.
func (w *Writer) Trim(eatNewlines bool) {
	for len(w.parts) > 0 {
		last := w.parts[len(w.parts)-1]
		if last == " " || last == w.indent || (eatNewlines && (last == "\n" || last == "\r")) {
			w.parts = w.parts[:len(w.parts)-1]
			continue
		}
		return
	}
}

// RemoveIndent drops one trailing indentation unit if present.
func (w *Writer) RemoveIndent() {
	if len(w.parts) > 0 && w.parts[len(w.parts)-1] == w.indent {
		w.parts = w.parts[:len(w.parts)-1]
	}
}

// String joins the fragments and strips trailing whitespace.
func (w *Writer) String() string {
	return strings.TrimRight(strings.Join(w.parts, ""), " \t\r\n")
}
