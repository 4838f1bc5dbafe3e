package token

// Whitespace describes the whitespace run the lexer skipped before a token.
type Whitespace struct {
	// Newlines is the number of line breaks, capped by MaxPreserveNewlines
	// when that option is non-zero.
	Newlines int
	// Breaks is the uncapped number of line breaks.
	Breaks int
	// Column is the width of the whitespace after the last line break
	// (or of the whole run when there is none); a tab counts as four.
	Column int
}

// HasBreak reports whether the run contained at least one line break.
func (w Whitespace) HasBreak() bool {
	return w.Breaks > 0
}
