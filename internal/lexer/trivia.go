package lexer

import "jsfmt/internal/token"

// tabWidth is the column width of a tab inside leading whitespace.
const tabWidth = 4

// skipWhitespace consumes spaces, tabs and line breaks and reports what
// was skipped. Any other byte, including form feeds, ends the run.
func (lx *Lexer) skipWhitespace() token.Whitespace {
	var ws token.Whitespace
	maxNL := lx.opts.MaxPreserveNewlines
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '\n':
			ws.Breaks++
			if maxNL == 0 || ws.Newlines < maxNL {
				ws.Newlines++
			}
			ws.Column = 0
		case '\t':
			ws.Column += tabWidth
		case '\r':
		case ' ':
			ws.Column++
		default:
			return ws
		}
		lx.cursor.Bump()
	}
	return ws
}
