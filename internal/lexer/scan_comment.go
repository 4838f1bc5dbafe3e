package lexer

import "jsfmt/internal/token"

// scanBlockComment reads /* ... */. It is an InlineComment unless its
// body contains a line break. An unterminated comment runs to the end
// of input.
func (lx *Lexer) scanBlockComment() token.Kind {
	lx.cursor.Advance(2)
	kind := token.InlineComment
	for !lx.cursor.EOF() {
		if lx.cursor.HasPrefix("*/") {
			lx.cursor.Advance(2)
			return kind
		}
		if c := lx.cursor.Bump(); c == '\n' || c == '\r' {
			kind = token.BlockComment
		}
	}
	return kind
}

// scanLineComment reads up to, but not including, the line break.
func (lx *Lexer) scanLineComment() token.Kind {
	for !lx.cursor.EOF() {
		if c := lx.cursor.Peek(); c == '\n' || c == '\r' {
			break
		}
		lx.cursor.Bump()
	}
	return token.LineComment
}

// scanSharp handles '#': a shebang line when nothing was emitted yet,
// otherwise a sharp variable such as #1= or #1#.
func (lx *Lexer) scanSharp() token.Kind {
	lx.cursor.Bump()
	if !lx.emitted && lx.cursor.Peek() == '!' {
		for !lx.cursor.EOF() {
			if lx.cursor.Bump() == '\n' {
				break
			}
		}
		return token.Shebang
	}

	last := byte('#')
	if isDec(lx.cursor.Peek()) {
		for !lx.cursor.EOF() {
			last = lx.cursor.Bump()
			if last == '#' || last == '=' {
				break
			}
		}
	}
	if last == '#' || lx.cursor.EOF() {
		return token.Word
	}
	// #1=[] и #1={} объявляют пустой литерал целиком
	if lx.cursor.HasPrefix("[]") || lx.cursor.HasPrefix("{}") {
		lx.cursor.Advance(2)
	}
	return token.Word
}
