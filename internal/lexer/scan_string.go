package lexer

import "jsfmt/internal/token"

// scanSlash decides between a comment, a regular expression and division.
func (lx *Lexer) scanSlash() token.Kind {
	if _, b1, ok := lx.cursor.Peek2(); ok {
		switch b1 {
		case '*':
			return lx.scanBlockComment()
		case '/':
			return lx.scanLineComment()
		}
	}
	if lx.regexAllowed() {
		return lx.scanRegex()
	}
	return lx.scanOperator()
}

// scanString reads a quoted string. Escapes are skipped and an
// unterminated string runs to the end of input.
func (lx *Lexer) scanString(quote byte) token.Kind {
	lx.cursor.Bump()
	esc := false
	for !lx.cursor.EOF() {
		c := lx.cursor.Peek()
		if !esc && c == quote {
			lx.cursor.Bump()
			return token.String
		}
		lx.cursor.Bump()
		esc = !esc && c == '\\'
	}
	return token.String
}

// scanRegex reads /body/flags. A '/' inside a character class does not
// close the literal.
func (lx *Lexer) scanRegex() token.Kind {
	lx.cursor.Bump()
	esc, inClass := false, false
	for !lx.cursor.EOF() {
		c := lx.cursor.Peek()
		if !esc && !inClass && c == '/' {
			lx.cursor.Bump()
			for isWordByte(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			return token.String
		}
		lx.cursor.Bump()
		if esc {
			esc = false
			continue
		}
		switch c {
		case '\\':
			esc = true
		case '[':
			inClass = true
		case ']':
			inClass = false
		}
	}
	return token.String
}
