package lexer

import "jsfmt/internal/token"

// scanWord reads a run of identifier characters. A number in exponent
// form such as 1E-10 stays one word even though it contains a sign.
func (lx *Lexer) scanWord() token.Kind {
	start := lx.cursor.Off
	for isWordByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	text := lx.file.Content[start:lx.cursor.Off]

	if isExponentPrefix(text) {
		if c := lx.cursor.Peek(); c == '+' || c == '-' {
			lx.cursor.Bump()
			for isWordByte(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			return token.Word
		}
	}
	if string(text) == "in" {
		return token.Operator
	}
	return token.Word
}

// isExponentPrefix matches digits followed by a single 'e' or 'E'.
func isExponentPrefix(text []byte) bool {
	n := len(text)
	if n < 2 || (text[n-1] != 'e' && text[n-1] != 'E') {
		return false
	}
	for _, b := range text[:n-1] {
		if !isDec(b) {
			return false
		}
	}
	return true
}
