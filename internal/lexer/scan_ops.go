package lexer

import "jsfmt/internal/token"

// punct lists every operator the lexer recognises. Longer operators are
// matched greedily, one character at a time, so every prefix of an entry
// is itself an entry.
var punct = map[string]struct{}{}

func init() {
	for _, op := range []string{
		"+", "-", "*", "/", "%", "&", "++", "--", "=", "+=", "-=", "*=", "/=", "%=",
		"==", "===", "!=", "!==", ">", "<", ">=", "<=", ">>", "<<", ">>>", ">>>=",
		">>=", "<<=", "&&", "&=", "|", "||", "!", "!!", ",", ":", "?", "^", "^=",
		"|=", "::",
	} {
		punct[op] = struct{}{}
	}
}

func isPunctStart(b byte) bool {
	_, ok := punct[string(b)]
	return ok
}

// scanOperator reads the longest operator from the table. A lone '='
// is reported as Equals.
func (lx *Lexer) scanOperator() token.Kind {
	text := string(lx.cursor.Bump())
	for !lx.cursor.EOF() {
		next := text + string(lx.cursor.Peek())
		if _, ok := punct[next]; !ok {
			break
		}
		lx.cursor.Bump()
		text = next
	}
	if text == "=" {
		return token.Equals
	}
	return token.Operator
}
