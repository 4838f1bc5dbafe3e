package lexer

import (
	"strings"

	"jsfmt/internal/source"
	"jsfmt/internal/token"
)

// Lexer splits JavaScript source into tokens on demand. It never looks
// further back than the previous significant token, which it needs to
// tell a regular expression from a division.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options

	prev        token.Token // последний значимый токен (не shebang)
	emitted     bool        // был ли уже выдан хоть один токен
	htmlComment bool        // внутри <!-- ... -->
}

// New creates a lexer over the file contents.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		prev:   token.Token{Kind: token.StartExpr},
	}
}

// Next returns the next token together with the whitespace that preceded it.
// After the end of input it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	ws := lx.skipWhitespace()
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan(), Leading: ws}
	}

	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()
	var kind token.Kind

	switch {
	case isWordByte(ch):
		kind = lx.scanWord()
	case ch == '(' || ch == '[':
		lx.cursor.Bump()
		kind = token.StartExpr
	case ch == ')' || ch == ']':
		lx.cursor.Bump()
		kind = token.EndExpr
	case ch == '{':
		lx.cursor.Bump()
		kind = token.StartBlock
	case ch == '}':
		lx.cursor.Bump()
		kind = token.EndBlock
	case ch == ';':
		lx.cursor.Bump()
		kind = token.Semicolon
	case ch == '/':
		kind = lx.scanSlash()
	case ch == '\'' || ch == '"':
		kind = lx.scanString(ch)
	case ch == '#':
		kind = lx.scanSharp()
	case ch == '<' && lx.cursor.HasPrefix("<!--"):
		lx.cursor.Advance(len("<!--"))
		lx.htmlComment = true
		kind = token.LineComment
	case ch == '-' && lx.htmlComment && lx.cursor.HasPrefix("-->"):
		lx.cursor.Advance(len("-->"))
		lx.htmlComment = false
		kind = token.LineComment
	case isPunctStart(ch):
		kind = lx.scanOperator()
	default:
		lx.bumpRune()
		kind = token.Unknown
	}

	sp := lx.cursor.SpanFrom(start)
	tok := token.Token{
		Kind:    kind,
		Text:    string(sp.Slice(lx.file.Content)),
		Span:    sp,
		Leading: ws,
	}
	lx.emitted = true
	if kind == token.Shebang {
		tok.Text = strings.TrimSpace(tok.Text)
		return tok
	}
	lx.prev = tok
	return tok
}

// regexAllowed reports whether a '/' at the current position opens a
// regular expression literal rather than a division.
func (lx *Lexer) regexAllowed() bool {
	if lx.prev.Kind == token.Word {
		return lx.prev.Text == "return" || lx.prev.Text == "do"
	}
	switch lx.prev.Kind {
	case token.LineComment, token.StartExpr, token.StartBlock, token.EndBlock,
		token.Operator, token.Equals, token.EOF, token.Semicolon:
		return true
	}
	return false
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// Tokenize runs the lexer to completion. The returned slice always ends
// with an EOF token.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}
