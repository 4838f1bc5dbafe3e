package format

import (
	"context"

	"jsfmt/internal/lexer"
	"jsfmt/internal/source"
	"jsfmt/internal/token"
	"jsfmt/internal/trace"
)

// Formatter holds the mutable state of one formatting run. A Formatter
// is used once and never shared.
type Formatter struct {
	opts  Options
	lx    *lexer.Lexer
	out   *Writer
	frame Frame
	stack []Frame

	lastType     token.Kind
	lastText     string
	lastLastText string
	lastWord     string

	wantedNewline     bool
	justAddedNewline  bool
	doBlockJustClosed bool
	keepSuspended     bool
	newlines          int

	tracer trace.Tracer
	span   uint64
}

// Source formats JavaScript source. The only error is a *ConfigError for
// invalid options; malformed JavaScript is formatted on a best-effort basis.
func Source(src string, opts Options) (string, error) {
	return SourceContext(context.Background(), src, opts)
}

// SourceContext is Source with a context carrying a tracer. At debug
// level every dispatched token is traced under the current span.
func SourceContext(ctx context.Context, src string, opts Options) (string, error) {
	file := &source.File{Path: "<input>", Content: []byte(src), Flags: source.FileVirtual}
	return File(ctx, file, opts)
}

// File formats an already loaded source file.
func File(ctx context.Context, file *source.File, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	f := NewFormatter(file, opts)
	f.tracer = trace.FromContext(ctx)
	f.span = trace.CurrentSpan(ctx).SpanID
	return f.Run(), nil
}

// NewFormatter prepares a run over file. Options must already be valid.
func NewFormatter(file *source.File, opts Options) *Formatter {
	base := newFrame(ModeBlock)
	base.IndentationLevel = opts.IndentLevel
	return &Formatter{
		opts:     opts,
		lx:       lexer.New(file, lexer.Options{MaxPreserveNewlines: opts.MaxPreserveNewlines}),
		out:      NewWriter(opts.IndentString(), len(file.Content)/2+16),
		frame:    base,
		lastType: token.StartExpr,
		tracer:   trace.Nop,
	}
}

// Run consumes the whole token stream and returns the formatted text.
func (f *Formatter) Run() string {
	for {
		tok := f.lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		f.applyWhitespace(tok)
		if f.tracer.Enabled() {
			trace.Point(f.tracer, trace.ScopeToken, tok.Kind.String(), tok.Text, f.span)
		}
		if tok.Kind == token.Shebang {
			f.handleShebang(tok.Text)
			continue
		}
		f.dispatch(tok)
		f.lastLastText = f.lastText
		f.lastType = tok.Kind
		f.lastText = tok.Text
	}
	return f.out.String()
}

func (f *Formatter) dispatch(tok token.Token) {
	switch tok.Kind {
	case token.StartExpr:
		f.handleStartExpr(tok.Text)
	case token.EndExpr:
		f.handleEndExpr(tok.Text)
	case token.StartBlock:
		f.handleStartBlock(tok.Text)
	case token.EndBlock:
		f.handleEndBlock(tok.Text)
	case token.Word:
		f.handleWord(tok.Text)
	case token.Semicolon:
		f.handleSemicolon(tok.Text)
	case token.String:
		f.handleString(tok.Text)
	case token.Equals:
		f.handleEquals(tok.Text)
	case token.Operator:
		f.handleOperator(tok.Text)
	case token.BlockComment:
		f.handleBlockComment(tok.Text)
	case token.InlineComment:
		f.handleInlineComment(tok.Text)
	case token.LineComment:
		f.handleLineComment(tok.Text)
	default:
		f.handleUnknown(tok.Text)
	}
}

// applyWhitespace replays the whitespace skipped before tok: preserved
// blank lines, the array indentation echo, and the wanted newline before
// words.
func (f *Formatter) applyWhitespace(tok token.Token) {
	ws := tok.Leading
	f.newlines = 0
	f.wantedNewline = false

	if f.keepArrayIndentation() {
		for range ws.Newlines {
			f.out.Trim(false)
			f.out.Push("\n")
			f.justAddedNewline = true
		}
		if f.frame.IndentationBaseline == -1 {
			f.frame.IndentationBaseline = ws.Column
		}
		if f.justAddedNewline {
			f.out.PushIndent(f.frame.IndentationLevel + 1)
			f.out.PushSpaces(ws.Column - f.frame.IndentationBaseline)
		}
		return
	}

	f.newlines = ws.Newlines
	if f.opts.PreserveNewlines && ws.Newlines > 1 {
		for i := range ws.Newlines {
			f.appendNewline(i == 0)
			f.justAddedNewline = true
		}
	}
	f.wantedNewline = ws.Newlines > 0

	if tok.Kind == token.Word && f.wantedNewline && isPlainWord(tok.Text) &&
		f.lastType != token.Operator && f.lastType != token.Equals && !f.frame.IfLine &&
		(f.opts.PreserveNewlines || f.lastText != "var") {
		f.appendNewline(true)
	}
}

// isPlainWord excludes sharp variables, which never take a wanted newline.
func isPlainWord(text string) bool {
	return text != "" && text[0] != '#'
}

func (f *Formatter) keepArrayIndentation() bool {
	return f.opts.KeepArrayIndentation && !f.keepSuspended && f.frame.Mode.IsArray()
}
