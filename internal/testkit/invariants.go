// Package testkit holds invariant checks shared by unit and fuzz tests.
package testkit

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"jsfmt/internal/source"
	"jsfmt/internal/token"
)

// CheckTokenInvariants runs the token stream invariants on a lexed file:
// 1) the stream ends with exactly one EOF, at the end of the content
// 2) spans stay within the content, in order, without overlap
// 3) token text is the source slice under its span (a shebang is trimmed)
// 4) bytes between tokens are whitespace the lexer skips
func CheckTokenInvariants(sf *source.File, toks []token.Token) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(toks) == 0 {
		return fmt.Errorf("empty token stream")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	// 1) EOF только в конце
	last := toks[len(toks)-1]
	if last.Kind != token.EOF {
		return fmt.Errorf("stream ends with %v, want EOF", last.Kind)
	}
	if last.Span.Start != lenContent {
		return fmt.Errorf("EOF at %d, want %d", last.Span.Start, lenContent)
	}

	var prevEnd uint32
	for i, tok := range toks {
		sp := tok.Span
		if tok.Kind == token.EOF && i != len(toks)-1 {
			return fmt.Errorf("token %d: EOF before the end of the stream", i)
		}
		// 2) границы и порядок
		if !sp.Within(len(sf.Content)) {
			return fmt.Errorf("token %d (%v): span %v outside content of %d bytes", i, tok.Kind, sp, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d (%v): span %v overlaps previous end %d", i, tok.Kind, sp, prevEnd)
		}
		if tok.Kind != token.EOF && sp.Empty() {
			return fmt.Errorf("token %d (%v): empty span", i, tok.Kind)
		}

		// 3) текст совпадает с исходником
		raw := string(sp.Slice(sf.Content))
		want := raw
		if tok.Kind == token.Shebang {
			want = strings.TrimSpace(raw)
		}
		if tok.Text != want {
			return fmt.Errorf("token %d (%v): text %q, source %q", i, tok.Kind, tok.Text, want)
		}

		// 4) промежутки только из пробелов
		if gap := sf.Content[prevEnd:sp.Start]; strings.Trim(string(gap), " \t\r\n") != "" {
			return fmt.Errorf("token %d (%v): non-whitespace %q skipped before it", i, tok.Kind, gap)
		}
		prevEnd = sp.End
	}
	return nil
}
