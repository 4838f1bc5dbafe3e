// Package tokfmt renders token streams for the tokenize command.
package tokfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"

	"jsfmt/internal/source"
	"jsfmt/internal/token"
)

// textWidth caps the quoted text column of the pretty output.
const textWidth = 32

// TokenOutput is the JSON shape of one token.
type TokenOutput struct {
	Kind     string `json:"kind"`
	Text     string `json:"text,omitempty"`
	Start    uint32 `json:"start"`
	End      uint32 `json:"end"`
	Line     uint32 `json:"line"`
	Col      uint32 `json:"col"`
	Newlines int    `json:"newlines,omitempty"`
	Column   int    `json:"column,omitempty"`
}

// Pretty выводит токены в человекочитаемом формате, по одному на строку:
// номер, вид, текст в кавычках, позиция и пробелы перед токеном.
func Pretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, _ := fs.Resolve(tok.Span)

		text := runewidth.Truncate(strconv.Quote(tok.Text), textWidth, "...\"")
		text = runewidth.FillRight(text, textWidth)

		line := fmt.Sprintf("%4d: %-14s %s %d:%d", i+1, tok.Kind.String(), text, startPos.Line, startPos.Col)
		if ws := tok.Leading; ws.Breaks > 0 || ws.Column > 0 {
			line += fmt.Sprintf("  (ws: %d nl, col %d)", ws.Breaks, ws.Column)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// JSON выводит токены в JSON формате
func JSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		startPos, _ := fs.Resolve(tok.Span)
		output = append(output, TokenOutput{
			Kind:     tok.Kind.String(),
			Text:     tok.Text,
			Start:    tok.Span.Start,
			End:      tok.Span.End,
			Line:     startPos.Line,
			Col:      startPos.Col,
			Newlines: tok.Leading.Breaks,
			Column:   tok.Leading.Column,
		})
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
