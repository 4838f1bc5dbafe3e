package token

import (
	"jsfmt/internal/source"
)

// Token is one lexical unit. Tokens are streamed one at a time and never
// collected by the formatter; only the previous two are remembered.
type Token struct {
	Kind    Kind
	Text    string
	Span    source.Span
	Leading Whitespace
}

// Is reports whether the token has the given kind and text.
func (t Token) Is(k Kind, text string) bool {
	return t.Kind == k && t.Text == text
}
