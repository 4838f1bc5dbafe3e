package testkit

import (
	"strings"
	"testing"

	"jsfmt/internal/lexer"
	"jsfmt/internal/source"
	"jsfmt/internal/token"
)

func lexed(src string) (*source.File, []token.Token) {
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("t.js", []byte(src)))
	return sf, lexer.Tokenize(sf, lexer.Options{})
}

func TestCheckTokenInvariantsAccepts(t *testing.T) {
	inputs := []string{
		"",
		"   \n",
		"#!/usr/bin/env node\nvar a = 1;",
		"x = /re[/]g/.test(s) ? 'a' : \"b\"; // done",
		"<!-- hide\nf();\n-->",
		"var a = #1=[1, #1#];",
		"s = 'unterminated",
		"/* open",
		"é ü 漢字",
	}
	for _, in := range inputs {
		sf, toks := lexed(in)
		if err := CheckTokenInvariants(sf, toks); err != nil {
			t.Errorf("%q: %v", in, err)
		}
	}
}

func TestCheckTokenInvariantsRejects(t *testing.T) {
	sf, toks := lexed("a b")

	missingEOF := toks[:len(toks)-1]
	if err := CheckTokenInvariants(sf, missingEOF); err == nil || !strings.Contains(err.Error(), "want EOF") {
		t.Errorf("missing EOF: %v", err)
	}

	dropped := []token.Token{toks[1], toks[2]}
	if err := CheckTokenInvariants(sf, dropped); err == nil || !strings.Contains(err.Error(), "non-whitespace") {
		t.Errorf("dropped token: %v", err)
	}

	edited := append([]token.Token(nil), toks...)
	edited[0].Text = "z"
	if err := CheckTokenInvariants(sf, edited); err == nil || !strings.Contains(err.Error(), "text") {
		t.Errorf("edited text: %v", err)
	}

	if err := CheckTokenInvariants(nil, toks); err == nil {
		t.Error("nil file accepted")
	}
}
