package token_test

import (
	"testing"

	"jsfmt/internal/token"
)

func TestKindString(t *testing.T) {
	tests := map[token.Kind]string{
		token.EOF:           "EOF",
		token.Word:          "Word",
		token.StartExpr:     "StartExpr",
		token.InlineComment: "InlineComment",
		token.Shebang:       "Shebang",
		token.Kind(200):     "Kind(?)",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestIsComment(t *testing.T) {
	for _, k := range []token.Kind{token.BlockComment, token.InlineComment, token.LineComment} {
		if !k.IsComment() {
			t.Fatalf("%v should be a comment", k)
		}
	}
	for _, k := range []token.Kind{token.Word, token.String, token.Operator} {
		if k.IsComment() {
			t.Fatalf("%v must NOT be a comment", k)
		}
	}
}

func TestIsLineStarter(t *testing.T) {
	starters := []string{"continue", "try", "throw", "return", "var", "if", "switch",
		"case", "default", "for", "while", "break", "function"}
	for _, w := range starters {
		if !token.IsLineStarter(w) {
			t.Errorf("%q should be a line starter", w)
		}
	}
	for _, w := range []string{"else", "do", "new", "in", "typeof", "catch"} {
		if token.IsLineStarter(w) {
			t.Errorf("%q must NOT be a line starter", w)
		}
	}
}

func TestIsBranchContinuation(t *testing.T) {
	for _, w := range []string{"else", "catch", "finally"} {
		if !token.IsBranchContinuation(w) {
			t.Errorf("%q should continue a block", w)
		}
	}
	if token.IsBranchContinuation("if") {
		t.Error("if must not continue a block")
	}
}
