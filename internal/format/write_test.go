package format

import "testing"

func TestWriterTrim(t *testing.T) {
	w := NewWriter("  ", 0)
	for _, s := range []string{"a", "\n", "  ", " "} {
		w.Push(s)
	}
	w.Trim(false)
	if w.Last() != "\n" {
		t.Fatalf("expected newline to survive, last=%q", w.Last())
	}
	w.Trim(true)
	if w.Len() != 1 || w.Last() != "a" {
		t.Fatalf("expected only %q left, got %d parts", "a", w.Len())
	}
}

func TestWriterRemoveIndentOnlyOnce(t *testing.T) {
	w := NewWriter("\t", 0)
	w.Push("x")
	w.PushIndent(2)
	w.RemoveIndent()
	if w.Len() != 2 {
		t.Fatalf("expected one indent removed, got %d parts", w.Len())
	}
}

func TestWriterString(t *testing.T) {
	w := NewWriter("    ", 0)
	w.Push("a")
	w.Push("\n")
	w.PushIndent(1)
	w.PushSpaces(2)
	if got := w.String(); got != "a" {
		t.Errorf("got %q", got)
	}
}

func TestModeClassification(t *testing.T) {
	if !ModeArrayIndentedExpression.IsArray() || !ModeArrayIndentedExpression.IsExpression() {
		t.Error("indented array must be an array expression")
	}
	if ModeObjectLiteral.IsExpression() || ModeDoBlock.IsArray() {
		t.Error("block modes are not expressions")
	}
	if ModeParenExpression.String() != "(EXPRESSION)" {
		t.Errorf("got %s", ModeParenExpression)
	}
}
