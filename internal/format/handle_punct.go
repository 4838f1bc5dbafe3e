package format

import (
	"strings"

	"jsfmt/internal/token"
)

func (f *Formatter) handleSemicolon(text string) {
	f.append(text)
	f.frame.VarLine = false
	f.frame.VarLineReindented = false
	if f.frame.Mode == ModeObjectLiteral {
		// "};" закрывает объектный литерал, который иначе не сбрасывается
		f.frame.Mode = ModeBlock
	}
}

func (f *Formatter) handleString(text string) {
	switch f.lastType {
	case token.StartBlock, token.EndBlock, token.Semicolon:
		f.appendNewline(true)
	case token.Word:
		f.append(" ")
	}
	f.append(text)
}

func (f *Formatter) handleEquals(text string) {
	if f.frame.VarLine {
		f.frame.VarLineTainted = true
	}
	f.append(" ")
	f.append(text)
	f.append(" ")
}

func (f *Formatter) handleOperator(text string) {
	spaceBefore, spaceAfter := true, true

	if f.frame.VarLine && text == "," {
		// for (var a = 1, b = 2; ...) не переносится
		if f.frame.Mode.IsExpression() {
			f.frame.VarLineTainted = false
		}
		if f.frame.VarLineTainted {
			f.append(text)
			f.frame.VarLineReindented = true
			f.frame.VarLineTainted = false
			f.appendNewline(true)
			return
		}
	}

	if f.lastText == "return" || f.lastText == "throw" {
		f.append(" ")
		f.append(text)
		return
	}

	if text == ":" && f.frame.InCase {
		f.append(text)
		f.appendNewline(true)
		f.frame.InCase = false
		return
	}

	if text == "::" {
		f.append(text)
		f.frame.EatNextSpace = true
		return
	}

	if text == "," {
		f.handleComma(text)
		return
	}

	switch {
	case isUnaryOperator(text, f.lastType) || token.IsLineStarter(f.lastText):
		spaceBefore, spaceAfter = false, false
		if f.lastText == ";" && f.frame.Mode.IsExpression() {
			// for (;; ++i)
			spaceBefore = true
		}
		if f.lastType == token.Word && token.IsLineStarter(f.lastText) {
			spaceBefore = true
		}
		if f.frame.Mode == ModeBlock && (f.lastText == "{" || f.lastText == ";") {
			// { foo: --i }
			f.appendNewline(true)
		}
	case text == ".":
		spaceBefore = false
	case text == ":":
		if f.frame.TernaryDepth == 0 {
			f.frame.Mode = ModeObjectLiteral
			spaceBefore = false
		} else {
			f.frame.TernaryDepth--
		}
	case text == "?":
		f.frame.TernaryDepth++
	}

	if spaceBefore {
		f.append(" ")
	}
	f.append(text)
	if spaceAfter {
		f.append(" ")
	}
}

func (f *Formatter) handleComma(text string) {
	f.append(text)
	switch {
	case f.frame.VarLine:
		f.append(" ")
	case f.lastType == token.EndBlock && f.frame.Mode != ModeParenExpression:
		if f.frame.Mode == ModeObjectLiteral && f.lastText == "}" {
			f.appendNewline(true)
		} else {
			f.append(" ")
		}
	case f.frame.Mode == ModeObjectLiteral:
		f.appendNewline(true)
	default:
		f.append(" ")
	}
}

// isUnaryOperator reports operators written without surrounding spaces:
// ++, -- and ! always, + and - when they cannot be binary.
func isUnaryOperator(text string, last token.Kind) bool {
	switch text {
	case "--", "++", "!":
		return true
	case "+", "-":
		switch last {
		case token.StartBlock, token.StartExpr, token.Equals, token.Operator:
			return true
		}
	}
	return false
}

func (f *Formatter) handleUnknown(text string) {
	if f.lastText == "return" || f.lastText == "throw" {
		f.append(" ")
	}
	f.append(text)
}

// handleShebang writes the "#!" line and starts a fresh line after it.
func (f *Formatter) handleShebang(text string) {
	f.out.Push(strings.TrimSpace(text) + "\n")
	f.appendNewline(true)
}
