package format

import "jsfmt/internal/token"

func (f *Formatter) handleStartExpr(text string) {
	if text == "[" {
		// индексирование: a[0], f()[1]
		if f.lastType == token.Word || f.lastText == ")" {
			if token.IsLineStarter(f.lastText) {
				f.append(" ")
			}
			f.setMode(ModeParenExpression)
			f.append(text)
			return
		}

		if f.frame.Mode.IsArray() {
			// вложенный массив: [[...], [...]] или [[
			if (f.lastLastText == "]" && f.lastText == ",") || f.lastText == "[" {
				if f.frame.Mode == ModeArrayExpression {
					f.frame.Mode = ModeArrayIndentedExpression
					if !f.opts.KeepArrayIndentation {
						f.indent()
					}
				}
				f.setMode(ModeArrayExpression)
				if !f.opts.KeepArrayIndentation {
					f.appendNewline(true)
				}
			} else {
				f.setMode(ModeArrayExpression)
			}
		} else {
			f.setMode(ModeArrayExpression)
		}
	} else {
		f.setMode(ModeParenExpression)
	}

	switch {
	case f.lastText == ";" || f.lastType == token.StartBlock:
		f.appendNewline(true)
	case f.lastType == token.EndExpr || f.lastType == token.StartExpr ||
		f.lastType == token.EndBlock || f.lastText == ".":
		// ни пробела, ни переноса
	case f.lastType != token.Word && f.lastType != token.Operator:
		f.append(" ")
	case f.lastWord == "function" || f.lastWord == "typeof":
		if f.opts.JSLintHappy {
			f.append(" ")
		}
	case token.IsLineStarter(f.lastText) || f.lastText == "catch":
		f.append(" ")
	}
	f.append(text)
}

func (f *Formatter) handleEndExpr(text string) {
	if text == "]" {
		if f.opts.KeepArrayIndentation {
			if f.lastText == "}" {
				f.removeIndent()
				f.append(text)
				f.restoreMode()
				return
			}
		} else if f.frame.Mode == ModeArrayIndentedExpression && f.lastText == "]" {
			f.restoreMode()
			f.appendNewline(true)
			f.append(text)
			return
		}
	}
	f.restoreMode()
	f.append(text)
}
