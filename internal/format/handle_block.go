package format

import "jsfmt/internal/token"

func (f *Formatter) handleStartBlock(text string) {
	if f.lastWord == "do" {
		f.setMode(ModeDoBlock)
	} else {
		f.setMode(ModeBlock)
	}

	if f.opts.BraceStyle == BraceExpand {
		if f.lastType != token.Operator {
			if f.lastText == "return" || f.lastText == "=" {
				f.append(" ")
			} else {
				f.appendNewline(true)
			}
		}
		f.append(text)
		f.indent()
		return
	}

	if f.lastType != token.Operator && f.lastType != token.StartExpr {
		if f.lastType == token.StartBlock {
			f.appendNewline(true)
		} else {
			f.append(" ")
		}
	} else if f.frame.PreviousMode.IsArray() && f.lastText == "," {
		// [a, {...}] и [{...}, {...}]
		if f.lastLastText == "}" {
			f.append(" ")
		} else {
			f.appendNewline(true)
		}
	}
	f.indent()
	f.append(text)
}

func (f *Formatter) handleEndBlock(text string) {
	f.restoreMode()

	switch {
	case f.opts.BraceStyle == BraceExpand:
		if f.lastText != "{" {
			f.appendNewline(true)
		}
	case f.lastType == token.StartBlock:
		// пустой блок: {}
		if f.justAddedNewline {
			f.removeIndent()
		} else {
			f.trimOutput(false)
		}
	case f.frame.Mode.IsArray() && f.opts.KeepArrayIndentation:
		f.keepSuspended = true
		f.appendNewline(true)
		f.keepSuspended = false
	default:
		f.appendNewline(true)
	}
	f.append(text)
}
