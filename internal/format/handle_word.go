package format

import (
	"strings"

	"jsfmt/internal/token"
)

type prefix uint8

const (
	prefixNone prefix = iota
	prefixSpace
	prefixNewline
)

func (f *Formatter) handleWord(text string) {
	if f.doBlockJustClosed {
		// do { ... } while
		f.append(" ")
		f.append(text)
		f.append(" ")
		f.doBlockJustClosed = false
		return
	}

	if text == "function" {
		f.spaceBeforeFunction()
	}

	if text == "case" || text == "default" {
		if f.lastText == ":" {
			f.removeIndent()
		} else {
			f.frame.IndentationLevel--
			f.appendNewline(true)
			f.frame.IndentationLevel++
		}
		f.append(text)
		f.frame.InCase = true
		return
	}

	p := f.wordPrefix(text)

	switch {
	case token.IsBranchContinuation(text):
		if f.lastType != token.EndBlock || f.opts.BraceStyle != BraceCollapse {
			f.appendNewline(true)
		} else {
			f.trimOutput(true)
			f.append(" ")
		}
	case p == prefixNewline:
		f.newlineBeforeWord(text)
	case f.frame.Mode.IsArray() && f.lastText == "," && f.lastLastText == "}":
		// }, в списках переносится
		f.appendNewline(true)
	case p == prefixSpace:
		f.append(" ")
	}

	f.append(text)
	f.lastWord = text

	switch text {
	case "var":
		f.frame.VarLine = true
		f.frame.VarLineReindented = false
		f.frame.VarLineTainted = false
	case "if":
		f.frame.IfLine = true
	case "else":
		f.frame.IfLine = false
	}
}

// spaceBeforeFunction separates a function statement from the previous
// one by a blank line.
func (f *Formatter) spaceBeforeFunction() {
	if f.frame.VarLine {
		f.frame.VarLineReindented = true
	}
	if (!f.justAddedNewline && f.lastText != ";") || f.lastText == "{" {
		return
	}
	have := f.newlines
	if !f.justAddedNewline {
		have = 0
	}
	if !f.opts.PreserveNewlines {
		have = 1
	}
	for range 2 - have {
		f.appendNewline(false)
	}
}

// wordPrefix decides what separates the previous token from a word.
// Some branches write the separator immediately.
func (f *Formatter) wordPrefix(text string) prefix {
	p := prefixNone
	switch {
	case f.lastType == token.EndBlock:
		switch {
		case !token.IsBranchContinuation(text):
			p = prefixNewline
		case f.opts.BraceStyle != BraceCollapse:
			p = prefixNewline
		default:
			p = prefixSpace
			f.append(" ")
		}
	case f.lastType == token.Semicolon && (f.frame.Mode == ModeBlock || f.frame.Mode == ModeDoBlock):
		p = prefixNewline
	case f.lastType == token.Semicolon && f.frame.Mode.IsExpression():
		p = prefixSpace
	case f.lastType == token.String:
		p = prefixNewline
	case f.lastType == token.Word:
		if f.lastText == "else" {
			f.trimOutput(true)
		}
		p = prefixSpace
	case f.lastType == token.StartBlock:
		p = prefixNewline
	case f.lastType == token.EndExpr:
		f.append(" ")
		p = prefixNewline
	}

	if f.frame.IfLine && f.lastType == token.EndExpr {
		f.frame.IfLine = false
	}

	if token.IsLineStarter(text) {
		if f.lastText == "else" {
			p = prefixSpace
		} else {
			p = prefixNewline
		}
	}
	return p
}

func (f *Formatter) newlineBeforeWord(text string) {
	switch {
	case text == "function" && (f.lastType == token.StartExpr || strings.Contains("=,", f.lastText)):
		// (function ... и x = function ...
	case text == "function" && f.lastText == "new":
		f.append(" ")
	case f.lastText == "return" || f.lastText == "throw":
		f.append(" ")
	case f.lastType != token.EndExpr:
		// for (var x = 0; ...) и метки "a: b" остаются на строке
		if (f.lastType != token.StartExpr || text != "var") && f.lastText != ":" {
			if text == "if" && f.lastWord == "else" && f.lastText != "{" {
				f.append(" ")
			} else {
				f.frame.VarLine = false
				f.frame.VarLineReindented = false
				f.appendNewline(true)
			}
		}
	case token.IsLineStarter(text) && f.lastText != ")":
		f.frame.VarLine = false
		f.frame.VarLineReindented = false
		f.appendNewline(true)
	}
}
