package format

import "strings"

// handleBlockComment lays out a multi-line /* */ comment. Doc comments
// (/**) are re-indented line by line; other comments keep their lines
// verbatim after the first.
func (f *Formatter) handleBlockComment(text string) {
	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	f.appendNewline(true)
	if strings.HasPrefix(text, "/**") {
		f.append(lines[0])
		for _, line := range lines[1:] {
			f.appendNewline(true)
			f.append(" " + strings.TrimSpace(line))
		}
	} else {
		for _, line := range lines {
			f.append(line)
			f.append("\n")
		}
	}
	f.appendNewline(true)
}

func (f *Formatter) handleInlineComment(text string) {
	f.append(" ")
	f.append(text)
	if f.frame.Mode.IsExpression() {
		f.append(" ")
	} else {
		f.appendNewline(true)
	}
}

// handleLineComment covers // comments and the <!-- --> markers.
func (f *Formatter) handleLineComment(text string) {
	if f.wantedNewline {
		f.appendNewline(true)
	} else {
		f.append(" ")
	}
	f.append(text)
	f.appendNewline(true)
}
