package format

// setMode opens a new frame. It inherits the indentation of the enclosing
// frame, one level deeper when that frame is a reindented var line.
func (f *Formatter) setMode(mode Mode) {
	prev := f.frame
	f.stack = append(f.stack, prev)
	f.frame = newFrame(mode)
	f.frame.PreviousMode = prev.Mode
	f.frame.IndentationLevel = prev.IndentationLevel
	if prev.VarLine && prev.VarLineReindented {
		f.frame.IndentationLevel++
	}
}

// restoreMode closes the current frame. Closing with nothing open keeps
// the base frame.
func (f *Formatter) restoreMode() {
	f.doBlockJustClosed = f.frame.Mode == ModeDoBlock
	if n := len(f.stack); n > 0 {
		f.frame = f.stack[n-1]
		f.stack = f.stack[:n-1]
	}
}

// baseIndentation is the level of the outermost frame, IndentLevel unless
// a handler changed it.
func (f *Formatter) baseIndentation() int {
	if len(f.stack) > 0 {
		return f.stack[0].IndentationLevel
	}
	return f.frame.IndentationLevel
}

func (f *Formatter) indent() {
	f.frame.IndentationLevel++
}

func (f *Formatter) removeIndent() {
	f.out.RemoveIndent()
}

func (f *Formatter) trimOutput(eatNewlines bool) {
	f.out.Trim(eatNewlines)
}

// append writes s. A single space is only written after visible text and
// is swallowed once when EatNextSpace is set.
func (f *Formatter) append(s string) {
	if s == " " {
		if f.frame.EatNextSpace {
			f.frame.EatNextSpace = false
			return
		}
		if f.out.Len() > 0 {
			last := f.out.Last()
			if last != " " && last != "\n" && last != f.out.indent {
				f.out.Push(" ")
			}
		}
		return
	}
	if f.out.Len() == 0 {
		// первая строка получает базовый отступ, даже если токен уже открыл блок
		f.out.PushIndent(f.baseIndentation())
	}
	f.justAddedNewline = false
	f.frame.EatNextSpace = false
	f.out.Push(s)
}

// appendNewline ends the current line and indents the next one. With
// ignoreRepeated a line break directly after another one is not doubled.
func (f *Formatter) appendNewline(ignoreRepeated bool) {
	f.frame.EatNextSpace = false
	if f.keepArrayIndentation() {
		return
	}
	f.frame.IfLine = false
	f.trimOutput(false)
	if f.out.Len() == 0 {
		return
	}
	if f.out.Last() != "\n" || !ignoreRepeated {
		f.justAddedNewline = true
		f.out.Push("\n")
	}
	f.out.PushIndent(f.frame.IndentationLevel)
	if f.frame.VarLine && f.frame.VarLineReindented {
		f.out.PushIndent(1)
	}
}
