package lexer

// Options tune whitespace accounting.
type Options struct {
	// MaxPreserveNewlines caps Whitespace.Newlines; 0 means no cap.
	MaxPreserveNewlines int
}
