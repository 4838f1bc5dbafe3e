package format

// Mode is the syntactic context of a frame.
type Mode uint8

const (
	ModeBlock Mode = iota
	ModeDoBlock
	ModeObjectLiteral
	ModeParenExpression
	ModeArrayExpression
	ModeArrayIndentedExpression
)

var modeNames = [...]string{
	ModeBlock:                   "BLOCK",
	ModeDoBlock:                 "DO_BLOCK",
	ModeObjectLiteral:           "OBJECT",
	ModeParenExpression:         "(EXPRESSION)",
	ModeArrayExpression:         "[EXPRESSION]",
	ModeArrayIndentedExpression: "[INDENTED-EXPRESSION]",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "Mode(?)"
}

// IsArray reports whether m is one of the array literal modes.
func (m Mode) IsArray() bool {
	return m == ModeArrayExpression || m == ModeArrayIndentedExpression
}

// IsExpression reports whether m is a parenthesised or array expression.
func (m Mode) IsExpression() bool {
	return m == ModeParenExpression || m.IsArray()
}

// Frame holds the layout state of one open bracket.
type Frame struct {
	Mode         Mode
	PreviousMode Mode

	VarLine           bool // inside a var statement
	VarLineTainted    bool // the current declarator has an initializer
	VarLineReindented bool // continuation lines get one extra indent unit

	IfLine       bool // an if header is open on this line
	InCase       bool // between case/default and its ':'
	EatNextSpace bool // the next requested space is dropped

	// IndentationBaseline is the source column of the first element of a
	// kept array, -1 until known.
	IndentationBaseline int
	IndentationLevel    int
	TernaryDepth        int
}

func newFrame(mode Mode) Frame {
	return Frame{
		Mode:                mode,
		PreviousMode:        ModeBlock,
		IndentationBaseline: -1,
	}
}
