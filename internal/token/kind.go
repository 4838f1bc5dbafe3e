package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid is the zero Kind; the lexer never produces it.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Word is an identifier, keyword, number or sharp variable.
	Word
	// StartExpr is '(' or '['.
	StartExpr
	// EndExpr is ')' or ']'.
	EndExpr
	// StartBlock is '{'.
	StartBlock
	// EndBlock is '}'.
	EndBlock
	// Semicolon is ';'.
	Semicolon
	// String is a quoted string or a regular expression literal.
	String
	// Equals is a lone '=' (assignment).
	Equals
	// Operator is any punctuation run from the operator table, plus the word "in".
	Operator
	// BlockComment is a /* */ comment spanning several lines.
	BlockComment
	// InlineComment is a /* */ comment on a single line.
	InlineComment
	// LineComment is a // comment or an HTML comment marker (<!-- or -->).
	LineComment
	// Unknown is any character nothing else claims; passed through unchanged.
	Unknown
	// Shebang is a leading "#!" line. It is emitted verbatim and is not
	// remembered as the previous token.
	Shebang
)

var kindNames = [...]string{
	Invalid:       "Invalid",
	EOF:           "EOF",
	Word:          "Word",
	StartExpr:     "StartExpr",
	EndExpr:       "EndExpr",
	StartBlock:    "StartBlock",
	EndBlock:      "EndBlock",
	Semicolon:     "Semicolon",
	String:        "String",
	Equals:        "Equals",
	Operator:      "Operator",
	BlockComment:  "BlockComment",
	InlineComment: "InlineComment",
	LineComment:   "LineComment",
	Unknown:       "Unknown",
	Shebang:       "Shebang",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsComment reports whether the kind is one of the comment kinds.
func (k Kind) IsComment() bool {
	return k == BlockComment || k == InlineComment || k == LineComment
}
