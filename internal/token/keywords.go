package token

// lineStarters always begin a new line unless they follow "else" or open
// an expression.
var lineStarters = map[string]struct{}{
	"continue": {},
	"try":      {},
	"throw":    {},
	"return":   {},
	"var":      {},
	"if":       {},
	"switch":   {},
	"case":     {},
	"default":  {},
	"for":      {},
	"while":    {},
	"break":    {},
	"function": {},
}

// IsLineStarter reports whether word is a statement-starting keyword.
func IsLineStarter(word string) bool {
	_, ok := lineStarters[word]
	return ok
}

// IsBranchContinuation reports whether word continues a preceding block:
// else, catch or finally.
func IsBranchContinuation(word string) bool {
	switch word {
	case "else", "catch", "finally":
		return true
	}
	return false
}
