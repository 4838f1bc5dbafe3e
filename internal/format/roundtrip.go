package format

import (
	"fmt"
	"strings"
	"unicode"
)

// CheckRoundTrip formats src and verifies two properties of the result:
// it differs from src only in whitespace, and formatting it again changes
// nothing.
func CheckRoundTrip(src string, opts Options) (ok bool, msg string) {
	once, err := Source(src, opts)
	if err != nil {
		return false, "fmt-check: " + err.Error()
	}
	if a, b := stripSpace(src), stripSpace(once); a != b {
		return false, fmt.Sprintf("fmt-check: non-whitespace text changed at byte %d", firstDiff(a, b))
	}
	twice, err := Source(once, opts)
	if err != nil {
		return false, "fmt-check: " + err.Error()
	}
	if twice != once {
		return false, fmt.Sprintf("fmt-check: second pass differs at byte %d", firstDiff(once, twice))
	}
	return true, "fmt-check: OK"
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func firstDiff(a, b string) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
