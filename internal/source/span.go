package source

import "strconv"

// Span is a half-open byte range [Start, End) inside one file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

func (s Span) Empty() bool { return s.Start >= s.End }

func (s Span) Len() uint32 {
	if s.Empty() {
		return 0
	}
	return s.End - s.Start
}

// Within reports whether the span fits into content of size n.
func (s Span) Within(n int) bool {
	return s.Start <= s.End && int64(s.End) <= int64(n)
}

// Slice returns the bytes of content covered by s, or nil when s does not
// fit into content.
func (s Span) Slice(content []byte) []byte {
	if !s.Within(len(content)) {
		return nil
	}
	return content[s.Start:s.End]
}

// String formats the span as "file:start-end".
func (s Span) String() string {
	b := strconv.AppendUint(nil, uint64(s.File), 10)
	b = append(b, ':')
	b = strconv.AppendUint(b, uint64(s.Start), 10)
	b = append(b, '-')
	b = strconv.AppendUint(b, uint64(s.End), 10)
	return string(b)
}
