package sbm

import "fmt"

// ErrorKind identifies the class of a malformed line.
type ErrorKind uint8

const (
	// MalformedBookmark means a bookmark line did not split into exactly
	// three '|'-separated fields.
	MalformedBookmark ErrorKind = iota + 1
	// MalformedHeader means a header body split into three or more
	// '|'-separated fields.
	MalformedHeader
	// BookmarkBeforeHeader means a bookmark line appeared before any
	// category header.
	BookmarkBeforeHeader
)

// String returns a short tag for the kind.
func (k ErrorKind) String() string {
	switch k {
	case MalformedBookmark:
		return "malformed bookmark"
	case MalformedHeader:
		return "malformed header"
	case BookmarkBeforeHeader:
		return "bookmark before header"
	default:
		return "unknown"
	}
}

// ParseError is the diagnostic returned by Parse for the first offending
// line. Line is the 1-based index of that line in the input.
type ParseError struct {
	Kind ErrorKind
	Line int
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case MalformedBookmark:
		return fmt.Sprintf("line %d: bookmark must have exactly 3 pipe-separated fields", e.Line)
	case MalformedHeader:
		return fmt.Sprintf("line %d: header must have 1 or 2 pipe-separated fields", e.Line)
	case BookmarkBeforeHeader:
		return fmt.Sprintf("line %d: bookmark appears before any category header", e.Line)
	default:
		return fmt.Sprintf("line %d: invalid line", e.Line)
	}
}
