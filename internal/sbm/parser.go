package sbm

import "strings"

// Parse reads a shelf-format text buffer and produces a Document, or a
// *ParseError describing the first malformed line. The pass is strictly
// forward: lines are classified in order (comment, blank, header,
// bookmark) and bookmarks are grouped under the most recent header. A
// bookmark line before any header is rejected with BookmarkBeforeHeader.
func Parse(input string) (Document, error) {
	return parse(input, false)
}

// ParseLenient behaves like Parse but silently discards bookmark lines
// that appear before the first header, matching the historical behavior
// of the format. New callers should prefer Parse: discarded lines break
// the parse/render round trip.
func ParseLenient(input string) (Document, error) {
	return parse(input, true)
}

func parse(input string, lenient bool) (Document, error) {
	var (
		doc     Document
		current *Category
	)

	for i, line := range splitLines(input) {
		line = strings.TrimSuffix(line, "\r")

		// Classification order matters: a comment like "//#x" is never
		// a header, and a line of spaces is blank, not a bookmark.
		switch {
		case strings.HasPrefix(line, "//"):
			continue
		case strings.TrimSpace(line) == "":
			continue
		case strings.HasPrefix(line, "#"):
			header, ok := parseHeader(line[1:])
			if !ok {
				return Document{}, &ParseError{Kind: MalformedHeader, Line: i + 1}
			}
			if current != nil {
				doc.Categories = append(doc.Categories, *current)
			}
			current = &Category{Header: header}
		default:
			if current == nil {
				if lenient {
					continue
				}
				return Document{}, &ParseError{Kind: BookmarkBeforeHeader, Line: i + 1}
			}
			bookmark, ok := parseBookmark(line)
			if !ok {
				return Document{}, &ParseError{Kind: MalformedBookmark, Line: i + 1}
			}
			current.Bookmarks = append(current.Bookmarks, bookmark)
		}
	}

	if current != nil {
		doc.Categories = append(doc.Categories, *current)
	}

	return doc, nil
}

// splitLines splits on '\n'; a single trailing newline does not produce
// an extra line.
func splitLines(input string) []string {
	if input == "" {
		return nil
	}
	input = strings.TrimSuffix(input, "\n")
	return strings.Split(input, "\n")
}

// parseHeader parses the body of a header line (the text after '#').
// One field yields a header without icon; two fields yield a header whose
// icon is present even when empty after trimming. Anything else is
// malformed.
func parseHeader(body string) (Header, bool) {
	fields := strings.Split(body, "|")
	switch len(fields) {
	case 1:
		return NewHeader(strings.TrimSpace(fields[0])), true
	case 2:
		return NewHeaderWithIcon(strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1])), true
	default:
		return Header{}, false
	}
}

// parseBookmark parses a bookmark line into its three positional fields.
func parseBookmark(line string) (Bookmark, bool) {
	fields := strings.Split(line, "|")
	if len(fields) != 3 {
		return Bookmark{}, false
	}
	return NewBookmark(
		strings.TrimSpace(fields[0]),
		strings.TrimSpace(fields[1]),
		strings.TrimSpace(fields[2]),
	), true
}
