// Package sbm implements the shelf bookmark file format: a line-oriented,
// pipe-delimited text format for organizing bookmarks into named categories.
//
// A file looks like this:
//
//	// comments start with a double slash
//	#Programming Languages
//	Rust|Systems programming language|https://www.rust-lang.org/
//	#Web Development|🌐
//	MDN|Web documentation|https://developer.mozilla.org/
//
// Lines beginning with '#' open a category; every other non-blank,
// non-comment line is a bookmark belonging to the most recent category.
// Parse and Document.String round-trip: rendering a parsed document and
// parsing it again yields an equal document.
package sbm

import "strings"

// Bookmark is a single entry in the file: a short name, a description and
// a URL. All three fields are mandatory positions in the source line; each
// is trimmed of surrounding ASCII whitespace but may be empty. URL syntax
// is not validated.
type Bookmark struct {
	Name        string
	Description string
	URL         string
}

// NewBookmark builds a Bookmark from its three fields.
func NewBookmark(name, description, url string) Bookmark {
	return Bookmark{Name: name, Description: description, URL: url}
}

// String renders the bookmark as "name|description|url" with no newline.
func (b Bookmark) String() string {
	return b.Name + "|" + b.Description + "|" + b.URL
}

// Header is a category label: a name and an optional icon. HasIcon
// distinguishes "#Name" (no icon) from "#Name|" (icon present but empty);
// both are representable and render back to their source form.
type Header struct {
	Name    string
	Icon    string
	HasIcon bool
}

// NewHeader builds a Header without an icon.
func NewHeader(name string) Header {
	return Header{Name: name}
}

// NewHeaderWithIcon builds a Header with an icon. The icon may be empty.
func NewHeaderWithIcon(name, icon string) Header {
	return Header{Name: name, Icon: icon, HasIcon: true}
}

// String renders the header as "#name|icon" or "#name".
func (h Header) String() string {
	if h.HasIcon {
		return "#" + h.Name + "|" + h.Icon
	}
	return "#" + h.Name
}

// Category is a header together with its bookmarks in source order.
type Category struct {
	Header    Header
	Bookmarks []Bookmark
}

// NewCategory builds an empty Category under the given header.
func NewCategory(header Header) Category {
	return Category{Header: header}
}

// String renders the header line followed by one line per bookmark.
// A category with no bookmarks renders as just the header line.
func (c Category) String() string {
	var sb strings.Builder
	sb.WriteString(c.Header.String())
	for _, b := range c.Bookmarks {
		sb.WriteByte('\n')
		sb.WriteString(b.String())
	}
	return sb.String()
}

// Document is an ordered sequence of categories, the root parse product.
type Document struct {
	Categories []Category
}

// NewDocument builds a Document from the given categories.
func NewDocument(categories []Category) Document {
	return Document{Categories: categories}
}

// String renders the canonical textual form: category renderings joined by
// a single '\n', no leading or trailing newline, no blank separator lines.
// An empty document renders to the empty string. Rendering never fails,
// but field values containing '|' or names starting with '#' produce text
// that will not re-parse to the same document; the format has no escaping.
func (d Document) String() string {
	parts := make([]string, 0, len(d.Categories))
	for _, c := range d.Categories {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, "\n")
}

// Equal reports whether two documents have identical structure and fields.
func (d Document) Equal(other Document) bool {
	if len(d.Categories) != len(other.Categories) {
		return false
	}
	for i, c := range d.Categories {
		o := other.Categories[i]
		if c.Header != o.Header || len(c.Bookmarks) != len(o.Bookmarks) {
			return false
		}
		for j, b := range c.Bookmarks {
			if b != o.Bookmarks[j] {
				return false
			}
		}
	}
	return true
}
