// Package keypath builds and renders locations inside a JSON document.
package keypath

import (
	"slices"
	"strconv"
	"strings"

	"github.com/theory/jsonpath/spec"
)

// Style selects how a Path is rendered.
type Style string

const (
	// StyleSlash renders a/b[0]/c.
	StyleSlash Style = "slash"
	// StyleJSONPath renders RFC 9535 normalized paths: $['a']['b'][0]['c'].
	StyleJSONPath Style = "jsonpath"
)

// Segment is one step: an object key or an array index.
type Segment struct {
	Name    string
	Index   int
	IsIndex bool
}

// Path is the sequence of steps from the document root. The zero Path is the root.
type Path []Segment

// Child returns p extended with an object key. p is never modified.
func (p Path) Child(name string) Path {
	return append(slices.Clip(p), Segment{Name: name})
}

// Element returns p extended with an array index. p is never modified.
func (p Path) Element(index int) Path {
	return append(slices.Clip(p), Segment{Index: index, IsIndex: true})
}

// String renders the slash form. A key is joined with "/" unless the text so
// far is empty; an index is always written as "[i]".
func (p Path) String() string {
	var b strings.Builder
	for _, seg := range p {
		if seg.IsIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(seg.Index))
			b.WriteByte(']')
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('/')
		}
		b.WriteString(seg.Name)
	}
	return b.String()
}

// Normalized converts p into a JSONPath normalized path.
func (p Path) Normalized() spec.NormalizedPath {
	np := make(spec.NormalizedPath, 0, len(p))
	for _, seg := range p {
		if seg.IsIndex {
			np = append(np, spec.Index(seg.Index))
		} else {
			np = append(np, spec.Name(seg.Name))
		}
	}
	return np
}

// Format renders p in the requested style; unknown styles use StyleSlash.
func (p Path) Format(style Style) string {
	if style == StyleJSONPath {
		return p.Normalized().String()
	}
	return p.String()
}

// HasPrefix reports whether prefix is an ancestor of, or equal to, p.
func (p Path) HasPrefix(prefix Path) bool {
	return len(prefix) <= len(p) && slices.Equal(p[:len(prefix)], prefix)
}

// ParseStyle accepts the style names used on the command line.
func ParseStyle(s string) (Style, bool) {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case "", StyleSlash:
		return StyleSlash, true
	case StyleJSONPath:
		return StyleJSONPath, true
	default:
		return "", false
	}
}
