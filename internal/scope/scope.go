// Package scope narrows a search to the subtrees selected by a JSONPath
// expression.
package scope

import (
	"errors"
	"fmt"
	"slices"

	"github.com/theory/jsonpath"
	"github.com/theory/jsonpath/spec"

	"github.com/jacoelho/keyfind/internal/jsonvalue"
	"github.com/jacoelho/keyfind/internal/keypath"
)

// ErrInvalidExpression indicates the scope expression does not parse.
var ErrInvalidExpression = errors.New("scope: invalid JSONPath expression")

// Root is a subtree to search and its location in the document.
type Root struct {
	Path  keypath.Path
	Value jsonvalue.Value
}

// Selector is a compiled scope expression.
type Selector struct {
	expr string
	path *jsonpath.Path
}

// Compile parses expr, e.g. "$.events[*]" or "$..payload".
func Compile(expr string) (*Selector, error) {
	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidExpression, expr, err)
	}

	return &Selector{expr: expr, path: path}, nil
}

func (s *Selector) String() string {
	return s.expr
}

type candidate struct {
	root     Root
	position []int
}

// Select returns the selected subtrees in document order. A node nested
// inside another selected node is dropped, since searching the outer node
// already covers it.
func (s *Selector) Select(doc jsonvalue.Value) []Root {
	located := s.path.SelectLocated(doc.ToAny())

	candidates := make([]candidate, 0, len(located))
	for _, node := range located {
		if c, ok := resolve(doc, node.Path); ok {
			candidates = append(candidates, c)
		}
	}

	slices.SortFunc(candidates, func(a, b candidate) int {
		return slices.Compare(a.position, b.position)
	})

	roots := make([]Root, 0, len(candidates))
	for _, c := range candidates {
		if len(roots) > 0 && c.root.Path.HasPrefix(roots[len(roots)-1].Path) {
			continue
		}
		roots = append(roots, c.root)
	}

	return roots
}

// resolve follows a normalized path through the ordered document, recording
// the member or element position at each step.
func resolve(doc jsonvalue.Value, np spec.NormalizedPath) (candidate, bool) {
	current := doc
	var (
		path     keypath.Path
		position = make([]int, 0, len(np))
	)

	for _, step := range np {
		switch sel := step.(type) {
		case spec.Name:
			idx := memberIndex(current, string(sel))
			if idx < 0 {
				return candidate{}, false
			}
			current = current.Members()[idx].Value
			path = path.Child(string(sel))
			position = append(position, idx)
		case spec.Index:
			item, ok := current.Index(int(sel))
			if !ok {
				return candidate{}, false
			}
			current = item
			path = path.Element(int(sel))
			position = append(position, int(sel))
		default:
			return candidate{}, false
		}
	}

	return candidate{root: Root{Path: path, Value: current}, position: position}, true
}

func memberIndex(v jsonvalue.Value, key string) int {
	for i, member := range v.Members() {
		if member.Key == key {
			return i
		}
	}
	return -1
}
