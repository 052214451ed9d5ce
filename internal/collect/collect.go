// Package collect finds every object key from a target set inside a JSON
// value and reports the path to each occurrence together with its value.
//
// The walk is depth-first and pre-order: object members in document order,
// array elements by index. A matching key is reported before its value is
// descended into, so matches nested under a match follow it. Arrays and the
// root never match by themselves.
//
// Traversal uses an explicit stack holding one frame per open container, so
// nesting depth is bounded by Collector.MaxDepth rather than the goroutine
// stack.
package collect

import (
	"fmt"
	"iter"

	"github.com/jacoelho/keyfind/internal/jsonvalue"
	"github.com/jacoelho/keyfind/internal/keypath"
	"github.com/jacoelho/keyfind/internal/keyset"
	"github.com/jacoelho/keyfind/internal/stack"
)

// ErrDepthExceeded is returned when containers nest deeper than MaxDepth.
var ErrDepthExceeded = jsonvalue.ErrDepthExceeded

// Match is one occurrence of a target key.
type Match struct {
	Path  keypath.Path
	Value jsonvalue.Value
}

// String renders "<path> = <value>".
func (m Match) String() string {
	return m.Path.String() + " = " + m.Value.String()
}

// Collector walks values. The zero Collector uses jsonvalue.DefaultMaxDepth.
type Collector struct {
	// MaxDepth bounds container nesting below the starting value; negative disables it.
	MaxDepth int
}

// frame tracks the next child to visit in one open container.
type frame struct {
	value jsonvalue.Value
	path  keypath.Path
	next  int
}

// Collect returns all matches under root in traversal order.
func Collect(root jsonvalue.Value, keys keyset.Set) ([]Match, error) {
	return Collector{}.Collect(root, keys)
}

// Collect returns all matches under root in traversal order.
func (c Collector) Collect(root jsonvalue.Value, keys keyset.Set) ([]Match, error) {
	return c.CollectAt(root, nil, keys)
}

// CollectAt is Collect for a subtree whose own location is base; reported
// paths start with base.
func (c Collector) CollectAt(root jsonvalue.Value, base keypath.Path, keys keyset.Set) ([]Match, error) {
	var matches []Match
	for match, err := range c.Walk(root, base, keys) {
		if err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}
	return matches, nil
}

// Walk returns a lazy iterator over the matches under root. On failure the
// iterator yields a single error and stops.
func (c Collector) Walk(root jsonvalue.Value, base keypath.Path, keys keyset.Set) iter.Seq2[Match, error] {
	return func(yield func(Match, error) bool) {
		if !root.IsContainer() || keys.Len() == 0 {
			return
		}

		open := stack.NewWithLimit[frame](c.maxDepth())
		if err := open.Push(frame{value: root, path: base}); err != nil {
			yield(Match{}, c.depthError())
			return
		}

		for !open.IsEmpty() {
			top := open.PeekRef()

			var (
				child     jsonvalue.Value
				childPath keypath.Path
			)

			switch top.value.Kind() {
			case jsonvalue.KindObject:
				members := top.value.Members()
				if top.next >= len(members) {
					open.Pop()
					continue
				}
				member := members[top.next]
				top.next++

				child = member.Value
				childPath = top.path.Child(member.Key)
				if keys.Contains(member.Key) {
					if !yield(Match{Path: childPath, Value: child}, nil) {
						return
					}
				}
			case jsonvalue.KindArray:
				items := top.value.Items()
				if top.next >= len(items) {
					open.Pop()
					continue
				}
				child = items[top.next]
				childPath = top.path.Element(top.next)
				top.next++
			default:
				open.Pop()
				continue
			}

			if !child.IsContainer() {
				continue
			}
			if err := open.Push(frame{value: child, path: childPath}); err != nil {
				yield(Match{}, c.depthError())
				return
			}
		}
	}
}

func (c Collector) maxDepth() int {
	if c.MaxDepth == 0 {
		return jsonvalue.DefaultMaxDepth
	}
	if c.MaxDepth < 0 {
		return 0
	}
	return c.MaxDepth
}

func (c Collector) depthError() error {
	return fmt.Errorf("%w: limit %d", ErrDepthExceeded, c.maxDepth())
}
