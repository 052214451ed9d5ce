package jsonvalue

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jacoelho/keyfind/internal/stack"
)

// DefaultMaxDepth bounds container nesting for decoding and traversal.
const DefaultMaxDepth = 10000

// builder accumulates one open container while its tokens stream in.
type builder struct {
	kind    Kind
	items   []Value
	members []Member
	key     string // last key read for an object
	needKey bool   // true if object expects a key next
}

func (b *builder) add(v Value) {
	if b.kind == KindObject {
		b.members = append(b.members, Member{Key: b.key, Value: v})
		b.needKey = true
		return
	}
	b.items = append(b.items, v)
}

func (b *builder) value() Value {
	if b.kind == KindObject {
		return Object(b.members...)
	}
	return Array(b.items...)
}

// Decode reads exactly one JSON document from r. Containers nested deeper
// than maxDepth fail with ErrDepthExceeded; maxDepth <= 0 disables the check.
func Decode(r io.Reader, maxDepth int) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	open := stack.NewWithLimit[builder](maxDepth)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return Value{}, fmt.Errorf("%w: %w", ErrMalformed, io.ErrUnexpectedEOF)
		}
		if err != nil {
			return Value{}, fmt.Errorf("%w: %w", ErrMalformed, err)
		}

		var current Value
		switch t := tok.(type) {
		case json.Delim:
			switch t {
			case '{':
				if err := open.Push(builder{kind: KindObject, needKey: true}); err != nil {
					return Value{}, fmt.Errorf("%w: limit %d", ErrDepthExceeded, maxDepth)
				}
				continue
			case '[':
				if err := open.Push(builder{kind: KindArray}); err != nil {
					return Value{}, fmt.Errorf("%w: limit %d", ErrDepthExceeded, maxDepth)
				}
				continue
			default:
				closed, ok := open.Pop()
				if !ok {
					return Value{}, fmt.Errorf("%w: unexpected %q", ErrMalformed, rune(t))
				}
				current = closed.value()
			}
		case string:
			if top := open.PeekRef(); top != nil && top.needKey {
				top.key = t
				top.needKey = false
				continue
			}
			current = String(t)
		case json.Number:
			current = Number(t.String())
		case bool:
			current = Bool(t)
		case nil:
			current = Null()
		default:
			return Value{}, fmt.Errorf("%w: unexpected token %T", ErrMalformed, tok)
		}

		if top := open.PeekRef(); top != nil {
			top.add(current)
			continue
		}

		if err := expectEOF(dec); err != nil {
			return Value{}, err
		}
		return current, nil
	}
}

func expectEOF(dec *json.Decoder) error {
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return fmt.Errorf("%w: unexpected %v after top-level value", ErrMalformed, tok)
}
