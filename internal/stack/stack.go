package stack

import (
	"errors"
	"slices"
)

// ErrOverflow is returned by Push when the stack is at its limit.
var ErrOverflow = errors.New("stack: limit exceeded")

// Stack is a LIFO container with an optional size limit.
type Stack[T any] struct {
	items []T
	limit int
}

func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// NewWithLimit caps the number of items; limit <= 0 means unbounded.
func NewWithLimit[T any](limit int) *Stack[T] {
	return &Stack[T]{limit: limit}
}

// Push adds elements in order with the last element at the top.
// Nothing is pushed when the items would not fit.
func (s *Stack[T]) Push(items ...T) error {
	if s.limit > 0 && len(s.items)+len(items) > s.limit {
		return ErrOverflow
	}

	s.items = append(s.items, items...)
	return nil
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	index := len(s.items) - 1
	item := s.items[index]
	s.items = s.items[:index]
	return item, true
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	return s.items[len(s.items)-1], true
}

// PeekRef allows modifying the top element in place. The pointer is only
// valid until the next Push.
func (s *Stack[T]) PeekRef() *T {
	if len(s.items) == 0 {
		return nil
	}

	return &s.items[len(s.items)-1]
}

func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *Stack[T]) Size() int {
	return len(s.items)
}

func (s *Stack[T]) Limit() int {
	return s.limit
}

// ToSlice orders from bottom to top of the stack.
func (s *Stack[T]) ToSlice() []T {
	return slices.Clone(s.items)
}
