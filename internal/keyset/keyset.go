// Package keyset parses the comma-delimited list of key names to search for.
package keyset

import (
	"slices"
	"strings"
)

// Set holds target key names. Only membership matters.
type Set map[string]struct{}

// New builds a Set from already-normalized names.
func New(keys ...string) Set {
	s := make(Set, len(keys))
	for _, key := range keys {
		s[key] = struct{}{}
	}
	return s
}

// Parse splits input on commas, collapsing runs of commas, trims whitespace
// around each name and drops names that end up empty.
func Parse(input string) Set {
	pieces := strings.FieldsFunc(input, func(r rune) bool { return r == ',' })

	s := make(Set, len(pieces))
	for _, piece := range pieces {
		if key := strings.TrimSpace(piece); key != "" {
			s[key] = struct{}{}
		}
	}
	return s
}

// Contains reports whether key is a target. Comparison is exact.
func (s Set) Contains(key string) bool {
	_, ok := s[key]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Sorted returns the names in lexical order, for stable output.
func (s Set) Sorted() []string {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
