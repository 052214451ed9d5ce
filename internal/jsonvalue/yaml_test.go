package jsonvalue

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeYAMLPreservesOrder(t *testing.T) {
	t.Parallel()

	input := `
zeta: 1
alpha:
  - name: first
    enabled: true
  - name: second
    ratio: 0.5
omega: ~
`

	v, err := DecodeYAML([]byte(input), DefaultMaxDepth)
	if err != nil {
		t.Fatalf("DecodeYAML() error = %v", err)
	}

	want := `{"zeta":1,"alpha":[{"name":"first","enabled":true},{"name":"second","ratio":0.5}],"omega":null}`
	if got := v.String(); got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}

func TestDecodeYAMLNonStringKeys(t *testing.T) {
	t.Parallel()

	v, err := DecodeYAML([]byte("1: one\ntrue: yes\n"), DefaultMaxDepth)
	if err != nil {
		t.Fatalf("DecodeYAML() error = %v", err)
	}

	var keys []string
	for _, member := range v.Members() {
		keys = append(keys, member.Key)
	}
	if strings.Join(keys, ",") != "1,true" {
		t.Errorf("keys = %v, want [1 true]", keys)
	}
}

func TestObjectCollapsesRepeatedKeysInOrder(t *testing.T) {
	t.Parallel()

	v := Object(
		Member{Key: "b", Value: Number("1")},
		Member{Key: "a", Value: Null()},
		Member{Key: "b", Value: Number("2")},
	)

	if got := v.String(); got != `{"b":2,"a":null}` {
		t.Errorf("String() = %s", got)
	}
}

func TestDecodeYAMLErrors(t *testing.T) {
	t.Parallel()

	if _, err := DecodeYAML([]byte("a: [1, 2"), DefaultMaxDepth); !errors.Is(err, ErrMalformed) {
		t.Errorf("DecodeYAML() unterminated flow error = %v, want ErrMalformed", err)
	}

	if _, err := DecodeYAML([]byte("a:\n  b:\n    c: 1\n"), 2); !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("DecodeYAML() deep error = %v, want ErrDepthExceeded", err)
	}

	if _, err := DecodeYAML([]byte("a:\n  b: 1\n"), 2); err != nil {
		t.Errorf("DecodeYAML() at limit error = %v", err)
	}
}
