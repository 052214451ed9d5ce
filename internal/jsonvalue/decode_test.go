package jsonvalue

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestDecodePreservesOrder(t *testing.T) {
	t.Parallel()

	v, err := Decode(strings.NewReader(`{"z": 1, "a": {"y": [true, null, "s"], "b": 2.50}, "m": -3e2}`), DefaultMaxDepth)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if v.Kind() != KindObject {
		t.Fatalf("Kind() = %s, want object", v.Kind())
	}

	var keys []string
	for _, member := range v.Members() {
		keys = append(keys, member.Key)
	}
	if strings.Join(keys, ",") != "z,a,m" {
		t.Fatalf("member order = %v, want [z a m]", keys)
	}

	if got := v.String(); got != `{"z":1,"a":{"y":[true,null,"s"],"b":2.50},"m":-3e2}` {
		t.Errorf("String() = %s", got)
	}
}

func TestDecodeCollapsesRepeatedKeys(t *testing.T) {
	t.Parallel()

	v, err := Decode(strings.NewReader(`{"k": 1, "other": 0, "k": 2, "other": {"k": 3, "k": 4}}`), 0)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if got := v.String(); got != `{"k":2,"other":{"k":4}}` {
		t.Fatalf("String() = %s, want first position with last value", got)
	}

	got, ok := v.Get("k")
	if !ok || got.Text() != "2" {
		t.Errorf("Get(k) = %v, %t, want 2, true", got, ok)
	}
}

func TestObjectWithoutRepeatsKeepsMembers(t *testing.T) {
	t.Parallel()

	members := []Member{{Key: "a", Value: Number("1")}, {Key: "b", Value: Number("2")}}
	v := Object(members...)

	if len(v.Members()) != 2 || v.String() != `{"a":1,"b":2}` {
		t.Errorf("Object() = %s", v.String())
	}
}

func TestDecodeScalarRoots(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		kind  Kind
		text  string
	}{
		{input: `"hello"`, kind: KindString, text: "hello"},
		{input: `42`, kind: KindNumber, text: "42"},
		{input: ` true `, kind: KindBool, text: "true"},
		{input: `null`, kind: KindNull, text: "null"},
		{input: `[]`, kind: KindArray, text: "[]"},
		{input: `{}`, kind: KindObject, text: "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			v, err := Decode(strings.NewReader(tt.input), DefaultMaxDepth)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if v.Kind() != tt.kind {
				t.Errorf("Kind() = %s, want %s", v.Kind(), tt.kind)
			}
			if v.String() != tt.text {
				t.Errorf("String() = %q, want %q", v.String(), tt.text)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		depth int
		want  error
	}{
		{name: "empty", input: "", want: ErrMalformed},
		{name: "whitespace_only", input: "  \n", want: ErrMalformed},
		{name: "truncated_object", input: `{"a": 1`, want: ErrMalformed},
		{name: "truncated_array", input: `[1, 2`, want: ErrMalformed},
		{name: "bad_token", input: `{"a": tru}`, want: ErrMalformed},
		{name: "trailing_value", input: `{"a": 1} {"b": 2}`, want: ErrMalformed},
		{name: "trailing_garbage", input: `[1] x`, want: ErrMalformed},
		{name: "missing_colon", input: `{"a" 1}`, want: ErrMalformed},
		{name: "too_deep", input: `[[[1]]]`, depth: 2, want: ErrDepthExceeded},
		{name: "too_deep_objects", input: `{"a":{"b":{"c":{}}}}`, depth: 3, want: ErrDepthExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode(strings.NewReader(tt.input), tt.depth)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecodeEmptyInputIsUnexpectedEOF(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader(""), DefaultMaxDepth)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("Decode() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestDecodeDepthAtLimit(t *testing.T) {
	t.Parallel()

	input := strings.Repeat("[", 50) + strings.Repeat("]", 50)

	if _, err := Decode(strings.NewReader(input), 50); err != nil {
		t.Fatalf("Decode() at limit error = %v", err)
	}
	if _, err := Decode(strings.NewReader(input), 49); !errors.Is(err, ErrDepthExceeded) {
		t.Fatalf("Decode() over limit error = %v, want ErrDepthExceeded", err)
	}
}

func TestDecodePathologicalNestingDoesNotRecurse(t *testing.T) {
	t.Parallel()

	input := strings.Repeat(`{"a":`, 200000) + "1" + strings.Repeat("}", 200000)

	if _, err := Decode(strings.NewReader(input), DefaultMaxDepth); !errors.Is(err, ErrDepthExceeded) {
		t.Fatalf("Decode() error = %v, want ErrDepthExceeded", err)
	}
}
