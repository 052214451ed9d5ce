package jsonvalue

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/goccy/go-yaml"
)

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{name: "null", value: Null(), want: "null"},
		{name: "zero_value", value: Value{}, want: "null"},
		{name: "true", value: Bool(true), want: "true"},
		{name: "false", value: Bool(false), want: "false"},
		{name: "number_literal", value: Number("1.0"), want: "1.0"},
		{name: "string_unquoted", value: String("login"), want: "login"},
		{name: "empty_array", value: Array(), want: "[]"},
		{name: "empty_object", value: Object(), want: "{}"},
		{
			name:  "nested",
			value: Object(Member{Key: "b", Value: Number("5")}),
			want:  `{"b":5}`,
		},
		{
			name: "strings_inside_containers_are_quoted",
			value: Array(
				String(`say "hi"`),
				String("<tag> & co"),
				Object(Member{Key: "k\n", Value: Null()}),
			),
			want: `["say \"hi\"","<tag> & co",{"k\n":null}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.value.String(); got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMarshalJSONKeepsOrder(t *testing.T) {
	t.Parallel()

	v := Object(
		Member{Key: "z", Value: Number("1")},
		Member{Key: "a", Value: Array(Bool(false), String("x"))},
	)

	data, err := json.Marshal(struct {
		Value Value `json:"value"`
	}{Value: v})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	if string(data) != `{"value":{"z":1,"a":[false,"x"]}}` {
		t.Errorf("Marshal() = %s", data)
	}
}

func TestMarshalYAMLKeepsOrder(t *testing.T) {
	t.Parallel()

	v := Object(
		Member{Key: "z", Value: Number("1")},
		Member{Key: "a", Value: Array(Number("2.5"), String("x"), Null())},
	)

	data, err := yaml.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	back, err := DecodeYAML(data, DefaultMaxDepth)
	if err != nil {
		t.Fatalf("DecodeYAML() error = %v", err)
	}

	if back.String() != v.String() {
		t.Errorf("round trip = %s, want %s", back.String(), v.String())
	}
}

func TestToAny(t *testing.T) {
	t.Parallel()

	v := Object(
		Member{Key: "n", Value: Number("3")},
		Member{Key: "f", Value: Number("1.5")},
		Member{Key: "list", Value: Array(Bool(true), Null(), String("s"))},
		Member{Key: "n", Value: Number("4")},
	)

	want := map[string]any{
		"n":    int64(4),
		"f":    1.5,
		"list": []any{true, nil, "s"},
	}

	if got := v.ToAny(); !reflect.DeepEqual(got, want) {
		t.Errorf("ToAny() = %#v, want %#v", got, want)
	}
}
