package jsonvalue

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/goccy/go-yaml"
)

// String renders scalars in literal form and containers as compact JSON.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.boolean)
	case KindNumber, KindString:
		return v.text
	default:
		var buf bytes.Buffer
		v.writeJSON(&buf)
		return buf.String()
	}
}

// MarshalJSON encodes v with object members in document order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	v.writeJSON(&buf)
	return buf.Bytes(), nil
}

func (v Value) writeJSON(buf *bytes.Buffer) {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.boolean))
	case KindNumber:
		buf.WriteString(v.text)
	case KindString:
		writeQuoted(buf, v.text)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			item.writeJSON(buf)
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, member := range v.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeQuoted(buf, member.Key)
			buf.WriteByte(':')
			member.Value.writeJSON(buf)
		}
		buf.WriteByte('}')
	}
}

func writeQuoted(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s) // strings always encode
	buf.Truncate(buf.Len() - 1)
}

// MarshalYAML converts v into values goccy/go-yaml encodes natively.
func (v Value) MarshalYAML() (any, error) {
	return v.toYAML(), nil
}

func (v Value) toYAML() any {
	switch v.kind {
	case KindBool:
		return v.boolean
	case KindNumber:
		return numberValue(v.text)
	case KindString:
		return v.text
	case KindArray:
		items := make([]any, 0, len(v.items))
		for _, item := range v.items {
			items = append(items, item.toYAML())
		}
		return items
	case KindObject:
		members := make(yaml.MapSlice, 0, len(v.members))
		for _, member := range v.members {
			members = append(members, yaml.MapItem{Key: member.Key, Value: member.Value.toYAML()})
		}
		return members
	default:
		return nil
	}
}

// ToAny converts v into the map[string]any / []any form used by generic
// JSON tooling.
func (v Value) ToAny() any {
	switch v.kind {
	case KindBool:
		return v.boolean
	case KindNumber:
		return numberValue(v.text)
	case KindString:
		return v.text
	case KindArray:
		items := make([]any, 0, len(v.items))
		for _, item := range v.items {
			items = append(items, item.ToAny())
		}
		return items
	case KindObject:
		members := make(map[string]any, len(v.members))
		for _, member := range v.members {
			members[member.Key] = member.Value.ToAny()
		}
		return members
	default:
		return nil
	}
}

func numberValue(literal string) any {
	if i, err := strconv.ParseInt(literal, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(literal, 64); err == nil {
		return f
	}
	return literal
}
