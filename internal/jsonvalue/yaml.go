package jsonvalue

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/goccy/go-yaml"
)

// DecodeYAML parses the first YAML document in data, keeping mapping order.
// Non-string mapping keys are rendered with fmt.Sprint and non-finite floats
// become strings, since neither has a JSON equivalent.
func DecodeYAML(data []byte, maxDepth int) (Value, error) {
	var raw any
	if err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap()); err != nil {
		return Value{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return fromYAML(raw, 0, maxDepth)
}

func fromYAML(raw any, depth int, maxDepth int) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Number(fmt.Sprint(t)), nil
	case float32:
		return fromFloat(float64(t)), nil
	case float64:
		return fromFloat(t), nil
	case yaml.MapSlice:
		if err := checkDepth(depth, maxDepth); err != nil {
			return Value{}, err
		}
		members := make([]Member, 0, len(t))
		for _, item := range t {
			child, err := fromYAML(item.Value, depth+1, maxDepth)
			if err != nil {
				return Value{}, err
			}
			members = append(members, Member{Key: yamlKey(item.Key), Value: child})
		}
		return Object(members...), nil
	case map[string]any:
		if err := checkDepth(depth, maxDepth); err != nil {
			return Value{}, err
		}
		keys := make([]string, 0, len(t))
		for key := range t {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		members := make([]Member, 0, len(t))
		for _, key := range keys {
			child, err := fromYAML(t[key], depth+1, maxDepth)
			if err != nil {
				return Value{}, err
			}
			members = append(members, Member{Key: key, Value: child})
		}
		return Object(members...), nil
	case []any:
		if err := checkDepth(depth, maxDepth); err != nil {
			return Value{}, err
		}
		items := make([]Value, 0, len(t))
		for _, item := range t {
			child, err := fromYAML(item, depth+1, maxDepth)
			if err != nil {
				return Value{}, err
			}
			items = append(items, child)
		}
		return Array(items...), nil
	default:
		return String(fmt.Sprint(t)), nil
	}
}

func checkDepth(depth int, maxDepth int) error {
	if maxDepth > 0 && depth >= maxDepth {
		return fmt.Errorf("%w: limit %d", ErrDepthExceeded, maxDepth)
	}
	return nil
}

func fromFloat(f float64) Value {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return String(strconv.FormatFloat(f, 'g', -1, 64))
	}
	return Number(strconv.FormatFloat(f, 'g', -1, 64))
}

func yamlKey(key any) string {
	if s, ok := key.(string); ok {
		return s
	}
	return fmt.Sprint(key)
}
