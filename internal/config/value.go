package config

import (
	"encoding/json"
	"fmt"
	"maps"
	"strconv"
	"time"
)

// Value is a node of the configuration tree. The concrete type is one of
// String, Number, Bool, Null, List or Map.
type Value interface {
	isValue()
}

// String is a text value. Environment overrides are always strings.
type String string

// Number is a numeric value. Integers and floats from JSON and YAML both decode to Number.
type Number float64

// Bool is a boolean value.
type Bool bool

// Null is an explicit null in a configuration document.
type Null struct{}

// List is a sequence of values.
type List []Value

// Map is one level of the configuration tree.
type Map map[string]Value

func (String) isValue() {}
func (Number) isValue() {}
func (Bool) isValue()   {}
func (Null) isValue()   {}
func (List) isValue()   {}
func (Map) isValue()    {}

// ValueOf converts a decoded JSON or YAML node into a Value.
func ValueOf(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return t, nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case int:
		return Number(t), nil
	case int8:
		return Number(t), nil
	case int16:
		return Number(t), nil
	case int32:
		return Number(t), nil
	case int64:
		return Number(t), nil
	case uint:
		return Number(t), nil
	case uint8:
		return Number(t), nil
	case uint16:
		return Number(t), nil
	case uint32:
		return Number(t), nil
	case uint64:
		return Number(t), nil
	case float32:
		return Number(t), nil
	case float64:
		return Number(t), nil
	case time.Time:
		// YAML timestamps such as 2024-01-01.
		return String(formatTime(t)), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %q: %w", ErrUnsupportedValue, t.String(), err)
		}
		return Number(f), nil
	case []any:
		out := make(List, 0, len(t))
		for i, item := range t {
			converted, err := ValueOf(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out = append(out, converted)
		}
		return out, nil
	case map[string]any:
		out := make(Map, len(t))
		for key, item := range t {
			converted, err := ValueOf(item)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			out[key] = converted
		}
		return out, nil
	case map[any]any:
		// YAML mappings with non-string keys.
		out := make(Map, len(t))
		for key, item := range t {
			name := fmt.Sprint(key)
			converted, err := ValueOf(item)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", name, err)
			}
			out[name] = converted
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

func formatTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.RFC3339Nano)
}

// Native converts a Value back into plain Go types suitable for encoding.
func Native(v Value) any {
	switch t := v.(type) {
	case String:
		return string(t)
	case Number:
		return float64(t)
	case Bool:
		return bool(t)
	case List:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = Native(item)
		}
		return out
	case Map:
		out := make(map[string]any, len(t))
		for key, item := range t {
			out[key] = Native(item)
		}
		return out
	default:
		return nil
	}
}

// Text renders a scalar value as a string. It reports false for Null, List, Map and nil.
func Text(v Value) (string, bool) {
	switch t := v.(type) {
	case String:
		return string(t), true
	case Number:
		return strconv.FormatFloat(float64(t), 'f', -1, 64), true
	case Bool:
		return strconv.FormatBool(bool(t)), true
	default:
		return "", false
	}
}

// Clone returns a shallow copy of m. Nested maps and lists are shared.
func (m Map) Clone() Map {
	if m == nil {
		return Map{}
	}
	return maps.Clone(m)
}
