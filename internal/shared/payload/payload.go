// Package payload reads the loosely typed "data" object carried by request
// bodies and fixture files.
package payload

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Payload maps field names to decoded JSON (or YAML) values.
type Payload map[string]any

// Get returns the raw value of field.
func (p Payload) Get(field string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p[field]
	return v, ok
}

// Has reports whether field holds a truthy value.
func (p Payload) Has(field string) bool {
	v, _ := p.Get(field)
	return Truthy(v)
}

// String renders field as text. Absent fields yield "".
func (p Payload) String(field string) string {
	v, ok := p.Get(field)
	if !ok || v == nil {
		return ""
	}
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return fmt.Sprint(value)
	}
}

// Int returns field as an integer when it holds a whole number.
func (p Payload) Int(field string) (int, bool) {
	v, _ := p.Get(field)
	return Integer(v)
}

// Items returns field as a sequence.
func (p Payload) Items(field string) ([]any, bool) {
	v, _ := p.Get(field)
	items, ok := v.([]any)
	return items, ok
}

// Object converts v to a Payload when it is a mapping.
func Object(v any) (Payload, bool) {
	switch value := v.(type) {
	case Payload:
		return value, true
	case map[string]any:
		return Payload(value), true
	default:
		return nil, false
	}
}

// Clone returns a deep copy of p.
func (p Payload) Clone() Payload {
	if p == nil {
		return nil
	}
	out := make(Payload, len(p))
	for k, v := range p {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch value := v.(type) {
	case Payload:
		return value.Clone()
	case map[string]any:
		return map[string]any(Payload(value).Clone())
	case []any:
		out := make([]any, len(value))
		for i := range value {
			out[i] = cloneValue(value[i])
		}
		return out
	default:
		return value
	}
}

// Truthy mirrors the loose truthiness clients rely on: nil, false, zero,
// NaN and the empty string are absent; everything else, including empty
// sequences and objects, is present.
func Truthy(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case string:
		return value != ""
	case float64:
		return value != 0 && !math.IsNaN(value)
	case float32:
		return value != 0 && !math.IsNaN(float64(value))
	case int:
		return value != 0
	case int64:
		return value != 0
	case json.Number:
		f, err := value.Float64()
		return err == nil && f != 0
	default:
		return true
	}
}

// maxExactInteger is the largest magnitude a float64 holds without losing
// integer precision (2^53).
const maxExactInteger = 1 << 53

// Integer reports whether v is a whole number and returns it.
func Integer(v any) (int, bool) {
	switch value := v.(type) {
	case int:
		return value, true
	case int64:
		return int(value), true
	case float64:
		if math.IsNaN(value) || math.IsInf(value, 0) || value != math.Trunc(value) {
			return 0, false
		}
		if math.Abs(value) > maxExactInteger {
			return 0, false
		}
		return int(int64(value)), true
	case json.Number:
		n, err := value.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// PositiveInteger reports whether v is an integer strictly greater than zero.
func PositiveInteger(v any) bool {
	n, ok := Integer(v)
	return ok && n > 0
}
