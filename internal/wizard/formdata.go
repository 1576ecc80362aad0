package wizard

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FormData is the opaque key-value bag collected across wizard steps.
// Values are JSON-decoded types; merging is last-write-wins per key.
type FormData map[string]any

// Clone returns a shallow copy of the form data.
func (d FormData) Clone() FormData {
	if d == nil {
		return FormData{}
	}
	out := make(FormData, len(d))
	for key, value := range d {
		out[key] = value
	}
	return out
}

// Merge overlays the partial data onto a copy of the receiver, overwriting
// at the key level, and returns the result.
func (d FormData) Merge(partial FormData) FormData {
	out := d.Clone()
	for key, value := range partial {
		out[key] = value
	}
	return out
}

// HasValue reports whether the key is present with a non-empty value.
// Empty strings, empty slices, and empty maps count as absent.
func (d FormData) HasValue(key string) bool {
	value, ok := d[key]
	if !ok {
		return false
	}
	return !isEmptyValue(value)
}

func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	}
	return false
}

func matchesKind(value any, kind FieldKind) bool {
	switch kind {
	case FieldAny:
		return true
	case FieldText:
		_, ok := value.(string)
		return ok
	case FieldNumber:
		return asNumber(value) != nil
	case FieldList:
		switch value.(type) {
		case []any, []string:
			return true
		}
		return false
	case FieldObject:
		_, ok := value.(map[string]any)
		return ok
	}
	return false
}

// asNumber coerces JSON-decoded numeric representations into a float.
// Numeric strings are accepted because HTML form values often arrive quoted.
func asNumber(value any) *float64 {
	switch v := value.(type) {
	case float64:
		return &v
	case float32:
		f := float64(v)
		return &f
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return &f
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return &f
		}
	}
	return nil
}
