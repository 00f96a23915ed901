package pagecraft

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
)

type valueType uint8

const (
	valueString valueType = iota + 1
	valueBool
	valueList
)

// Value is a single property value: a string, a bool, or an ordered list of
// strings. The zero Value is "unset" and is never stored in a Props.
type Value struct {
	typ  valueType
	str  string
	flag bool
	list []string
}

// String creates a string value.
func String(s string) Value {
	return Value{typ: valueString, str: s}
}

// Bool creates a boolean value.
func Bool(b bool) Value {
	return Value{typ: valueBool, flag: b}
}

// List creates an ordered string list value. The items are copied.
func List(items ...string) Value {
	return Value{typ: valueList, list: slices.Clone(items)}
}

// IsZero reports whether the value is unset.
func (v Value) IsZero() bool {
	return v.typ == 0
}

// AsString returns the string payload and whether v holds a string.
func (v Value) AsString() (string, bool) {
	return v.str, v.typ == valueString
}

// AsBool returns the boolean payload and whether v holds a bool.
func (v Value) AsBool() (bool, bool) {
	return v.flag, v.typ == valueBool
}

// AsList returns a copy of the list payload and whether v holds a list.
func (v Value) AsList() ([]string, bool) {
	if v.typ != valueList {
		return nil, false
	}
	return slices.Clone(v.list), true
}

// Equal reports whether two values hold the same type and payload.
func (v Value) Equal(other Value) bool {
	if v.typ != other.typ {
		return false
	}
	switch v.typ {
	case valueString:
		return v.str == other.str
	case valueBool:
		return v.flag == other.flag
	case valueList:
		return slices.Equal(v.list, other.list)
	}
	return true
}

func (v Value) GoString() string {
	switch v.typ {
	case valueString:
		return fmt.Sprintf("String(%q)", v.str)
	case valueBool:
		return fmt.Sprintf("Bool(%t)", v.flag)
	case valueList:
		return fmt.Sprintf("List(%q)", v.list)
	}
	return "Value{}"
}

// MarshalJSON encodes the value as a JSON string, bool or array of strings.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.typ {
	case valueString:
		return json.Marshal(v.str)
	case valueBool:
		return json.Marshal(v.flag)
	case valueList:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	}
	return []byte("null"), nil
}

// UnmarshalJSON accepts a JSON string, bool or array of strings. Any other
// shape is rejected.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("pagecraft: empty property value")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = String(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = Bool(b)
	case '[':
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("pagecraft: property list must contain strings: %w", err)
		}
		*v = List(items...)
	default:
		return fmt.Errorf("pagecraft: unsupported property value %s", data)
	}
	return nil
}

// Props is a sparse property bag. Keys are kind-specific; unknown keys are
// kept but ignored when rendering.
type Props map[string]Value

// Clone returns a deep copy of p.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		if v.typ == valueList {
			v.list = slices.Clone(v.list)
		}
		out[k] = v
	}
	return out
}

// Merge writes every key of patch into p, overwriting existing keys and
// leaving the rest untouched. Unset values in patch are skipped.
func (p Props) Merge(patch Props) {
	for k, v := range patch {
		if v.IsZero() {
			continue
		}
		if v.typ == valueList {
			v.list = slices.Clone(v.list)
		}
		p[k] = v
	}
}

// Equal reports whether p and other hold the same keys and values.
func (p Props) Equal(other Props) bool {
	return maps.EqualFunc(p, other, Value.Equal)
}

// Keys returns the property names in sorted order.
func (p Props) Keys() []string {
	return slices.Sorted(maps.Keys(p))
}

// Str returns the string at key, or fallback when the key is absent, not a
// string, or empty.
func (p Props) Str(key, fallback string) string {
	if s, ok := p[key].AsString(); ok && s != "" {
		return s
	}
	return fallback
}

// Flag returns the bool at key, or fallback when absent or not a bool.
func (p Props) Flag(key string, fallback bool) bool {
	if b, ok := p[key].AsBool(); ok {
		return b
	}
	return fallback
}

// Strings returns the list at key, or a copy of fallback when absent or not
// a list. A present empty list is returned as-is.
func (p Props) Strings(key string, fallback []string) []string {
	if l, ok := p[key].AsList(); ok {
		return l
	}
	return slices.Clone(fallback)
}
