package aedt

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Dict is a string-keyed mapping that preserves the order in which keys
// were first inserted. Order matters in project files: sections appear in
// a meaningful sequence, and repeated sibling blocks collapse into ordered
// lists.
//
// Values are one of: nil, bool, int, float64, string, []any or *Dict.
type Dict struct {
	keys   []string
	values map[string]any
}

// NewDict returns an empty ordered mapping.
func NewDict() *Dict {
	return &Dict{values: make(map[string]any)}
}

// Set inserts or overwrites key. An overwritten key keeps its original
// position.
func (d *Dict) Set(key string, value any) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Get returns the value stored under key and whether the key is present.
func (d *Dict) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Dict returns the nested dict stored under key, or nil when the key is
// absent or holds a different kind of value.
func (d *Dict) Dict(key string) *Dict {
	if v, ok := d.values[key]; ok {
		if nested, ok := v.(*Dict); ok {
			return nested
		}
	}
	return nil
}

// String returns the string stored under key, or "" when the key is
// absent or holds a different kind of value.
func (d *Dict) String(key string) string {
	if v, ok := d.values[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not modify it.
func (d *Dict) Keys() []string {
	return d.keys
}

// Len returns the number of keys.
func (d *Dict) Len() int {
	return len(d.keys)
}

// MarshalJSON encodes the dict as a JSON object with keys in insertion
// order.
func (d *Dict) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(d.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// coerceValue converts a raw token into its native form. The attempts run
// in a fixed order and the raw token is the final fallback, so coercion
// is total: it never fails.
func coerceValue(token string) any {
	switch token {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.Atoi(token); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return f
	}
	// A single wrapping quote pair is stripped; internal quotes mean the
	// token is not a plainly quoted string and it stays as-is.
	if len(token) >= 2 && token[0] == '\'' && token[len(token)-1] == '\'' {
		if inner := token[1 : len(token)-1]; !strings.Contains(inner, "'") {
			return inner
		}
	}
	return token
}
