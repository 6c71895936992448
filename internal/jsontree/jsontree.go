// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package jsontree provides safe traversal of untyped, partially-populated
// JSON trees. All optional-field access in the flatteners goes through
// Value.Get, so a missing branch anywhere in a registry payload degrades to
// the Absent sentinel instead of a panic.
package jsontree

import (
	"encoding/json"
	"io"
	"strconv"
)

// Value wraps one node of a decoded JSON tree: a mapping, a sequence, a
// scalar, or nothing. The zero Value is Absent. JSON nulls collapse to
// Absent at wrap time; callers cannot distinguish "present but null" from
// "missing" and must not try.
type Value struct {
	data    any
	present bool
}

// Absent is the sentinel for missing, null, or unreachable nodes.
var Absent = Value{}

// Decode reads a single JSON document from r into a Value tree. Numbers are
// kept as json.Number so integer identifiers round-trip without a float
// detour.
func Decode(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var data any
	if err := dec.Decode(&data); err != nil {
		return Absent, err
	}
	return wrap(data), nil
}

// wrap converts an already-decoded JSON value (map[string]any, []any,
// scalar, or nil) into a Value.
func wrap(data any) Value {
	if data == nil {
		return Absent
	}
	return Value{data: data, present: true}
}

// IsAbsent reports whether the node is the Absent sentinel.
func (v Value) IsAbsent() bool { return !v.present }

// Get walks the tree one key at a time. If at any step the current node is
// absent, is not a mapping, or lacks the key, Get returns Absent
// immediately. It never panics, at any depth.
func (v Value) Get(keys ...string) Value {
	cur := v
	for _, k := range keys {
		if !cur.present {
			return Absent
		}
		m, ok := cur.data.(map[string]any)
		if !ok {
			return Absent
		}
		next, ok := m[k]
		if !ok {
			return Absent
		}
		cur = wrap(next)
	}
	return cur
}

// Seq returns the node's elements when it is a sequence, nil otherwise.
func (v Value) Seq() []Value {
	if !v.present {
		return nil
	}
	s, ok := v.data.([]any)
	if !ok {
		return nil
	}
	out := make([]Value, len(s))
	for i, e := range s {
		out[i] = wrap(e)
	}
	return out
}

// Len returns the element count when the node is a sequence, 0 otherwise.
func (v Value) Len() int {
	if !v.present {
		return 0
	}
	if s, ok := v.data.([]any); ok {
		return len(s)
	}
	return 0
}

// Index returns the i-th element of a sequence node, or Absent when the
// node is not a sequence or the index is out of range.
func (v Value) Index(i int) Value {
	if !v.present || i < 0 {
		return Absent
	}
	s, ok := v.data.([]any)
	if !ok || i >= len(s) {
		return Absent
	}
	return wrap(s[i])
}

// Str returns the node's scalar as a string: strings verbatim, numbers
// without a trailing ".0" when integral, booleans as "true"/"false".
// Absent nodes, mappings, and sequences yield "".
func (v Value) Str() string {
	if !v.present {
		return ""
	}
	switch s := v.data.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case float64:
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

// Int returns the node's scalar as an integer. Numeric strings are
// accepted; anything else reports false.
func (v Value) Int() (int, bool) {
	if !v.present {
		return 0, false
	}
	switch s := v.data.(type) {
	case json.Number:
		n, err := s.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case float64:
		return int(s), true
	case string:
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
